package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// StaffRepository puerto de persistencia para Staff.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	List(activeOnly bool, limit, offset int) ([]*entity.Staff, error)
	Update(staff *entity.Staff) error
	Delete(id string) error
}
