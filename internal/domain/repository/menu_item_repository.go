package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// MenuItemRepository puerto de persistencia para MenuItem y su receta.
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	List(limit, offset int) ([]*entity.MenuItem, error)
	// Search busca por nombre normalizado (sin tildes, case-insensitive).
	Search(term string, limit, offset int) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	SetAvailability(id string, available bool) error
	Delete(id string) error
}
