package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// ReorderRuleRepository puerto de persistencia para ReorderRule.
type ReorderRuleRepository interface {
	Create(rule *entity.ReorderRule) error
	GetByID(id string) (*entity.ReorderRule, error)
	List(limit, offset int) ([]*entity.ReorderRule, error)
	// ListAutoPending reglas con auto-reorden habilitado y estado pending,
	// candidatas a evaluación automática contra el stock vivo.
	ListAutoPending() ([]*entity.ReorderRule, error)
	Update(rule *entity.ReorderRule) error
}
