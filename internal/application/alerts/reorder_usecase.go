package alerts

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/monitoring"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// manualDeliveryDays entrega estimada de un reorden manual: placeholder fijo
// de 2 días. No usa el lead time propio del ingrediente; cuál de los dos
// debería mandar sigue siendo una pregunta de producto abierta, así que ambos
// campos se conservan tal cual.
const manualDeliveryDays = 2

// ReorderUseCase gestiona el ciclo de vida de las reglas de reorden y el
// disparo manual o automático de pedidos.
type ReorderUseCase struct {
	ruleRepo           repository.ReorderRuleRepository
	ingredientRepo     repository.IngredientRepository
	autoReorderDefault bool
	log                *logger.Logger
}

// NewReorderUseCase construye el caso de uso. autoReorderDefault es el default
// global para reglas nuevas que no traen el flag explícito.
func NewReorderUseCase(
	ruleRepo repository.ReorderRuleRepository,
	ingredientRepo repository.IngredientRepository,
	autoReorderDefault bool,
	log *logger.Logger,
) *ReorderUseCase {
	return &ReorderUseCase{
		ruleRepo:           ruleRepo,
		ingredientRepo:     ingredientRepo,
		autoReorderDefault: autoReorderDefault,
		log:                log,
	}
}

// Create crea una regla de reorden para un ingrediente existente. Nace en
// pending; el flag de auto-reorden toma el default global si no viene.
func (uc *ReorderUseCase) Create(in dto.CreateReorderRuleRequest) (*dto.ReorderRuleResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(in.IngredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}

	auto := uc.autoReorderDefault
	if in.AutoReorderEnabled != nil {
		auto = *in.AutoReorderEnabled
	}
	supplier := in.Supplier
	if supplier == "" {
		supplier = ing.Supplier
	}

	now := time.Now()
	rule := &entity.ReorderRule{
		ID:                 uuid.New().String(),
		IngredientID:       ing.ID,
		IngredientName:     ing.Name,
		Supplier:           supplier,
		ReorderPoint:       in.ReorderPoint,
		ReorderQuantity:    in.ReorderQuantity,
		AutoReorderEnabled: auto,
		Status:             entity.ReorderStatusPending,
		Cost:               in.Cost,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	return toReorderRuleResponse(rule), nil
}

// List reglas paginadas.
func (uc *ReorderUseCase) List(limit, offset int) (*dto.ReorderRuleListResponse, error) {
	rules, err := uc.ruleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReorderRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, *toReorderRuleResponse(r))
	}
	return &dto.ReorderRuleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ManualReorder dispara un pedido manual: válido desde cualquier estado salvo
// ordered (el guard vive en la entidad, no en botones de UI). Sella
// lastReorder hoy y estima entrega en manualDeliveryDays.
func (uc *ReorderUseCase) ManualReorder(ruleID string) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.ruleRepo.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}

	if err := rule.Transition(entity.ReorderStatusOrdered); err != nil {
		return nil, err
	}
	now := time.Now()
	est := now.AddDate(0, 0, manualDeliveryDays)
	rule.LastReorder = &now
	rule.EstimatedDelivery = &est
	rule.UpdatedAt = now

	if err := uc.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	monitoring.ReordersTriggered.WithLabelValues("manual").Inc()
	return toReorderRuleResponse(rule), nil
}

// ToggleAutoReorder invierte el flag de auto-reorden sin tocar el estado.
func (uc *ReorderUseCase) ToggleAutoReorder(ruleID string) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.ruleRepo.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	rule.AutoReorderEnabled = !rule.AutoReorderEnabled
	rule.UpdatedAt = time.Now()
	if err := uc.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return toReorderRuleResponse(rule), nil
}

// SetStatus avanza el estado de la regla (recepción: ordered → delivered;
// cancelación: pending/ordered → cancelled). Transiciones ilegales devuelven
// domain.ErrInvalidTransition.
func (uc *ReorderUseCase) SetStatus(ruleID string, status entity.ReorderStatus) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.ruleRepo.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	if err := rule.Transition(status); err != nil {
		return nil, err
	}
	rule.UpdatedAt = time.Now()
	if err := uc.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return toReorderRuleResponse(rule), nil
}

// EvaluateAutoReorders evalúa todas las reglas pending con auto-reorden
// habilitado contra el stock vivo: si el stock actual del ingrediente está en
// o bajo el punto de reorden, la regla pasa a ordered sin intervención del
// usuario. Se dispara desde la notificación del dominio stock del fan-out.
// La entrega estimada del disparo automático usa el lead time del ingrediente.
// Devuelve cuántas reglas se dispararon.
func (uc *ReorderUseCase) EvaluateAutoReorders() (int, error) {
	rules, err := uc.ruleRepo.ListAutoPending()
	if err != nil {
		return 0, err
	}

	triggered := 0
	for _, rule := range rules {
		ing, err := uc.ingredientRepo.GetByID(rule.IngredientID)
		if err != nil || ing == nil {
			continue
		}
		if ing.CurrentStock.GreaterThan(rule.ReorderPoint) {
			continue
		}
		if err := rule.Transition(entity.ReorderStatusOrdered); err != nil {
			continue
		}
		now := time.Now()
		est := now.AddDate(0, 0, ing.LeadTimeDays)
		rule.LastReorder = &now
		rule.EstimatedDelivery = &est
		rule.UpdatedAt = now
		if err := uc.ruleRepo.Update(rule); err != nil {
			if uc.log != nil {
				uc.log.Error().Err(err).Str("rule_id", rule.ID).Msg("guardar reorden automático")
			}
			continue
		}
		monitoring.ReordersTriggered.WithLabelValues("auto").Inc()
		if uc.log != nil {
			uc.log.Info().
				Str("rule_id", rule.ID).
				Str("ingredient", rule.IngredientName).
				Msg("reorden automático disparado")
		}
		triggered++
	}
	return triggered, nil
}

func toReorderRuleResponse(r *entity.ReorderRule) *dto.ReorderRuleResponse {
	return &dto.ReorderRuleResponse{
		ID:                 r.ID,
		IngredientID:       r.IngredientID,
		IngredientName:     r.IngredientName,
		Supplier:           r.Supplier,
		ReorderPoint:       r.ReorderPoint,
		ReorderQuantity:    r.ReorderQuantity,
		AutoReorderEnabled: r.AutoReorderEnabled,
		LastReorder:        r.LastReorder,
		Status:             string(r.Status),
		EstimatedDelivery:  r.EstimatedDelivery,
		Cost:               r.Cost,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
