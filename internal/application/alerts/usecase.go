package alerts

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	domainalerts "github.com/jhoicas/Restaurante-api/internal/domain/alerts"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// SyncStatus estado de la sincronización realtime, para que el tablero pueda
// avisar cuando los datos podrían estar viejos.
type SyncStatus interface {
	Connected() bool
}

// AlertsUseCase consultas del tablero de alertas: aplica el motor puro de
// alertas sobre el snapshot vivo de ingredientes.
type AlertsUseCase struct {
	ingredientRepo repository.IngredientRepository
	settings       domainalerts.Settings
	sync           SyncStatus
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(
	ingredientRepo repository.IngredientRepository,
	settings domainalerts.Settings,
	sync SyncStatus,
) *AlertsUseCase {
	return &AlertsUseCase{ingredientRepo: ingredientRepo, settings: settings, sync: sync}
}

// Overview devuelve las tres vistas derivadas más el estado de sincronización.
func (uc *AlertsUseCase) Overview() (*dto.AlertsOverviewResponse, error) {
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	out := &dto.AlertsOverviewResponse{
		LowStock:    toIngredientResponses(domainalerts.LowStock(snapshot, uc.settings)),
		Expiring:    toIngredientResponses(domainalerts.Expiring(snapshot, uc.settings, now)),
		Predictions: toPredictionResponses(domainalerts.Predictions(snapshot, now)),
		SyncStatus:  "disconnected",
	}
	if uc.sync != nil && uc.sync.Connected() {
		out.SyncStatus = "live"
	}
	return out, nil
}

// LowStock ingredientes con stock bajo.
func (uc *AlertsUseCase) LowStock() ([]dto.IngredientResponse, error) {
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return toIngredientResponses(domainalerts.LowStock(snapshot, uc.settings)), nil
}

// Expiring perecederos por vencer dentro del horizonte configurado.
func (uc *AlertsUseCase) Expiring() ([]dto.IngredientResponse, error) {
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return toIngredientResponses(domainalerts.Expiring(snapshot, uc.settings, time.Now())), nil
}

// Predictions quiebres de stock proyectados dentro de los próximos 14 días.
func (uc *AlertsUseCase) Predictions() ([]dto.StockPredictionResponse, error) {
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	return toPredictionResponses(domainalerts.Predictions(snapshot, time.Now())), nil
}

func (uc *AlertsUseCase) snapshot() ([]entity.Ingredient, error) {
	items, err := uc.ingredientRepo.ListAll()
	if err != nil {
		return nil, err
	}
	snapshot := make([]entity.Ingredient, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, *it)
	}
	return snapshot, nil
}

func toIngredientResponses(items []entity.Ingredient) []dto.IngredientResponse {
	out := make([]dto.IngredientResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewIngredientResponse(&items[i]))
	}
	return out
}

func toPredictionResponses(preds []domainalerts.Prediction) []dto.StockPredictionResponse {
	out := make([]dto.StockPredictionResponse, 0, len(preds))
	for i := range preds {
		out = append(out, dto.StockPredictionResponse{
			Ingredient:        dto.NewIngredientResponse(&preds[i].Ingredient),
			DaysUntilStockout: preds[i].DaysUntilStockout,
			StockoutDate:      preds[i].StockoutDate,
			Urgency:           string(preds[i].Urgency),
		})
	}
	return out
}
