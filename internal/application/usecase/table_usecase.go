package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// defaultReservationMinutes duración de una reserva cuando el cliente no la
// indica.
const defaultReservationMinutes = 90

// TableUseCase gestiona mesas y reservas. Una reserva nueva se valida contra
// las reservas activas de la misma mesa en su ventana horaria.
type TableUseCase struct {
	tableRepo       repository.TableRepository
	reservationRepo repository.ReservationRepository
	notifier        realtime.Notifier
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(
	tableRepo repository.TableRepository,
	reservationRepo repository.ReservationRepository,
	notifier realtime.Notifier,
) *TableUseCase {
	return &TableUseCase{
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		notifier:        notifier,
	}
}

// CreateTable da de alta una mesa libre.
func (uc *TableUseCase) CreateTable(in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Number < 1 || in.Capacity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	table := &entity.Table{
		ID:        uuid.New().String(),
		Number:    in.Number,
		Capacity:  in.Capacity,
		Zone:      in.Zone,
		Status:    entity.TableStatusFree,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tableRepo.Create(table); err != nil {
		return nil, err
	}
	resp := dto.NewTableResponse(table)
	return &resp, nil
}

// ListTables todas las mesas del salón.
func (uc *TableUseCase) ListTables() ([]dto.TableResponse, error) {
	tables, err := uc.tableRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		out = append(out, dto.NewTableResponse(t))
	}
	return out, nil
}

// SetTableStatus cambia el estado de ocupación de una mesa.
func (uc *TableUseCase) SetTableStatus(ctx context.Context, id, status string) (*dto.TableResponse, error) {
	switch entity.TableStatus(status) {
	case entity.TableStatusFree, entity.TableStatusOccupied,
		entity.TableStatusReserved, entity.TableStatusCleaning:
	default:
		return nil, domain.ErrInvalidInput
	}
	table, err := uc.tableRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	table.Status = entity.TableStatus(status)
	table.UpdatedAt = time.Now()
	if err := uc.tableRepo.UpdateStatus(table.ID, table.Status); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelSales)
	resp := dto.NewTableResponse(table)
	return &resp, nil
}

// DeleteTable elimina una mesa.
func (uc *TableUseCase) DeleteTable(id string) error {
	table, err := uc.tableRepo.GetByID(id)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.ErrNotFound
	}
	return uc.tableRepo.Delete(id)
}

// CreateReservation crea una reserva confirmada. Si la mesa ya tiene una
// reserva activa que se solapa con la ventana pedida devuelve
// domain.ErrTableOccupied.
func (uc *TableUseCase) CreateReservation(in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.CustomerName == "" || in.PartySize < 1 {
		return nil, domain.ErrInvalidInput
	}
	table, err := uc.tableRepo.GetByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	if in.PartySize > table.Capacity {
		return nil, domain.ErrInvalidInput
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = defaultReservationMinutes
	}
	now := time.Now()
	res := &entity.Reservation{
		ID:           uuid.New().String(),
		TableID:      in.TableID,
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		PartySize:    in.PartySize,
		StartsAt:     in.StartsAt,
		DurationMin:  duration,
		Status:       entity.ReservationStatusConfirmed,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	end := res.StartsAt.Add(time.Duration(res.DurationMin) * time.Minute)
	active, err := uc.reservationRepo.ListActiveByTable(in.TableID, res.StartsAt.Add(-24*time.Hour), end)
	if err != nil {
		return nil, err
	}
	for _, other := range active {
		if res.Overlaps(*other) {
			return nil, domain.ErrTableOccupied
		}
	}

	if err := uc.reservationRepo.Create(res); err != nil {
		return nil, err
	}
	resp := dto.NewReservationResponse(res)
	return &resp, nil
}

// ListReservations reservas del día indicado.
func (uc *TableUseCase) ListReservations(day time.Time) ([]dto.ReservationResponse, error) {
	reservations, err := uc.reservationRepo.ListByDay(day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.NewReservationResponse(r))
	}
	return out, nil
}

// SetReservationStatus cambia el estado de una reserva; al sentar la reserva
// la mesa pasa a occupied.
func (uc *TableUseCase) SetReservationStatus(ctx context.Context, id, status string) (*dto.ReservationResponse, error) {
	switch entity.ReservationStatus(status) {
	case entity.ReservationStatusConfirmed, entity.ReservationStatusSeated,
		entity.ReservationStatusCompleted, entity.ReservationStatusNoShow,
		entity.ReservationStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.reservationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	res.Status = entity.ReservationStatus(status)
	res.UpdatedAt = time.Now()
	if err := uc.reservationRepo.Update(res); err != nil {
		return nil, err
	}
	if res.Status == entity.ReservationStatusSeated {
		if _, err := uc.SetTableStatus(ctx, res.TableID, string(entity.TableStatusOccupied)); err != nil {
			return nil, err
		}
	}
	resp := dto.NewReservationResponse(res)
	return &resp, nil
}
