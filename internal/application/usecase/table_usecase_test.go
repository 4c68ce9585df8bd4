package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type memTableRepo struct {
	tables map[string]*entity.Table
}

func (m *memTableRepo) Create(t *entity.Table) error { m.tables[t.ID] = t; return nil }
func (m *memTableRepo) GetByID(id string) (*entity.Table, error) {
	t, ok := m.tables[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}
func (m *memTableRepo) List() ([]*entity.Table, error) { return nil, nil }
func (m *memTableRepo) Update(t *entity.Table) error   { m.tables[t.ID] = t; return nil }
func (m *memTableRepo) UpdateStatus(id string, s entity.TableStatus) error {
	m.tables[id].Status = s
	return nil
}
func (m *memTableRepo) Delete(id string) error { delete(m.tables, id); return nil }

type memReservationRepo struct {
	reservations map[string]*entity.Reservation
}

func (m *memReservationRepo) Create(r *entity.Reservation) error {
	m.reservations[r.ID] = r
	return nil
}
func (m *memReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}
func (m *memReservationRepo) ListByDay(day time.Time) ([]*entity.Reservation, error) {
	return nil, nil
}
func (m *memReservationRepo) ListActiveByTable(tableID string, from, to time.Time) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range m.reservations {
		if r.TableID != tableID {
			continue
		}
		if r.Status != entity.ReservationStatusConfirmed && r.Status != entity.ReservationStatusSeated {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (m *memReservationRepo) Update(r *entity.Reservation) error {
	m.reservations[r.ID] = r
	return nil
}

// ── fixtures ─────────────────────────────────────────────────────────────────

func tableFixture() (*usecase.TableUseCase, *memTableRepo, *memReservationRepo) {
	tables := &memTableRepo{tables: map[string]*entity.Table{
		"mesa-1": {ID: "mesa-1", Number: 1, Capacity: 4, Status: entity.TableStatusFree},
	}}
	reservations := &memReservationRepo{reservations: map[string]*entity.Reservation{}}
	uc := usecase.NewTableUseCase(tables, reservations, realtime.NopNotifier{})
	return uc, tables, reservations
}

func reservationAt(start time.Time, minutes int) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		TableID:      "mesa-1",
		CustomerName: "Carolina Rojas",
		PartySize:    3,
		StartsAt:     start,
		DurationMin:  minutes,
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

// TestCreateReservation_RechazaSolapamiento: dos reservas de la misma mesa no
// pueden compartir ventana horaria.
func TestCreateReservation_RechazaSolapamiento(t *testing.T) {
	uc, _, _ := tableFixture()
	tonight := time.Date(2026, 8, 31, 19, 0, 0, 0, time.Local)

	_, err := uc.CreateReservation(reservationAt(tonight, 90))
	require.NoError(t, err)

	// Empieza a mitad de la primera: se solapa.
	_, err = uc.CreateReservation(reservationAt(tonight.Add(45*time.Minute), 60))
	assert.ErrorIs(t, err, domain.ErrTableOccupied)

	// Empieza justo cuando termina la primera: borde exclusivo, válida.
	_, err = uc.CreateReservation(reservationAt(tonight.Add(90*time.Minute), 60))
	assert.NoError(t, err)
}

// TestCreateReservation_GrupoMayorQueCapacidad: el grupo no puede exceder la
// capacidad de la mesa.
func TestCreateReservation_GrupoMayorQueCapacidad(t *testing.T) {
	uc, _, _ := tableFixture()

	in := reservationAt(time.Now().Add(2*time.Hour), 90)
	in.PartySize = 7
	_, err := uc.CreateReservation(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCreateReservation_DuracionPorDefecto: sin duración explícita se asume la
// ventana estándar.
func TestCreateReservation_DuracionPorDefecto(t *testing.T) {
	uc, _, _ := tableFixture()

	out, err := uc.CreateReservation(reservationAt(time.Now().Add(2*time.Hour), 0))
	require.NoError(t, err)
	assert.Equal(t, 90, out.DurationMin)
}

// TestSetReservationStatus_SentarOcupaLaMesa: pasar la reserva a seated deja
// la mesa en occupied.
func TestSetReservationStatus_SentarOcupaLaMesa(t *testing.T) {
	uc, tables, _ := tableFixture()

	out, err := uc.CreateReservation(reservationAt(time.Now().Add(time.Hour), 90))
	require.NoError(t, err)

	_, err = uc.SetReservationStatus(context.Background(), out.ID, "seated")
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOccupied, tables.tables["mesa-1"].Status)
}
