package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// StaffUseCase gestiona empleados. El PIN de marcación se guarda con bcrypt y
// nunca sale en las respuestas.
type StaffUseCase struct {
	staffRepo repository.StaffRepository
	notifier  realtime.Notifier
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staffRepo repository.StaffRepository, notifier realtime.Notifier) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo, notifier: notifier}
}

// Create da de alta un empleado activo.
func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	staff := &entity.Staff{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Role:       in.Role,
		Phone:      in.Phone,
		Email:      in.Email,
		HourlyRate: in.HourlyRate,
		Active:     true,
		HiredAt:    now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.HiredAt != nil {
		staff.HiredAt = *in.HiredAt
	}
	if in.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		staff.PINHash = string(hash)
	}

	if err := uc.staffRepo.Create(staff); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelStaff)
	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// GetByID un empleado.
func (uc *StaffUseCase) GetByID(id string) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// List empleados, opcionalmente solo activos.
func (uc *StaffUseCase) List(activeOnly bool, limit, offset int) (*dto.StaffListResponse, error) {
	staff, err := uc.staffRepo.List(activeOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(staff))
	for _, s := range staff {
		items = append(items, dto.NewStaffResponse(s))
	}
	return &dto.StaffListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update campos de un empleado; PIN no vacío re-hashea.
func (uc *StaffUseCase) Update(ctx context.Context, id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		staff.Name = *in.Name
	}
	if in.Role != nil {
		staff.Role = *in.Role
	}
	if in.Phone != nil {
		staff.Phone = *in.Phone
	}
	if in.Email != nil {
		staff.Email = *in.Email
	}
	if in.HourlyRate != nil {
		staff.HourlyRate = *in.HourlyRate
	}
	if in.Active != nil {
		staff.Active = *in.Active
	}
	if in.PIN != nil && *in.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		staff.PINHash = string(hash)
	}
	staff.UpdatedAt = time.Now()

	if err := uc.staffRepo.Update(staff); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelStaff)
	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// Delete elimina un empleado.
func (uc *StaffUseCase) Delete(ctx context.Context, id string) error {
	staff, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
		return domain.ErrNotFound
	}
	if err := uc.staffRepo.Delete(id); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, realtime.ChannelStaff)
	return nil
}

// VerifyPIN valida el PIN de marcación de un empleado activo.
func (uc *StaffUseCase) VerifyPIN(id, pin string) error {
	staff, err := uc.staffRepo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil || !staff.Active {
		return domain.ErrNotFound
	}
	if staff.PINHash == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PINHash), []byte(pin)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
