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

// CustomerUseCase gestiona clientes para fidelización y reservas.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	notifier     realtime.Notifier
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, notifier realtime.Notifier) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, notifier: notifier}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelCustomers)
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// GetByID un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// List clientes paginados. Con term no vacío busca por nombre normalizado.
func (uc *CustomerUseCase) List(term string, limit, offset int) (*dto.CustomerListResponse, error) {
	var (
		customers []*entity.Customer
		err       error
	)
	if term != "" {
		customers, err = uc.customerRepo.Search(term, limit, offset)
	} else {
		customers, err = uc.customerRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.NewCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update campos de un cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, realtime.ChannelCustomers)
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if err := uc.customerRepo.Delete(id); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, realtime.ChannelCustomers)
	return nil
}

// RecordVisit incrementa el contador de visitas al cerrar una orden con
// cliente asociado.
func (uc *CustomerUseCase) RecordVisit(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	customer.VisitCount++
	customer.LastVisit = &now
	customer.UpdatedAt = now
	if err := uc.customerRepo.Update(customer); err != nil {
		return err
	}
	uc.notifier.Notify(ctx, realtime.ChannelCustomers)
	return nil
}
