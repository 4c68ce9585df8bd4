package dto

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// Constructores entidad → response, compartidos por los casos de uso.

func NewIngredientResponse(e *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		Unit:            e.Unit,
		CurrentStock:    e.CurrentStock,
		MinimumStock:    e.MinimumStock,
		MaximumStock:    e.MaximumStock,
		CostPerUnit:     e.CostPerUnit,
		Supplier:        e.Supplier,
		SupplierContact: e.SupplierContact,
		IsPerishable:    e.IsPerishable,
		ExpiryDate:      e.ExpiryDate,
		StorageLocation: e.StorageLocation,
		DailyUsage:      e.DailyUsage,
		LeadTimeDays:    e.LeadTimeDays,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewMenuItemResponse(e *entity.MenuItem) MenuItemResponse {
	recipe := make([]RecipeLineDTO, 0, len(e.Recipe))
	for _, l := range e.Recipe {
		recipe = append(recipe, RecipeLineDTO{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	return MenuItemResponse{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Description: e.Description,
		Price:       e.Price,
		Available:   e.Available,
		PrepMinutes: e.PrepMinutes,
		Station:     e.Station,
		Recipe:      recipe,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func NewOrderResponse(e *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, OrderItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Notes:      it.Notes,
		})
	}
	return OrderResponse{
		ID:         e.ID,
		TableID:    e.TableID,
		CustomerID: e.CustomerID,
		StaffID:    e.StaffID,
		Type:       string(e.Type),
		Status:     string(e.Status),
		Items:      items,
		Subtotal:   e.Subtotal,
		Tax:        e.Tax,
		Total:      e.Total,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func NewKitchenTicketResponse(e *entity.KitchenTicket) KitchenTicketResponse {
	return KitchenTicketResponse{
		ID:           e.ID,
		OrderID:      e.OrderID,
		MenuItemName: e.MenuItemName,
		Station:      e.Station,
		Quantity:     e.Quantity,
		Notes:        e.Notes,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		StartedAt:    e.StartedAt,
		ReadyAt:      e.ReadyAt,
		ServedAt:     e.ServedAt,
	}
}

func NewStaffResponse(e *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Phone:      e.Phone,
		Email:      e.Email,
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func NewTableResponse(e *entity.Table) TableResponse {
	return TableResponse{
		ID:        e.ID,
		Number:    e.Number,
		Capacity:  e.Capacity,
		Zone:      e.Zone,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewReservationResponse(e *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           e.ID,
		TableID:      e.TableID,
		CustomerName: e.CustomerName,
		Phone:        e.Phone,
		PartySize:    e.PartySize,
		StartsAt:     e.StartsAt,
		DurationMin:  e.DurationMin,
		Status:       string(e.Status),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func NewCustomerResponse(e *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         e.ID,
		Name:       e.Name,
		Phone:      e.Phone,
		Email:      e.Email,
		Notes:      e.Notes,
		VisitCount: e.VisitCount,
		LastVisit:  e.LastVisit,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func NewPaymentMethodResponse(e *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:           e.ID,
		Name:         e.Name,
		Kind:         e.Kind,
		SurchargePct: e.SurchargePct,
		Enabled:      e.Enabled,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func NewPaymentTransactionResponse(e *entity.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		ID:              e.ID,
		OrderID:         e.OrderID,
		PaymentMethodID: e.PaymentMethodID,
		Amount:          e.Amount,
		Tip:             e.Tip,
		Reference:       e.Reference,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
	}
}

func NewStockMovementResponse(e *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:           e.ID,
		IngredientID: e.IngredientID,
		Type:         e.Type,
		Quantity:     e.Quantity,
		Reason:       e.Reason,
		ReferenceID:  e.ReferenceID,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
	}
}
