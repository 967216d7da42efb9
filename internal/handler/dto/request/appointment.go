package request

import (
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentItemRequest struct {
	ServiceID int64            `json:"servico_id" binding:"required"`
	Quantity  *int32           `json:"quantidade,omitempty"`
	UnitPrice *decimal.Decimal `json:"preco_unit,omitempty"`
	Discount  *decimal.Decimal `json:"desconto,omitempty"`
}

// quantity defaults to 1 and discount to 0
func (r AppointmentItemRequest) toDomain() appointment.ItemRequest {
	qty := int32(1)
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	discount := decimal.Zero
	if r.Discount != nil {
		discount = *r.Discount
	}
	return appointment.ItemRequest{ServiceID: r.ServiceID, Quantity: qty, UnitPrice: r.UnitPrice, Discount: discount}
}

func toItemRequests(items []AppointmentItemRequest) []appointment.ItemRequest {
	out := make([]appointment.ItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, it.toDomain())
	}
	return out
}

type CreateAppointmentRequest struct {
	PetID    int64                    `json:"pet_id" binding:"required"`
	ClientID int64                    `json:"cliente_id" binding:"required"`
	Start    time.Time                `json:"inicio" binding:"required"`
	End      time.Time                `json:"fim" binding:"required"`
	StaffID  *uuid.UUID               `json:"staff_id,omitempty"`
	Notes    *string                  `json:"observacoes,omitempty"`
	Items    []AppointmentItemRequest `json:"itens,omitempty" binding:"omitempty,dive"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		PetID:    r.PetID,
		ClientID: r.ClientID,
		StaffID:  r.StaffID,
		Start:    r.Start,
		End:      r.End,
		Notes:    r.Notes,
		Items:    toItemRequests(r.Items),
	}
}

type UpdateAppointmentRequest struct {
	PetID    *int64     `json:"pet_id,omitempty"`
	ClientID *int64     `json:"cliente_id,omitempty"`
	Start    *time.Time `json:"inicio,omitempty"`
	End      *time.Time `json:"fim,omitempty"`
	StaffID  *uuid.UUID `json:"staff_id,omitempty"`
	Notes    *string    `json:"observacoes,omitempty"`
	// RemoveStaff unassigns the staff member; staff_id must then be absent.
	RemoveStaff bool `json:"remover_staff,omitempty"`
}

func (r UpdateAppointmentRequest) ToCommand() commands.UpdateAppointmentRequest {
	return commands.UpdateAppointmentRequest{
		PetID:      r.PetID,
		ClientID:   r.ClientID,
		StaffID:    r.StaffID,
		Start:      r.Start,
		End:        r.End,
		Notes:      r.Notes,
		ClearStaff: r.RemoveStaff,
	}
}

type ReplaceItemsRequest struct {
	Items []AppointmentItemRequest `json:"itens" binding:"dive"`
}

func (r ReplaceItemsRequest) ToDomain() []appointment.ItemRequest {
	return toItemRequests(r.Items)
}
