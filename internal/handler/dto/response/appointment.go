package response

import (
	"time"

	"petshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentItemResponse struct {
	ServiceID   int64  `json:"servico_id"`
	ServiceName string `json:"servico_nome"`
	Quantity    int32  `json:"quantidade"`
	UnitPrice   Money  `json:"preco_unit"`
	Discount    Money  `json:"desconto"`
	Amount      Money  `json:"valor"`
}

type AppointmentResponse struct {
	ID         int64                     `json:"id"`
	PetID      int64                     `json:"pet_id"`
	PetName    string                    `json:"pet_nome"`
	ClientID   int64                     `json:"cliente_id"`
	ClientName string                    `json:"cliente_nome"`
	StaffID    *uuid.UUID                `json:"staff_id,omitempty"`
	StaffName  *string                   `json:"staff_nome,omitempty"`
	Start      time.Time                 `json:"inicio"`
	End        time.Time                 `json:"fim"`
	Status     string                    `json:"status"`
	Notes      *string                   `json:"observacoes,omitempty"`
	Items      []AppointmentItemResponse `json:"itens"`
	Total      Money                     `json:"total"`
	CreatedAt  time.Time                 `json:"criado_em"`
	UpdatedAt  time.Time                 `json:"atualizado_em"`
}

type AppointmentListItemResponse struct {
	ID         int64      `json:"id"`
	PetID      int64      `json:"pet_id"`
	PetName    string     `json:"pet_nome"`
	ClientID   int64      `json:"cliente_id"`
	ClientName string     `json:"cliente_nome"`
	StaffID    *uuid.UUID `json:"staff_id,omitempty"`
	StaffName  *string    `json:"staff_nome,omitempty"`
	Start      time.Time  `json:"inicio"`
	End        time.Time  `json:"fim"`
	Status     string     `json:"status"`
	Notes      *string    `json:"observacoes,omitempty"`
}

type AppointmentListResponse struct {
	Items []*AppointmentListItemResponse `json:"items"`
	Next  *string                        `json:"next,omitempty"`
}

type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	resp := copyInto[AppointmentResponse](v)
	if resp.Items == nil {
		resp.Items = []AppointmentItemResponse{}
	}
	return resp
}

func FromAppointmentList(views []*queries.AppointmentView, next *queries.Cursor) *AppointmentListResponse {
	resp := &AppointmentListResponse{Items: copyAll[AppointmentListItemResponse](views)}
	if next != nil {
		resp.Next = &next.After
	}
	return resp
}
