package response

import (
	"time"

	"petshop-api/internal/domain/sale"
	"petshop-api/internal/usecase/queries"
)

type SaleItemResponse struct {
	Kind        string   `json:"tipo"`
	RefID       int64    `json:"ref_id"`
	Description string   `json:"descricao"`
	Quantity    Quantity `json:"quantidade"`
	UnitPrice   Money    `json:"preco_unit"`
	Subtotal    Money    `json:"subtotal"`
}

type SaleResponse struct {
	ID         int64              `json:"id"`
	ClientID   int64              `json:"cliente_id"`
	ClientName string             `json:"cliente_nome"`
	PetID      *int64             `json:"pet_id,omitempty"`
	PetName    *string            `json:"pet_nome,omitempty"`
	Status     string             `json:"status"`
	Total      Money              `json:"total"`
	Items      []SaleItemResponse `json:"itens"`
	CreatedAt  time.Time          `json:"criado_em"`
	PaidAt     *time.Time         `json:"pago_em,omitempty"`
}

// item kinds travel under their Portuguese names
func wireKind(kind string) string {
	switch sale.ItemKind(kind) {
	case sale.KindService:
		return "servico"
	case sale.KindProduct:
		return "produto"
	default:
		return kind
	}
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	resp := copyInto[SaleResponse](v)
	if resp.Items == nil {
		resp.Items = []SaleItemResponse{}
	}
	for i := range resp.Items {
		resp.Items[i].Kind = wireKind(resp.Items[i].Kind)
	}
	return resp
}

func FromSaleViews(views []*queries.SaleView) []*SaleResponse {
	out := make([]*SaleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSaleView(v))
	}
	return out
}
