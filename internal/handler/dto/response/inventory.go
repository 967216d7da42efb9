package response

import (
	"time"

	"petshop-api/internal/usecase/queries"
)

type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"produto_id"`
	ProductName string    `json:"produto_nome"`
	Unit        string    `json:"unidade"`
	Kind        string    `json:"tipo"`
	Quantity    Quantity  `json:"quantidade"`
	Note        *string   `json:"obs,omitempty"`
	SaleID      *int64    `json:"venda_id,omitempty"`
	CreatedAt   time.Time `json:"criado_em"`
}

type BalanceResponse struct {
	ProductID int64    `json:"produto_id"`
	Balance   Quantity `json:"saldo"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

func FromMovementViews(views []*queries.MovementView) []*MovementResponse {
	return copyAll[MovementResponse](views)
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return copyInto[BalanceResponse](v)
}
