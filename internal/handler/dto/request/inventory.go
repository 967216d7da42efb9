package request

import (
	"petshop-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RecordMovementRequest struct {
	ProductID int64           `json:"produto_id" binding:"required"`
	Kind      string          `json:"tipo" binding:"required"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Note      *string         `json:"obs,omitempty"`
}

func (r RecordMovementRequest) ToCommand() commands.RecordMovementRequest {
	return commands.RecordMovementRequest{
		ProductID: r.ProductID,
		Kind:      r.Kind,
		Quantity:  r.Quantity,
		Note:      r.Note,
	}
}
