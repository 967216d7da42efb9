package request

import (
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type SaleItemRequest struct {
	Kind     string          `json:"tipo" binding:"required"`
	RefID    int64           `json:"ref_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantidade"`
}

func (r SaleItemRequest) ToDomain() (sale.ItemRequest, error) {
	kind, err := sale.ParseItemKind(r.Kind)
	if err != nil {
		return sale.ItemRequest{}, err
	}
	return sale.ItemRequest{Kind: kind, RefID: r.RefID, Quantity: r.Quantity}, nil
}

type CreateSaleRequest struct {
	ClientID int64             `json:"cliente_id" binding:"required"`
	PetID    *int64            `json:"pet_id,omitempty"`
	Items    []SaleItemRequest `json:"itens" binding:"dive"`
}

func (r CreateSaleRequest) ToCommand() (commands.CreateSaleRequest, error) {
	items := make([]sale.ItemRequest, 0, len(r.Items))
	for i, it := range r.Items {
		item, err := it.ToDomain()
		if err != nil {
			return commands.CreateSaleRequest{}, errs.Wrapf(err, "item %d", i+1)
		}
		items = append(items, item)
	}
	return commands.CreateSaleRequest{ClientID: r.ClientID, PetID: r.PetID, Items: items}, nil
}
