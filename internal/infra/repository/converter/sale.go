package converter

import (
	"petshop-api/internal/domain/sale"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

func SaleToCreateParams(s *sale.Sale) sqlc.CreateSaleParams {
	return sqlc.CreateSaleParams{
		ClientID:  s.ClientID(),
		PetID:     pgconv.Int8PtrToPgtype(s.PetID()),
		Status:    string(s.Status()),
		Total:     pgconv.DecimalToNumeric(s.Total()),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SaleItemToParams(saleID int64, position int, item sale.Item) sqlc.CreateSaleItemParams {
	return sqlc.CreateSaleItemParams{
		SaleID:      saleID,
		Position:    int32(position), // #nosec G115 -- item lists are tiny
		Kind:        string(item.Kind()),
		RefID:       item.RefID(),
		Description: item.Description(),
		Quantity:    pgconv.DecimalToNumeric(item.Quantity()),
		UnitPrice:   pgconv.DecimalToNumeric(item.UnitPrice()),
	}
}

func SaleFromRows(row sqlc.Sales, itemRows []sqlc.SaleItems) (*sale.Sale, error) {
	items := make([]sale.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		qty, err := pgconv.DecimalFromNumeric(ir.Quantity)
		if err != nil {
			return nil, err
		}
		price, err := pgconv.DecimalFromNumeric(ir.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, sale.ReconstructItem(sale.ItemKind(ir.Kind), ir.RefID, ir.Description, qty, price))
	}

	return sale.ReconstructSale(
		row.ID,
		row.ClientID,
		pgconv.Int8PtrFromPgtype(row.PetID),
		sale.Status(row.Status),
		items,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.PaidAt),
	), nil
}
