package readstore

import (
	"context"

	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"
)

type SaleViewQueries interface {
	GetSaleView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetSaleViewRow, error)
	ListSaleItems(ctx context.Context, db sqlc.DBTX, saleID int64) ([]sqlc.SaleItems, error)
	ListSales(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSalesParams) ([]sqlc.ListSalesRow, error)
}

type SaleReadStore struct {
	queries SaleViewQueries
	db      sqlc.DBTX
}

func NewSaleReadStore(queries SaleViewQueries, db sqlc.DBTX) *SaleReadStore {
	return &SaleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SaleReadStore) FindByID(ctx context.Context, id int64) (*queries.SaleView, error) {
	row, err := r.queries.GetSaleView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sale view", err)
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored sale total", err)
	}
	itemRows, err := r.queries.ListSaleItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale items", err)
	}

	view := &queries.SaleView{
		ID:         row.ID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		PetID:      pgconv.Int8PtrFromPgtype(row.PetID),
		PetName:    pgconv.StringPtrFromPgtype(row.PetName),
		Status:     row.Status,
		Total:      total,
		Items:      make([]queries.SaleItemView, 0, len(itemRows)),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		PaidAt:     pgconv.TimePtrFromPgtype(row.PaidAt),
	}
	for _, ir := range itemRows {
		qty, err := pgconv.DecimalFromNumeric(ir.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored sale item", err)
		}
		price, err := pgconv.DecimalFromNumeric(ir.UnitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored sale item", err)
		}
		view.Items = append(view.Items, queries.SaleItemView{
			Kind:        ir.Kind,
			RefID:       ir.RefID,
			Description: ir.Description,
			Quantity:    qty,
			UnitPrice:   price,
			Subtotal:    price.Mul(qty),
		})
	}
	return view, nil
}

func (r *SaleReadStore) List(ctx context.Context, filter queries.SaleFilter, limit int32) ([]*queries.SaleView, error) {
	rows, err := r.queries.ListSales(ctx, r.db, sqlc.ListSalesParams{
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		ClientID:  pgconv.Int8PtrToPgtype(filter.ClientID),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}

	out := make([]*queries.SaleView, 0, len(rows))
	for _, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.Total)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored sale total", err)
		}
		out = append(out, &queries.SaleView{
			ID:         row.ID,
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			PetID:      pgconv.Int8PtrFromPgtype(row.PetID),
			PetName:    pgconv.StringPtrFromPgtype(row.PetName),
			Status:     row.Status,
			Total:      total,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			PaidAt:     pgconv.TimePtrFromPgtype(row.PaidAt),
		})
	}
	return out, nil
}
