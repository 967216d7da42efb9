package readstore

import (
	"context"

	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type InventoryViewQueries interface {
	GetProductBalance(ctx context.Context, db sqlc.DBTX, productID int64) (pgtype.Numeric, error)
	ListRecentMovements(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentMovementsParams) ([]sqlc.ListRecentMovementsRow, error)
}

type InventoryReadStore struct {
	queries InventoryViewQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryViewQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) Balance(ctx context.Context, productID int64) (decimal.Decimal, error) {
	n, err := r.queries.GetProductBalance(ctx, r.db, productID)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to compute product balance", err)
	}
	balance, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid product balance", err)
	}
	return balance, nil
}

func (r *InventoryReadStore) ListRecent(ctx context.Context, productID *int64, limit int32) ([]*queries.MovementView, error) {
	rows, err := r.queries.ListRecentMovements(ctx, r.db, sqlc.ListRecentMovementsParams{
		ProductID: pgconv.Int8PtrToPgtype(productID),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory movements", err)
	}

	out := make([]*queries.MovementView, 0, len(rows))
	for _, row := range rows {
		qty, err := pgconv.DecimalFromNumeric(row.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored movement quantity", err)
		}
		out = append(out, &queries.MovementView{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Unit:        row.ProductUnit,
			Kind:        row.Kind,
			Quantity:    qty,
			Note:        pgconv.StringPtrFromPgtype(row.Note),
			SaleID:      pgconv.Int8PtrFromPgtype(row.SaleID),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
