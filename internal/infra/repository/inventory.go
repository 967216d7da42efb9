package repository

import (
	"context"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/inventory"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/repository/converter"
	sqlc "petshop-api/internal/infra/sqlc/generated"
)

type InventoryWriteQueries interface {
	CreateInventoryMovement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInventoryMovementParams) (int64, error)
}

var inventoryConstraints = map[string]error{
	"inventory_movements_product_id_fkey": catalog.ErrProductNotFound,
	"inventory_movements_sale_id_fkey":    sale.ErrNotFound,
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// Record appends a movement. Movements are never updated or deleted.
func (r *InventoryRepository) Record(ctx context.Context, tx sqlc.DBTX, m *inventory.Movement) (int64, error) {
	id, err := r.queries.CreateInventoryMovement(ctx, tx, converter.MovementToCreateParams(m))
	if err != nil {
		return 0, translate(infra.WrapRepoErr("failed to record inventory movement", err), inventoryConstraints)
	}
	return id, nil
}
