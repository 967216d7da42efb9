package queries

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/queries/inventory_mock.go -package=queriesmock

import (
	"context"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/infra"

	"github.com/shopspring/decimal"
)

const (
	DefaultMovementLimit = 100
	MaxMovementLimit     = 200
)

type InventoryReadStore interface {
	Balance(ctx context.Context, productID int64) (decimal.Decimal, error)
	ListRecent(ctx context.Context, productID *int64, limit int32) ([]*MovementView, error)
}

type InventoryQueries interface {
	Balance(ctx context.Context, productID int64) (*BalanceView, error)
	ListRecent(ctx context.Context, productID *int64, limit int) ([]*MovementView, error)
}

type inventoryQueriesImpl struct {
	store   InventoryReadStore
	catalog CatalogReadStore
}

func NewInventoryQueries(store InventoryReadStore, catalogStore CatalogReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store, catalog: catalogStore}
}

// Balance is Σ entrada − Σ saida. A product without movements has balance 0;
// an unknown product is not found.
func (q *inventoryQueriesImpl) Balance(ctx context.Context, productID int64) (*BalanceView, error) {
	if _, err := q.catalog.FindProduct(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	balance, err := q.store.Balance(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &BalanceView{ProductID: productID, Balance: balance}, nil
}

func (q *inventoryQueriesImpl) ListRecent(ctx context.Context, productID *int64, limit int) ([]*MovementView, error) {
	limit = ValidateLimit(limit, DefaultMovementLimit, MaxMovementLimit)
	return q.store.ListRecent(ctx, productID, int32(limit)) // #nosec G115 -- bounded by MaxMovementLimit
}
