package queries

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/queries/sale_mock.go -package=queriesmock

import (
	"context"

	"petshop-api/internal/domain/sale"
	"petshop-api/internal/infra"
)

type SaleReadStore interface {
	FindByID(ctx context.Context, id int64) (*SaleView, error)
	List(ctx context.Context, filter SaleFilter, limit int32) ([]*SaleView, error)
}

type SaleQueries interface {
	GetByID(ctx context.Context, id int64) (*SaleView, error)
	List(ctx context.Context, filter SaleFilter, limit int) ([]*SaleView, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, id int64) (*SaleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, sale.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *saleQueriesImpl) List(ctx context.Context, filter SaleFilter, limit int) ([]*SaleView, error) {
	if filter.Status != nil {
		switch sale.Status(*filter.Status) {
		case sale.StatusOpen, sale.StatusPaid:
		default:
			return nil, sale.ErrInvalidStatus
		}
	}
	limit = ValidateLimit(limit, DefaultListLimit, MaxListLimit)
	return q.store.List(ctx, filter, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
}
