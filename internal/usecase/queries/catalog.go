package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/infra"
)

type CatalogReadStore interface {
	FindService(ctx context.Context, id int64) (*ServiceView, error)
	ListServices(ctx context.Context, active *bool) ([]*ServiceView, error)
	FindProduct(ctx context.Context, id int64) (*ProductView, error)
	ListProducts(ctx context.Context, active *bool) ([]*ProductView, error)
}

type CatalogQueries interface {
	GetService(ctx context.Context, id int64) (*ServiceView, error)
	ListServices(ctx context.Context, active *bool) ([]*ServiceView, error)
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	ListProducts(ctx context.Context, active *bool) ([]*ProductView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id int64) (*ServiceView, error) {
	v, err := q.store.FindService(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, catalog.ErrServiceNotFound
	}
	return v, err
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, active *bool) ([]*ServiceView, error) {
	return q.store.ListServices(ctx, active)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	v, err := q.store.FindProduct(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, catalog.ErrProductNotFound
	}
	return v, err
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, active *bool) ([]*ProductView, error) {
	return q.store.ListProducts(ctx, active)
}
