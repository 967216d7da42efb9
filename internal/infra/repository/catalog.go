package repository

import (
	"context"
	"time"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/repository/converter"
	sqlc "petshop-api/internal/infra/sqlc/generated"
)

type CatalogWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (int64, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (int64, error)
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (int64, error)
	UpdateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductParams) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) CreateService(ctx context.Context, tx sqlc.DBTX, item *catalog.Item, now time.Time) (int64, error) {
	id, err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(item, now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, tx sqlc.DBTX, id int64, item *catalog.Item, now time.Time) error {
	n, err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(id, item, now))
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if n == 0 {
		return catalog.ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, tx sqlc.DBTX, item *catalog.Item, now time.Time) (int64, error) {
	id, err := r.queries.CreateProduct(ctx, tx, converter.ProductToCreateParams(item, now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, tx sqlc.DBTX, id int64, item *catalog.Item, now time.Time) error {
	n, err := r.queries.UpdateProduct(ctx, tx, converter.ProductToUpdateParams(id, item, now))
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if n == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}
