package readstore

import (
	"context"

	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogViewQueries interface {
	GetService(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	ListServices(ctx context.Context, db sqlc.DBTX, active pgtype.Bool) ([]sqlc.Services, error)
	GetProduct(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
	ListProducts(ctx context.Context, db sqlc.DBTX, active pgtype.Bool) ([]sqlc.Products, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindService(ctx context.Context, id int64) (*queries.ServiceView, error) {
	row, err := r.queries.GetService(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return toServiceView(row)
}

func (r *CatalogReadStore) ListServices(ctx context.Context, active *bool) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db, boolToPgtype(active))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	out := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		v, err := toServiceView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *CatalogReadStore) FindProduct(ctx context.Context, id int64) (*queries.ProductView, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProductView(row)
}

func (r *CatalogReadStore) ListProducts(ctx context.Context, active *bool) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProducts(ctx, r.db, boolToPgtype(active))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	out := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		v, err := toProductView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toServiceView(row sqlc.Services) (*queries.ServiceView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored service price", err)
	}
	return &queries.ServiceView{
		ID:          row.ID,
		Name:        row.Name,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Price:       price,
		Active:      row.Active,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toProductView(row sqlc.Products) (*queries.ProductView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored product price", err)
	}
	return &queries.ProductView{
		ID:          row.ID,
		Name:        row.Name,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Price:       price,
		Unit:        row.Unit,
		Active:      row.Active,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func boolToPgtype(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
