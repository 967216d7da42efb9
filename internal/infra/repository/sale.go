package repository

import (
	"context"

	"petshop-api/internal/domain/customer"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/repository/converter"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

type SaleWriteQueries interface {
	CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) (int64, error)
	CreateSaleItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleItemParams) error
	UpdateSaleTotal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSaleTotalParams) error
	GetSaleForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Sales, error)
	ListSaleItems(ctx context.Context, db sqlc.DBTX, saleID int64) ([]sqlc.SaleItems, error)
	MarkSalePaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkSalePaidParams) (int64, error)
}

var saleConstraints = map[string]error{
	"sales_client_id_fkey": customer.ErrClientNotFound,
	"sales_pet_id_fkey":    customer.ErrPetNotFound,
}

type SaleRepository struct {
	queries SaleWriteQueries
	db      sqlc.DBTX
}

func NewSaleRepository(queries SaleWriteQueries, db sqlc.DBTX) *SaleRepository {
	return &SaleRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores the header with its derived total and every line in order.
func (r *SaleRepository) Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) (int64, error) {
	id, err := r.queries.CreateSale(ctx, tx, converter.SaleToCreateParams(s))
	if err != nil {
		return 0, translate(infra.WrapRepoErr("failed to create sale", err), saleConstraints)
	}
	for i, item := range s.Items() {
		if err := r.queries.CreateSaleItem(ctx, tx, converter.SaleItemToParams(id, i+1, item)); err != nil {
			return 0, infra.WrapRepoErr("failed to insert sale item", err)
		}
	}
	return id, nil
}

func (r *SaleRepository) AppendItem(ctx context.Context, tx sqlc.DBTX, saleID int64, position int, item sale.Item, total decimal.Decimal) error {
	if err := r.queries.CreateSaleItem(ctx, tx, converter.SaleItemToParams(saleID, position, item)); err != nil {
		return infra.WrapRepoErr("failed to insert sale item", err)
	}
	params := sqlc.UpdateSaleTotalParams{ID: saleID, Total: pgconv.DecimalToNumeric(total)}
	if err := r.queries.UpdateSaleTotal(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update sale total", err)
	}
	return nil
}

// FindForUpdate row-locks the sale so concurrent payments serialize on it.
func (r *SaleRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*sale.Sale, error) {
	row, err := r.queries.GetSaleForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, sale.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock sale", err)
	}
	items, err := r.queries.ListSaleItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale items", err)
	}
	return converter.SaleFromRows(row, items)
}

func (r *SaleRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error {
	params := sqlc.MarkSalePaidParams{ID: s.ID(), PaidAt: pgconv.TimePtrToPgtype(s.PaidAt())}
	n, err := r.queries.MarkSalePaid(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark sale paid", err)
	}
	if n == 0 {
		return sale.ErrAlreadyPaid
	}
	return nil
}
