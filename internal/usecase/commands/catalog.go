package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ServiceRequest struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Active      bool
}

type ProductRequest struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Unit        string
	Active      bool
}

type CatalogCommands interface {
	CreateService(ctx context.Context, req ServiceRequest) (int64, error)
	UpdateService(ctx context.Context, id int64, req ServiceRequest) error
	CreateProduct(ctx context.Context, req ProductRequest) (int64, error)
	UpdateProduct(ctx context.Context, id int64, req ProductRequest) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, req ServiceRequest) (int64, error) {
	item, err := catalog.NewService(req.Name, req.Description, req.Price, req.Active)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Catalog().CreateService(ctx, tx.DB(), item, uc.clock.Now())
		return err
	})
	return id, err
}

// UpdateService replaces every field. Deactivation is an update with Active=false.
func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, id int64, req ServiceRequest) error {
	item, err := catalog.NewService(req.Name, req.Description, req.Price, req.Active)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().UpdateService(ctx, tx.DB(), id, item, uc.clock.Now())
	})
}

func (uc *catalogUseCaseImpl) CreateProduct(ctx context.Context, req ProductRequest) (int64, error) {
	item, err := catalog.NewProduct(req.Name, req.Description, req.Price, catalog.Unit(req.Unit), req.Active)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Catalog().CreateProduct(ctx, tx.DB(), item, uc.clock.Now())
		return err
	})
	return id, err
}

func (uc *catalogUseCaseImpl) UpdateProduct(ctx context.Context, id int64, req ProductRequest) error {
	item, err := catalog.NewProduct(req.Name, req.Description, req.Price, catalog.Unit(req.Unit), req.Active)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().UpdateProduct(ctx, tx.DB(), id, item, uc.clock.Now())
	})
}
