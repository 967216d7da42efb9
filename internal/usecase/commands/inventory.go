package commands

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory_mock.go -package=commandsmock

import (
	"context"

	"petshop-api/internal/domain/inventory"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type RecordMovementRequest struct {
	ProductID int64
	Kind      string
	Quantity  decimal.Decimal
	Note      *string
}

type InventoryCommands interface {
	RecordMovement(ctx context.Context, req RecordMovementRequest) (int64, error)
}

type inventoryUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.DomainMetrics
}

func NewInventoryUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.DomainMetrics) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

func (uc *inventoryUseCaseImpl) RecordMovement(ctx context.Context, req RecordMovementRequest) (int64, error) {
	kind, err := inventory.ParseKind(req.Kind)
	if err != nil {
		return 0, err
	}
	m, err := inventory.NewMovement(req.ProductID, kind, req.Quantity, req.Note, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// inactive products still take stock corrections
		if _, err := tx.Reads().ProductByID(ctx, req.ProductID); err != nil {
			return err
		}
		id, err = tx.Inventory().Record(ctx, tx.DB(), m)
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.MovementRecorded(kind.String())
	return id, nil
}
