package commands

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/commands/sale_mock.go -package=commandsmock

import (
	"context"

	"petshop-api/internal/domain/inventory"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/shared"
)

type CreateSaleRequest struct {
	ClientID int64
	PetID    *int64
	Items    []sale.ItemRequest
}

type SaleCommands interface {
	Create(ctx context.Context, req CreateSaleRequest) (int64, error)
	AddItem(ctx context.Context, saleID int64, item sale.ItemRequest) error
	Pay(ctx context.Context, saleID int64) (sale.Status, error)
}

type saleUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.DomainMetrics
}

func NewSaleUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.DomainMetrics) SaleCommands {
	return &saleUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

// Create snapshots every line from the catalog and stores the sale with its
// total in one transaction. The first bad line aborts the whole sale.
func (uc *saleUseCaseImpl) Create(ctx context.Context, req CreateSaleRequest) (int64, error) {
	if len(req.Items) == 0 {
		return 0, sale.ErrNoItems
	}
	for i, it := range req.Items {
		if err := it.Validate(); err != nil {
			return 0, errs.Wrapf(err, "item %d", i+1)
		}
	}
	s, err := sale.NewSale(req.ClientID, req.PetID, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, req.ClientID); err != nil {
			return err
		}
		if req.PetID != nil {
			if _, err := tx.Reads().PetByID(ctx, *req.PetID); err != nil {
				return err
			}
		}

		for i, it := range req.Items {
			item, err := snapshotSaleItem(ctx, tx.Reads(), it)
			if err != nil {
				return errs.Wrapf(err, "item %d (ref_id %d)", i+1, it.RefID)
			}
			if err := s.AddItem(item); err != nil {
				return err
			}
		}

		createdID, err = tx.Sales().Create(ctx, tx.DB(), s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *saleUseCaseImpl) AddItem(ctx context.Context, saleID int64, req sale.ItemRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sales().FindForUpdate(ctx, tx.DB(), saleID)
		if err != nil {
			return err
		}
		if !s.IsOpen() {
			return sale.ErrAlreadyPaid
		}

		item, err := snapshotSaleItem(ctx, tx.Reads(), req)
		if err != nil {
			return errs.Wrapf(err, "ref_id %d", req.RefID)
		}
		if err := s.AddItem(item); err != nil {
			return err
		}
		return tx.Sales().AppendItem(ctx, tx.DB(), saleID, len(s.Items()), item, s.Total())
	})
}

// Pay locks the sale row, debits one saida per product line and marks the
// sale paid. A second payment finds the sale no longer open.
func (uc *saleUseCaseImpl) Pay(ctx context.Context, saleID int64) (sale.Status, error) {
	var status sale.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sales().FindForUpdate(ctx, tx.DB(), saleID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := s.MarkPaid(now); err != nil {
			return err
		}

		for _, line := range s.ProductLines() {
			m, err := inventory.NewSaleDebit(line.RefID(), line.Quantity(), s.ID(), now)
			if err != nil {
				return err
			}
			if _, err := tx.Inventory().Record(ctx, tx.DB(), m); err != nil {
				return err
			}
		}

		if err := tx.Sales().MarkPaid(ctx, tx.DB(), s); err != nil {
			return err
		}
		status = s.Status()
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.metrics.SalePaid()
	return status, nil
}

func snapshotSaleItem(ctx context.Context, reads shared.CommandReads, req sale.ItemRequest) (sale.Item, error) {
	var (
		snap *shared.CatalogSnapshot
		err  error
	)
	switch req.Kind {
	case sale.KindService:
		snap, err = reads.ServiceByID(ctx, req.RefID)
	case sale.KindProduct:
		snap, err = reads.ProductByID(ctx, req.RefID)
	default:
		return sale.Item{}, sale.ErrInvalidKind
	}
	if err != nil {
		return sale.Item{}, err
	}
	return sale.SnapshotItem(snap.Entry(), req.Quantity)
}
