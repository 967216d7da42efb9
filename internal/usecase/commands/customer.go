package commands

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/commands/customer_mock.go -package=commandsmock

import (
	"context"
	"time"

	"petshop-api/internal/domain/customer"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/usecase/shared"
)

type ClientRequest struct {
	Name   string
	Phone  *string
	Email  *string
	Status *string
}

type PetRequest struct {
	Name      string
	ClientID  int64
	SpeciesID int64
	Breed     *string
	BirthDate *time.Time
	Status    *string
}

type CustomerCommands interface {
	CreateClient(ctx context.Context, req ClientRequest) (int64, error)
	UpdateClient(ctx context.Context, id int64, req ClientRequest) error
	DeactivateClient(ctx context.Context, id int64) error
	CreatePet(ctx context.Context, req PetRequest) (int64, error)
	UpdatePet(ctx context.Context, id int64, req PetRequest) error
	DeactivatePet(ctx context.Context, id int64) error
}

type customerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerUseCase(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *customerUseCaseImpl) CreateClient(ctx context.Context, req ClientRequest) (int64, error) {
	c, err := buildClient(req)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Customers().CreateClient(ctx, tx.DB(), c, uc.clock.Now())
		return err
	})
	return id, err
}

func (uc *customerUseCaseImpl) UpdateClient(ctx context.Context, id int64, req ClientRequest) error {
	c, err := buildClient(req)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().UpdateClient(ctx, tx.DB(), id, c, uc.clock.Now())
	})
}

// DeactivateClient is the soft delete. Pets and history stay in place.
func (uc *customerUseCaseImpl) DeactivateClient(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().SetClientStatus(ctx, tx.DB(), id, customer.StatusInactive, uc.clock.Now())
	})
}

func (uc *customerUseCaseImpl) CreatePet(ctx context.Context, req PetRequest) (int64, error) {
	now := uc.clock.Now()
	p, err := buildPet(req, now)
	if err != nil {
		return 0, err
	}
	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkPetReferences(ctx, tx.Reads(), p); err != nil {
			return err
		}
		id, err = tx.Customers().CreatePet(ctx, tx.DB(), p, now)
		return err
	})
	return id, err
}

func (uc *customerUseCaseImpl) UpdatePet(ctx context.Context, id int64, req PetRequest) error {
	now := uc.clock.Now()
	p, err := buildPet(req, now)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkPetReferences(ctx, tx.Reads(), p); err != nil {
			return err
		}
		return tx.Customers().UpdatePet(ctx, tx.DB(), id, p, now)
	})
}

func (uc *customerUseCaseImpl) DeactivatePet(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().SetPetStatus(ctx, tx.DB(), id, customer.StatusInactive, uc.clock.Now())
	})
}

func buildClient(req ClientRequest) (*customer.Client, error) {
	c, err := customer.NewClient(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		status := customer.Status(*req.Status)
		if !status.IsValid() {
			return nil, customer.ErrInvalidStatus
		}
		c.Status = status
	}
	return c, nil
}

func buildPet(req PetRequest, now time.Time) (*customer.Pet, error) {
	p, err := customer.NewPet(req.Name, req.ClientID, req.SpeciesID, req.Breed, req.BirthDate, now)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		status := customer.Status(*req.Status)
		if !status.IsValid() {
			return nil, customer.ErrInvalidStatus
		}
		p.Status = status
	}
	return p, nil
}

func checkPetReferences(ctx context.Context, reads shared.CommandReads, p *customer.Pet) error {
	if _, err := reads.ClientByID(ctx, p.ClientID); err != nil {
		return err
	}
	return reads.SpeciesByID(ctx, p.SpeciesID)
}
