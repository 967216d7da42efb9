package commands

//go:generate mockgen -source=identity.go -destination=../../../tests/mock/commands/identity_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/pkg/config"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdentityCommands interface {
	// Reconcile returns the local user for a verified identity, creating or
	// promoting it as needed.
	Reconcile(ctx context.Context, id user.Identity) (*user.User, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, role string) (*user.User, error)
}

type identityUseCaseImpl struct {
	uow      shared.UnitOfWork
	cache    shared.UserCache
	identity config.IdentityConfig
	clock    clock.Clock
}

func NewIdentityUseCase(uow shared.UnitOfWork, cache shared.UserCache, cfg config.Config, clk clock.Clock) IdentityCommands {
	return &identityUseCaseImpl{uow: uow, cache: cache, identity: cfg.Identity, clock: clk}
}

func (uc *identityUseCaseImpl) Reconcile(ctx context.Context, id user.Identity) (*user.User, error) {
	owner := uc.identity.IsOwner(id.Email)

	cached, err := uc.cache.Get(ctx, id.Subject)
	if err != nil {
		slog.Warn("identity cache read failed", "user_id", id.Subject, "error", err.Error())
	}
	if cached != nil && (!owner || cached.IsAdmin()) {
		return cached, nil
	}

	var reconciled *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().UserByID(ctx, id.Subject)
		if err != nil && !errs.Is(err, user.ErrNotFound) {
			return err
		}
		u, changed := user.Reconcile(existing, id, owner, uc.clock.Now())
		if changed {
			if err := tx.Users().Save(ctx, tx.DB(), u); err != nil {
				return err
			}
		}
		reconciled = u
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "reconcile identity")
	}

	if err := uc.cache.Set(ctx, reconciled); err != nil {
		slog.Warn("identity cache write failed", "user_id", id.Subject, "error", err.Error())
	}
	return reconciled, nil
}

func (uc *identityUseCaseImpl) ChangeRole(ctx context.Context, userID uuid.UUID, roleName string) (*user.User, error) {
	role, err := user.NewRole(roleName)
	if err != nil {
		return nil, err
	}

	var updated *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return err
		}
		if err := u.ChangeRole(role, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Users().UpdateRole(ctx, tx.DB(), u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Evict(ctx, userID); err != nil {
		slog.Warn("identity cache evict failed", "user_id", userID, "error", err.Error())
	}
	return updated, nil
}
