package queries

//go:generate mockgen -source=customer.go -destination=../../../tests/mock/queries/customer_mock.go -package=queriesmock

import (
	"context"
	"time"

	"petshop-api/internal/domain/customer"
	"petshop-api/internal/infra"
	"petshop-api/internal/pkg/clock"
)

// BirthdayHorizonDays is how far ahead the consultant looks for birthdays.
const BirthdayHorizonDays = 30

type CustomerReadStore interface {
	FindClient(ctx context.Context, id int64) (*ClientView, error)
	ListClients(ctx context.Context, filter ClientFilter, limit int32) ([]*ClientView, error)
	FindPet(ctx context.Context, id int64) (*PetView, error)
	ListPets(ctx context.Context, filter PetFilter, limit int32) ([]*PetView, error)
	ListSpecies(ctx context.Context) ([]*SpeciesView, error)
	UpcomingBirthdays(ctx context.Context, from time.Time, days int) ([]*BirthdayView, error)
}

type CustomerQueries interface {
	GetClient(ctx context.Context, id int64) (*ClientView, error)
	ListClients(ctx context.Context, filter ClientFilter, limit int) ([]*ClientView, error)
	GetPet(ctx context.Context, id int64) (*PetView, error)
	ListPets(ctx context.Context, filter PetFilter, limit int) ([]*PetView, error)
	ListSpecies(ctx context.Context) ([]*SpeciesView, error)
	UpcomingBirthdays(ctx context.Context) ([]*BirthdayView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
	clock clock.Clock
}

func NewCustomerQueries(store CustomerReadStore, clk clock.Clock) CustomerQueries {
	return &customerQueriesImpl{store: store, clock: clk}
}

func (q *customerQueriesImpl) GetClient(ctx context.Context, id int64) (*ClientView, error) {
	v, err := q.store.FindClient(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, customer.ErrClientNotFound
	}
	return v, err
}

func (q *customerQueriesImpl) ListClients(ctx context.Context, filter ClientFilter, limit int) ([]*ClientView, error) {
	if filter.Status != nil && !customer.Status(*filter.Status).IsValid() {
		return nil, customer.ErrInvalidStatus
	}
	limit = ValidateLimit(limit, MaxListLimit, MaxListLimit)
	return q.store.ListClients(ctx, filter, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
}

func (q *customerQueriesImpl) GetPet(ctx context.Context, id int64) (*PetView, error) {
	v, err := q.store.FindPet(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, customer.ErrPetNotFound
	}
	return v, err
}

func (q *customerQueriesImpl) ListPets(ctx context.Context, filter PetFilter, limit int) ([]*PetView, error) {
	if filter.Status != nil && !customer.Status(*filter.Status).IsValid() {
		return nil, customer.ErrInvalidStatus
	}
	limit = ValidateLimit(limit, MaxListLimit, MaxListLimit)
	return q.store.ListPets(ctx, filter, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
}

func (q *customerQueriesImpl) ListSpecies(ctx context.Context) ([]*SpeciesView, error) {
	return q.store.ListSpecies(ctx)
}

func (q *customerQueriesImpl) UpcomingBirthdays(ctx context.Context) ([]*BirthdayView, error) {
	return q.store.UpcomingBirthdays(ctx, q.clock.Now(), BirthdayHorizonDays)
}
