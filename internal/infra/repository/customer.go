package repository

import (
	"context"
	"time"

	"petshop-api/internal/domain/customer"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/repository/converter"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

type CustomerWriteQueries interface {
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) (int64, error)
	UpdateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClientParams) (int64, error)
	CreatePet(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePetParams) (int64, error)
	UpdatePet(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePetParams) (int64, error)
	SetClientStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetClientStatusParams) (int64, error)
	SetPetStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPetStatusParams) (int64, error)
}

var petConstraints = map[string]error{
	"pets_client_id_fkey":  customer.ErrClientNotFound,
	"pets_species_id_fkey": customer.ErrSpeciesNotFound,
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) CreateClient(ctx context.Context, tx sqlc.DBTX, c *customer.Client, now time.Time) (int64, error) {
	id, err := r.queries.CreateClient(ctx, tx, converter.ClientToCreateParams(c, now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create client", err)
	}
	return id, nil
}

func (r *CustomerRepository) UpdateClient(ctx context.Context, tx sqlc.DBTX, id int64, c *customer.Client, now time.Time) error {
	n, err := r.queries.UpdateClient(ctx, tx, converter.ClientToUpdateParams(id, c, now))
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if n == 0 {
		return customer.ErrClientNotFound
	}
	return nil
}

func (r *CustomerRepository) CreatePet(ctx context.Context, tx sqlc.DBTX, p *customer.Pet, now time.Time) (int64, error) {
	id, err := r.queries.CreatePet(ctx, tx, converter.PetToCreateParams(p, now))
	if err != nil {
		return 0, translate(infra.WrapRepoErr("failed to create pet", err), petConstraints)
	}
	return id, nil
}

func (r *CustomerRepository) UpdatePet(ctx context.Context, tx sqlc.DBTX, id int64, p *customer.Pet, now time.Time) error {
	n, err := r.queries.UpdatePet(ctx, tx, converter.PetToUpdateParams(id, p, now))
	if err != nil {
		return translate(infra.WrapRepoErr("failed to update pet", err), petConstraints)
	}
	if n == 0 {
		return customer.ErrPetNotFound
	}
	return nil
}

// SetClientStatus is how clients are soft deleted.
func (r *CustomerRepository) SetClientStatus(ctx context.Context, tx sqlc.DBTX, id int64, status customer.Status, now time.Time) error {
	params := sqlc.SetClientStatusParams{ID: id, Status: string(status), UpdatedAt: pgconv.TimeToPgtype(now)}
	n, err := r.queries.SetClientStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to set client status", err)
	}
	if n == 0 {
		return customer.ErrClientNotFound
	}
	return nil
}

func (r *CustomerRepository) SetPetStatus(ctx context.Context, tx sqlc.DBTX, id int64, status customer.Status, now time.Time) error {
	params := sqlc.SetPetStatusParams{ID: id, Status: string(status), UpdatedAt: pgconv.TimeToPgtype(now)}
	n, err := r.queries.SetPetStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to set pet status", err)
	}
	if n == 0 {
		return customer.ErrPetNotFound
	}
	return nil
}
