package repository

import (
	"context"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	SaveAppUser(ctx context.Context, db sqlc.DBTX, arg sqlc.SaveAppUserParams) error
	UpdateAppUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppUserRoleParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Save inserts the user or overwrites email and role of an existing row.
func (r *UserRepository) Save(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.SaveAppUserParams{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if err := r.queries.SaveAppUser(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save user", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.UpdateAppUserRoleParams{
		ID:        u.ID(),
		Role:      u.Role().String(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	n, err := r.queries.UpdateAppUserRole(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}
