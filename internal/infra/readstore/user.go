package readstore

import (
	"context"

	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	GetAppUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AppUsers, error)
	ListAppUsers(ctx context.Context, db sqlc.DBTX, search pgtype.Text) ([]sqlc.AppUsers, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetAppUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, search *string) ([]*queries.UserView, error) {
	rows, err := r.queries.ListAppUsers(ctx, r.db, pgconv.StringPtrToPgtype(search))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out, nil
}

func toUserView(row sqlc.AppUsers) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		Role:        row.Role,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
