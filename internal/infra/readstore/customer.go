package readstore

import (
	"context"
	"time"

	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerViewQueries interface {
	GetClient(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Clients, error)
	ListClients(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsParams) ([]sqlc.Clients, error)
	GetPetView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetPetViewRow, error)
	ListPets(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPetsParams) ([]sqlc.ListPetsRow, error)
	GetSpecies(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Species, error)
	ListSpecies(ctx context.Context, db sqlc.DBTX) ([]sqlc.Species, error)
	ListUpcomingBirthdays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBirthdaysParams) ([]sqlc.ListUpcomingBirthdaysRow, error)
}

type CustomerReadStore struct {
	queries CustomerViewQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerViewQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindClient(ctx context.Context, id int64) (*queries.ClientView, error) {
	row, err := r.queries.GetClient(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get client", err)
	}
	return toClientView(row), nil
}

func (r *CustomerReadStore) ListClients(ctx context.Context, filter queries.ClientFilter, limit int32) ([]*queries.ClientView, error) {
	rows, err := r.queries.ListClients(ctx, r.db, sqlc.ListClientsParams{
		Search:    pgconv.StringPtrToPgtype(filter.Search),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	out := make([]*queries.ClientView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClientView(row))
	}
	return out, nil
}

func (r *CustomerReadStore) FindPet(ctx context.Context, id int64) (*queries.PetView, error) {
	row, err := r.queries.GetPetView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pet", err)
	}
	return &queries.PetView{
		ID:          row.ID,
		Name:        row.Name,
		ClientID:    row.ClientID,
		ClientName:  row.ClientName,
		SpeciesID:   row.SpeciesID,
		SpeciesName: row.SpeciesName,
		Breed:       pgconv.StringPtrFromPgtype(row.Breed),
		BirthDate:   pgconv.DatePtrFromPgtype(row.BirthDate),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *CustomerReadStore) ListPets(ctx context.Context, filter queries.PetFilter, limit int32) ([]*queries.PetView, error) {
	rows, err := r.queries.ListPets(ctx, r.db, sqlc.ListPetsParams{
		ClientID:  pgconv.Int8PtrToPgtype(filter.ClientID),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		PageLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	out := make([]*queries.PetView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.PetView{
			ID:          row.ID,
			Name:        row.Name,
			ClientID:    row.ClientID,
			ClientName:  row.ClientName,
			SpeciesID:   row.SpeciesID,
			SpeciesName: row.SpeciesName,
			Breed:       pgconv.StringPtrFromPgtype(row.Breed),
			BirthDate:   pgconv.DatePtrFromPgtype(row.BirthDate),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *CustomerReadStore) FindSpecies(ctx context.Context, id int64) (*queries.SpeciesView, error) {
	row, err := r.queries.GetSpecies(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("species not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get species", err)
	}
	return &queries.SpeciesView{ID: row.ID, Name: row.Name}, nil
}

func (r *CustomerReadStore) ListSpecies(ctx context.Context) ([]*queries.SpeciesView, error) {
	rows, err := r.queries.ListSpecies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list species", err)
	}
	out := make([]*queries.SpeciesView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.SpeciesView{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

// UpcomingBirthdays lists active pets whose next birthday falls within days
// of from's calendar date, inclusive. Feb 29 birthdays land on Feb 28 in
// non-leap years.
func (r *CustomerReadStore) UpcomingBirthdays(ctx context.Context, from time.Time, days int) ([]*queries.BirthdayView, error) {
	ref := calendarDate(from)
	rows, err := r.queries.ListUpcomingBirthdays(ctx, r.db, sqlc.ListUpcomingBirthdaysParams{
		RefDate: pgtype.Date{Time: ref, Valid: true},
		Days:    int32(days), // #nosec G115 -- small horizon
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming birthdays", err)
	}

	out := make([]*queries.BirthdayView, 0, len(rows))
	for _, row := range rows {
		born := calendarDate(row.BirthDate.Time)
		next := calendarDate(row.NextBirthday.Time)
		out = append(out, &queries.BirthdayView{
			PetID:        row.PetID,
			PetName:      row.PetName,
			SpeciesName:  row.SpeciesName,
			BirthDate:    born,
			NextBirthday: next,
			DaysUntil:    int(next.Sub(ref).Hours() / 24),
			Age:          next.Year() - born.Year(),
			ClientID:     row.ClientID,
			ClientName:   row.ClientName,
			ClientPhone:  pgconv.StringPtrFromPgtype(row.ClientPhone),
		})
	}
	return out, nil
}

func toClientView(row sqlc.Clients) *queries.ClientView {
	return &queries.ClientView{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
