package readstore

import (
	"context"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
	"petshop-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type AppointmentViewQueries interface {
	GetAppointmentView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetAppointmentViewRow, error)
	ListAppointmentItems(ctx context.Context, db sqlc.DBTX, appointmentID int64) ([]sqlc.ListAppointmentItemsRow, error)
	ListAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsParams) ([]sqlc.ListAppointmentsRow, error)
	HasPetOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.HasPetOverlapParams) (bool, error)
	HasStaffOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.HasStaffOverlapParams) (bool, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment view", err)
	}
	itemRows, err := r.queries.ListAppointmentItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointment items", err)
	}

	view := &queries.AppointmentView{
		ID:         row.ID,
		PetID:      row.PetID,
		PetName:    row.PetName,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		StaffID:    pgconv.UUIDPtrFromPgtype(row.StaffID),
		StaffName:  pgconv.StringPtrFromPgtype(row.StaffName),
		Start:      pgconv.TimeFromPgtype(row.StartsAt),
		End:        pgconv.TimeFromPgtype(row.EndsAt),
		Status:     row.Status,
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		Items:      make([]queries.AppointmentItemView, 0, len(itemRows)),
		Total:      decimal.Zero,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, ir := range itemRows {
		item, err := toAppointmentItemView(ir)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored appointment item", err)
		}
		view.Items = append(view.Items, item)
		view.Total = view.Total.Add(item.Amount)
	}
	return view, nil
}

func (r *AppointmentReadStore) List(ctx context.Context, filter queries.AppointmentFilter, after *queries.Keyset, limit int32) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentsParams{
		WindowStart: pgconv.TimePtrToPgtype(filter.From),
		WindowEnd:   pgconv.TimePtrToPgtype(filter.To),
		Status:      pgconv.StringPtrToPgtype(filter.Status),
		StaffID:     pgconv.UUIDPtrToPgtype(filter.StaffID),
		ClientID:    pgconv.Int8PtrToPgtype(filter.ClientID),
		PetID:       pgconv.Int8PtrToPgtype(filter.PetID),
		PageLimit:   limit,
	}
	if after != nil {
		params.AfterStartsAt = pgconv.TimeToPgtype(after.StartsAt)
		params.AfterID = pgtype.Int8{Int64: after.ID, Valid: true}
	}

	rows, err := r.queries.ListAppointments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	out := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.AppointmentView{
			ID:         row.ID,
			PetID:      row.PetID,
			PetName:    row.PetName,
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			StaffID:    pgconv.UUIDPtrFromPgtype(row.StaffID),
			StaffName:  pgconv.StringPtrFromPgtype(row.StaffName),
			Start:      pgconv.TimeFromPgtype(row.StartsAt),
			End:        pgconv.TimeFromPgtype(row.EndsAt),
			Status:     row.Status,
			Notes:      pgconv.StringPtrFromPgtype(row.Notes),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

// HasOverlap reports a scheduled appointment of the resource intersecting
// window under half-open semantics.
func (r *AppointmentReadStore) HasOverlap(ctx context.Context, resource appointment.Resource, window appointment.Window, excludeID *int64) (bool, error) {
	var (
		busy bool
		err  error
	)
	switch resource.Kind {
	case appointment.ResourceStaff:
		busy, err = r.queries.HasStaffOverlap(ctx, r.db, sqlc.HasStaffOverlapParams{
			StaffID:     resource.StaffID,
			WindowEnd:   pgconv.TimeToPgtype(window.End()),
			WindowStart: pgconv.TimeToPgtype(window.Start()),
			ExcludeID:   pgconv.Int8PtrToPgtype(excludeID),
		})
	default:
		busy, err = r.queries.HasPetOverlap(ctx, r.db, sqlc.HasPetOverlapParams{
			PetID:       resource.PetID,
			WindowEnd:   pgconv.TimeToPgtype(window.End()),
			WindowStart: pgconv.TimeToPgtype(window.Start()),
			ExcludeID:   pgconv.Int8PtrToPgtype(excludeID),
		})
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to check "+string(resource.Kind)+" availability", err)
	}
	return busy, nil
}

func toAppointmentItemView(ir sqlc.ListAppointmentItemsRow) (queries.AppointmentItemView, error) {
	price, err := pgconv.DecimalFromNumeric(ir.UnitPrice)
	if err != nil {
		return queries.AppointmentItemView{}, err
	}
	discount, err := pgconv.DecimalFromNumeric(ir.Discount)
	if err != nil {
		return queries.AppointmentItemView{}, err
	}
	li := appointment.ReconstructLineItem(ir.ServiceID, ir.Quantity, price, discount)
	return queries.AppointmentItemView{
		ServiceID:   ir.ServiceID,
		ServiceName: ir.ServiceName,
		Quantity:    ir.Quantity,
		UnitPrice:   price,
		Discount:    discount,
		Amount:      li.Amount(),
	}, nil
}
