package repository

import (
	"context"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/customer"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/capability"
	"petshop-api/internal/infra/repository/converter"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (int64, error)
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointments, error)
	DeleteAppointmentItems(ctx context.Context, db sqlc.DBTX, appointmentID int64) error
	CreateAppointmentItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentItemParams) error
	ListAppointmentItems(ctx context.Context, db sqlc.DBTX, appointmentID int64) ([]sqlc.ListAppointmentItemsRow, error)
}

var appointmentConstraints = map[string]error{
	"appointments_pet_id_fkey":          customer.ErrPetNotFound,
	"appointments_client_id_fkey":       customer.ErrClientNotFound,
	"appointments_staff_id_fkey":        appointment.ErrStaffNotFound,
	"appointment_items_service_id_fkey": catalog.ErrServiceNotFound,
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (int64, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(appt))
	if err != nil {
		return 0, appointmentWriteErr("failed to create appointment", err)
	}
	if err := r.insertItems(ctx, tx, id, appt.Items()); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointment(ctx, tx, converter.AppointmentToUpdateParams(appt))
	if err != nil {
		return appointmentWriteErr("failed to update appointment", err)
	}
	if n == 0 {
		return appointment.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) ReplaceItems(ctx context.Context, tx sqlc.DBTX, appointmentID int64, items []appointment.LineItem) error {
	if err := r.queries.DeleteAppointmentItems(ctx, tx, appointmentID); err != nil {
		return infra.WrapRepoErr("failed to clear appointment items", err)
	}
	return r.insertItems(ctx, tx, appointmentID, items)
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, appointment.ErrNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	items, err := r.queries.ListAppointmentItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointment items", err)
	}
	return converter.AppointmentFromRows(row, items)
}

func (r *AppointmentRepository) insertItems(ctx context.Context, tx sqlc.DBTX, appointmentID int64, items []appointment.LineItem) error {
	for i, li := range items {
		if err := r.queries.CreateAppointmentItem(ctx, tx, converter.LineItemToParams(appointmentID, i, li)); err != nil {
			return appointmentWriteErr("failed to insert appointment item", err)
		}
	}
	return nil
}

// appointmentWriteErr maps a storage-level overlap rejection to the same
// conflict the application-level check reports.
func appointmentWriteErr(msg string, err error) error {
	wrapped := infra.WrapRepoErr(msg, err)
	if infra.IsKind(wrapped, infra.KindExclusionViolated) {
		if kind, ok := capability.KindForConstraint(infra.ConstraintOf(wrapped)); ok {
			return appointment.ConflictFor(kind)
		}
	}
	return translate(wrapped, appointmentConstraints)
}
