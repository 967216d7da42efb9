package converter

import (
	"petshop-api/internal/domain/appointment"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		PetID:     a.PetID(),
		ClientID:  a.ClientID(),
		StaffID:   pgconv.UUIDPtrToPgtype(a.StaffID()),
		StartsAt:  pgconv.TimeToPgtype(a.Window().Start()),
		EndsAt:    pgconv.TimeToPgtype(a.Window().End()),
		Status:    a.Status().String(),
		Notes:     pgconv.StringPtrToPgtype(a.Notes()),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	return sqlc.UpdateAppointmentParams{
		ID:        a.ID(),
		PetID:     a.PetID(),
		ClientID:  a.ClientID(),
		StaffID:   pgconv.UUIDPtrToPgtype(a.StaffID()),
		StartsAt:  pgconv.TimeToPgtype(a.Window().Start()),
		EndsAt:    pgconv.TimeToPgtype(a.Window().End()),
		Status:    a.Status().String(),
		Notes:     pgconv.StringPtrToPgtype(a.Notes()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

// LineItemToParams numbers items from 1 in request order.
func LineItemToParams(appointmentID int64, index int, li appointment.LineItem) sqlc.CreateAppointmentItemParams {
	return sqlc.CreateAppointmentItemParams{
		AppointmentID: appointmentID,
		Position:      int32(index + 1), // #nosec G115 -- item lists are tiny
		ServiceID:     li.ServiceID(),
		Quantity:      li.Quantity(),
		UnitPrice:     pgconv.DecimalToNumeric(li.UnitPrice()),
		Discount:      pgconv.DecimalToNumeric(li.Discount()),
	}
}

func AppointmentFromRows(row sqlc.Appointments, itemRows []sqlc.ListAppointmentItemsRow) (*appointment.Appointment, error) {
	window, err := appointment.NewWindow(pgconv.TimeFromPgtype(row.StartsAt), pgconv.TimeFromPgtype(row.EndsAt))
	if err != nil {
		return nil, errs.Wrapf(err, "stored appointment %d", row.ID)
	}
	status, err := appointment.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored appointment %d", row.ID)
	}

	items := make([]appointment.LineItem, 0, len(itemRows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.UnitPrice)
		if err != nil {
			return nil, err
		}
		discount, err := pgconv.DecimalFromNumeric(ir.Discount)
		if err != nil {
			return nil, err
		}
		items = append(items, appointment.ReconstructLineItem(ir.ServiceID, ir.Quantity, price, discount))
	}

	return appointment.ReconstructAppointment(
		row.ID, row.PetID, row.ClientID,
		pgconv.UUIDPtrFromPgtype(row.StaffID),
		window,
		status,
		pgconv.StringPtrFromPgtype(row.Notes),
		items,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
