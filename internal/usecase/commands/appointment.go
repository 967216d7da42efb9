package commands

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/commands/appointment_mock.go -package=commandsmock

import (
	"context"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/user"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PetID    int64
	ClientID int64
	StaffID  *uuid.UUID
	Start    time.Time
	End      time.Time
	Notes    *string
	Items    []appointment.ItemRequest
}

type UpdateAppointmentRequest struct {
	PetID    *int64
	ClientID *int64
	StaffID  *uuid.UUID
	Start    *time.Time
	End      *time.Time
	Notes    *string
	// ClearStaff unassigns the current staff member.
	ClearStaff bool
}

type AppointmentCommands interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (int64, error)
	Update(ctx context.Context, id int64, req UpdateAppointmentRequest) error
	ReplaceLineItems(ctx context.Context, id int64, items []appointment.ItemRequest) error
	Cancel(ctx context.Context, id int64) (appointment.Status, error)
}

type appointmentUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.DomainMetrics
}

func NewAppointmentUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.DomainMetrics) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, req CreateAppointmentRequest) (int64, error) {
	window, err := appointment.NewWindow(req.Start, req.End)
	if err != nil {
		return 0, err
	}
	if err := validateItemRequests(req.Items); err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkParticipants(ctx, tx.Reads(), req.PetID, req.ClientID, req.StaffID); err != nil {
			return err
		}
		items, err := resolveLineItems(ctx, tx.Reads(), req.Items)
		if err != nil {
			return err
		}

		appt, err := appointment.NewAppointment(req.PetID, req.ClientID, req.StaffID, window, req.Notes, items, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := uc.ensureAvailable(ctx, tx, appt, nil); err != nil {
			return err
		}

		createdID, err = tx.Appointments().Create(ctx, tx.DB(), appt)
		return err
	})
	if err != nil {
		uc.recordConflict(err)
		return 0, err
	}

	uc.metrics.AppointmentBooked()
	return createdID, nil
}

// Update merges the provided fields. Availability is only rechecked while the
// appointment is scheduled; a cancelled one holds no slot.
func (uc *appointmentUseCaseImpl) Update(ctx context.Context, id int64, req UpdateAppointmentRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		changes := appointment.Changes{
			PetID:      req.PetID,
			ClientID:   req.ClientID,
			StaffID:    req.StaffID,
			Start:      req.Start,
			End:        req.End,
			Notes:      req.Notes,
			ClearStaff: req.ClearStaff,
		}
		if err := appt.Apply(changes, uc.clock.Now()); err != nil {
			return err
		}

		if req.PetID != nil || req.ClientID != nil || req.StaffID != nil {
			if err := checkParticipants(ctx, tx.Reads(), appt.PetID(), appt.ClientID(), req.StaffID); err != nil {
				return err
			}
		}
		if appt.IsScheduled() {
			if err := uc.ensureAvailable(ctx, tx, appt, &id); err != nil {
				return err
			}
		}
		return tx.Appointments().Update(ctx, tx.DB(), appt)
	})
	uc.recordConflict(err)
	return err
}

func (uc *appointmentUseCaseImpl) ReplaceLineItems(ctx context.Context, id int64, reqs []appointment.ItemRequest) error {
	if err := validateItemRequests(reqs); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		items, err := resolveLineItems(ctx, tx.Reads(), reqs)
		if err != nil {
			return err
		}

		appt.ReplaceItems(items, uc.clock.Now())
		if err := tx.Appointments().ReplaceItems(ctx, tx.DB(), id, appt.Items()); err != nil {
			return err
		}
		return tx.Appointments().Update(ctx, tx.DB(), appt)
	})
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, id int64) (appointment.Status, error) {
	var status appointment.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		status = appt.Status()
		if !appt.IsScheduled() {
			return nil
		}

		appt.Cancel(uc.clock.Now())
		status = appt.Status()
		return tx.Appointments().Update(ctx, tx.DB(), appt)
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

// ensureAvailable serializes competing writers on the appointment's resources
// (when the schema cannot) and then runs the overlap check.
func (uc *appointmentUseCaseImpl) ensureAvailable(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, excludeID *int64) error {
	if err := tx.Guard().Acquire(ctx, appt.Resources()); err != nil {
		return err
	}
	return appointment.CheckAvailability(ctx, tx.Reads(), appt.PetID(), appt.StaffID(), appt.Window(), excludeID)
}

func (uc *appointmentUseCaseImpl) recordConflict(err error) {
	switch {
	case err == nil:
	case errs.Is(err, appointment.ErrPetUnavailable):
		uc.metrics.BookingConflict(string(appointment.ResourcePet))
	case errs.Is(err, appointment.ErrStaffUnavailable):
		uc.metrics.BookingConflict(string(appointment.ResourceStaff))
	}
}

func validateItemRequests(reqs []appointment.ItemRequest) error {
	for i, r := range reqs {
		if err := r.Validate(); err != nil {
			return errs.Wrapf(err, "item %d", i+1)
		}
	}
	return nil
}

// checkParticipants verifies the pet belongs to the client and, when given,
// that the staff member is a known user.
func checkParticipants(ctx context.Context, reads shared.CommandReads, petID, clientID int64, staffID *uuid.UUID) error {
	if _, err := reads.ClientByID(ctx, clientID); err != nil {
		return err
	}
	pet, err := reads.PetByID(ctx, petID)
	if err != nil {
		return err
	}
	if pet.ClientID != clientID {
		return appointment.ErrPetOwnerMismatch
	}
	if staffID != nil {
		if _, err := reads.UserByID(ctx, *staffID); err != nil {
			if errs.Is(err, user.ErrNotFound) {
				return appointment.ErrStaffNotFound
			}
			return err
		}
	}
	return nil
}

// resolveLineItems fills missing unit prices from the service catalog. A
// supplied price wins, even for an inactive service.
func resolveLineItems(ctx context.Context, reads shared.CommandReads, reqs []appointment.ItemRequest) ([]appointment.LineItem, error) {
	items := make([]appointment.LineItem, 0, len(reqs))
	for i, r := range reqs {
		svc, err := reads.ServiceByID(ctx, r.ServiceID)
		if err != nil {
			return nil, errs.Wrapf(err, "item %d (servico_id %d)", i+1, r.ServiceID)
		}
		li, err := r.Resolve(svc.Price)
		if err != nil {
			return nil, errs.Wrapf(err, "item %d", i+1)
		}
		items = append(items, li)
	}
	return items, nil
}
