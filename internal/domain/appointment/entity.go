package appointment

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	id        int64
	petID     int64
	clientID  int64
	staffID   *uuid.UUID
	window    Window
	status    Status
	notes     *string
	items     []LineItem
	createdAt time.Time
	updatedAt time.Time
}

func NewAppointment(petID, clientID int64, staffID *uuid.UUID, window Window, notes *string, items []LineItem, now time.Time) (*Appointment, error) {
	if petID <= 0 {
		return nil, ErrInvalidPet
	}
	if clientID <= 0 {
		return nil, ErrInvalidClient
	}
	return &Appointment{
		petID:     petID,
		clientID:  clientID,
		staffID:   staffID,
		window:    window,
		status:    StatusScheduled,
		notes:     notes,
		items:     append([]LineItem(nil), items...),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppointment(
	id, petID, clientID int64,
	staffID *uuid.UUID,
	window Window,
	status Status,
	notes *string,
	items []LineItem,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		petID:     petID,
		clientID:  clientID,
		staffID:   staffID,
		window:    window,
		status:    status,
		notes:     notes,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Appointment) ID() int64             { return a.id }
func (a *Appointment) PetID() int64          { return a.petID }
func (a *Appointment) ClientID() int64       { return a.clientID }
func (a *Appointment) StaffID() *uuid.UUID   { return a.staffID }
func (a *Appointment) Window() Window        { return a.window }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) Notes() *string        { return a.notes }
func (a *Appointment) Items() []LineItem     { return a.items }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }
func (a *Appointment) IsScheduled() bool     { return a.status == StatusScheduled }
func (a *Appointment) Resources() []Resource { return Resources(a.petID, a.staffID) }

// Changes carries a partial update; nil fields keep the current value.
type Changes struct {
	PetID    *int64
	ClientID *int64
	StaffID  *uuid.UUID
	Start    *time.Time
	End      *time.Time
	Notes    *string
	// ClearStaff unassigns the staff member. A nil StaffID alone keeps it.
	ClearStaff bool
}

// Apply merges the changes over the current values and re-validates the window.
// The receiver is left untouched when an error is returned.
func (a *Appointment) Apply(c Changes, now time.Time) error {
	if c.ClearStaff && c.StaffID != nil {
		return ErrStaffChange
	}
	petID := a.petID
	if c.PetID != nil {
		if *c.PetID <= 0 {
			return ErrInvalidPet
		}
		petID = *c.PetID
	}
	clientID := a.clientID
	if c.ClientID != nil {
		if *c.ClientID <= 0 {
			return ErrInvalidClient
		}
		clientID = *c.ClientID
	}
	start, end := a.window.Start(), a.window.End()
	if c.Start != nil {
		start = *c.Start
	}
	if c.End != nil {
		end = *c.End
	}
	window, err := NewWindow(start, end)
	if err != nil {
		return err
	}

	a.petID = petID
	a.clientID = clientID
	a.window = window
	switch {
	case c.ClearStaff:
		a.staffID = nil
	case c.StaffID != nil:
		staff := *c.StaffID
		a.staffID = &staff
	}
	if c.Notes != nil {
		notes := *c.Notes
		a.notes = &notes
	}
	a.updatedAt = now
	return nil
}

// Cancel moves the appointment to cancelled. Cancelling twice is a no-op.
func (a *Appointment) Cancel(now time.Time) {
	if a.status == StatusCancelled {
		return
	}
	a.status = StatusCancelled
	a.updatedAt = now
}

func (a *Appointment) ReplaceItems(items []LineItem, now time.Time) {
	a.items = append([]LineItem(nil), items...)
	a.updatedAt = now
}
