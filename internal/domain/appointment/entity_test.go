//go:build unit

package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func window(t *testing.T, from, to time.Time) appointment.Window {
	t.Helper()
	w, err := appointment.NewWindow(from, to)
	require.NoError(t, err)
	return w
}

func TestWindow(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := appointment.NewWindow(at(11, 0), at(10, 0))
		require.ErrorIs(t, err, appointment.ErrInvalidWindow)
		assert.True(t, errs.Is(err, errs.ErrInvalid))

		_, err = appointment.NewWindow(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, appointment.ErrInvalidWindow)
	})

	base := window(t, at(10, 0), at(11, 0))
	tests := []struct {
		name     string
		other    appointment.Window
		overlaps bool
	}{
		{name: "partial overlap at the end", other: window(t, at(10, 30), at(11, 30)), overlaps: true},
		{name: "partial overlap at the start", other: window(t, at(9, 30), at(10, 1)), overlaps: true},
		{name: "contained", other: window(t, at(10, 15), at(10, 45)), overlaps: true},
		{name: "containing", other: window(t, at(9, 0), at(12, 0)), overlaps: true},
		{name: "identical", other: window(t, at(10, 0), at(11, 0)), overlaps: true},
		{name: "adjacent after (half-open)", other: window(t, at(11, 0), at(12, 0)), overlaps: false},
		{name: "adjacent before (half-open)", other: window(t, at(9, 0), at(10, 0)), overlaps: false},
		{name: "disjoint", other: window(t, at(13, 0), at(14, 0)), overlaps: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestLineItem(t *testing.T) {
	fifty := decimal.RequireFromString("50.00")

	tests := []struct {
		name  string
		req   appointment.ItemRequest
		errIs error
	}{
		{name: "catalog price", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1}},
		{name: "explicit price", req: appointment.ItemRequest{ServiceID: 1, Quantity: 2, UnitPrice: ptr.To(decimal.RequireFromString("40"))}},
		{name: "zero quantity", req: appointment.ItemRequest{ServiceID: 1, Quantity: 0}, errIs: appointment.ErrInvalidQuantity},
		{name: "missing service", req: appointment.ItemRequest{Quantity: 1}, errIs: appointment.ErrInvalidService},
		{name: "negative price", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1, UnitPrice: ptr.To(decimal.NewFromInt(-1))}, errIs: appointment.ErrNegativePrice},
		{name: "discount above line amount", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1, Discount: decimal.NewFromInt(51)}, errIs: appointment.ErrInvalidDiscount},
		{name: "price with three decimals", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1, UnitPrice: ptr.To(decimal.RequireFromString("40.005"))}, errIs: appointment.ErrAmountScale},
		{name: "discount with three decimals", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1, Discount: decimal.RequireFromString("0.001")}, errIs: appointment.ErrAmountScale},
		{name: "price above column range", req: appointment.ItemRequest{ServiceID: 1, Quantity: 1, UnitPrice: ptr.To(decimal.RequireFromString("10000000000"))}, errIs: appointment.ErrAmountScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := tt.req.Resolve(fifty)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			if tt.req.UnitPrice == nil {
				assert.True(t, item.UnitPrice().Equal(fifty), "price should come from the catalog")
			} else {
				assert.True(t, item.UnitPrice().Equal(*tt.req.UnitPrice))
			}
		})
	}

	t.Run("validate rejects amounts the columns would round", func(t *testing.T) {
		req := appointment.ItemRequest{ServiceID: 1, Quantity: 1, UnitPrice: ptr.To(decimal.RequireFromString("12.345"))}
		require.ErrorIs(t, req.Validate(), appointment.ErrAmountScale)
	})

	t.Run("amount subtracts the discount", func(t *testing.T) {
		item, err := appointment.NewLineItem(1, 2, fifty, decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, "90", item.Amount().String())
	})
}

func TestAppointment(t *testing.T) {
	newAppt := func(t *testing.T) *appointment.Appointment {
		t.Helper()
		a, err := appointment.NewAppointment(7, 3, nil, window(t, at(10, 0), at(11, 0)), nil, nil, day)
		require.NoError(t, err)
		return a
	}

	t.Run("new appointment is scheduled", func(t *testing.T) {
		a := newAppt(t)
		assert.Equal(t, appointment.StatusScheduled, a.Status())
		assert.True(t, a.IsScheduled())
		assert.Len(t, a.Resources(), 1)
	})

	t.Run("ids are validated", func(t *testing.T) {
		_, err := appointment.NewAppointment(0, 3, nil, window(t, at(10, 0), at(11, 0)), nil, nil, day)
		require.ErrorIs(t, err, appointment.ErrInvalidPet)
		_, err = appointment.NewAppointment(7, 0, nil, window(t, at(10, 0), at(11, 0)), nil, nil, day)
		require.ErrorIs(t, err, appointment.ErrInvalidClient)
	})

	t.Run("apply merges partial changes", func(t *testing.T) {
		a := newAppt(t)
		staff := uuid.New()
		later := day.Add(time.Hour)
		require.NoError(t, a.Apply(appointment.Changes{End: ptr.To(at(11, 30)), StaffID: &staff, Notes: ptr.To("vacina")}, later))

		assert.Equal(t, at(10, 0), a.Window().Start())
		assert.Equal(t, at(11, 30), a.Window().End())
		assert.Equal(t, staff, *a.StaffID())
		assert.Equal(t, "vacina", *a.Notes())
		assert.Equal(t, later, a.UpdatedAt())
		assert.Len(t, a.Resources(), 2)
	})

	t.Run("apply can unassign the staff member", func(t *testing.T) {
		a := newAppt(t)
		staff := uuid.New()
		require.NoError(t, a.Apply(appointment.Changes{StaffID: &staff}, day))

		require.NoError(t, a.Apply(appointment.Changes{Notes: ptr.To("retorno")}, day))
		assert.Equal(t, staff, *a.StaffID(), "absent staff_id keeps the assignment")

		require.NoError(t, a.Apply(appointment.Changes{ClearStaff: true}, day))
		assert.Nil(t, a.StaffID())
		assert.Len(t, a.Resources(), 1)
	})

	t.Run("apply rejects clearing and assigning staff at once", func(t *testing.T) {
		a := newAppt(t)
		staff := uuid.New()
		err := a.Apply(appointment.Changes{StaffID: &staff, ClearStaff: true}, day)
		require.ErrorIs(t, err, appointment.ErrStaffChange)
		assert.Nil(t, a.StaffID())
	})

	t.Run("apply rejects an inverted window and keeps the current one", func(t *testing.T) {
		a := newAppt(t)
		err := a.Apply(appointment.Changes{Start: ptr.To(at(12, 0))}, day)
		require.ErrorIs(t, err, appointment.ErrInvalidWindow)
		assert.Equal(t, at(10, 0), a.Window().Start())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		a := newAppt(t)
		first := day.Add(time.Minute)
		a.Cancel(first)
		a.Cancel(day.Add(time.Hour))
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		assert.Equal(t, first, a.UpdatedAt(), "second cancel must not write")
	})
}

type fakeFinder struct {
	busy  map[appointment.ResourceKind]bool
	calls []appointment.Resource
	err   error
}

func (f *fakeFinder) HasOverlap(_ context.Context, r appointment.Resource, _ appointment.Window, _ *int64) (bool, error) {
	f.calls = append(f.calls, r)
	return f.busy[r.Kind], f.err
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	w := window(t, at(10, 0), at(11, 0))
	staff := uuid.New()

	t.Run("free resources", func(t *testing.T) {
		f := &fakeFinder{}
		require.NoError(t, appointment.CheckAvailability(ctx, f, 7, &staff, w, nil))
		require.Len(t, f.calls, 2)
		assert.Equal(t, appointment.ResourcePet, f.calls[0].Kind)
		assert.Equal(t, appointment.ResourceStaff, f.calls[1].Kind)
	})

	t.Run("pet conflict is reported as such", func(t *testing.T) {
		f := &fakeFinder{busy: map[appointment.ResourceKind]bool{appointment.ResourcePet: true}}
		err := appointment.CheckAvailability(ctx, f, 7, &staff, w, nil)
		require.ErrorIs(t, err, appointment.ErrPetUnavailable)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Len(t, f.calls, 1)
	})

	t.Run("staff conflict is reported as such", func(t *testing.T) {
		f := &fakeFinder{busy: map[appointment.ResourceKind]bool{appointment.ResourceStaff: true}}
		err := appointment.CheckAvailability(ctx, f, 7, &staff, w, nil)
		require.ErrorIs(t, err, appointment.ErrStaffUnavailable)
	})

	t.Run("no staff means a single check", func(t *testing.T) {
		f := &fakeFinder{}
		require.NoError(t, appointment.CheckAvailability(ctx, f, 7, nil, w, nil))
		assert.Len(t, f.calls, 1)
	})

	t.Run("storage errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		f := &fakeFinder{err: boom}
		require.ErrorIs(t, appointment.CheckAvailability(ctx, f, 7, nil, w, nil), boom)
	})
}

func TestResourceLockKey(t *testing.T) {
	staff := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, "appointment:pet:7", appointment.PetResource(7).LockKey())
	assert.Equal(t, "appointment:staff:00000000-0000-0000-0000-000000000001", appointment.StaffResource(staff).LockKey())
}
