//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/pkg/ptr"
	"petshop-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

type appointmentFixture struct {
	uow      *memUoW
	metrics  *countingMetrics
	uc       commands.AppointmentCommands
	clientID int64
	petID    int64
}

func newAppointmentFixture() *appointmentFixture {
	uow := newMemUoW()
	metrics := newCountingMetrics()
	clientID := uow.addClient("Ana")
	uow.addPetWithID(7, "Rex", clientID)
	return &appointmentFixture{
		uow:      uow,
		metrics:  metrics,
		uc:       commands.NewAppointmentUseCase(uow, clock.NewMockClock(day), metrics),
		clientID: clientID,
		petID:    7,
	}
}

func (f *appointmentFixture) book(t *testing.T, start, end time.Time, staff *uuid.UUID) (int64, error) {
	t.Helper()
	return f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
		PetID:    f.petID,
		ClientID: f.clientID,
		StaffID:  staff,
		Start:    start,
		End:      end,
	})
}

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("pet overlap is rejected and the adjacent slot is accepted", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.book(t, at(10, 0), at(11, 0), nil)
		require.NoError(t, err)

		_, err = f.book(t, at(10, 30), at(11, 30), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, appointment.ErrPetUnavailable)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		_, err = f.book(t, at(11, 0), at(12, 0), nil)
		require.NoError(t, err)

		assert.Equal(t, 2, f.metrics.booked)
		assert.Equal(t, 1, f.metrics.conflicts["pet"])
	})

	t.Run("staff overlap is rejected across different pets", func(t *testing.T) {
		f := newAppointmentFixture()
		staff := f.uow.addUser("worker")
		otherPet := f.uow.addPet("Mimi", f.clientID)

		_, err := f.book(t, at(9, 0), at(10, 0), &staff)
		require.NoError(t, err)

		_, err = f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
			PetID: otherPet, ClientID: f.clientID, StaffID: &staff, Start: at(9, 30), End: at(10, 30),
		})
		assert.ErrorIs(t, err, appointment.ErrStaffUnavailable)
		assert.Equal(t, 1, f.metrics.conflicts["staff"])
	})

	t.Run("every resource is locked before the check", func(t *testing.T) {
		f := newAppointmentFixture()
		staff := f.uow.addUser("worker")

		_, err := f.book(t, at(9, 0), at(10, 0), &staff)
		require.NoError(t, err)

		require.Len(t, f.uow.locked, 1)
		assert.Equal(t, []appointment.Resource{appointment.PetResource(7), appointment.StaffResource(staff)}, f.uow.locked[0])
	})

	t.Run("validation and reference errors", func(t *testing.T) {
		f := newAppointmentFixture()
		strangerClient := f.uow.addClient("Bruno")

		testCases := []struct {
			name string
			req  commands.CreateAppointmentRequest
			want error
		}{
			{
				name: "empty window",
				req:  commands.CreateAppointmentRequest{PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(10, 0)},
				want: appointment.ErrInvalidWindow,
			},
			{
				name: "pet of another client",
				req:  commands.CreateAppointmentRequest{PetID: 7, ClientID: strangerClient, Start: at(10, 0), End: at(11, 0)},
				want: appointment.ErrPetOwnerMismatch,
			},
			{
				name: "unknown staff",
				req:  commands.CreateAppointmentRequest{PetID: 7, ClientID: f.clientID, StaffID: ptr.To(uuid.New()), Start: at(10, 0), End: at(11, 0)},
				want: appointment.ErrStaffNotFound,
			},
			{
				name: "unknown service",
				req: commands.CreateAppointmentRequest{
					PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(11, 0),
					Items: []appointment.ItemRequest{{ServiceID: 999, Quantity: 1}},
				},
				want: catalog.ErrServiceNotFound,
			},
			{
				name: "zero quantity",
				req: commands.CreateAppointmentRequest{
					PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(11, 0),
					Items: []appointment.ItemRequest{{ServiceID: 1, Quantity: 0}},
				},
				want: appointment.ErrInvalidQuantity,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.uc.Create(context.Background(), tc.req)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.want)
			})
		}
		assert.Empty(t, f.uow.state.appointments)
	})

	t.Run("missing service names the offending item", func(t *testing.T) {
		f := newAppointmentFixture()
		_, err := f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
			PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(11, 0),
			Items: []appointment.ItemRequest{{ServiceID: 42, Quantity: 1}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "servico_id 42")
	})

	t.Run("catalog price fills in unless one is supplied", func(t *testing.T) {
		f := newAppointmentFixture()
		bath := f.uow.addService("Banho", "50.00", true)
		groom := f.uow.addService("Tosa", "80.00", false)

		id, err := f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
			PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(11, 0),
			Items: []appointment.ItemRequest{
				{ServiceID: bath, Quantity: 2},
				{ServiceID: groom, Quantity: 1, UnitPrice: ptr.To(decimal.RequireFromString("70.00")), Discount: decimal.RequireFromString("5")},
			},
		})
		require.NoError(t, err)

		items := f.uow.appointment(id).Items()
		require.Len(t, items, 2)
		assert.True(t, items[0].UnitPrice().Equal(decimal.RequireFromString("50")))
		assert.True(t, items[1].Amount().Equal(decimal.RequireFromString("65")))
	})
}

func TestAppointmentUseCase_Update(t *testing.T) {
	t.Run("rescheduling onto another booking leaves the appointment unchanged", func(t *testing.T) {
		f := newAppointmentFixture()
		a, err := f.book(t, at(9, 0), at(10, 0), nil)
		require.NoError(t, err)
		_, err = f.book(t, at(14, 0), at(15, 0), nil)
		require.NoError(t, err)

		err = f.uc.Update(context.Background(), a, commands.UpdateAppointmentRequest{
			Start: ptr.To(at(14, 30)),
			End:   ptr.To(at(15, 30)),
		})
		assert.ErrorIs(t, err, appointment.ErrPetUnavailable)

		stored := f.uow.appointment(a)
		assert.Equal(t, at(9, 0), stored.Window().Start())
		assert.Equal(t, at(10, 0), stored.Window().End())
	})

	t.Run("an appointment does not conflict with itself", func(t *testing.T) {
		f := newAppointmentFixture()
		a, err := f.book(t, at(9, 0), at(10, 0), nil)
		require.NoError(t, err)

		err = f.uc.Update(context.Background(), a, commands.UpdateAppointmentRequest{End: ptr.To(at(10, 30))})
		require.NoError(t, err)
		assert.Equal(t, at(10, 30), f.uow.appointment(a).Window().End())
	})

	t.Run("notes only", func(t *testing.T) {
		f := newAppointmentFixture()
		a, err := f.book(t, at(9, 0), at(10, 0), nil)
		require.NoError(t, err)

		err = f.uc.Update(context.Background(), a, commands.UpdateAppointmentRequest{Notes: ptr.To("chega atrasado")})
		require.NoError(t, err)
		assert.Equal(t, "chega atrasado", ptr.Deref(f.uow.appointment(a).Notes()))
	})

	t.Run("removing the staff member frees their slot", func(t *testing.T) {
		f := newAppointmentFixture()
		staff := f.uow.addUser("worker")
		a, err := f.book(t, at(9, 0), at(10, 0), &staff)
		require.NoError(t, err)

		err = f.uc.Update(context.Background(), a, commands.UpdateAppointmentRequest{ClearStaff: true})
		require.NoError(t, err)
		assert.Nil(t, f.uow.appointment(a).StaffID())

		otherPet := f.uow.addPet("Mia", f.clientID)
		_, err = f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
			PetID: otherPet, ClientID: f.clientID, StaffID: &staff, Start: at(9, 0), End: at(10, 0),
		})
		require.NoError(t, err)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		err := f.uc.Update(context.Background(), 404, commands.UpdateAppointmentRequest{Notes: ptr.To("x")})
		assert.ErrorIs(t, err, appointment.ErrNotFound)
	})
}

func TestAppointmentUseCase_ReplaceLineItems(t *testing.T) {
	f := newAppointmentFixture()
	bath := f.uow.addService("Banho", "50.00", true)
	nails := f.uow.addService("Unhas", "20.00", true)

	id, err := f.uc.Create(context.Background(), commands.CreateAppointmentRequest{
		PetID: 7, ClientID: f.clientID, Start: at(10, 0), End: at(11, 0),
		Items: []appointment.ItemRequest{{ServiceID: bath, Quantity: 1}},
	})
	require.NoError(t, err)

	err = f.uc.ReplaceLineItems(context.Background(), id, []appointment.ItemRequest{{ServiceID: nails, Quantity: 3}})
	require.NoError(t, err)

	items := f.uow.appointment(id).Items()
	require.Len(t, items, 1)
	assert.Equal(t, nails, items[0].ServiceID())
	assert.Equal(t, int32(3), items[0].Quantity())

	err = f.uc.ReplaceLineItems(context.Background(), id, nil)
	require.NoError(t, err)
	assert.Empty(t, f.uow.appointment(id).Items())
}

func TestAppointmentUseCase_Cancel(t *testing.T) {
	f := newAppointmentFixture()
	id, err := f.book(t, at(10, 0), at(11, 0), nil)
	require.NoError(t, err)

	status, err := f.uc.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusCancelled, status)

	status, err = f.uc.Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusCancelled, status)

	// the freed slot can be booked again
	_, err = f.book(t, at(10, 0), at(11, 0), nil)
	assert.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), 999)
	assert.ErrorIs(t, err, appointment.ErrNotFound)
}
