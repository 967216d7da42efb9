//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/readstore"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentReadStore_HasOverlap(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	window, err := appointment.NewWindow(start, start.Add(time.Hour))
	require.NoError(t, err)
	staffID := uuid.New()

	tests := []struct {
		name      string
		resource  appointment.Resource
		excludeID *int64
		setupMock func(mock pgxmock.PgxPoolIface)
		wantBusy  bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:     "pet window taken",
			resource: appointment.PetResource(7),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("WHERE pet_id").
					WithArgs(int64(7), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"overlaps"}).AddRow(true))
			},
			wantBusy: true,
		},
		{
			name:      "staff window free excluding itself",
			resource:  appointment.StaffResource(staffID),
			excludeID: ptr.To(int64(12)),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("WHERE staff_id").
					WithArgs(staffID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"overlaps"}).AddRow(false))
			},
		},
		{
			name:     "query failure",
			resource: appointment.PetResource(7),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("WHERE pet_id").
					WithArgs(int64(7), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("connection reset"))
			},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setupMock(mock)

			store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
			busy, err := store.HasOverlap(context.Background(), tt.resource, window, tt.excludeID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBusy, busy)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAppointmentReadStore_FindByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM appointments").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)

	store := readstore.NewAppointmentReadStore(sqlc.New(), mock)
	view, err := store.FindByID(context.Background(), 99)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
