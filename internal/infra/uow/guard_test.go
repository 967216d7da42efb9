//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/capability"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/infra/uow"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryGuard_Acquire(t *testing.T) {
	staffID := uuid.MustParse("6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f")
	resources := appointment.Resources(7, &staffID)

	tests := []struct {
		name      string
		schema    capability.Schema
		setupMock func(mock pgxmock.PgxPoolIface)
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "schema enforces both, no locks taken",
			schema:    capability.NewSchema(true, true),
			setupMock: func(pgxmock.PgxPoolIface) {},
		},
		{
			name:   "no constraints, pet then staff",
			schema: capability.NewSchema(false, false),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("appointment:pet:7").
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("appointment:staff:" + staffID.String()).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
		},
		{
			name:   "only staff unenforced",
			schema: capability.NewSchema(true, false),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("appointment:staff:" + staffID.String()).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
			},
		},
		{
			name:   "lock failure",
			schema: capability.NewSchema(false, true),
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("pg_advisory_xact_lock").
					WithArgs("appointment:pet:7").
					WillReturnError(errors.New("connection lost"))
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

			guard := uow.NewAdvisoryGuard(sqlc.New(), mock, tt.schema)
			err = guard.Acquire(context.Background(), resources)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
