//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"petshop-api/internal/infra"
	"petshop-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		kinds          []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
		wantCategory   error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "plain error", err: errors.New("boom"), wantKind: infra.KindDBFailure},
		{
			name:           "unique violation",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "species_name_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "species_name_key",
		},
		{
			name:           "foreign key violation",
			err:            &pgconn.PgError{Code: "23503", ConstraintName: "pets_client_id_fkey"},
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: "pets_client_id_fkey",
		},
		{
			name:           "exclusion violation keeps constraint name",
			err:            &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_staff_no_overlap"},
			wantKind:       infra.KindExclusionViolated,
			wantConstraint: "appointments_staff_no_overlap",
		},
		{
			name:           "check violation is invalid input",
			err:            &pgconn.PgError{Code: "23514", ConstraintName: "sale_items_quantity_check"},
			wantKind:       infra.KindCheckViolated,
			wantConstraint: "sale_items_quantity_check",
			wantCategory:   errs.ErrInvalid,
		},
		{
			name:         "numeric overflow is invalid input",
			err:          &pgconn.PgError{Code: "22003"},
			wantKind:     infra.KindOutOfRange,
			wantCategory: errs.ErrInvalid,
		},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindRetryable},
		{
			name:         "statement timeout is unavailable",
			err:          &pgconn.PgError{Code: "57014"},
			wantKind:     infra.KindUnavailable,
			wantCategory: errs.ErrUnavailable,
		},
		{
			name:         "deadline exceeded is unavailable",
			err:          context.DeadlineExceeded,
			wantKind:     infra.KindUnavailable,
			wantCategory: errs.ErrUnavailable,
		},
		{
			name:     "explicit kind wins",
			err:      errors.New("anything"),
			kinds:    []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("op failed", tt.err, tt.kinds...)

			assert.True(t, infra.IsKind(got, tt.wantKind), "got %v", got)
			assert.Equal(t, tt.wantConstraint, infra.ConstraintOf(got))
			assert.Equal(t, tt.wantCategory, errs.Category(got))
			assert.Contains(t, got.Error(), "op failed")
		})
	}

	t.Run("pg error stays reachable through the wrapper", func(t *testing.T) {
		got := infra.WrapRepoErr("op failed", &pgconn.PgError{Code: "40P01"})
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(got, &pgErr))
		assert.Equal(t, "40P01", pgErr.Code)
	})
}
