//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"petshop-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	notFound := errs.NotFound("pet not found")
	wrapped := errs.Wrapf(notFound, "pet %d", 7)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "invalid", err: errs.Invalid("bad window"), want: errs.ErrInvalid},
		{name: "not found survives wrapping", err: wrapped, want: errs.ErrNotFound},
		{name: "conflict", err: errs.Conflict("already paid"), want: errs.ErrConflict},
		{name: "unavailable mark on foreign error", err: errs.Mark(errors.New("timeout"), errs.ErrUnavailable), want: errs.ErrUnavailable},
		{name: "plain error is internal", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Category(tt.err))
		})
	}

	t.Run("sentinel identity is kept through wrapping", func(t *testing.T) {
		assert.ErrorIs(t, wrapped, notFound)
		assert.Contains(t, wrapped.Error(), "pet 7")
	})

	t.Run("Mark on nil returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	})
}
