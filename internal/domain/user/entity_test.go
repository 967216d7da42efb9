//go:build unit

package user_test

import (
	"testing"
	"time"

	"petshop-api/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	id, err := user.NewIdentity(uuid.New(), " Staff@PetShop.test ")
	require.NoError(t, err)

	t.Run("first sight creates a worker", func(t *testing.T) {
		u, changed := user.Reconcile(nil, id, false, now)
		assert.True(t, changed)
		assert.Equal(t, user.RoleWorker, u.Role())
		assert.Equal(t, "staff@petshop.test", u.Email())
		assert.Equal(t, id.Subject, u.ID())
	})

	t.Run("first sight of an owner creates an admin", func(t *testing.T) {
		u, changed := user.Reconcile(nil, id, true, now)
		assert.True(t, changed)
		assert.True(t, u.IsAdmin())
	})

	t.Run("existing worker on the allow-list is promoted", func(t *testing.T) {
		existing := user.ReconstructUser(id.Subject, id.Email, "Staff", user.RoleWorker, now, now)
		u, changed := user.Reconcile(existing, id, true, now.Add(time.Hour))
		assert.True(t, changed)
		assert.True(t, u.IsAdmin())
		assert.Equal(t, user.RoleWorker, existing.Role(), "original record is not mutated")
	})

	t.Run("existing admin off the allow-list keeps the role", func(t *testing.T) {
		existing := user.ReconstructUser(id.Subject, id.Email, "Staff", user.RoleAdmin, now, now)
		u, changed := user.Reconcile(existing, id, false, now)
		assert.False(t, changed)
		if diff := cmp.Diff(existing, u, cmp.AllowUnexported(user.User{})); diff != "" {
			t.Errorf("user mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIdentityAndRole(t *testing.T) {
	_, err := user.NewIdentity(uuid.Nil, "a@b.c")
	require.ErrorIs(t, err, user.ErrMissingSubject)

	_, err = user.NewRole("viewer")
	require.ErrorIs(t, err, user.ErrInvalidRole)

	u := user.ReconstructUser(uuid.New(), "a@b.c", "a", user.RoleWorker, time.Now(), time.Now())
	require.NoError(t, u.ChangeRole(user.RoleAdmin, time.Now()))
	assert.True(t, u.IsAdmin())
	require.ErrorIs(t, u.ChangeRole("root", time.Now()), user.ErrInvalidRole)
}
