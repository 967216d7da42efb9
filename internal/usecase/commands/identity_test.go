//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/pkg/config"
	"petshop-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityUseCase(uow *memUoW, cache *memCache) commands.IdentityCommands {
	return commands.NewIdentityUseCase(uow, cache, config.NewTestConfig(), clock.NewMockClock(day))
}

func TestIdentityUseCase_Reconcile(t *testing.T) {
	t.Run("first sight creates a worker and caches it", func(t *testing.T) {
		uow, cache := newMemUoW(), newMemCache()
		uc := newIdentityUseCase(uow, cache)
		id := user.Identity{Subject: uuid.New(), Email: "vet@petshop.test"}

		u, err := uc.Reconcile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, user.RoleWorker, u.Role())
		assert.Contains(t, uow.state.users, id.Subject)
		assert.Contains(t, cache.users, id.Subject)
	})

	t.Run("owner email becomes admin", func(t *testing.T) {
		uow, cache := newMemUoW(), newMemCache()
		uc := newIdentityUseCase(uow, cache)

		u, err := uc.Reconcile(context.Background(), user.Identity{Subject: uuid.New(), Email: "owner@petshop.test"})
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		uow, cache := newMemUoW(), newMemCache()
		uc := newIdentityUseCase(uow, cache)
		id := user.Identity{Subject: uuid.New(), Email: "vet@petshop.test"}

		_, err := uc.Reconcile(context.Background(), id)
		require.NoError(t, err)
		attempts := uow.attempts

		_, err = uc.Reconcile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, attempts, uow.attempts)
	})

	t.Run("cached worker on the owner list is promoted", func(t *testing.T) {
		uow, cache := newMemUoW(), newMemCache()
		uc := newIdentityUseCase(uow, cache)
		subject := uow.addUser(user.RoleWorker)
		cache.users[subject] = uow.state.users[subject]

		u, err := uc.Reconcile(context.Background(), user.Identity{Subject: subject, Email: "owner@petshop.test"})
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
		assert.True(t, uow.state.users[subject].IsAdmin())
		assert.True(t, cache.users[subject].IsAdmin())
	})

	t.Run("an admin is never demoted by reconciliation", func(t *testing.T) {
		uow, cache := newMemUoW(), newMemCache()
		uc := newIdentityUseCase(uow, cache)
		subject := uow.addUser(user.RoleAdmin)

		u, err := uc.Reconcile(context.Background(), user.Identity{Subject: subject, Email: "someone@petshop.test"})
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})
}

func TestIdentityUseCase_ChangeRole(t *testing.T) {
	uow, cache := newMemUoW(), newMemCache()
	uc := newIdentityUseCase(uow, cache)
	subject := uow.addUser(user.RoleWorker)
	cache.users[subject] = uow.state.users[subject]

	u, err := uc.ChangeRole(context.Background(), subject, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role())
	assert.Equal(t, user.RoleAdmin, uow.state.users[subject].Role())
	assert.NotContains(t, cache.users, subject)
	assert.Equal(t, []uuid.UUID{subject}, cache.evicted)

	_, err = uc.ChangeRole(context.Background(), subject, "root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = uc.ChangeRole(context.Background(), uuid.New(), "worker")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
