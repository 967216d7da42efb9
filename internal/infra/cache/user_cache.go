package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "petshop:user:"

type cachedUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisUserCache(client *redis.Client, ttl time.Duration) *RedisUserCache {
	return &RedisUserCache{client: client, ttl: ttl}
}

func (c *RedisUserCache) key(id uuid.UUID) string {
	return userKeyPrefix + id.String()
}

func (c *RedisUserCache) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "user cache get")
	}

	var cu cachedUser
	if err := json.Unmarshal(data, &cu); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		slog.Warn("discarding unreadable user cache entry", "user_id", id, "error", err)
		return nil, nil
	}
	role, err := user.NewRole(cu.Role)
	if err != nil {
		return nil, nil
	}
	return user.ReconstructUser(cu.ID, cu.Email, cu.DisplayName, role, cu.CreatedAt, cu.UpdatedAt), nil
}

func (c *RedisUserCache) Set(ctx context.Context, u *user.User) error {
	data, err := json.Marshal(cachedUser{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	})
	if err != nil {
		return errs.Wrap(err, "user cache marshal")
	}
	if err := c.client.Set(ctx, c.key(u.ID()), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "user cache set")
	}
	return nil
}

func (c *RedisUserCache) Evict(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return errs.Wrap(err, "user cache evict")
	}
	return nil
}

// NoopUserCache is used when REDIS_URL is empty.
type NoopUserCache struct{}

func (NoopUserCache) Get(context.Context, uuid.UUID) (*user.User, error) { return nil, nil }
func (NoopUserCache) Set(context.Context, *user.User) error              { return nil }
func (NoopUserCache) Evict(context.Context, uuid.UUID) error             { return nil }

// NewRedisClient parses REDIS_URL and verifies connectivity. An empty URL returns nil.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis ping failed")
	}
	return client, nil
}

// NewUserCache picks the Redis cache when a client is configured.
func NewUserCache(client *redis.Client, ttl time.Duration) shared.UserCache {
	if client == nil {
		return NoopUserCache{}
	}
	return NewRedisUserCache(client, ttl)
}
