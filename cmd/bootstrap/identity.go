package bootstrap

import (
	"context"
	"log/slog"

	"petshop-api/internal/infra/cache"
	"petshop-api/internal/infra/idp"
	"petshop-api/internal/pkg/config"
	"petshop-api/internal/pkg/jwt"
	"petshop-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewVerifier,
		NewRedisClient,
		NewUserCache,
	),
)

func NewVerifier(cfg config.Config) *jwt.Verifier {
	var keys jwt.RSAKeySource
	if cfg.IdP.JWKSURL != "" {
		keys = idp.NewJWKSClient(cfg.IdP.JWKSURL, cfg.IdP.JWKSRefresh, cfg.IdP.JWKSMinRefetch, cfg.IdP.JWKSHTTPTimeout)
	}
	return jwt.NewVerifier(cfg.IdP.JWTSecret, keys)
}

// NewRedisClient returns nil when REDIS_URL is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Info("identity cache disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewUserCache(client *redis.Client, cfg config.Config) shared.UserCache {
	return cache.NewUserCache(client, cfg.Identity.CacheTTL)
}
