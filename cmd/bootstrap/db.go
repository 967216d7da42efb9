package bootstrap

import (
	"context"

	"petshop-api/internal/infra/capability"
	"petshop-api/internal/infra/db"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewSchema,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// NewSchema detects the exclusion constraints once at startup.
func NewSchema(pool *pgxpool.Pool) (capability.Schema, error) {
	return capability.Detect(context.Background(), sqlc.New(), pool)
}
