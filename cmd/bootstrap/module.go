package bootstrap

import (
	"petshop-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	IdentityModule,
	TelemetryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
