package components

import (
	"petshop-api/internal/pkg/clock"
	"petshop-api/internal/usecase"
	"petshop-api/internal/usecase/commands"
	"petshop-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
		commands.NewSaleUseCase,
		commands.NewInventoryUseCase,
		commands.NewCatalogUseCase,
		commands.NewCustomerUseCase,
		commands.NewIdentityUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewSaleQueries,
		queries.NewInventoryQueries,
		queries.NewCatalogQueries,
		queries.NewCustomerQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
