package components

import (
	"bibliolights/internal/pkg/clock"
	"bibliolights/internal/usecase"
	"bibliolights/internal/usecase/commands"
	"bibliolights/internal/usecase/queries"

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
		commands.NewInventoryLedger,
		commands.NewBookRequestCommands,
		commands.NewAdmissionCommands,
		commands.NewOrderCommands,
		commands.NewCatalogCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookRequestQueries,
		queries.NewOrderQueries,
		queries.NewProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
