package components

import (
	"tableside/internal/pkg/clock"
	"tableside/internal/usecase/commands"
	"tableside/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAvailabilityValidator,
		commands.NewOrderCommands,
		commands.NewTableCommands,
		queries.NewTableQueries,
		queries.NewOrderQueries,
	),
)
