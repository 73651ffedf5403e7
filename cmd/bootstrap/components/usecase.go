package components

import (
	"hostel-booking/internal/pkg/clock"
	"hostel-booking/internal/pkg/config"
	"hostel-booking/internal/usecase"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"
	"hostel-booking/internal/usecase/shared"

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
		commands.NewCartCommands,
		func(uow shared.UnitOfWork, clock clock.Clock, cfg config.Config) commands.ReservationCommands {
			return commands.NewReservationCommands(uow, clock, cfg.Booking.DefaultPolicyName)
		},
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewRoomQueries,
		queries.NewCartQueries,
		queries.NewReservationQueries,
		queries.NewOccupancyQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
