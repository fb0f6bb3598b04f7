package components

import (
	"service-marketplace/internal/pkg/jwt"
	"service-marketplace/internal/usecase"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSlotCommands,
		commands.NewAvailabilityCommands,
		commands.NewCatalogCommands,
		commands.NewBookingCommands,
		commands.NewRefundCommands,
		commands.NewSubscriptionCommands,
		commands.NewPlanCommands,
		commands.NewAdminCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewServiceQueries,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewRefundQueries,
		queries.NewTransactionQueries,
		queries.NewSubscriptionQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthenticator,
		func(s *jwt.Service) commands.TokenService { return s },
	),
)
