package components

import (
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

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
	fx.Annotate(
		password.NewDefaultHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAvailabilityCommands,
		commands.NewCatalogCommands,
		commands.NewBookingCommands,
		newReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDirectoryQueries,
		queries.NewAvailabilityQueries,
		queries.NewServiceQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newReviewCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ReviewCommands {
	return commands.NewReviewCommands(uow, clk, cfg.Server.PublicBaseURL)
}
