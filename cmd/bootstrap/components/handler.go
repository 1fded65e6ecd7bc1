package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDirectoryHandler,
		api.NewBookingHandler,
		api.NewOwnerHandler,
		api.NewReviewHandler,
		newAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newAdminHandler(reviews commands.ReviewCommands, bookings commands.BookingCommands, notifications queries.NotificationQueries, cfg config.Config) *api.AdminHandler {
	return api.NewAdminHandler(reviews, bookings, notifications, cfg.ReviewSweep.BatchSize)
}
