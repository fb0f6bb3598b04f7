package components

import (
	"service-marketplace/internal/handler"
	"service-marketplace/internal/handler/api"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewRefundHandler,
		api.NewSubscriptionHandler,
		api.NewAdminHandler,
		api.NewNotificationHandler,
		api.NewTransactionHandler,
		middleware.NewAuthMiddleware,
		func(s *jwt.Service) api.TokenLifetimes { return s },
	),
	fx.Invoke(handler.NewRouter),
)
