package components

import (
	"skybook/internal/handler"
	"skybook/internal/handler/api"
	"skybook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewTicketHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
