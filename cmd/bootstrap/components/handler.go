package components

import (
	"cashback-tracker/internal/handler"
	"cashback-tracker/internal/handler/api"
	"cashback-tracker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResellerHandler,
		api.NewPurchaseHandler,
		api.NewBalanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
