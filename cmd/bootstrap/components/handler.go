package components

import (
	"sameday-trips/internal/handler"
	"sameday-trips/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTripHandler,
		api.NewPricingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
