package bootstrap

import (
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
