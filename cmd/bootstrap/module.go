package bootstrap

import (
	"sameday-trips/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is shared by every command: configuration, logging, the external
// sources and the use cases.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.SourceModule,
	components.UseCaseModule,
)

var ServeModule = fx.Options(
	Module,
	components.HandlerModule,
)

var DiscoverModule = fx.Options(
	Module,
	fx.Provide(NewDiscoverCommand),
	fx.Invoke(RunCommand),
)

var PriceModule = fx.Options(
	Module,
	fx.Provide(NewPriceCommand),
	fx.Invoke(RunCommand),
)
