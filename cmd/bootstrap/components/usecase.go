package components

import (
	"sameday-trips/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewDiscoveryUseCase,
		usecase.NewPricingUseCase,
	),
)
