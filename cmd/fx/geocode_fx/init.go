package geocode_fx

import (
	"go.uber.org/fx"

	"dinefind/internal/services"
)

var Module = fx.Provide(services.NewGeocodeService)
