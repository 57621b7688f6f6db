package controllers_fx

import (
	"go.uber.org/fx"

	"dinefind/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRestaurantsController),
	fx.Provide(controllers.NewGeocodeController),
	fx.Provide(controllers.NewDiagnosticsController))
