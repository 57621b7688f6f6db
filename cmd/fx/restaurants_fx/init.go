package restaurants_fx

import (
	"go.uber.org/fx"

	"dinefind/internal/config"
	"dinefind/internal/repositories"
	"dinefind/internal/services"
)

var Module = fx.Provide(
	provideRestaurantRepo, services.NewRestaurantService)

func provideRestaurantRepo(cfg *config.Config) repositories.RestaurantRepository {
	return repositories.NewLocalRestaurantRepository(cfg.RestaurantsFile)
}
