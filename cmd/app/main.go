package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dinefind/cmd/fx/cache_fx"
	"dinefind/cmd/fx/config_fx"
	"dinefind/cmd/fx/controllers_fx"
	"dinefind/cmd/fx/geocode_fx"
	"dinefind/cmd/fx/places_fx"
	"dinefind/cmd/fx/restaurants_fx"
	"dinefind/internal/api/controllers"
	"dinefind/internal/config"
	"dinefind/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		cache_fx.Module,
		places_fx.Module,
		restaurants_fx.Module,
		geocode_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	restaurantsController *controllers.RestaurantsController,
	geocodeController *controllers.GeocodeController,
	diagnosticsController *controllers.DiagnosticsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, restaurantsController, geocodeController, diagnosticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	restaurantsController *controllers.RestaurantsController,
	geocodeController *controllers.GeocodeController,
	diagnosticsController *controllers.DiagnosticsController) {

	restaurants := r.Group("/restaurants")
	restaurants.GET("", restaurantsController.Search)
	restaurants.GET("/nearby", restaurantsController.Nearby)
	restaurants.GET("/cuisines", restaurantsController.Cuisines)
	restaurants.GET("/:id", restaurantsController.GetByID)

	r.GET("/geocode", geocodeController.Geocode)
	r.GET("/test", diagnosticsController.Test)
}
