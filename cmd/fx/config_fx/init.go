package config_fx

import (
	"go.uber.org/fx"

	"dinefind/internal/config"
)

var Module = fx.Provide(config.Load)
