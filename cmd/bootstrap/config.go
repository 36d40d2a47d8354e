package bootstrap

import (
	"tableside/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig() (config.Config, error) {
	// Local development convenience; real environments set vars directly.
	_ = godotenv.Load()

	return config.LoadConfig()
}
