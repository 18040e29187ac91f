package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken        string        `envconfig:"BOT_TOKEN" required:"true"`
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"./rankday.db"`
	Timezone        string        `envconfig:"TZ" default:"UTC"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	TickInterval    time.Duration `envconfig:"TICK_INTERVAL" default:"60s"`
	DispatchTimeout time.Duration `envconfig:"DISPATCH_TIMEOUT" default:"10s"`
}

// Load reads the optional .env file and then the environment into Config.
func Load() (Config, error) {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
