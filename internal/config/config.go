package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Server ServerConfig
	Stripe StripeConfig
	Plaid  PlaidConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         string        `koanf:"http_port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	StaticDir    string        `koanf:"static_dir" validate:"required"`
	IndexFile    string        `koanf:"index_file" validate:"required"`
}

type StripeConfig struct {
	SecretKey string        `koanf:"stripe_skey" validate:"required"`
	BaseURL   string        `koanf:"stripe_base_url" validate:"required"`
	Timeout   time.Duration `koanf:"stripe_timeout" validate:"required"`
}

type PlaidConfig struct {
	Environment string `koanf:"plaid_env" validate:"required,oneof=sandbox development production"`
	ClientID    string `koanf:"plaid_client" validate:"required"`
	PublicKey   string `koanf:"plaid_pkey" validate:"required"`
	SecretKey   string `koanf:"plaid_skey" validate:"required"`
	// BaseURL overrides the host derived from Environment. Tests only.
	BaseURL string        `koanf:"plaid_base_url"`
	Timeout time.Duration `koanf:"plaid_timeout" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"log_level"`
}

// Defaults match the original deployment: port 3000, assets prebuilt into
// ./dist with the SPA entry point at ./server/index.html.
var defaults = map[string]interface{}{
	"http_port":       "3000",
	"read_timeout":    "15s",
	"write_timeout":   "30s",
	"idle_timeout":    "60s",
	"static_dir":      "dist",
	"index_file":      "server/index.html",
	"log_level":       "info",
	"stripe_base_url": "https://api.stripe.com",
	"stripe_timeout":  "30s",
	"plaid_timeout":   "30s",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	// Environment keys are flat, so every section unmarshals from the root.
	mainConfig := &Config{}
	for _, section := range []interface{}{
		&mainConfig.Server,
		&mainConfig.Stripe,
		&mainConfig.Plaid,
		&mainConfig.Logger,
	} {
		if err := k.Unmarshal("", section); err != nil {
			logger.Error("could not unmarshal main config", "error", err)
			return nil, err
		}
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// NewLogger builds the process-wide structured logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
