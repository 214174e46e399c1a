// Package config loads service configuration from an optional .env file,
// the environment and an optional educonnect.yaml in the working directory.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrNoSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port        string
	GinMode     string
	JWTSecret   string
	DataFile    string
	CORSOrigins []string
	RateLimit   int           // requests per minute per IP
	Debounce    time.Duration // live-search quiescence window
}

// Load reads configuration. A missing .env and a missing config file are
// both fine. A missing JWT_SECRET yields ErrNoSecret together with the
// otherwise-valid config, so commands that never sign tokens can proceed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("data_file", "")
	v.SetDefault("cors_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("rate_limit", 60)
	v.SetDefault("debounce_ms", 300)

	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("gin_mode", "GIN_MODE")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("data_file", "EDUCONNECT_DATA_FILE")
	_ = v.BindEnv("cors_origins", "EDUCONNECT_CORS_ORIGINS")
	_ = v.BindEnv("rate_limit", "EDUCONNECT_RATE_LIMIT")
	_ = v.BindEnv("debounce_ms", "EDUCONNECT_DEBOUNCE_MS")

	v.SetConfigName("educonnect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		GinMode:     v.GetString("gin_mode"),
		JWTSecret:   v.GetString("jwt_secret"),
		DataFile:    v.GetString("data_file"),
		CORSOrigins: v.GetStringSlice("cors_origins"),
		RateLimit:   v.GetInt("rate_limit"),
		Debounce:    time.Duration(v.GetInt("debounce_ms")) * time.Millisecond,
	}
	if cfg.JWTSecret == "" {
		return cfg, ErrNoSecret
	}
	return cfg, nil
}
