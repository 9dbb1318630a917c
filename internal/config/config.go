// Package config resolves the process configuration from layered
// sources: built-in defaults, a base YAML file, an environment-named
// YAML file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the resolved, immutable process configuration. Load
// constructs it once at startup; it is passed to components explicitly
// and never mutated afterwards.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	CORS    CORSConfig    `koanf:"cors"`
	API     APIConfig     `koanf:"api"`
	ML      MLConfig      `koanf:"ml"`
}

type AppConfig struct {
	Name        string `koanf:"name" validate:"required"`
	Version     string `koanf:"version" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`
	Debug       bool   `koanf:"debug"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins" validate:"dive,required"`
}

type APIConfig struct {
	Prefix            string        `koanf:"prefix" validate:"required,startswith=/"`
	DocsEnabled       bool          `koanf:"docs_enabled"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
}

type MLConfig struct {
	ModelPath         string        `koanf:"model_path" validate:"required"`
	MaxBatchSize      int           `koanf:"max_batch_size" validate:"min=1"`
	PredictionTimeout time.Duration `koanf:"prediction_timeout" validate:"gt=0"`
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "Niney Life Pickr Smart Server",
			Version:     "1.0.0",
			Environment: defaultEnvironment,
			Debug:       true,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		CORS: CORSConfig{
			Origins: []string{"http://localhost:3000", "http://localhost:4000"},
		},
		API: APIConfig{
			Prefix:            "/api",
			DocsEnabled:       true,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		ML: MLConfig{
			ModelPath:         "models/",
			MaxBatchSize:      32,
			PredictionTimeout: 30 * time.Second,
		},
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DocsURL returns the interactive docs address, or "" when docs are
// disabled.
func (c *Config) DocsURL() string {
	if !c.API.DocsEnabled {
		return ""
	}
	return fmt.Sprintf("http://%s:%d/swagger/index.html", c.Server.Host, c.Server.Port)
}
