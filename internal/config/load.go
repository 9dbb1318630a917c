package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/nineylabs/smart-server/internal/validation"
)

// ConfigDirEnvVar overrides the directory searched for YAML files.
const ConfigDirEnvVar = "CONFIG_DIR"

const (
	defaultConfigDir   = "config"
	defaultEnvironment = "development"
)

// Load resolves the configuration in strict precedence order:
// built-in defaults, then base.yml, then the YAML file named after the
// environment, then environment variables. Only server.smart.host and
// server.smart.port are consumed from the files. Missing or malformed
// files are treated as empty; a recognized environment variable that
// fails type coercion aborts startup.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	dir := configDir()
	applyServerFile(k, findConfigFile(dir, "base"))
	applyServerFile(k, findConfigFile(dir, environmentName()))

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if err := coerceTypedFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := validation.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func configDir() string {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir
	}
	return defaultConfigDir
}

func environmentName() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return defaultEnvironment
}

// findConfigFile returns the first existing dir/name.yml or
// dir/name.yaml, or "" when neither exists.
func findConfigFile(dir, name string) string {
	for _, ext := range []string{".yml", ".yaml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// applyServerFile merges exactly server.smart.host and
// server.smart.port from one YAML file. All other keys in the file are
// ignored, and an unreadable or malformed file counts as empty.
func applyServerFile(k *koanf.Koanf, path string) {
	if path == "" {
		return
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(path), yaml.Parser()); err != nil {
		return
	}

	if v := fileK.Get("server.smart.host"); v != nil {
		_ = k.Set("server.host", v)
	}
	if v := fileK.Get("server.smart.port"); v != nil {
		_ = k.Set("server.port", v)
	}
}

// envTransform maps recognized environment variable names onto koanf
// paths. Unrecognized variables are skipped so arbitrary process
// environment cannot leak into the configuration.
func envTransform(key string) string {
	mappings := map[string]string{
		"app_name":    "app.name",
		"version":     "app.version",
		"environment": "app.environment",
		"debug":       "app.debug",

		"host": "server.host",
		"port": "server.port",

		"log_level":  "logging.level",
		"log_format": "logging.format",

		"cors_origins": "cors.origins",

		"api_prefix":          "api.prefix",
		"docs_enabled":        "api.docs_enabled",
		"rate_limit_requests": "api.rate_limit_requests",
		"rate_limit_window":   "api.rate_limit_window",

		"model_path":         "ml.model_path",
		"max_batch_size":     "ml.max_batch_size",
		"prediction_timeout": "ml.prediction_timeout",
	}
	return mappings[strings.ToLower(key)]
}

// Paths that arrive as strings from the environment but hold typed
// values. Coercion failures are startup errors, never deferred to
// request time.
var (
	intPaths      = []string{"server.port", "api.rate_limit_requests", "ml.max_batch_size"}
	boolPaths     = []string{"app.debug", "api.docs_enabled"}
	durationPaths = []string{"api.rate_limit_window", "ml.prediction_timeout"}
)

func coerceTypedFields(k *koanf.Koanf) error {
	for _, path := range intPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", path, s)
		}
		if err := k.Set(path, n); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}

	for _, path := range boolPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		b, err := parseBool(s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := k.Set(path, b); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}

	for _, path := range durationPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s: %q is not a duration", path, s)
		}
		if err := k.Set(path, d); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}

	// CORS origins arrive as a JSON-encoded array string.
	if s, ok := k.Get("cors.origins").(string); ok {
		var origins []string
		if err := json.Unmarshal([]byte(s), &origins); err != nil {
			return fmt.Errorf("cors.origins: %q is not a JSON string array", s)
		}
		if err := k.Set("cors.origins", origins); err != nil {
			return fmt.Errorf("set cors.origins: %w", err)
		}
	}

	return nil
}

// parseBool accepts the usual truthy and falsy spellings.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}
