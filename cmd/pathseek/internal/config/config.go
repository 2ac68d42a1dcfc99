// Package config loads the pathseek CLI configuration.
//
// Priority: flags > environment > file > defaults. Flags are applied by the
// commands; this package handles the rest.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level CLI configuration.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Route     RouteConfig     `yaml:"route"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

// SearchConfig tunes the uninformed searches.
type SearchConfig struct {
	ClosedSet     bool          `yaml:"closed_set"`
	MaxExpansions int           `yaml:"max_expansions"`
	DLSLimit      int           `yaml:"dls_limit"`
	IDSMaxDepth   int           `yaml:"ids_max_depth"`
	Timeout       time.Duration `yaml:"timeout"`
}

// RouteConfig drives the route command.
type RouteConfig struct {
	Map       string `yaml:"map"`
	Start     string `yaml:"start"`
	Goal      string `yaml:"goal"`
	Heuristic string `yaml:"heuristic"`
}

// TelemetryConfig selects the OpenTelemetry exporter.
type TelemetryConfig struct {
	Exporter string `yaml:"exporter"`
}

// LogConfig sets the slog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Heuristic names accepted by RouteConfig.Heuristic.
const (
	HeuristicSLD       = "sld"
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			ClosedSet:   true,
			DLSLimit:    17,
			IDSMaxDepth: 20,
			Timeout:     30 * time.Second,
		},
		Route: RouteConfig{
			Map:       "MarsMap",
			Start:     "8,8",
			Goal:      "1,1",
			Heuristic: HeuristicSLD,
		},
		Telemetry: TelemetryConfig{Exporter: "none"},
		Log:       LogConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the YAML file at path (if non-empty
// and present) and PATHSEEK_* environment variables, then validates.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("PATHSEEK_CLOSED_SET"); v != "" {
		cfg.Search.ClosedSet = v == "true" || v == "1"
	}
	if v := os.Getenv("PATHSEEK_MAX_EXPANSIONS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxExpansions = i
		}
	}
	if v := os.Getenv("PATHSEEK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Search.Timeout = d
		}
	}
	if v := os.Getenv("PATHSEEK_MAP"); v != "" {
		cfg.Route.Map = v
	}
	if v := os.Getenv("PATHSEEK_TELEMETRY_EXPORTER"); v != "" {
		cfg.Telemetry.Exporter = v
	}
	if v := os.Getenv("PATHSEEK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must be >= 0")
	}
	if c.Search.DLSLimit < 0 {
		return fmt.Errorf("dls_limit must be >= 0")
	}
	if c.Search.IDSMaxDepth < 0 {
		return fmt.Errorf("ids_max_depth must be >= 0")
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	switch c.Route.Heuristic {
	case HeuristicSLD, HeuristicManhattan, HeuristicZero:
	default:
		return fmt.Errorf("unknown heuristic %q", c.Route.Heuristic)
	}
	switch c.Telemetry.Exporter {
	case "none", "stdout":
	default:
		return fmt.Errorf("unknown telemetry exporter %q", c.Telemetry.Exporter)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
