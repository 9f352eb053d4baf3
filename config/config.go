package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/trackside/core/metrics"
	"github.com/kilianp07/trackside/infra/mqtt"
)

type Config struct {
	Vehicle  VehicleConfig  `json:"vehicle"`
	Analysis AnalysisConfig `json:"analysis"`
	MQTT     mqtt.Config    `json:"mqtt"`
	Metrics  metrics.Config `json:"metrics"`
}

// Load reads the configuration file at path, applies TRACKSIDE_ environment
// overrides and fills defaults. An empty path yields the defaults with only
// environment overrides applied.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides. The callback emits dot-delimited keys,
	// so the provider must unflatten on "." for them to reach nested structs.
	if err := k.Load(env.Provider("TRACKSIDE_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "trackside_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Vehicle.SetDefaults()
	cfg.Analysis.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Vehicle.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
