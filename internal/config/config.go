package config

import (
	"fmt"
	"os"

	"pricing-simulator/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig `yaml:"server"`
	LogLevel string       `yaml:"log_level"`
	Model    ModelConfig  `yaml:"model"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// ModelConfig exposes the model constants as configuration. Zero values take
// the defaults from pricing.DefaultParams.
type ModelConfig struct {
	MinObservations    int     `yaml:"min_observations"`
	DefaultElasticity  float64 `yaml:"default_elasticity"`
	FallbackBaseVolume float64 `yaml:"fallback_base_volume"`
	GridPoints         int     `yaml:"grid_points"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		LogLevel: "info",
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and defaults config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if err := c.ModelParams().Validate(); err != nil {
		return fmt.Errorf("model config invalid: %w", err)
	}
	return nil
}

// ModelParams converts the model section to pricing.Params, filling defaults
// for unset fields. A default elasticity of exactly 0 cannot be told apart
// from "unset", so a literal 0 falls back to the default; configure a small
// non-zero value if near-zero assumed elasticity is really wanted.
func (c *Config) ModelParams() pricing.Params {
	p := pricing.DefaultParams()
	if c.Model.MinObservations != 0 {
		p.MinObservations = c.Model.MinObservations
	}
	if c.Model.DefaultElasticity != 0 {
		p.DefaultElasticity = c.Model.DefaultElasticity
	}
	if c.Model.FallbackBaseVolume != 0 {
		p.FallbackBaseVolume = c.Model.FallbackBaseVolume
	}
	if c.Model.GridPoints != 0 {
		p.GridPoints = c.Model.GridPoints
	}
	return p
}
