package sparsecs

import (
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultInitialCapacity is the number of entity slots a World reserves
	// up front.
	DefaultInitialCapacity = 1024

	envLogLevel        = "SPARSECS_LOG_LEVEL"
	envInitialCapacity = "SPARSECS_INITIAL_CAPACITY"
)

// Config holds the settings a World reads once at construction.
//
//	initial_capacity: 4096
//	log_level: debug
//	pools:
//	  github.com/acme/game.Camera: memory_optimized
type Config struct {
	InitialCapacity int                 `yaml:"initial_capacity"`
	LogLevel        string              `yaml:"log_level"`
	Pools           map[string]PoolKind `yaml:"pools"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		LogLevel:        zerolog.InfoLevel.String(),
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, eris.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the YAML file at path, or starts from DefaultConfig when
// path is empty, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, eris.Wrapf(err, "read config %s", path)
		}
		if cfg, err = ParseConfig(data); err != nil {
			return Config{}, eris.Wrapf(err, "config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv(envLogLevel, c.LogLevel)
	if raw := getEnv(envInitialCapacity, ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return eris.Wrapf(ErrInvalidConfig, "%s=%q: not an integer", envInitialCapacity, raw)
		}
		c.InitialCapacity = n
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return eris.Wrapf(ErrInvalidConfig, "initial_capacity must not be negative, got %d", c.InitialCapacity)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for name, kind := range c.Pools {
		if name == "" {
			return eris.Wrap(ErrInvalidConfig, "pool override with empty component name")
		}
		if _, err := kind.MarshalText(); err != nil {
			return eris.Wrapf(ErrInvalidConfig, "pool override %s: %v", name, err)
		}
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *PoolKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (k PoolKind) MarshalYAML() (any, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
