package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/denismitr/intset/registry"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Set      SetConfig      `yaml:"set"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shell    ShellConfig    `yaml:"shell"`
}

type RegistryConfig struct {
	Slots int `yaml:"slots"`
}

type SetConfig struct {
	// Capacity is the max number of items per set, 0 means unbounded
	Capacity int `yaml:"capacity"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

type ShellConfig struct {
	Prompt   string `yaml:"prompt"`
	EchoMenu bool   `yaml:"echo_menu"`
}

func Default() *Config {
	return &Config{
		Registry: RegistryConfig{Slots: registry.DefaultSlots},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Shell:    ShellConfig{Prompt: "> ", EchoMenu: true},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %s", path)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not load config %s", path)
	}

	return cfg, nil
}

func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "malformed yaml")
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Registry.Slots <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "registry.slots must be positive, got %d", c.Registry.Slots)
	}

	if c.Set.Capacity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "set.capacity must not be negative, got %d", c.Set.Capacity)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown logging.level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown logging.format %q", c.Logging.Format)
	}

	return nil
}
