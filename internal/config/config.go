package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL   = "https://pokeapi.co/api/v2/"
	DefaultTimeout      = 15 * time.Second
	DefaultSpriteSize   = 150
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 500
)

// Config holds the runtime settings of the viewer.
type Config struct {
	APIBaseURL   string        `yaml:"api_base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	SpriteSize   int           `yaml:"sprite_size"`
	LogLevel     string        `yaml:"log_level"`
	Launcher     bool          `yaml:"launcher"`
	WindowWidth  float32       `yaml:"window_width"`
	WindowHeight float32       `yaml:"window_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL:   DefaultAPIBaseURL,
		Timeout:      DefaultTimeout,
		SpriteSize:   DefaultSpriteSize,
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load builds a Config from defaults, the optional YAML file at path and
// environment overrides, in that order. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("POKEDEX_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	switch {
	case getenv("LOG_LEVEL") != "":
		c.LogLevel = getenv("LOG_LEVEL")
	case getenv("DEBUG") == "1":
		c.LogLevel = "debug"
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_base_url %q is not an absolute URL", c.APIBaseURL))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.SpriteSize <= 0 {
		errs = append(errs, fmt.Errorf("sprite_size must be positive, got %d", c.SpriteSize))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %.0fx%.0f", c.WindowWidth, c.WindowHeight))
	}

	return errors.Join(errs...)
}
