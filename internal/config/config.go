// Package config loads the gallery server configuration from a YAML file,
// an optional .env file and DAISY_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "daisy.yaml"

// Environment variables overriding the file.
const (
	EnvAddr     = "DAISY_ADDR"
	EnvTitle    = "DAISY_TITLE"
	EnvTheme    = "DAISY_THEME"
	EnvLogLevel = "DAISY_LOG_LEVEL"
)

// Themes shipped with daisyUI that the gallery accepts.
var Themes = []string{
	"light", "dark", "cupcake", "bumblebee", "emerald", "corporate", "synthwave", "retro",
	"cyberpunk", "valentine", "halloween", "garden", "forest", "aqua", "lofi", "pastel",
	"fantasy", "wireframe", "black", "luxury", "dracula", "cmyk", "autumn", "business",
	"acid", "lemonade", "night", "coffee", "winter", "dim", "nord", "sunset",
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gallery GalleryConfig `yaml:"gallery"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

type GalleryConfig struct {
	Title string `yaml:"title" validate:"required,max=80"`
	Theme string `yaml:"theme" validate:"required,daisy_theme"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error fatal"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: "127.0.0.1:8080"},
		Gallery: GalleryConfig{Title: "daisy components", Theme: "light"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path (DefaultPath when empty), then .env, then the environment.
// A missing file is only an error when path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to decode config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	// .env is optional; existing environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvTitle); v != "" {
		c.Gallery.Title = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Gallery.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// normalize lowercases names that daisyUI and the logger match exactly,
// whether they came from the file or the environment.
func (c *Config) normalize() {
	c.Gallery.Theme = strings.ToLower(strings.TrimSpace(c.Gallery.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
	validatorErr  error
)

func validatorInstance() (*validator.Validate, error) {
	validatorOnce.Do(func() {
		validateInst, validatorErr = newValidator(IsTheme)
	})
	return validateInst, validatorErr
}

func newValidator(isTheme func(string) bool) (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("daisy_theme", func(fl validator.FieldLevel) bool {
		return isTheme(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("unable to register daisy_theme validation: %w", err)
	}
	return v, nil
}

// Validate checks the configuration and reports the first failing field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	v, err := validatorInstance()
	if err != nil {
		return err
	}
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsTheme reports whether name is a known daisyUI theme.
func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
