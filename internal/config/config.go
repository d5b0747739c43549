// Package config loads settings from .env, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cosmos-daily/pkg/log"
)

// DefaultPath is where Load looks for the YAML file when none is given.
const DefaultPath = "config/cosmos.yaml"

// Config holds every runtime setting.
type Config struct {
	Port string

	APODEndpoint string
	APODAPIKey   string
	FetchTimeout time.Duration

	Theme string

	MountTTL      time.Duration
	ViewWait      time.Duration
	PollDelay     time.Duration
	RateLimit     int
	RateWindow    time.Duration
	StaticDir     string
	LogLevel      string
	LogFormat     string
	ShutdownGrace time.Duration
}

// rawConfig represents the YAML structure.
type rawConfig struct {
	Server struct {
		Port          string `yaml:"port"`
		StaticDir     string `yaml:"static_dir"`
		ShutdownGrace int    `yaml:"shutdown_grace_seconds"`
	} `yaml:"server"`
	APOD struct {
		Endpoint       string `yaml:"endpoint"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"apod"`
	View struct {
		Theme           string `yaml:"theme"`
		MountTTLMinutes int    `yaml:"mount_ttl_minutes"`
		WaitSeconds     int    `yaml:"wait_seconds"`
		PollDelayMS     int    `yaml:"poll_delay_ms"`
	} `yaml:"view"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute"`
	} `yaml:"rate_limit"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:          "3000",
		APODEndpoint:  "https://api.nasa.gov/planetary/apod",
		APODAPIKey:    "DEMO_KEY",
		FetchTimeout:  15 * time.Second,
		Theme:         "cosmos",
		MountTTL:      10 * time.Minute,
		ViewWait:      10 * time.Second,
		PollDelay:     time.Second,
		RateLimit:     10,
		RateWindow:    time.Minute,
		StaticDir:     "./static",
		LogLevel:      "info",
		LogFormat:     "json",
		ShutdownGrace: 5 * time.Second,
	}
}

// Load builds the configuration in three layers: defaults, then the YAML
// file at path (a missing file is fine), then environment variables.
// A .env file in the working directory is loaded into the environment
// first without overriding variables that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if err := cfg.applyFile(path); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.Port, raw.Server.Port)
	setString(&c.StaticDir, raw.Server.StaticDir)
	setDuration(&c.ShutdownGrace, raw.Server.ShutdownGrace, time.Second)
	setString(&c.APODEndpoint, raw.APOD.Endpoint)
	setString(&c.APODAPIKey, raw.APOD.APIKey)
	setDuration(&c.FetchTimeout, raw.APOD.TimeoutSeconds, time.Second)
	setString(&c.Theme, raw.View.Theme)
	setDuration(&c.MountTTL, raw.View.MountTTLMinutes, time.Minute)
	setDuration(&c.ViewWait, raw.View.WaitSeconds, time.Second)
	setDuration(&c.PollDelay, raw.View.PollDelayMS, time.Millisecond)
	if raw.RateLimit.PerMinute > 0 {
		c.RateLimit = raw.RateLimit.PerMinute
	}
	setString(&c.LogLevel, raw.Log.Level)
	setString(&c.LogFormat, raw.Log.Format)
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Port, os.Getenv("PORT"))
	setString(&c.APODEndpoint, os.Getenv("APOD_ENDPOINT"))
	setString(&c.APODAPIKey, os.Getenv("APOD_API_KEY"))
	setString(&c.Theme, os.Getenv("COSMOS_THEME"))
	setString(&c.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&c.LogFormat, os.Getenv("LOG_FORMAT"))

	setDuration(&c.FetchTimeout, envInt("APOD_TIMEOUT_SECONDS"), time.Second)
	setDuration(&c.MountTTL, envInt("MOUNT_TTL_MINUTES"), time.Minute)
	if n := envInt("RATE_LIMIT_PER_MINUTE"); n > 0 {
		c.RateLimit = n
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.LogFormat)
	}
	return nil
}

// envInt reads a positive integer variable. Invalid values are reported
// and ignored so the previous layer's value stays in effect.
func envInt(name string) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.GlobalWarn("invalid environment value, using default", "name", name, "value", value)
		return 0
	}
	return n
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, n int, unit time.Duration) {
	if n > 0 {
		*dst = time.Duration(n) * unit
	}
}
