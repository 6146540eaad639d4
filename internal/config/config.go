package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"campusgig/internal/logger"
)

type Config struct {
	Client struct {
		Env string `yaml:"env"`
	} `yaml:"client"`

	API struct {
		// Base URL including the /api prefix, e.g. http://localhost:8000/api
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`

	Session struct {
		// Path of the local sqlite file holding the persisted session
		Path string `yaml:"path"`
	} `yaml:"session"`

	Notifications struct {
		PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	} `yaml:"notifications"`
}

var AppConfig *Config

// LoadConfig reads config.yaml when present and lets environment variables win.
// A .env file is honored the same way the rest of the stack does it. A config
// file that exists but does not parse is an error, never a silent fallback to
// the defaults.
func LoadConfig() error {
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if f, err := os.Open(configPath); err == nil {
		decodeErr := yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		// An empty file decodes to io.EOF and means "all defaults".
		if decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
			return fmt.Errorf("parse config file %s: %w", configPath, decodeErr)
		}
	}

	if v := os.Getenv("CAMPUSGIG_ENV"); v != "" {
		cfg.Client.Env = v
	}
	if v := os.Getenv("CAMPUSGIG_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CAMPUSGIG_SESSION_PATH"); v != "" {
		cfg.Session.Path = v
	}
	if v := os.Getenv("CAMPUSGIG_POLL_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Notifications.PollIntervalSeconds = n
		}
	}

	AppConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration, loading defaults when needed.
func GetConfig() *Config {
	if AppConfig == nil {
		if err := LoadConfig(); err != nil {
			logger.Fatal("load config failed", "error", err.Error())
		}
	}
	return AppConfig
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Client.Env = "development"
	cfg.API.BaseURL = "http://localhost:8000/api"
	cfg.Session.Path = defaultSessionPath()
	cfg.Notifications.PollIntervalSeconds = 30
	return cfg
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "campusgig-session.db"
	}
	return filepath.Join(home, ".campusgig", "session.db")
}
