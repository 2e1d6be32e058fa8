// internal/config/config.go
//
// Configuration for both frontends (terminal game and API server).
// Sources, lowest to highest precedence:
//   1. Built-in defaults.
//   2. An optional YAML file (wordgrid.yaml next to the binary, or the
//      path in WORDGRID_CONFIG).
//   3. Environment variables, with a .env file loaded first via godotenv.
//
// The word list paths may be empty, in which case the embedded defaults
// from the assets package are used.

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultLogLevel       = "info"
	DefaultTheme          = "dark"
	DefaultPort           = 5175
	DefaultDBPath         = "./data/wordgrid.db"
	DefaultJWTExpiresDays = 14
	DefaultDailySalt      = "local_dev_salt"
	DefaultClientOrigin   = "http://localhost:5173"
	DefaultCookieName     = "wordgrid_token"
)

// Config is the full application configuration.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Theme       string `yaml:"theme"` // "dark" or "light"
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Port           int    `yaml:"port"`
	DBPath         string `yaml:"db_path"`
	JWTSecret      string `yaml:"jwt_secret"`
	JWTExpiresDays int    `yaml:"jwt_expires_days"`
	DailySalt      string `yaml:"daily_salt"`
	ClientOrigin   string `yaml:"client_origin"`
	CookieName     string `yaml:"cookie_name"`
}

// Default returns a Config with sensible default values.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Server: ServerConfig{
			Port:           DefaultPort,
			DBPath:         DefaultDBPath,
			JWTExpiresDays: DefaultJWTExpiresDays,
			DailySalt:      DefaultDailySalt,
			ClientOrigin:   DefaultClientOrigin,
			CookieName:     DefaultCookieName,
		},
	}
}

// Load assembles the configuration from defaults, the YAML file, and the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path := getEnv("WORDGRID_CONFIG", "wordgrid.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overlays environment variables on top of file values.
func (c *Config) applyEnv() {
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Theme, "WORDGRID_THEME")
	setString(&c.AnswersFile, "WORDGRID_ANSWERS_FILE")
	setString(&c.AllowedFile, "WORDGRID_ALLOWED_FILE")

	setInt(&c.Server.Port, "PORT")
	setString(&c.Server.DBPath, "DB_PATH")
	setString(&c.Server.JWTSecret, "JWT_SECRET")
	setInt(&c.Server.JWTExpiresDays, "JWT_EXPIRES_DAYS")
	setString(&c.Server.DailySalt, "DAILY_SALT")
	setString(&c.Server.ClientOrigin, "CLIENT_ORIGIN")
	setString(&c.Server.CookieName, "COOKIE_NAME")
}

func (c *Config) validate() error {
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("config: unknown theme %q (want \"dark\" or \"light\")", c.Theme)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if c.Server.JWTExpiresDays <= 0 {
		return fmt.Errorf("config: jwt_expires_days must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
