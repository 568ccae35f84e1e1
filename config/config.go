package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"day-planner/internal/model"
	"day-planner/internal/planning"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Day planner specifics
	Planner        PlannerConfig
	Memos          MemosConfig
	Persistence    PersistenceConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type PlannerConfig struct {
	DayStart        model.ClockTime
	DefaultEnd      model.ClockTime
	Timezone        string
	DefaultStrategy planning.Strategy
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

// Enabled reports whether tasks are persisted to Memos instead of process memory.
func (c MemosConfig) Enabled() bool {
	return c.URL != "" && c.AccessToken != ""
}

type PersistenceConfig struct {
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Planner
	var err error
	if cfg.Planner.DayStart, err = model.ParseClock(viper.GetString("planner.day_start")); err != nil {
		return nil, fmt.Errorf("planner.day_start: %w", err)
	}
	if cfg.Planner.DefaultEnd, err = model.ParseClock(viper.GetString("planner.default_end")); err != nil {
		return nil, fmt.Errorf("planner.default_end: %w", err)
	}
	if cfg.Planner.DefaultStrategy, err = planning.ParseStrategy(viper.GetString("planner.default_strategy")); err != nil {
		return nil, fmt.Errorf("planner.default_strategy: %w", err)
	}
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
		return nil, fmt.Errorf("planner.timezone: %w", err)
	}

	// Memos
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	if memosURL := viper.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	// Persistence
	cfg.Persistence.Timeout = viper.GetDuration("persistence.timeout")
	cfg.Persistence.RetryAttempts = viper.GetInt("persistence.retry_attempts")
	cfg.Persistence.RetryDelay = viper.GetDuration("persistence.retry_delay")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Planner.DefaultEnd.Minutes() <= c.Planner.DayStart.Minutes() {
		return errors.New("planner.default_end must be after planner.day_start")
	}
	if c.Persistence.Timeout <= 0 {
		return errors.New("persistence.timeout must be positive")
	}
	if c.Persistence.RetryDelay <= 0 {
		return errors.New("persistence.retry_delay must be positive")
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return errors.New("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	// Planner defaults
	viper.SetDefault("planner.day_start", "09:00")
	viper.SetDefault("planner.default_end", "18:00")
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.default_strategy", string(planning.StrategyEatTheFrog))

	// Persistence defaults
	viper.SetDefault("persistence.timeout", "10s")
	viper.SetDefault("persistence.retry_attempts", 3)
	viper.SetDefault("persistence.retry_delay", "2s")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
