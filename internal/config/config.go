package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shiftwise/internal/calendar"
	"github.com/shiftwise/internal/work"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel          = "warn"
	DefaultMaxCarryForward   = 300
	DefaultTargetStartTime   = "09:30"
	DefaultWeeklyHoursTarget = 45
	DefaultMaxBreakMinutes   = 60
)

type Config struct {
	DatabasePath   string `yaml:"DatabasePath"`
	FullDayMinutes int    `yaml:"FullDayMinutes"`
	Use24Hour      bool   `yaml:"Use24Hour"`
	LogLevel       string `yaml:"LogLevel"`

	// Leave settings
	MaxCarryForward float64                       `yaml:"MaxCarryForward"`
	Holidays        map[string][]calendar.Holiday `yaml:"Holidays"`

	// Goals
	TargetStartTime   string  `yaml:"TargetStartTime"`
	WeeklyHoursTarget float64 `yaml:"WeeklyHoursTarget"`
	MaxBreakMinutes   int     `yaml:"MaxBreakMinutes"`

	clock func() time.Time
}

// Load reads the config file, then applies .env and environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := LoadFile(getConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a yaml config, falling back to defaults when it does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(getConfigPath(), data, 0644)
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path is where Load and Save look for the config file.
func Path() string {
	return getConfigPath()
}

func getConfigPath() string {
	if p := os.Getenv("SHIFTWISE_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shiftwise.yaml")
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		home, _ := os.UserHomeDir()
		c.DatabasePath = filepath.Join(home, ".shiftwise", "data.db")
	}
	if c.FullDayMinutes == 0 {
		c.FullDayMinutes = work.DefaultFullDayMinutes
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxCarryForward == 0 {
		c.MaxCarryForward = DefaultMaxCarryForward
	}
	if c.TargetStartTime == "" {
		c.TargetStartTime = DefaultTargetStartTime
	}
	if c.WeeklyHoursTarget == 0 {
		c.WeeklyHoursTarget = DefaultWeeklyHoursTarget
	}
	if c.MaxBreakMinutes == 0 {
		c.MaxBreakMinutes = DefaultMaxBreakMinutes
	}
	if len(c.Holidays) == 0 {
		c.Holidays = calendar.DefaultFiscalYears()
	}
	c.DatabasePath = expandHome(c.DatabasePath)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SHIFTWISE_DB_PATH"); v != "" {
		c.DatabasePath = expandHome(v)
	}
	if v := os.Getenv("SHIFTWISE_FULL_DAY_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SHIFTWISE_FULL_DAY_MINUTES: %w", err)
		}
		c.FullDayMinutes = n
	}
	if v := os.Getenv("SHIFTWISE_24H"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SHIFTWISE_24H: %w", err)
		}
		c.Use24Hour = b
	}
	if v := os.Getenv("SHIFTWISE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// HolidayCalendar merges every configured fiscal-year table.
func (c *Config) HolidayCalendar() calendar.Holidays {
	return calendar.FromFiscalYears(c.Holidays)
}

// SlogLevel maps LogLevel onto a slog level; unknown values mean warn.
func (c *Config) SlogLevel() slog.Level {
	if l, ok := parseLevel(c.LogLevel); ok {
		return l
	}
	return slog.LevelWarn
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// Now is the one place the CLI reads the wall clock.
func (c *Config) Now() time.Time {
	if c.clock != nil {
		return c.clock()
	}
	return time.Now()
}

// SetClock replaces the wall clock, for tests.
func (c *Config) SetClock(clock func() time.Time) {
	c.clock = clock
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return &ValidationError{Field: "DatabasePath", Message: "Database path is required"}
	}
	if c.FullDayMinutes <= 0 {
		return &ValidationError{Field: "FullDayMinutes", Message: "Full day must be positive"}
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return &ValidationError{Field: "LogLevel", Message: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.MaxCarryForward < 0 {
		return &ValidationError{Field: "MaxCarryForward", Message: "Max carry forward cannot be negative"}
	}
	if c.WeeklyHoursTarget <= 0 {
		return &ValidationError{Field: "WeeklyHoursTarget", Message: "Weekly hours target must be positive"}
	}
	if err := c.HolidayCalendar().Validate(); err != nil {
		return &ValidationError{Field: "Holidays", Message: err.Error()}
	}
	return nil
}
