package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/workout"
)

// Config represents the application configuration
type Config struct {
	Athlete AthleteConfig `json:"athlete"`
	Plan    PlanConfig    `json:"plan"`
	Events  []EventConfig `json:"events,omitempty"`
}

// AthleteConfig holds the athlete's profile settings
type AthleteConfig struct {
	Name        string   `json:"name"`
	FTP         int      `json:"ftp"`
	Level       string   `json:"level"`
	WeeklyHours float64  `json:"weekly_hours"`
	Goals       []string `json:"goals,omitempty"`
}

// PlanConfig holds plan generation preferences
type PlanConfig struct {
	Model string `json:"model"`
	Weeks int    `json:"weeks"`
}

// EventConfig is a target event. Dates use the "2006-01-02" layout.
type EventConfig struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const dateLayout = "2006-01-02"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Athlete: AthleteConfig{
			Level:       string(workout.LevelIntermediate),
			WeeklyHours: 8,
		},
		Plan: PlanConfig{
			Model: string(plan.ModelPolarized),
			Weeks: 12,
		},
	}
}

// Load reads the configuration from ~/.velocoach/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Athlete.Level == "" {
		cfg.Athlete.Level = defaults.Athlete.Level
	}
	if cfg.Athlete.WeeklyHours == 0 {
		cfg.Athlete.WeeklyHours = defaults.Athlete.WeeklyHours
	}
	if cfg.Plan.Model == "" {
		cfg.Plan.Model = defaults.Plan.Model
	}
	if cfg.Plan.Weeks == 0 {
		cfg.Plan.Weeks = defaults.Plan.Weeks
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.velocoach/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		Athlete: AthleteConfig{
			Name:        "YOUR_NAME",
			FTP:         250,
			Level:       string(workout.LevelIntermediate),
			WeeklyHours: 8,
			Goals:       []string{"improve FTP"},
		},
		Plan: PlanConfig{
			Model: string(plan.ModelPolarized),
			Weeks: 12,
		},
		Events: []EventConfig{
			{Name: "Example Gran Fondo", Date: "2026-06-15", Priority: "A"},
		},
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Athlete.Name == "" || c.Athlete.Name == "YOUR_NAME" {
		return errors.New("athlete.name is required")
	}
	if c.Athlete.FTP <= 0 {
		return fmt.Errorf("athlete.ftp must be a positive wattage, got %d", c.Athlete.FTP)
	}
	if c.Athlete.WeeklyHours < 0 {
		return fmt.Errorf("athlete.weekly_hours must not be negative, got %v", c.Athlete.WeeklyHours)
	}
	if c.Plan.Weeks <= 0 {
		return fmt.Errorf("plan.weeks must be positive, got %d", c.Plan.Weeks)
	}

	for _, e := range c.Events {
		if e.Name == "" {
			return errors.New("events entries need a name")
		}
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			return fmt.Errorf("event %q has invalid date %q: use YYYY-MM-DD", e.Name, e.Date)
		}
	}

	return nil
}

// Profile converts the athlete section to a plan profile. Unknown
// levels fall back the same way the session builder does.
func (c *Config) Profile() plan.Profile {
	level, _ := workout.ParseLevel(c.Athlete.Level)
	return plan.Profile{
		AthleteID:   c.Athlete.Name,
		Name:        c.Athlete.Name,
		FTP:         c.Athlete.FTP,
		Level:       level,
		WeeklyHours: c.Athlete.WeeklyHours,
		Goals:       c.Athlete.Goals,
	}
}

// PlanEvents converts configured events to plan events. Validate must
// have accepted the config first; unparseable dates are skipped here.
func (c *Config) PlanEvents() []plan.Event {
	if len(c.Events) == 0 {
		return nil
	}
	events := make([]plan.Event, 0, len(c.Events))
	for _, e := range c.Events {
		date, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		events = append(events, plan.Event{
			Name:     e.Name,
			Date:     date,
			Priority: e.Priority,
		})
	}
	return events
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".velocoach", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".velocoach"), nil
}
