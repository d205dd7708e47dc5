package config

import (
	"strings"
	"testing"

	"cycling-coach/internal/workout"
)

func validConfig() Config {
	return Config{
		Athlete: AthleteConfig{
			Name:        "Test Rider",
			FTP:         280,
			Level:       "intermediate",
			WeeklyHours: 8,
		},
		Plan: PlanConfig{
			Model: "polarized",
			Weeks: 12,
		},
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Athlete.Level != "intermediate" {
		t.Errorf("Athlete.Level = %q, want %q", cfg.Athlete.Level, "intermediate")
	}
	if cfg.Athlete.WeeklyHours != 8 {
		t.Errorf("Athlete.WeeklyHours = %v, want 8", cfg.Athlete.WeeklyHours)
	}
	if cfg.Plan.Model != "polarized" {
		t.Errorf("Plan.Model = %q, want %q", cfg.Plan.Model, "polarized")
	}
	if cfg.Plan.Weeks != 12 {
		t.Errorf("Plan.Weeks = %d, want 12", cfg.Plan.Weeks)
	}

	// Athlete identity is never defaulted
	if cfg.Athlete.Name != "" {
		t.Errorf("Athlete.Name should be empty, got %q", cfg.Athlete.Name)
	}
	if cfg.Athlete.FTP != 0 {
		t.Errorf("Athlete.FTP should be zero, got %d", cfg.Athlete.FTP)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "empty name",
			mutate:      func(c *Config) { c.Athlete.Name = "" },
			expectError: true,
			errContains: "athlete.name",
		},
		{
			name:        "placeholder name",
			mutate:      func(c *Config) { c.Athlete.Name = "YOUR_NAME" },
			expectError: true,
			errContains: "athlete.name",
		},
		{
			name:        "zero ftp",
			mutate:      func(c *Config) { c.Athlete.FTP = 0 },
			expectError: true,
			errContains: "athlete.ftp",
		},
		{
			name:        "negative weekly hours",
			mutate:      func(c *Config) { c.Athlete.WeeklyHours = -2 },
			expectError: true,
			errContains: "weekly_hours",
		},
		{
			name:        "zero weeks",
			mutate:      func(c *Config) { c.Plan.Weeks = 0 },
			expectError: true,
			errContains: "plan.weeks",
		},
		{
			name: "event without name",
			mutate: func(c *Config) {
				c.Events = []EventConfig{{Date: "2026-06-15", Priority: "A"}}
			},
			expectError: true,
			errContains: "name",
		},
		{
			name: "event with bad date",
			mutate: func(c *Config) {
				c.Events = []EventConfig{{Name: "Race", Date: "15/06/2026", Priority: "A"}}
			},
			expectError: true,
			errContains: "invalid date",
		},
		{
			name: "valid event",
			mutate: func(c *Config) {
				c.Events = []EventConfig{{Name: "Race", Date: "2026-06-15", Priority: "A"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestProfileConversion(t *testing.T) {
	cfg := validConfig()
	cfg.Athlete.Goals = []string{"improve FTP"}

	p := cfg.Profile()
	if p.Name != "Test Rider" || p.FTP != 280 {
		t.Errorf("Profile() = %+v, want name and FTP carried over", p)
	}
	if p.Level != workout.LevelIntermediate {
		t.Errorf("Profile().Level = %q, want intermediate", p.Level)
	}
	if len(p.Goals) != 1 {
		t.Errorf("Profile().Goals = %v, want 1 entry", p.Goals)
	}

	// Unknown level degrades to intermediate rather than failing
	cfg.Athlete.Level = "weekend warrior"
	if got := cfg.Profile().Level; got != workout.LevelIntermediate {
		t.Errorf("Profile().Level for unknown = %q, want intermediate", got)
	}
}

func TestPlanEvents(t *testing.T) {
	cfg := validConfig()
	cfg.Events = []EventConfig{
		{Name: "Gran Fondo", Date: "2026-06-15", Priority: "A"},
		{Name: "Club TT", Date: "2026-05-01", Priority: "B"},
	}

	events := cfg.PlanEvents()
	if len(events) != 2 {
		t.Fatalf("PlanEvents() returned %d events, want 2", len(events))
	}
	if events[0].Name != "Gran Fondo" || events[0].Priority != "A" {
		t.Errorf("first event = %+v", events[0])
	}
	if got := events[0].Date.Format("2006-01-02"); got != "2026-06-15" {
		t.Errorf("first event date = %s, want 2026-06-15", got)
	}

	empty := validConfig()
	if got := empty.PlanEvents(); got != nil {
		t.Errorf("PlanEvents() with no events = %v, want nil", got)
	}
}
