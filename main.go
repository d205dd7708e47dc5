package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cycling-coach/internal/config"
	"cycling-coach/internal/export"
	"cycling-coach/internal/plan"
	"cycling-coach/internal/store"
	"cycling-coach/internal/tui"
	"cycling-coach/internal/workout"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("Set your name, FTP, experience level and weekly hours.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	profile := cfg.Profile()
	if err := db.SaveProfile(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	replan := len(os.Args) > 1 && os.Args[1] == "replan"

	p, err := db.LatestPlan(profile.AthleteID)
	if errors.Is(err, store.ErrPlanNotFound) || replan {
		p, err = buildPlan(cfg, profile)
		if err != nil {
			return fmt.Errorf("building plan: %w", err)
		}
		if _, err := db.SavePlan(p); err != nil {
			return fmt.Errorf("saving plan: %w", err)
		}
		fmt.Printf("Generated a %d-week %s plan starting %s.\n",
			p.TotalWeeks, p.Model, p.StartDate.Format("2006-01-02"))
	} else if err != nil {
		return fmt.Errorf("loading plan: %w", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "export" {
		dir := "velocoach-export"
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		return exportPlan(p, profile, dir)
	}

	// Launch TUI
	app := tui.NewApp(db, profile)
	prog := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// buildPlan generates a plan from the configured horizon, anchored to
// the highest-priority event when one is configured.
func buildPlan(cfg *config.Config, profile plan.Profile) (*plan.Plan, error) {
	events := cfg.PlanEvents()
	weeks := cfg.Plan.Weeks

	start := nextMonday(time.Now())
	if e, ok := plan.PrimaryEvent(events); ok {
		start = plan.StartForEvent(e.Date, weeks)
	}

	return plan.BuildPlan(profile, events, weeks, plan.Model(cfg.Plan.Model), start)
}

func nextMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// exportPlan writes the plan overview as JSON plus a ZWO file and a
// Markdown report per scheduled session into dir.
func exportPlan(p *plan.Plan, profile plan.Profile, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	planPath := filepath.Join(dir, "plan.json")
	f, err := os.Create(planPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", planPath, err)
	}
	if err := export.WritePlanJSON(f, p); err != nil {
		f.Close()
		return fmt.Errorf("writing plan JSON: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	written := 1
	for _, week := range p.Weeks {
		for _, day := range week.Days {
			if day.Rest || day.Type == "" {
				continue
			}
			// Template types the builder doesn't model (openers)
			// have no structured file to write.
			if _, ok := workout.ParseType(day.Type); !ok {
				continue
			}
			w, _, err := workout.Build(day.Type, day.DurationMinutes, string(profile.Level), profile.FTP)
			if err != nil {
				continue
			}
			base := fmt.Sprintf("week%02d_%s_%s", week.WeekNumber, day.Day, day.Type)

			path := filepath.Join(dir, base+".zwo")
			wf, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := export.WriteZWO(wf, w); err != nil {
				wf.Close()
				return fmt.Errorf("writing %s: %w", path, err)
			}
			if err := wf.Close(); err != nil {
				return err
			}

			path = filepath.Join(dir, base+".md")
			rf, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := export.WriteReport(rf, w, time.Now()); err != nil {
				rf.Close()
				return fmt.Errorf("writing %s: %w", path, err)
			}
			if err := rf.Close(); err != nil {
				return err
			}

			written += 2
		}
	}

	fmt.Printf("Exported %d files to %s\n", written, dir)
	return nil
}
