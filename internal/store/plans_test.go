package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/workout"
)

// setupTestStore creates a Store over an in-memory database
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return newStore(sqlDB)
}

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	profile := plan.Profile{
		AthleteID:   "cyclist_001",
		Name:        "Test Rider",
		FTP:         300,
		Level:       workout.LevelIntermediate,
		WeeklyHours: 8,
	}
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p, err := plan.BuildPlan(profile, nil, 8, plan.ModelPolarized, start)
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}
	return p
}

func TestSaveAndGetPlan(t *testing.T) {
	s := setupTestStore(t)
	p := testPlan(t)

	id, err := s.SavePlan(p)
	if err != nil {
		t.Fatalf("SavePlan error = %v", err)
	}
	if id == "" {
		t.Fatal("SavePlan returned empty ID")
	}

	got, err := s.GetPlan(id)
	if err != nil {
		t.Fatalf("GetPlan error = %v", err)
	}
	if got.AthleteID != p.AthleteID {
		t.Errorf("AthleteID = %q, want %q", got.AthleteID, p.AthleteID)
	}
	if got.Model != p.Model || got.TotalWeeks != p.TotalWeeks {
		t.Errorf("model/weeks = %s/%d, want %s/%d", got.Model, got.TotalWeeks, p.Model, p.TotalWeeks)
	}
	if !got.StartDate.Equal(p.StartDate) {
		t.Errorf("StartDate = %v, want %v", got.StartDate, p.StartDate)
	}
	if got.ProjectedFTP != p.ProjectedFTP {
		t.Errorf("ProjectedFTP = %d, want %d", got.ProjectedFTP, p.ProjectedFTP)
	}
	if len(got.Weeks) != len(p.Weeks) {
		t.Fatalf("got %d weeks, want %d", len(got.Weeks), len(p.Weeks))
	}
	if got.Weeks[0].Phase != p.Weeks[0].Phase {
		t.Errorf("week 1 phase = %s, want %s", got.Weeks[0].Phase, p.Weeks[0].Phase)
	}
	if len(got.Weeks[0].Days) != 7 {
		t.Errorf("week 1 has %d days after round trip", len(got.Weeks[0].Days))
	}
}

func TestGetPlanNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPlan("no-such-id")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("GetPlan(missing) error = %v, want ErrPlanNotFound", err)
	}
}

func TestLatestPlan(t *testing.T) {
	s := setupTestStore(t)

	p := testPlan(t)
	if _, err := s.SavePlan(p); err != nil {
		t.Fatalf("SavePlan error = %v", err)
	}

	second := testPlan(t)
	second.TotalWeeks = 12
	if _, err := s.SavePlan(second); err != nil {
		t.Fatalf("SavePlan error = %v", err)
	}

	latest, err := s.LatestPlan("cyclist_001")
	if err != nil {
		t.Fatalf("LatestPlan error = %v", err)
	}
	if latest.TotalWeeks != 12 {
		t.Errorf("LatestPlan.TotalWeeks = %d, want 12", latest.TotalWeeks)
	}

	if _, err := s.LatestPlan("nobody"); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("LatestPlan(unknown athlete) error = %v, want ErrPlanNotFound", err)
	}
}

func TestListPlans(t *testing.T) {
	s := setupTestStore(t)

	p := testPlan(t)
	for i := 0; i < 3; i++ {
		if _, err := s.SavePlan(p); err != nil {
			t.Fatalf("SavePlan error = %v", err)
		}
	}

	summaries, err := s.ListPlans("cyclist_001", 10)
	if err != nil {
		t.Fatalf("ListPlans error = %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("ListPlans returned %d plans, want 3", len(summaries))
	}
	for _, sum := range summaries {
		if sum.ID == "" || sum.AthleteID != "cyclist_001" {
			t.Errorf("bad summary: %+v", sum)
		}
		if sum.TotalWeeks != 8 || sum.Model != plan.ModelPolarized {
			t.Errorf("summary fields = %d/%s, want 8/polarized", sum.TotalWeeks, sum.Model)
		}
	}

	limited, err := s.ListPlans("cyclist_001", 2)
	if err != nil {
		t.Fatalf("ListPlans error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListPlans with limit 2 returned %d plans", len(limited))
	}
}

func TestDeletePlan(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.SavePlan(testPlan(t))
	if err != nil {
		t.Fatalf("SavePlan error = %v", err)
	}

	if err := s.DeletePlan(id); err != nil {
		t.Fatalf("DeletePlan error = %v", err)
	}
	if _, err := s.GetPlan(id); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("GetPlan after delete error = %v, want ErrPlanNotFound", err)
	}
	if err := s.DeletePlan(id); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("DeletePlan twice error = %v, want ErrPlanNotFound", err)
	}
}

func TestSaveAndGetProfile(t *testing.T) {
	s := setupTestStore(t)

	profile := plan.Profile{
		AthleteID:   "cyclist_001",
		Name:        "Test Rider",
		FTP:         300,
		Level:       workout.LevelAdvanced,
		WeeklyHours: 10.5,
		Goals:       []string{"improve FTP", "finish the fondo"},
	}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile error = %v", err)
	}

	got, err := s.GetProfile("cyclist_001")
	if err != nil {
		t.Fatalf("GetProfile error = %v", err)
	}
	if got.Name != profile.Name || got.FTP != profile.FTP || got.Level != profile.Level {
		t.Errorf("GetProfile = %+v, want %+v", got, profile)
	}
	if got.WeeklyHours != 10.5 {
		t.Errorf("WeeklyHours = %v, want 10.5", got.WeeklyHours)
	}
	if len(got.Goals) != 2 {
		t.Errorf("Goals = %v, want 2 entries", got.Goals)
	}

	// Upsert replaces the existing row
	profile.FTP = 310
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile (update) error = %v", err)
	}
	got, err = s.GetProfile("cyclist_001")
	if err != nil {
		t.Fatalf("GetProfile error = %v", err)
	}
	if got.FTP != 310 {
		t.Errorf("FTP after update = %d, want 310", got.FTP)
	}

	if _, err := s.GetProfile("nobody"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("GetProfile(missing) error = %v, want ErrProfileNotFound", err)
	}
}
