package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cycling-coach/internal/plan"
)

// PlanSummary is a listing row for a stored plan, without the weekly
// structure blob.
type PlanSummary struct {
	ID           string
	AthleteID    string
	Model        plan.Model
	StartDate    time.Time
	EndDate      time.Time
	TotalWeeks   int
	CurrentFTP   int
	ProjectedFTP int
	CreatedAt    time.Time
}

// SavePlan stores a generated plan and returns its assigned ID.
func (s *Store) SavePlan(p *plan.Plan) (string, error) {
	weeks, err := json.Marshal(p.Weeks)
	if err != nil {
		return "", fmt.Errorf("encoding plan weeks: %w", err)
	}
	events, err := json.Marshal(p.TargetEvents)
	if err != nil {
		return "", fmt.Errorf("encoding plan events: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO plans (id, athlete_id, model, start_date, end_date,
			total_weeks, current_ftp, projected_ftp, events, weeks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.AthleteID, string(p.Model),
		p.StartDate.Format(time.RFC3339), p.EndDate.Format(time.RFC3339),
		p.TotalWeeks, p.CurrentFTP, p.ProjectedFTP,
		string(events), string(weeks),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetPlan retrieves a stored plan by ID.
func (s *Store) GetPlan(id string) (*plan.Plan, error) {
	row := s.db.QueryRow(`
		SELECT athlete_id, model, start_date, end_date,
			total_weeks, current_ftp, projected_ftp, events, weeks
		FROM plans WHERE id = ?`, id)
	return scanPlan(row)
}

// LatestPlan retrieves the most recently saved plan for an athlete.
func (s *Store) LatestPlan(athleteID string) (*plan.Plan, error) {
	row := s.db.QueryRow(`
		SELECT athlete_id, model, start_date, end_date,
			total_weeks, current_ftp, projected_ftp, events, weeks
		FROM plans WHERE athlete_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT 1`, athleteID)
	return scanPlan(row)
}

// ListPlans returns summaries of an athlete's stored plans, newest
// first.
func (s *Store) ListPlans(athleteID string, limit int) ([]PlanSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, athlete_id, model, start_date, end_date,
			total_weeks, current_ftp, projected_ftp, created_at
		FROM plans WHERE athlete_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, athleteID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]PlanSummary, 0)
	for rows.Next() {
		var sum PlanSummary
		var model, startDate, endDate, createdAt string
		err := rows.Scan(&sum.ID, &sum.AthleteID, &model, &startDate, &endDate,
			&sum.TotalWeeks, &sum.CurrentFTP, &sum.ProjectedFTP, &createdAt)
		if err != nil {
			return nil, err
		}
		sum.Model = plan.Model(model)
		if sum.StartDate, err = time.Parse(time.RFC3339, startDate); err != nil {
			return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
		}
		if sum.EndDate, err = time.Parse(time.RFC3339, endDate); err != nil {
			return nil, fmt.Errorf("parsing end_date %q: %w", endDate, err)
		}
		// created_at comes from SQLite's CURRENT_TIMESTAMP
		if sum.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeletePlan removes a stored plan.
func (s *Store) DeletePlan(id string) error {
	result, err := s.db.Exec(`DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func scanPlan(row *sql.Row) (*plan.Plan, error) {
	var p plan.Plan
	var model, startDate, endDate, events, weeks string
	err := row.Scan(&p.AthleteID, &model, &startDate, &endDate,
		&p.TotalWeeks, &p.CurrentFTP, &p.ProjectedFTP, &events, &weeks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Model = plan.Model(model)
	if p.StartDate, err = time.Parse(time.RFC3339, startDate); err != nil {
		return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
	}
	if p.EndDate, err = time.Parse(time.RFC3339, endDate); err != nil {
		return nil, fmt.Errorf("parsing end_date %q: %w", endDate, err)
	}
	if err := json.Unmarshal([]byte(events), &p.TargetEvents); err != nil {
		return nil, fmt.Errorf("decoding plan events: %w", err)
	}
	if err := json.Unmarshal([]byte(weeks), &p.Weeks); err != nil {
		return nil, fmt.Errorf("decoding plan weeks: %w", err)
	}
	return &p, nil
}
