package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/workout"
)

// SaveProfile stores or updates an athlete profile.
func (s *Store) SaveProfile(p plan.Profile) error {
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return fmt.Errorf("encoding profile goals: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO profiles (athlete_id, name, ftp, level, weekly_hours, goals)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(athlete_id) DO UPDATE SET
			name = excluded.name,
			ftp = excluded.ftp,
			level = excluded.level,
			weekly_hours = excluded.weekly_hours,
			goals = excluded.goals,
			updated_at = CURRENT_TIMESTAMP`,
		p.AthleteID, p.Name, p.FTP, string(p.Level), p.WeeklyHours, string(goals),
	)
	return err
}

// GetProfile retrieves an athlete profile by ID.
func (s *Store) GetProfile(athleteID string) (*plan.Profile, error) {
	row := s.db.QueryRow(`
		SELECT athlete_id, name, ftp, level, weekly_hours, goals
		FROM profiles WHERE athlete_id = ?`, athleteID)

	var p plan.Profile
	var level string
	var goals sql.NullString
	err := row.Scan(&p.AthleteID, &p.Name, &p.FTP, &level, &p.WeeklyHours, &goals)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Level = workout.Level(level)
	if goals.Valid && goals.String != "" {
		if err := json.Unmarshal([]byte(goals.String), &p.Goals); err != nil {
			return nil, fmt.Errorf("decoding profile goals: %w", err)
		}
	}
	return &p, nil
}
