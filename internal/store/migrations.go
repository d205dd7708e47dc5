package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Athlete profiles (one row per athlete)
		`CREATE TABLE IF NOT EXISTS profiles (
			athlete_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			ftp INTEGER NOT NULL,
			level TEXT NOT NULL,
			weekly_hours REAL NOT NULL,
			goals TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Generated plans. Weekly structure and target events are stored
		// as JSON blobs; the scalar columns exist for listing and lookup.
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			athlete_id TEXT NOT NULL,
			model TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			total_weeks INTEGER NOT NULL,
			current_ftp INTEGER NOT NULL,
			projected_ftp INTEGER NOT NULL,
			events TEXT,
			weeks TEXT NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plans_athlete ON plans(athlete_id)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
