package plan

import (
	"time"

	"cycling-coach/internal/workout"
)

// Phase is a multi-week block of a plan with a distinct emphasis
type Phase string

const (
	PhaseBase       Phase = "base"
	PhaseBuild      Phase = "build"
	PhasePeak       Phase = "peak"
	PhaseRecovery   Phase = "recovery"
	PhaseTransition Phase = "transition"
)

// DisplayName returns a capitalized phase name for UI
func (p Phase) DisplayName() string {
	switch p {
	case PhaseBase:
		return "Base"
	case PhaseBuild:
		return "Build"
	case PhasePeak:
		return "Peak"
	case PhaseRecovery:
		return "Recovery"
	case PhaseTransition:
		return "Transition"
	}
	return string(p)
}

// Model is a macro-level intensity-distribution strategy
type Model string

const (
	ModelPolarized   Model = "polarized"
	ModelPyramidal   Model = "pyramidal"
	ModelTraditional Model = "traditional"
	ModelBlock       Model = "block"
)

// Profile is the athlete input to plan generation. The engine never
// mutates it.
type Profile struct {
	AthleteID   string
	Name        string
	FTP         int // watts
	Level       workout.Level
	WeeklyHours float64
	Goals       []string
}

// Event is a target event anchoring the plan
type Event struct {
	Name     string
	Date     time.Time
	Priority string // "A", "B", "C"
}

// Distribution is the share of weekly training time per zone. Shares are
// model-relative and are deliberately not renormalized after phase
// perturbation; Total exposes the drift.
type Distribution struct {
	Z1 float64
	Z2 float64
	Z3 float64
	Z4 float64
	Z5 float64
}

// Total returns the sum of all shares
func (d Distribution) Total() float64 {
	return d.Z1 + d.Z2 + d.Z3 + d.Z4 + d.Z5
}

// TrainingLoad is a week's load target
type TrainingLoad struct {
	TSSTarget         float64
	HoursTarget       float64
	Intensity         Distribution
	KeyWorkouts       []string
	VolumeEmphasis    float64 // 0..1
	IntensityEmphasis float64 // 0..1
}

// DaySession describes one day in a weekly template. Rest days carry
// only the day name and date.
type DaySession struct {
	Day             string // "monday".."sunday"
	Date            time.Time
	Rest            bool
	Type            string // workout type, empty for rest
	DurationMinutes int
	Intensity       string // target zone, e.g. "Z2"
	EstimatedTSS    float64
}

// WeeklyPlan is one week of the periodized plan
type WeeklyPlan struct {
	WeekNumber       int
	Phase            Phase
	StartDate        time.Time
	Load             TrainingLoad
	Days             []DaySession // always 7 entries, monday first
	Focus            string
	Rationale        string
	Adaptations      []string
	RecoveryEmphasis float64
}

// Plan is a complete periodization plan
type Plan struct {
	AthleteID    string
	StartDate    time.Time
	EndDate      time.Time
	TargetEvents []Event
	Model        Model
	Weeks        []WeeklyPlan
	TotalWeeks   int
	CurrentFTP   int
	ProjectedFTP int
}
