package plan

import (
	"fmt"
	"time"

	"cycling-coach/internal/load"
	"cycling-coach/internal/workout"
)

// BuildPlan generates a complete periodized plan: phases allocated over
// the horizon, a load target and 7-day template per week, calendar dates
// from the start date, and a projected FTP. Generation is all-or-nothing:
// invalid input fails before any week is produced.
//
// If the profile carries a priority event, callers that want the plan to
// end at the event should derive start with StartForEvent.
func BuildPlan(profile Profile, events []Event, totalWeeks int, model Model, start time.Time) (*Plan, error) {
	if totalWeeks <= 0 {
		return nil, fmt.Errorf("invalid plan length %d weeks: must be positive", totalWeeks)
	}
	if profile.FTP <= 0 {
		return nil, fmt.Errorf("invalid threshold power %d: must be positive", profile.FTP)
	}
	for _, e := range events {
		if e.Date.IsZero() {
			return nil, fmt.Errorf("event %q has no date", e.Name)
		}
	}

	base := baseTSS(profile)
	blocks := allocatePhases(totalWeeks, events)

	weeks := make([]WeeklyPlan, 0, totalWeeks)
	weekNumber := 1
	for _, block := range blocks {
		for offset := 0; offset < block.weeks; offset++ {
			weeks = append(weeks, buildWeek(profile, block.phase, weekNumber, offset, base, model))
			weekNumber++
		}
	}

	assignDates(weeks, start)

	return &Plan{
		AthleteID:    profile.AthleteID,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 7*totalWeeks),
		TargetEvents: events,
		Model:        model,
		Weeks:        weeks,
		TotalWeeks:   totalWeeks,
		CurrentFTP:   profile.FTP,
		ProjectedFTP: ProjectFTP(profile.FTP, profile.Level, totalWeeks),
	}, nil
}

// buildWeek assembles one week: the phase's load progression scaled by
// the phase multiplier, the model's perturbed intensity distribution,
// and the phase's canonical 7-day template with per-day stress
// estimates.
func buildWeek(profile Profile, phase Phase, weekNumber, weekInPhase int, base float64, model Model) WeeklyPlan {
	weekTSS := base * phaseMultiplier(phase) * weekLoadMultiplier(phase, weekInPhase)

	trainingLoad := TrainingLoad{
		TSSTarget:         weekTSS,
		HoursTarget:       weekTSS / 60, // rough hours-per-TSS heuristic
		Intensity:         intensityDistribution(phase, model),
		KeyWorkouts:       keyWorkoutsFor(phase),
		VolumeEmphasis:    volumeEmphasis(phase),
		IntensityEmphasis: intensityEmphasis(phase),
	}

	template := weekTemplate(phase)
	days := make([]DaySession, 0, 7)
	for i, tpl := range template {
		day := DaySession{Day: dayNames[i], Rest: tpl.rest}
		if !tpl.rest {
			day.Type = tpl.typ
			day.DurationMinutes = tpl.duration
			day.Intensity = tpl.intensity
			day.EstimatedTSS = estimateDayTSS(tpl, profile)
		}
		days = append(days, day)
	}

	return WeeklyPlan{
		WeekNumber:       weekNumber,
		Phase:            phase,
		Load:             trainingLoad,
		Days:             days,
		Focus:            phaseFocus(phase),
		Rationale:        phaseRationale(phase),
		Adaptations:      adaptationsFor(phase),
		RecoveryEmphasis: recoveryEmphasis(phase, weekInPhase),
	}
}

// estimateDayTSS builds the day's representative session and scores it.
// Template types the builder doesn't model (openers) stay unestimated
// rather than borrowing another template's number.
func estimateDayTSS(tpl dayTemplate, profile Profile) float64 {
	if _, ok := workout.ParseType(tpl.typ); !ok {
		return 0
	}
	w, _, err := workout.Build(tpl.typ, tpl.duration, string(profile.Level), profile.FTP)
	if err != nil {
		return 0
	}
	return load.WorkoutStress(w)
}
