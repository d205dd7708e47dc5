package plan

import "cycling-coach/internal/workout"

// Weekly TSS baselines by experience level, before scaling for
// available hours
var baseWeeklyTSS = map[workout.Level]float64{
	workout.LevelBeginner:     250,
	workout.LevelIntermediate: 350,
	workout.LevelAdvanced:     450,
	workout.LevelElite:        550,
}

// loadProgressions is the 4-week load pattern per phase, as a fraction
// of the athlete's base weekly TSS. Phases longer than 4 weeks cycle
// through the pattern, so the 4th-week unload repeats every cycle.
var loadProgressions = map[Phase][4]float64{
	PhaseBase:     {0.7, 0.8, 0.9, 0.6},
	PhaseBuild:    {0.8, 0.9, 1.0, 0.7},
	PhasePeak:     {0.9, 1.0, 0.8, 0.5},
	PhaseRecovery: {0.4, 0.5, 0.6, 0.7},
}

var phaseMultipliers = map[Phase]float64{
	PhaseBase:     0.9,
	PhaseBuild:    1.1,
	PhasePeak:     1.0,
	PhaseRecovery: 0.5,
}

var volumeEmphases = map[Phase]float64{
	PhaseBase:  0.8,
	PhaseBuild: 0.6,
	PhasePeak:  0.3,
}

var intensityEmphases = map[Phase]float64{
	PhaseBase:  0.2,
	PhaseBuild: 0.7,
	PhasePeak:  0.8,
}

var recoveryEmphases = map[Phase]float64{
	PhaseBase:  0.3,
	PhaseBuild: 0.4,
	PhasePeak:  0.6,
}

// baseTSS derives the per-athlete weekly stress baseline from level and
// available hours: below 6 weekly hours the baseline shrinks, above 12
// it grows.
func baseTSS(profile Profile) float64 {
	tss, ok := baseWeeklyTSS[profile.Level]
	if !ok {
		tss = baseWeeklyTSS[workout.LevelIntermediate]
	}

	switch {
	case profile.WeeklyHours < 6:
		tss *= 0.7
	case profile.WeeklyHours > 12:
		tss *= 1.3
	}

	return tss
}

// weekLoadMultiplier returns the progression fraction for a week of a
// phase, cycling the 4-week pattern.
func weekLoadMultiplier(phase Phase, weekInPhase int) float64 {
	prog, ok := loadProgressions[phase]
	if !ok {
		return 1.0
	}
	return prog[weekInPhase%len(prog)]
}

func phaseMultiplier(phase Phase) float64 {
	if m, ok := phaseMultipliers[phase]; ok {
		return m
	}
	return 1.0
}

func volumeEmphasis(phase Phase) float64 {
	if e, ok := volumeEmphases[phase]; ok {
		return e
	}
	return 0.5
}

func intensityEmphasis(phase Phase) float64 {
	if e, ok := intensityEmphases[phase]; ok {
		return e
	}
	return 0.5
}

// recoveryEmphasis scales the phase baseline; the 4th week of every
// 4-week cycle gets a 1.5x boost - the periodic unload mechanism.
func recoveryEmphasis(phase Phase, weekInPhase int) float64 {
	base, ok := recoveryEmphases[phase]
	if !ok {
		base = 0.4
	}
	if weekInPhase%4 == 3 {
		return base * 1.5
	}
	return base
}
