package workout

import "strings"

// Level is an athlete experience level
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelElite        Level = "elite"
)

// Adaptation bounds interval construction for a level. The caps keep
// beginners off structures their aerobic base can't absorb and let
// elites run longer blocks with shorter recoveries.
type Adaptation struct {
	VO2MaxReps             int     // max VO2max repetitions
	VO2MaxDuration         int     // max single VO2max interval, minutes
	VO2RecoveryRatio       float64 // rest = work x ratio
	ThresholdMaxDuration   int     // max single threshold block, minutes
	ThresholdRecoveryRatio float64
	WeeklyIntensityShare   float64 // fraction of weekly time above threshold
	MaxSessionDuration     int     // minutes
	SessionsPerWeek        int
}

var adaptations = map[Level]Adaptation{
	LevelBeginner: {
		VO2MaxReps: 3, VO2MaxDuration: 3, VO2RecoveryRatio: 1.0,
		ThresholdMaxDuration: 15, ThresholdRecoveryRatio: 0.5,
		WeeklyIntensityShare: 0.15, MaxSessionDuration: 90, SessionsPerWeek: 3,
	},
	LevelIntermediate: {
		VO2MaxReps: 5, VO2MaxDuration: 5, VO2RecoveryRatio: 0.75,
		ThresholdMaxDuration: 25, ThresholdRecoveryRatio: 0.25,
		WeeklyIntensityShare: 0.20, MaxSessionDuration: 120, SessionsPerWeek: 4,
	},
	LevelAdvanced: {
		VO2MaxReps: 6, VO2MaxDuration: 8, VO2RecoveryRatio: 0.5,
		ThresholdMaxDuration: 40, ThresholdRecoveryRatio: 0.25,
		WeeklyIntensityShare: 0.25, MaxSessionDuration: 180, SessionsPerWeek: 5,
	},
	LevelElite: {
		VO2MaxReps: 8, VO2MaxDuration: 8, VO2RecoveryRatio: 0.5,
		ThresholdMaxDuration: 60, ThresholdRecoveryRatio: 0.2,
		WeeklyIntensityShare: 0.30, MaxSessionDuration: 240, SessionsPerWeek: 6,
	},
}

// ParseLevel resolves a free-text level. Unknown input falls back to
// intermediate; ok reports whether the input was recognized.
func ParseLevel(s string) (lvl Level, ok bool) {
	lvl = Level(strings.ToLower(strings.TrimSpace(s)))
	if _, known := adaptations[lvl]; !known {
		return LevelIntermediate, false
	}
	return lvl, true
}

// AdaptationFor returns the interval bounds for a level. The level must
// already be canonical (see ParseLevel).
func AdaptationFor(lvl Level) Adaptation {
	if a, ok := adaptations[lvl]; ok {
		return a
	}
	return adaptations[LevelIntermediate]
}

func (l Level) String() string { return string(l) }
