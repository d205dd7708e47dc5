package load

import (
	"fmt"

	"cycling-coach/internal/workout"
)

// RecoveryWindow is an estimated recovery-time bucket in hours
type RecoveryWindow struct {
	MinHours int
	MaxHours int
}

func (r RecoveryWindow) String() string {
	return fmt.Sprintf("%d-%dh", r.MinHours, r.MaxHours)
}

// recoveryFactors scale raw stress by level: beginners need longer to
// absorb the same load, elites less.
var recoveryFactors = map[workout.Level]float64{
	workout.LevelBeginner:     1.3,
	workout.LevelIntermediate: 1.0,
	workout.LevelAdvanced:     0.8,
	workout.LevelElite:        0.6,
}

// recoveryBuckets maps adjusted stress ceilings to recovery windows.
// The last entry is open-ended.
var recoveryBuckets = []struct {
	below  float64
	window RecoveryWindow
}{
	{40, RecoveryWindow{12, 18}},
	{60, RecoveryWindow{18, 24}},
	{80, RecoveryWindow{24, 36}},
	{120, RecoveryWindow{36, 48}},
}

var maxRecovery = RecoveryWindow{48, 72}

// EstimateRecovery buckets a stress score, adjusted by the athlete's
// level, into a recovery-time window. Unknown levels use the
// intermediate factor.
func EstimateRecovery(stressScore float64, level workout.Level) RecoveryWindow {
	factor, ok := recoveryFactors[level]
	if !ok {
		factor = 1.0
	}
	adjusted := stressScore * factor

	for _, b := range recoveryBuckets {
		if adjusted < b.below {
			return b.window
		}
	}
	return maxRecovery
}
