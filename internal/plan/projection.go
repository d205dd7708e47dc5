package plan

import "cycling-coach/internal/workout"

// maxFTPImprovement is the plausible FTP gain per level over a full
// training cycle. Elite athletes sit on the advanced figure: their
// remaining headroom is no larger.
var maxFTPImprovement = map[workout.Level]float64{
	workout.LevelBeginner:     0.15,
	workout.LevelIntermediate: 0.08,
	workout.LevelAdvanced:     0.05,
	workout.LevelElite:        0.05,
}

// ProjectFTP projects threshold power after a plan of the given length.
// The time factor plateaus at 20 weeks: longer plans don't project
// further gains. Unknown levels use the intermediate rate.
func ProjectFTP(currentFTP int, level workout.Level, weeks int) int {
	rate, ok := maxFTPImprovement[level]
	if !ok {
		rate = maxFTPImprovement[workout.LevelIntermediate]
	}

	timeFactor := float64(weeks) / 20
	if timeFactor > 1 {
		timeFactor = 1
	}
	if timeFactor < 0 {
		timeFactor = 0
	}

	improvement := float64(currentFTP) * rate * timeFactor
	return currentFTP + int(improvement)
}
