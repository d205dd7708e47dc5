package plan

import "time"

// assignDates walks the weekly plans and assigns each week's start date
// and each day's calendar date, sequentially from the plan start.
// Mutates the weeks in place; only the engine calls it, before the plan
// is handed out.
func assignDates(weeks []WeeklyPlan, start time.Time) {
	for i := range weeks {
		weekStart := start.AddDate(0, 0, 7*i)
		weeks[i].StartDate = weekStart
		for d := range weeks[i].Days {
			weeks[i].Days[d].Date = weekStart.AddDate(0, 0, d)
		}
	}
}
