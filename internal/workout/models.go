package workout

// SegmentType tags a fixed workout segment
type SegmentType string

const (
	SegmentWarmup      SegmentType = "Warmup"
	SegmentSteadyState SegmentType = "SteadyState"
	SegmentCooldown    SegmentType = "Cooldown"
)

// Segment is a fixed-duration block ridden at a single power band.
// Immutable once built.
type Segment struct {
	Type            SegmentType
	DurationMinutes int
	PowerLow        float64 // fraction of FTP
	PowerHigh       float64 // fraction of FTP
	Cadence         int     // target rpm
	Description     string
	Rationale       string
}

// Watts returns the segment's power band in integer watts for the given FTP
func (s Segment) Watts(ftp int) (min, max int) {
	return int(s.PowerLow * float64(ftp)), int(s.PowerHigh * float64(ftp))
}

// RepeatedInterval is a work/rest pair executed N times.
// The schedule drops the trailing rest after the final repetition, but
// TotalDuration still counts it: the builder sizes sessions with the full
// cycle so the produced plan errs long, never short.
type RepeatedInterval struct {
	Repetitions     int
	WorkDuration    int // minutes
	WorkPowerLow    float64
	WorkPowerHigh   float64
	WorkCadence     int
	RestDuration    int // minutes, 0 for a closing block
	RestPowerLow    float64
	RestPowerHigh   float64
	RestCadence     int
	WorkDescription string
	RestDescription string
	Rationale       string
}

// TotalDuration returns repetitions x (work + rest) in minutes
func (ri RepeatedInterval) TotalDuration() int {
	return ri.Repetitions * (ri.WorkDuration + ri.RestDuration)
}

// WorkWatts returns the work-phase power band in watts
func (ri RepeatedInterval) WorkWatts(ftp int) (min, max int) {
	return int(ri.WorkPowerLow * float64(ftp)), int(ri.WorkPowerHigh * float64(ftp))
}

// RestWatts returns the rest-phase power band in watts
func (ri RepeatedInterval) RestWatts(ftp int) (min, max int) {
	return int(ri.RestPowerLow * float64(ftp)), int(ri.RestPowerHigh * float64(ftp))
}

// Workout is a complete structured session. Built once by Build and
// read-only afterward; exporters and the planner consume it as-is.
type Workout struct {
	Name            string
	Type            Type
	Description     string
	Objective       string
	TotalDuration   int // requested minutes; ActualDuration may differ
	Segments        []Segment
	Intervals       []RepeatedInterval
	FTP             int
	AdaptationNotes string
	CoachingTips    string
}

// ActualDuration sums segment and interval durations in minutes
func (w *Workout) ActualDuration() int {
	total := 0
	for _, s := range w.Segments {
		total += s.DurationMinutes
	}
	for _, ri := range w.Intervals {
		total += ri.TotalDuration()
	}
	return total
}
