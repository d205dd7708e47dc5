package plan

import (
	"math"
	"testing"
	"time"

	"cycling-coach/internal/workout"
)

func testProfile() Profile {
	return Profile{
		AthleteID:   "cyclist_001",
		Name:        "Test Rider",
		FTP:         320,
		Level:       workout.LevelIntermediate,
		WeeklyHours: 8,
	}
}

func mustBuildPlan(t *testing.T, profile Profile, events []Event, weeks int, model Model) *Plan {
	t.Helper()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	p, err := BuildPlan(profile, events, weeks, model, start)
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}
	return p
}

func phaseWeekCounts(p *Plan) map[Phase]int {
	counts := make(map[Phase]int)
	for _, w := range p.Weeks {
		counts[w.Phase]++
	}
	return counts
}

func TestBuildPlanValidation(t *testing.T) {
	start := time.Now()

	if _, err := BuildPlan(testProfile(), nil, 0, ModelPolarized, start); err == nil {
		t.Error("BuildPlan(0 weeks) error = nil, want validation error")
	}

	bad := testProfile()
	bad.FTP = 0
	if _, err := BuildPlan(bad, nil, 12, ModelPolarized, start); err == nil {
		t.Error("BuildPlan(ftp 0) error = nil, want validation error")
	}

	events := []Event{{Name: "Race", Priority: "A"}} // zero date
	if _, err := BuildPlan(testProfile(), events, 12, ModelPolarized, start); err == nil {
		t.Error("BuildPlan(zero event date) error = nil, want validation error")
	}
}

func TestStandardPhaseAllocation(t *testing.T) {
	tests := []struct {
		weeks     int
		wantBase  int
		wantBuild int
		wantPeak  int
	}{
		// >= 12 weeks: 50/30/20
		{16, 8, 4, 4},
		{12, 6, 3, 3},
		// >= 8 weeks: 40/40/20
		{8, 3, 3, 2},
		{10, 4, 4, 2},
		// shorter: 30/50/20
		{6, 1, 3, 2},
		{4, 1, 2, 1},
	}

	for _, tt := range tests {
		p := mustBuildPlan(t, testProfile(), nil, tt.weeks, ModelPolarized)
		counts := phaseWeekCounts(p)
		if counts[PhaseBase] != tt.wantBase || counts[PhaseBuild] != tt.wantBuild || counts[PhasePeak] != tt.wantPeak {
			t.Errorf("%d weeks: base/build/peak = %d/%d/%d, want %d/%d/%d",
				tt.weeks, counts[PhaseBase], counts[PhaseBuild], counts[PhasePeak],
				tt.wantBase, tt.wantBuild, tt.wantPeak)
		}
		if len(p.Weeks) != tt.weeks {
			t.Errorf("%d weeks: got %d weekly plans", tt.weeks, len(p.Weeks))
		}
	}
}

func TestEventPhaseAllocation(t *testing.T) {
	event := []Event{{Name: "Road Race", Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Priority: "A"}}

	// 16 weeks: Peak fixed at 3, Build capped at 8, Base absorbs the rest
	p := mustBuildPlan(t, testProfile(), event, 16, ModelPolarized)
	counts := phaseWeekCounts(p)
	if counts[PhasePeak] != 3 || counts[PhaseBuild] != 8 || counts[PhaseBase] != 5 {
		t.Errorf("16 weeks with event: base/build/peak = %d/%d/%d, want 5/8/3",
			counts[PhaseBase], counts[PhaseBuild], counts[PhasePeak])
	}

	// Mid horizon: Build is maximized before Base gets anything
	p = mustBuildPlan(t, testProfile(), event, 10, ModelPolarized)
	counts = phaseWeekCounts(p)
	if counts[PhaseBase] != 0 || counts[PhaseBuild] != 7 || counts[PhasePeak] != 3 {
		t.Errorf("10 weeks with event: base/build/peak = %d/%d/%d, want 0/7/3",
			counts[PhaseBase], counts[PhaseBuild], counts[PhasePeak])
	}

	// Short horizon: Base squeezed out entirely
	p = mustBuildPlan(t, testProfile(), event, 5, ModelPolarized)
	counts = phaseWeekCounts(p)
	if counts[PhaseBase] != 0 || counts[PhaseBuild] != 2 || counts[PhasePeak] != 3 {
		t.Errorf("5 weeks with event: base/build/peak = %d/%d/%d, want 0/2/3",
			counts[PhaseBase], counts[PhaseBuild], counts[PhasePeak])
	}

	// Phase order must remain chronological: Base, Build, Peak
	p = mustBuildPlan(t, testProfile(), event, 16, ModelPolarized)
	lastPhaseRank := -1
	rank := map[Phase]int{PhaseBase: 0, PhaseBuild: 1, PhasePeak: 2}
	for _, w := range p.Weeks {
		r := rank[w.Phase]
		if r < lastPhaseRank {
			t.Fatalf("phase order broken at week %d: %s", w.WeekNumber, w.Phase)
		}
		lastPhaseRank = r
	}
}

func TestPrimaryEvent(t *testing.T) {
	if _, ok := PrimaryEvent(nil); ok {
		t.Error("PrimaryEvent(nil) reported an event")
	}

	events := []Event{
		{Name: "Club TT", Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Priority: "B"},
		{Name: "Gran Fondo", Date: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), Priority: "A"},
	}
	e, ok := PrimaryEvent(events)
	if !ok || e.Name != "Gran Fondo" {
		t.Errorf("PrimaryEvent = %+v, want the A-priority event", e)
	}

	// No A event: the first listed wins
	e, ok = PrimaryEvent(events[:1])
	if !ok || e.Name != "Club TT" {
		t.Errorf("PrimaryEvent without an A event = %+v, want the first listed", e)
	}
}

func TestWeeklyLoadProgression(t *testing.T) {
	p := mustBuildPlan(t, testProfile(), nil, 16, ModelPolarized)

	// Intermediate at 8 weekly hours: base TSS 350, unscaled.
	// Base phase: multiplier 0.9, progression [0.7 0.8 0.9 0.6].
	wantFirstFour := []float64{
		350 * 0.9 * 0.7,
		350 * 0.9 * 0.8,
		350 * 0.9 * 0.9,
		350 * 0.9 * 0.6,
	}
	for i, want := range wantFirstFour {
		got := p.Weeks[i].Load.TSSTarget
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("week %d TSS target = %v, want %v", i+1, got, want)
		}
	}

	// The pattern cycles mod 4: weeks 5-8 of the 8-week base repeat it
	for i := 0; i < 4; i++ {
		if math.Abs(p.Weeks[i].Load.TSSTarget-p.Weeks[i+4].Load.TSSTarget) > 1e-9 {
			t.Errorf("week %d and %d TSS differ: %v vs %v",
				i+1, i+5, p.Weeks[i].Load.TSSTarget, p.Weeks[i+4].Load.TSSTarget)
		}
	}

	// First Build week (week 9): multiplier 1.1, progression 0.8
	want := 350 * 1.1 * 0.8
	if got := p.Weeks[8].Load.TSSTarget; math.Abs(got-want) > 1e-9 {
		t.Errorf("first build week TSS = %v, want %v", got, want)
	}
}

func TestBaseTSSHoursScaling(t *testing.T) {
	timeCrunched := testProfile()
	timeCrunched.WeeklyHours = 4
	p := mustBuildPlan(t, timeCrunched, nil, 16, ModelPolarized)
	want := 350 * 0.7 * 0.9 * 0.7 // scaled base, base-phase multiplier, week-1 progression
	if got := p.Weeks[0].Load.TSSTarget; math.Abs(got-want) > 1e-9 {
		t.Errorf("time-crunched week 1 TSS = %v, want %v", got, want)
	}

	highVolume := testProfile()
	highVolume.WeeklyHours = 15
	p = mustBuildPlan(t, highVolume, nil, 16, ModelPolarized)
	want = 350 * 1.3 * 0.9 * 0.7
	if got := p.Weeks[0].Load.TSSTarget; math.Abs(got-want) > 1e-9 {
		t.Errorf("high-volume week 1 TSS = %v, want %v", got, want)
	}
}

func TestRecoveryEmphasisCycle(t *testing.T) {
	p := mustBuildPlan(t, testProfile(), nil, 16, ModelPolarized)

	// Base phase baseline 0.3; every 4th week of a cycle gets 1.5x.
	// The 8-week base phase must unload twice, at weeks 4 and 8.
	for i, w := range p.Weeks[:8] {
		want := 0.3
		if i%4 == 3 {
			want = 0.45
		}
		if math.Abs(w.RecoveryEmphasis-want) > 1e-9 {
			t.Errorf("week %d recovery emphasis = %v, want %v", i+1, w.RecoveryEmphasis, want)
		}
	}
}

func TestIntensityDistributionPerturbation(t *testing.T) {
	p := mustBuildPlan(t, testProfile(), nil, 16, ModelPolarized)

	baseWeek := p.Weeks[0]
	if baseWeek.Phase != PhaseBase {
		t.Fatalf("week 1 phase = %s, want base", baseWeek.Phase)
	}
	d := baseWeek.Load.Intensity
	if math.Abs(d.Z1-0.75*1.2) > 1e-9 {
		t.Errorf("base Z1 share = %v, want %v", d.Z1, 0.75*1.2)
	}
	if math.Abs(d.Z5-0.10*0.5) > 1e-9 {
		t.Errorf("base Z5 share = %v, want %v", d.Z5, 0.10*0.5)
	}

	// Perturbation deliberately skips renormalization
	if math.Abs(d.Total()-1.075) > 1e-9 {
		t.Errorf("base polarized total = %v, want 1.075 (unnormalized)", d.Total())
	}

	// Peak boosts Z5 hardest
	var peakWeek *WeeklyPlan
	for i := range p.Weeks {
		if p.Weeks[i].Phase == PhasePeak {
			peakWeek = &p.Weeks[i]
			break
		}
	}
	if peakWeek == nil {
		t.Fatal("no peak week found")
	}
	if math.Abs(peakWeek.Load.Intensity.Z5-0.10*1.8) > 1e-9 {
		t.Errorf("peak Z5 share = %v, want %v", peakWeek.Load.Intensity.Z5, 0.10*1.8)
	}
}

func TestWeekTemplates(t *testing.T) {
	p := mustBuildPlan(t, testProfile(), nil, 16, ModelPolarized)

	for _, w := range p.Weeks {
		if len(w.Days) != 7 {
			t.Fatalf("week %d has %d days, want 7", w.WeekNumber, len(w.Days))
		}
		if w.Days[0].Day != "monday" || w.Days[6].Day != "sunday" {
			t.Errorf("week %d day order = %s..%s", w.WeekNumber, w.Days[0].Day, w.Days[6].Day)
		}
	}

	// Base week: one rest day, long Saturday ride
	base := p.Weeks[0]
	rests := 0
	for _, d := range base.Days {
		if d.Rest {
			rests++
		}
	}
	if rests != 1 {
		t.Errorf("base week rest days = %d, want 1", rests)
	}
	if sat := base.Days[5]; sat.Type != "endurance" || sat.DurationMinutes != 120 {
		t.Errorf("base Saturday = %s %dmin, want endurance 120min", sat.Type, sat.DurationMinutes)
	}

	// Peak week: two rest days, a VO2max day and an openers day
	var peak *WeeklyPlan
	for i := range p.Weeks {
		if p.Weeks[i].Phase == PhasePeak {
			peak = &p.Weeks[i]
			break
		}
	}
	if peak == nil {
		t.Fatal("no peak week found")
	}
	rests = 0
	hasVO2, hasOpeners := false, false
	for _, d := range peak.Days {
		if d.Rest {
			rests++
		}
		switch d.Type {
		case "vo2max":
			hasVO2 = true
		case "openers":
			hasOpeners = true
		}
	}
	if rests != 2 {
		t.Errorf("peak week rest days = %d, want 2", rests)
	}
	if !hasVO2 || !hasOpeners {
		t.Errorf("peak week missing signature days: vo2max=%v openers=%v", hasVO2, hasOpeners)
	}
}

func TestDayStressAnnotation(t *testing.T) {
	p := mustBuildPlan(t, testProfile(), nil, 16, ModelPolarized)

	for _, w := range p.Weeks {
		for _, d := range w.Days {
			if d.Rest {
				if d.EstimatedTSS != 0 {
					t.Errorf("week %d %s: rest day has TSS %v", w.WeekNumber, d.Day, d.EstimatedTSS)
				}
				continue
			}
			if d.Type == "openers" {
				// Not modeled by the builder; left unestimated
				if d.EstimatedTSS != 0 {
					t.Errorf("week %d %s: openers day has TSS %v, want 0", w.WeekNumber, d.Day, d.EstimatedTSS)
				}
				continue
			}
			if d.EstimatedTSS <= 0 {
				t.Errorf("week %d %s (%s): estimated TSS = %v, want > 0",
					w.WeekNumber, d.Day, d.Type, d.EstimatedTSS)
			}
		}
	}
}

func TestFTPProjection(t *testing.T) {
	tests := []struct {
		ftp   int
		level workout.Level
		weeks int
		want  int
	}{
		{320, workout.LevelIntermediate, 16, 340}, // 320*0.08*0.8 = 20.48, truncated
		{320, workout.LevelIntermediate, 20, 345}, // full 8% rate
		{320, workout.LevelIntermediate, 40, 345}, // saturated past 20 weeks
		{200, workout.LevelBeginner, 20, 230},
		{400, workout.LevelAdvanced, 20, 420},
		{400, workout.LevelElite, 20, 420},
	}

	for _, tt := range tests {
		got := ProjectFTP(tt.ftp, tt.level, tt.weeks)
		if got != tt.want {
			t.Errorf("ProjectFTP(%d, %s, %d) = %d, want %d", tt.ftp, tt.level, tt.weeks, got, tt.want)
		}
	}
}

func TestFTPProjectionMonotonicAndSaturating(t *testing.T) {
	prev := 0
	for weeks := 1; weeks <= 30; weeks++ {
		got := ProjectFTP(320, workout.LevelIntermediate, weeks)
		if got < prev {
			t.Errorf("ProjectFTP decreased at %d weeks: %d after %d", weeks, got, prev)
		}
		prev = got
	}
	at20 := ProjectFTP(320, workout.LevelIntermediate, 20)
	at52 := ProjectFTP(320, workout.LevelIntermediate, 52)
	if at52 != at20 {
		t.Errorf("projection did not saturate: 20w=%d, 52w=%d", at20, at52)
	}
}
