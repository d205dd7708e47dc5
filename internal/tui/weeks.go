package tui

import (
	"errors"
	"fmt"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WeeksModel is the week-by-week plan browser
type WeeksModel struct {
	db      *store.Store
	profile plan.Profile
	plan    *plan.Plan
	cursor  int
	loading bool
	err     error
}

// NewWeeksModel creates a new weeks model
func NewWeeksModel(db *store.Store, profile plan.Profile) WeeksModel {
	return WeeksModel{
		db:      db,
		profile: profile,
		loading: true,
	}
}

// Init initializes the weeks screen
func (m WeeksModel) Init() tea.Cmd {
	return m.loadPlan
}

func (m WeeksModel) loadPlan() tea.Msg {
	p, err := m.db.LatestPlan(m.profile.AthleteID)
	if err != nil {
		return planLoadedMsg{err: err}
	}
	return planLoadedMsg{plan: p}
}

// Update handles messages
func (m WeeksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.plan = msg.plan
		if m.plan != nil && m.cursor >= len(m.plan.Weeks) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		if m.plan == nil {
			break
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.plan.Weeks)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.loadPlan
		}
	}
	return m, nil
}

// View renders the weeks screen
func (m WeeksModel) View() string {
	if m.loading {
		return "\n  Loading plan..."
	}
	if errors.Is(m.err, store.ErrPlanNotFound) {
		return "\n  No plan stored yet."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if m.plan == nil || len(m.plan.Weeks) == 0 {
		return "\n  Empty plan."
	}

	list := m.renderWeekList()
	detail := m.renderWeekDetail(m.plan.Weeks[m.cursor])

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
	help := statusStyle.Render("j/k to move, 'r' to refresh")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m WeeksModel) renderWeekList() string {
	header := tableHeaderStyle.Render(fmt.Sprintf("%-4s %-9s %-7s %6s", "Wk", "Phase", "Start", "TSS"))

	rows := []string{header}
	for i, w := range m.plan.Weeks {
		line := fmt.Sprintf("%-4d %-9s %-7s %6.0f",
			w.WeekNumber, w.Phase.DisplayName(),
			w.StartDate.Format("Jan 02"), w.Load.TSSTarget)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m WeeksModel) renderWeekDetail(w plan.WeeklyPlan) string {
	title := cardTitleStyle.Render(fmt.Sprintf("Week %d - %s", w.WeekNumber, w.Phase.DisplayName()))

	lines := []string{
		RenderMetric("Focus", w.Focus, ""),
		RenderMetric("TSS target", fmt.Sprintf("%.0f", w.Load.TSSTarget), ""),
		RenderMetric("Hours target", fmt.Sprintf("%.1f h", w.Load.HoursTarget), ""),
		RenderMetric("Recovery emphasis", fmt.Sprintf("%.2f", w.RecoveryEmphasis), ""),
		"",
		m.renderDistribution(w.Load.Intensity),
		"",
	}

	// Day table
	lines = append(lines, tableHeaderStyle.Render(
		fmt.Sprintf("%-10s %-11s %5s  %-4s %6s", "Day", "Session", "Min", "Zone", "TSS")))
	for _, d := range w.Days {
		if d.Rest {
			lines = append(lines, tableRowStyle.Render(
				fmt.Sprintf("%-10s %-11s", d.Day, helpDescStyle.Render("rest"))))
			continue
		}
		lines = append(lines, tableRowStyle.Render(
			fmt.Sprintf("%-10s %-11s %5d  %-4s %6.0f",
				d.Day, d.Type, d.DurationMinutes, d.Intensity, d.EstimatedTSS)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// renderDistribution shows the zone time shares as small bars
func (m WeeksModel) renderDistribution(d plan.Distribution) string {
	shares := []struct {
		zone  string
		share float64
	}{
		{"Z1", d.Z1}, {"Z2", d.Z2}, {"Z3", d.Z3}, {"Z4", d.Z4}, {"Z5", d.Z5},
	}

	var lines []string
	for _, s := range shares {
		lines = append(lines, fmt.Sprintf("%s %s %4.0f%%",
			s.zone, RenderProgressBar(s.share, 20), s.share*100))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
