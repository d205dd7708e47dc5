package tui

import (
	"errors"
	"fmt"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	db      *store.Store
	profile plan.Profile
	plan    *plan.Plan
	loading bool
	err     error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(db *store.Store, profile plan.Profile) DashboardModel {
	return DashboardModel{
		db:      db,
		profile: profile,
		loading: true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadPlan
}

type planLoadedMsg struct {
	plan *plan.Plan
	err  error
}

func (m DashboardModel) loadPlan() tea.Msg {
	p, err := m.db.LatestPlan(m.profile.AthleteID)
	if err != nil {
		return planLoadedMsg{err: err}
	}
	return planLoadedMsg{plan: p}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.plan = msg.plan
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadPlan
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading plan..."
	}

	if errors.Is(m.err, store.ErrPlanNotFound) {
		return "\n  No plan stored yet. Restart to generate one from your config."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var sections []string

	// Top row: athlete and plan cards side by side
	athleteCard := m.renderAthleteCard()
	planCard := m.renderPlanCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, athleteCard, "  ", planCard)
	sections = append(sections, topRow)

	// Weekly load chart
	if len(m.plan.Weeks) > 2 {
		sections = append(sections, m.renderLoadChart())
	}

	// Phase overview
	sections = append(sections, m.renderPhases())

	help := statusStyle.Render("Press 'r' to refresh, '2' to browse the plan week by week")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderAthleteCard() string {
	title := cardTitleStyle.Render("Athlete")

	lines := []string{
		RenderMetric("Name", m.profile.Name, ""),
		RenderMetric("Level", string(m.profile.Level), ""),
		RenderMetric("FTP", fmt.Sprintf("%d W", m.profile.FTP), ""),
		RenderMetric("Weekly hours", fmt.Sprintf("%.1f h", m.profile.WeeklyHours), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderPlanCard() string {
	title := cardTitleStyle.Render("Plan")

	gain := m.plan.ProjectedFTP - m.plan.CurrentFTP
	trend := ""
	if gain > 0 {
		trend = fmt.Sprintf("+%d W", gain)
	}

	lines := []string{
		RenderMetric("Model", string(m.plan.Model), ""),
		RenderMetric("Weeks", fmt.Sprintf("%d", m.plan.TotalWeeks), ""),
		RenderMetric("Start", m.plan.StartDate.Format("Jan 02, 2006"), ""),
		RenderMetric("Projected FTP", fmt.Sprintf("%d W", m.plan.ProjectedFTP), trend),
	}

	if len(m.plan.TargetEvents) > 0 {
		e := m.plan.TargetEvents[0]
		lines = append(lines, RenderMetric("Target event",
			fmt.Sprintf("%s (%s)", e.Name, e.Date.Format("Jan 02")), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderLoadChart() string {
	title := cardTitleStyle.Render("Weekly TSS Targets")

	targets := make([]float64, len(m.plan.Weeks))
	for i, w := range m.plan.Weeks {
		targets[i] = w.Load.TSSTarget
	}

	graph := asciigraph.Plot(targets,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderPhases() string {
	title := cardTitleStyle.Render("Phases")

	// Count consecutive weeks per phase block
	var lines []string
	i := 0
	for i < len(m.plan.Weeks) {
		phase := m.plan.Weeks[i].Phase
		start := i
		for i < len(m.plan.Weeks) && m.plan.Weeks[i].Phase == phase {
			i++
		}
		lines = append(lines, fmt.Sprintf("%s  weeks %d-%d  %s",
			RenderPhase(phase), start+1, i,
			helpDescStyle.Render(m.plan.Weeks[start].Focus)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
