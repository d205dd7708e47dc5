package tui

import (
	"fmt"
	"strings"

	"cycling-coach/internal/load"
	"cycling-coach/internal/plan"
	"cycling-coach/internal/workout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sessionTypes lists the selectable session templates with a default
// duration each
var sessionTypes = []struct {
	typ      workout.Type
	duration int
}{
	{workout.TypeVO2Max, 75},
	{workout.TypeThreshold, 80},
	{workout.TypeTempo, 75},
	{workout.TypeEndurance, 90},
	{workout.TypeRecovery, 45},
}

const durationStep = 15

// SessionsModel is the session preview screen: pick a type and
// duration, see the full structured workout.
type SessionsModel struct {
	profile  plan.Profile
	cursor   int
	duration int
	session  *workout.Workout
	warnings []workout.Warning
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewSessionsModel creates a new sessions model
func NewSessionsModel(profile plan.Profile, width, height int) SessionsModel {
	m := SessionsModel{
		profile:  profile,
		duration: sessionTypes[0].duration,
		width:    width,
		height:   height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width-30, height-8)
		m.ready = true
	}

	m.rebuild()
	return m
}

// Init initializes the sessions screen
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

func (m *SessionsModel) rebuild() {
	w, warnings, err := workout.Build(
		string(sessionTypes[m.cursor].typ), m.duration,
		string(m.profile.Level), m.profile.FTP)
	if err != nil {
		m.session = nil
		return
	}
	m.session = w
	m.warnings = warnings
	if m.ready {
		m.viewport.SetContent(m.renderSession())
		m.viewport.GotoTop()
	}
}

// Update handles messages
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width-30, msg.Height-8)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 30
			m.viewport.Height = msg.Height - 8
		}
		m.rebuild()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.duration = sessionTypes[m.cursor].duration
				m.rebuild()
			}
		case "down", "j":
			if m.cursor < len(sessionTypes)-1 {
				m.cursor++
				m.duration = sessionTypes[m.cursor].duration
				m.rebuild()
			}
		case "+", "=":
			m.duration += durationStep
			m.rebuild()
		case "-":
			if m.duration > durationStep {
				m.duration -= durationStep
				m.rebuild()
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the sessions screen
func (m SessionsModel) View() string {
	picker := m.renderPicker()

	var detail string
	if m.ready {
		detail = m.viewport.View()
	} else {
		detail = m.renderSession()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, picker, "  ", detail)
	help := statusStyle.Render("j/k to pick a type, +/- to adjust duration, pgup/pgdn to scroll")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m SessionsModel) renderPicker() string {
	title := cardTitleStyle.Render("Session Type")

	var rows []string
	for i, st := range sessionTypes {
		line := fmt.Sprintf("%-10s", st.typ.DisplayName())
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	rows = append(rows, "", RenderMetric("Duration", fmt.Sprintf("%d min", m.duration), ""))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m SessionsModel) renderSession() string {
	if m.session == nil {
		return errorStyle.Render("Could not build session")
	}
	w := m.session

	var lines []string
	lines = append(lines, cardTitleStyle.Render(w.Name))
	lines = append(lines, helpDescStyle.Render(w.Description))
	lines = append(lines, "")
	lines = append(lines, RenderMetric("Estimated TSS", fmt.Sprintf("%.0f", load.WorkoutStress(w)), ""))
	lines = append(lines, RenderMetric("Intensity factor", fmt.Sprintf("%.2f", load.IntensityFactor(w)), ""))
	lines = append(lines, RenderMetric("Actual duration", fmt.Sprintf("%d min", w.ActualDuration()), ""))

	recovery := load.EstimateRecovery(load.WorkoutStress(w), m.profile.Level)
	lines = append(lines, RenderMetric("Recovery", recovery.String(), ""))
	lines = append(lines, "")

	// Structure table
	lines = append(lines, tableHeaderStyle.Render(
		fmt.Sprintf("%-12s %5s  %-9s %4s  %s", "Block", "Min", "Watts", "Rpm", "Description")))
	for _, seg := range w.Segments {
		minW, maxW := seg.Watts(w.FTP)
		lines = append(lines, tableRowStyle.Render(
			fmt.Sprintf("%-12s %5d  %4d-%-4d %4d  %s",
				seg.Type, seg.DurationMinutes, minW, maxW, seg.Cadence, seg.Description)))
	}
	for _, ri := range w.Intervals {
		workMin, workMax := ri.WorkWatts(w.FTP)
		lines = append(lines, tableRowStyle.Render(
			fmt.Sprintf("%-12s %5d  %4d-%-4d %4d  %s",
				fmt.Sprintf("%dx%dmin", ri.Repetitions, ri.WorkDuration),
				ri.TotalDuration(), workMin, workMax, ri.WorkCadence, ri.WorkDescription)))
		if ri.RestDuration > 0 {
			restMin, restMax := ri.RestWatts(w.FTP)
			lines = append(lines, tableRowStyle.Render(
				fmt.Sprintf("%-12s %5d  %4d-%-4d %4d  %s",
					"  recovery", ri.RestDuration, restMin, restMax, ri.RestCadence, ri.RestDescription)))
		}
	}

	for _, warn := range m.warnings {
		lines = append(lines, "", errorStyle.Render("! "+warn.Message))
	}

	lines = append(lines, "")
	lines = append(lines, helpDescStyle.Render(wrapText("Coaching: "+w.CoachingTips, 70)))

	return strings.Join(lines, "\n")
}

// wrapText is a crude word wrapper for free-text notes
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
