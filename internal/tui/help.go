package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Plan week browser"},
		{"3", "Session preview"},
		{"4", "Power zone table"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	planSection := m.renderSection("Plan Browser", []keyHelp{
		{"j / down", "Next week"},
		{"k / up", "Previous week"},
		{"r", "Reload latest plan"},
	})
	sections = append(sections, planSection)

	sessionSection := m.renderSection("Session Preview", []keyHelp{
		{"j / k", "Pick session type"},
		{"+ / -", "Adjust duration by 15min"},
		{"pgup/pgdn", "Scroll detail"},
	})
	sections = append(sections, sessionSection)

	metricsSection := m.renderMetricsHelp()
	sections = append(sections, metricsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Terms Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"FTP", "Functional threshold power - the hardest steady hour effort."},
		{"TSS", "Training stress score - duration times squared intensity."},
		{"IF", "Intensity factor - average intensity relative to FTP."},
		{"Base / Build / Peak", "Plan phases: aerobic volume, then specific intensity, then sharpening."},
		{"Polarized", "Most time very easy, a little very hard, not much between."},
		{"Recovery emphasis", "How much a week favors unloading; spikes every 4th week."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
