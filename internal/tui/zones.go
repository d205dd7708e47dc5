package tui

import (
	"fmt"

	"cycling-coach/internal/plan"
	"cycling-coach/internal/zones"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ZonesModel shows the power zone table at the athlete's FTP
type ZonesModel struct {
	profile plan.Profile
}

// NewZonesModel creates a new zones model
func NewZonesModel(profile plan.Profile) ZonesModel {
	return ZonesModel{profile: profile}
}

// Init initializes the zones screen
func (m ZonesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ZonesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the zone table
func (m ZonesModel) View() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Power Zones at FTP %d W", m.profile.FTP))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-4s %-22s %-10s %-9s %-9s  %s",
		"Zone", "Name", "%FTP", "Watts", "HR bpm", "Objective"))

	rows := []string{header}
	for _, zw := range zones.Table(m.profile.FTP) {
		z := zw.Zone
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf(
			"%-4s %-22s %3.0f-%-3.0f%%  %4d-%-4d %3d-%-3d    %s",
			z.ID, z.Name,
			z.PowerLow*100, z.PowerHigh*100,
			zw.MinWatts, zw.MaxWatts,
			z.HRLow, z.HRHigh,
			z.Objective)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
