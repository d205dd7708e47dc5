package tui

import (
	"cycling-coach/internal/plan"
	"cycling-coach/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenWeeks
	ScreenSessions
	ScreenZones
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	weeks     WeeksModel
	sessions  SessionsModel
	zones     ZonesModel
	help      HelpModel

	// Dependencies
	db      *store.Store
	profile plan.Profile

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.Store, profile plan.Profile) *App {
	return &App{
		screen:    ScreenDashboard,
		db:        db,
		profile:   profile,
		dashboard: NewDashboardModel(db, profile),
		weeks:     NewWeeksModel(db, profile),
		sessions:  NewSessionsModel(profile, 0, 0),
		zones:     NewZonesModel(profile),
		help:      NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			a.dashboard = NewDashboardModel(a.db, a.profile)
			return a, a.dashboard.Init()
		case "2":
			a.screen = ScreenWeeks
			return a, a.weeks.Init()
		case "3":
			a.screen = ScreenSessions
			a.sessions = NewSessionsModel(a.profile, a.width, a.height)
			return a, a.sessions.Init()
		case "4":
			a.screen = ScreenZones
			return a, a.zones.Init()
		case "?":
			a.prevScreen = a.screen
			a.screen = ScreenHelp
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenWeeks:
		var m tea.Model
		m, cmd = a.weeks.Update(msg)
		a.weeks = m.(WeeksModel)
	case ScreenSessions:
		var m tea.Model
		m, cmd = a.sessions.Update(msg)
		a.sessions = m.(SessionsModel)
	case ScreenZones:
		var m tea.Model
		m, cmd = a.zones.Update(msg)
		a.zones = m.(ZonesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenWeeks:
		content = a.weeks.View()
	case ScreenSessions:
		content = a.sessions.View()
	case ScreenZones:
		content = a.zones.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Velocoach Training Planner")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Plan", ScreenWeeks},
		{"3", "Sessions", ScreenSessions},
		{"4", "Zones", ScreenZones},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
