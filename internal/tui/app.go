package tui

import (
	"ftracker/internal/config"
	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenWorkouts Screen = iota
	ScreenDetail
	ScreenChart
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	workouts WorkoutsModel
	detail   DetailModel
	chart    ChartModel
	help     HelpModel

	summary *service.Summary
	units   Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over an already computed summary
func NewApp(summary *service.Summary, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:   ScreenWorkouts,
		summary:  summary,
		units:    units,
		workouts: NewWorkoutsModel(summary, units),
		chart:    NewChartModel(summary, units, 0),
		help:     NewHelpModel(),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.workouts.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenWorkouts
			return a, nil
		case "2":
			a.screen = ScreenChart
			return a, a.chart.Init()
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenDetail:
				a.screen = ScreenWorkouts
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Keep inactive screens sized too
		var m tea.Model
		m, _ = a.chart.Update(msg)
		a.chart = m.(ChartModel)

	case OpenWorkoutDetailMsg:
		if msg.Index >= 0 && msg.Index < len(a.summary.Workouts) {
			a.detail = NewDetailModel(a.summary.Workouts[msg.Index], a.units, a.width, a.height)
			a.screen = ScreenDetail
			return a, a.detail.Init()
		}
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenChart:
		var m tea.Model
		m, cmd = a.chart.Update(msg)
		a.chart = m.(ChartModel)
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
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenChart:
		content = a.chart.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Tracker")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workouts", ScreenWorkouts},
		{"2", "Charts", ScreenChart},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen || (item.screen == ScreenWorkouts && a.screen == ScreenDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// Run starts the viewer and blocks until the user quits
func Run(summary *service.Summary, display config.DisplayConfig) error {
	p := tea.NewProgram(NewApp(summary, display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
