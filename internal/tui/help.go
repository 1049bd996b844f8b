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
		{"1", "Workouts list"},
		{"2", "Charts"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	listSection := m.renderSection("Workouts List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"g / G", "First / last workout"},
		{"enter", "Open workout details"},
	})
	sections = append(sections, listSection)

	sections = append(sections, m.renderFormulasHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderFormulasHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Formulas"))
	lines = append(lines, "")

	formulas := []struct {
		name string
		desc string
	}{
		{"Distance", "steps * step length / 1000 (0.65 m, swimming 1.38 m)"},
		{"Mean speed", "distance / hours; swimming uses pool length * laps / 1000 / hours"},
		{"RUN calories", "(18 * speed - 20) * weight / 1000 * minutes"},
		{"WLK calories", "(0.035 * weight + floor(speed^2 / height) * 0.029 * weight) * minutes"},
		{"SWM calories", "(speed + 1.1) * 2 * weight"},
	}

	for _, f := range formulas {
		lines = append(lines, "  "+helpKeyStyle.Render(f.name))
		lines = append(lines, "  "+helpDescStyle.Render(f.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
