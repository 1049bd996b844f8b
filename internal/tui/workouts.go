package tui

import (
	"fmt"
	"math"

	"ftracker/internal/service"
	"ftracker/internal/training"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Longer durations are shown as "-" rather than converted to minutes
const maxDisplayHours = 1e6

// WorkoutsModel is the workout list screen model
type WorkoutsModel struct {
	summary *service.Summary
	units   Units
	cursor  int
}

// NewWorkoutsModel creates a new workouts model
func NewWorkoutsModel(summary *service.Summary, units Units) WorkoutsModel {
	return WorkoutsModel{summary: summary, units: units}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return nil
}

// OpenWorkoutDetailMsg asks the app to show the detail screen for a workout
type OpenWorkoutDetailMsg struct {
	Index int
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.summary.Workouts)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if n := len(m.summary.Workouts); n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			if m.cursor < len(m.summary.Workouts) {
				index := m.cursor
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{Index: index}
				}
			}
		}
	}
	return m, nil
}

// Cursor returns the selected row
func (m WorkoutsModel) Cursor() int {
	return m.cursor
}

// View renders the workout list
func (m WorkoutsModel) View() string {
	if len(m.summary.Workouts) == 0 {
		return "\n  No sensor packages to show. Add some to the config file."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d)", len(m.summary.Workouts)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("  %-4s  %-5s  %10s  %10s  %11s  %10s",
		"#", "Type", "Duration", "Distance", "Speed", "Calories"))
	sections = append(sections, header)

	for i, w := range m.summary.Workouts {
		info := w.Info

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-4d  %-5s  %8.3f h  %7.3f %-2s  %6.3f %-4s  %10.3f",
			cursor,
			i+1,
			info.TrainingType,
			info.Duration,
			m.units.Distance(info.Distance), m.units.DistanceLabel(),
			m.units.Distance(info.Speed), m.units.SpeedLabel(),
			info.Calories,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	sections = append(sections, "", m.renderTotals())

	help := statusStyle.Render("\n  enter: view details  j/k: navigate  g/G: first/last")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WorkoutsModel) renderTotals() string {
	totals := m.summary.Totals
	title := cardTitleStyle.Render("Totals")

	lines := []string{
		RenderMetric("Workouts", humanize.Comma(int64(totals.Count))),
		RenderMetric("Time", formatHours(totals.Duration)),
		RenderMetric("Distance", m.units.FormatDistance(totals.Distance)),
		RenderMetric("Avg speed", m.units.FormatSpeed(totals.MeanSpeed())),
		RenderMetric("Calories", humanize.FormatFloat("#,###.#", totals.Calories)+" kcal"),
	}

	byType := []string{"", sectionTitleStyle.Render("By type")}
	for _, wt := range training.WorkoutTypes() {
		t, ok := m.summary.ByType[wt]
		if !ok {
			continue
		}
		byType = append(byType, RenderMetric(string(wt),
			fmt.Sprintf("%d workout(s), %s", t.Count, m.units.FormatDistance(t.Distance))))
	}
	lines = append(lines, byType...)

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(52).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// formatHours renders fractional hours as "1h 30m", or "-" when hours is not a usable number
func formatHours(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 || hours > maxDisplayHours {
		return "-"
	}
	total := int(hours*60 + 0.5)
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
