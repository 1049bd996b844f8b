package tui

import (
	"fmt"
	"math"

	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ChartModel plots calories and distance across the workout list
type ChartModel struct {
	summary *service.Summary
	units   Units
	width   int
}

// NewChartModel creates a new chart model
func NewChartModel(summary *service.Summary, units Units, width int) ChartModel {
	return ChartModel{summary: summary, units: units, width: width}
}

// Init initializes the chart screen
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

// View renders the chart screen
func (m ChartModel) View() string {
	if len(m.summary.Workouts) < 2 {
		return "\n  Need at least two workouts to draw a chart."
	}

	calories := m.renderChart("Calories per workout (kcal)", m.summary.Calories())
	distance := m.renderChart(fmt.Sprintf("Distance per workout (%s)", m.units.DistanceLabel()),
		m.units.ConvertDistances(m.summary.Distances()))

	return lipgloss.JoinVertical(lipgloss.Left, calories, distance)
}

func (m ChartModel) renderChart(title string, data []float64) string {
	points, undefined := finiteSeries(data)
	if undefined == len(data) {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render(title),
			statusStyle.Render("Chart unavailable: no workout has a defined value")))
	}

	graph := asciigraph.Plot(points,
		asciigraph.Height(8),
		asciigraph.Width(m.chartWidth()),
		asciigraph.Precision(1),
	)

	parts := []string{cardTitleStyle.Render(title), graph}
	if undefined > 0 {
		parts = append(parts, statusStyle.Render(fmt.Sprintf("%d workout(s) with undefined values plotted as 0", undefined)))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// finiteSeries replaces NaN and infinite values with 0 and counts them.
// Zero-duration sessions produce such values and asciigraph cannot scale them.
func finiteSeries(data []float64) ([]float64, int) {
	out := make([]float64, len(data))
	undefined := 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			undefined++
			continue
		}
		out[i] = v
	}
	return out, undefined
}

// chartWidth fits the plot inside the terminal, leaving room for the card border and axis labels
func (m ChartModel) chartWidth() int {
	const maxWidth = 60
	if m.width <= 0 {
		return maxWidth
	}
	w := m.width - 20
	if w < 10 {
		return 10
	}
	if w > maxWidth {
		return maxWidth
	}
	return w
}
