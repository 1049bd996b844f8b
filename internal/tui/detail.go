package tui

import (
	"fmt"
	"strings"

	"ftracker/internal/service"
	"ftracker/internal/training"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// DetailModel is the single workout detail screen model
type DetailModel struct {
	workout  service.Workout
	units    Units
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewDetailModel creates a new detail model for a workout
func NewDetailModel(workout service.Workout, units Units, width, height int) DetailModel {
	m := DetailModel{
		workout: workout,
		units:   units,
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return m.renderContent()
	}
	return m.viewport.View()
}

func (m DetailModel) renderContent() string {
	info := m.workout.Info

	var sections []string
	sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Workout #%d  %s", m.workout.Index+1, RenderWorkoutType(string(info.TrainingType)))))
	sections = append(sections, m.renderStats())
	sections = append(sections, m.renderInputs())
	sections = append(sections, m.renderMessage())
	sections = append(sections, statusStyle.Render("  esc: back to list  j/k: scroll"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderStats() string {
	info := m.workout.Info
	lines := []string{
		RenderMetric("Duration", fmt.Sprintf("%.3f h (%s)", info.Duration, formatHours(info.Duration))),
		RenderMetric("Distance", m.units.FormatDistance(info.Distance)),
		RenderMetric("Mean speed", m.units.FormatSpeed(info.Speed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f kcal", info.Calories)),
	}
	return cardStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderInputs lists the raw sensor values next to their field names
func (m DetailModel) renderInputs() string {
	var lines []string
	lines = append(lines, sectionTitleStyle.Render("Sensor data"))

	t := m.workout.Training
	fields := training.Fields(t.Type())
	for i, name := range fields {
		if i >= len(m.workout.Data) {
			break
		}
		lines = append(lines, "  "+RenderMetric(name, formatSensorValue(name, m.workout.Data[i])))
	}

	// Swimming speed comes from laps, not strokes
	if s, ok := t.(*training.Swimming); ok {
		pool := s.LengthPool() * float64(s.CountPool())
		lines = append(lines, "  "+RenderMetric("pool distance", humanize.FormatFloat("#,###.#", pool)+" m"))
	}

	cadence := float64(t.Action()) / (t.Duration() * training.MinutesPerHr)
	lines = append(lines, "  "+RenderMetric("cadence", fmt.Sprintf("%.1f per min", cadence)))
	lines = append(lines, "  "+RenderMetric("kcal per kg", fmt.Sprintf("%.2f", t.SpentCalories()/t.Weight())))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderMessage() string {
	var lines []string
	lines = append(lines, sectionTitleStyle.Render("Report"))
	lines = append(lines, "  "+m.workout.Info.GetMessage())
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func formatSensorValue(name string, v float64) string {
	switch name {
	case "action":
		return humanize.Comma(int64(v))
	case "duration":
		return fmt.Sprintf("%g h", v)
	case "weight":
		return fmt.Sprintf("%g kg", v)
	case "height":
		return fmt.Sprintf("%g cm", v)
	case "length_pool":
		return fmt.Sprintf("%g m", v)
	default:
		return fmt.Sprintf("%g", v)
	}
}
