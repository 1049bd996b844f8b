package service

import (
	"fmt"

	"ftracker/internal/config"
	"ftracker/internal/training"
)

// SummaryService turns raw sensor packages into training reports
type SummaryService struct {
	packages []config.PackageConfig
}

// NewSummaryService creates a summary service over the given packages
func NewSummaryService(packages []config.PackageConfig) *SummaryService {
	return &SummaryService{packages: packages}
}

// Workout is one processed sensor package
type Workout struct {
	Index    int // position in the package list
	Data     []float64
	Training training.Training
	Info     training.InfoMessage
}

// Totals aggregates a group of workouts
type Totals struct {
	Count    int
	Duration float64 // hours
	Distance float64 // km
	Calories float64
}

// Summary contains every report plus aggregates
type Summary struct {
	Workouts []Workout
	Totals   Totals
	ByType   map[training.WorkoutType]Totals
}

// Summarize reads every package in order.
// The first package that cannot be read aborts the whole run.
func (s *SummaryService) Summarize() (*Summary, error) {
	summary := &Summary{
		Workouts: make([]Workout, 0, len(s.packages)),
		ByType:   make(map[training.WorkoutType]Totals),
	}

	for i, p := range s.packages {
		t, err := training.ReadPackage(p.Type, p.Data)
		if err != nil {
			return nil, fmt.Errorf("package %d (%s): %w", i, p.Type, err)
		}

		info := t.ShowTrainingInfo()
		summary.Workouts = append(summary.Workouts, Workout{
			Index:    i,
			Data:     p.Data,
			Training: t,
			Info:     info,
		})

		summary.Totals = summary.Totals.add(info)
		summary.ByType[info.TrainingType] = summary.ByType[info.TrainingType].add(info)
	}

	return summary, nil
}

// Messages returns the formatted report lines in input order
func (s *Summary) Messages() []string {
	lines := make([]string, len(s.Workouts))
	for i, w := range s.Workouts {
		lines[i] = w.Info.GetMessage()
	}
	return lines
}

// Calories returns the calories of every workout in input order
func (s *Summary) Calories() []float64 {
	out := make([]float64, len(s.Workouts))
	for i, w := range s.Workouts {
		out[i] = w.Info.Calories
	}
	return out
}

// Distances returns the distance of every workout in input order
func (s *Summary) Distances() []float64 {
	out := make([]float64, len(s.Workouts))
	for i, w := range s.Workouts {
		out[i] = w.Info.Distance
	}
	return out
}

// MeanSpeed returns the overall average speed in km/h
func (t Totals) MeanSpeed() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return t.Distance / t.Duration
}

func (t Totals) add(info training.InfoMessage) Totals {
	t.Count++
	t.Duration += info.Duration
	t.Distance += info.Distance
	t.Calories += info.Calories
	return t
}
