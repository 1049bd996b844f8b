package tui

import (
	"fmt"

	"ftracker/internal/config"
)

const kmPerMile = 1.60934

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// Distance converts km to the user's preferred unit
func (u Units) Distance(km float64) float64 {
	if u.IsMiles() {
		return km / kmPerMile
	}
	return km
}

// FormatDistance formats a distance in km to the user's preferred unit
func (u Units) FormatDistance(km float64) string {
	return fmt.Sprintf("%.3f %s", u.Distance(km), u.DistanceLabel())
}

// FormatSpeed formats a speed in km/h to the user's preferred unit
func (u Units) FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.3f %s", u.Distance(kmh), u.SpeedLabel())
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// SpeedLabel returns the speed unit label ("mph" or "km/h")
func (u Units) SpeedLabel() string {
	if u.IsMiles() {
		return "mph"
	}
	return "km/h"
}

// ConvertDistances converts a series of km values for charts
func (u Units) ConvertDistances(km []float64) []float64 {
	if !u.IsMiles() {
		return km
	}
	converted := make([]float64, len(km))
	for i, d := range km {
		converted[i] = d / kmPerMile
	}
	return converted
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}
