package training

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownWorkoutType is returned when a package tag is not RUN, WLK or SWM
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// ErrMalformedData is returned when package data does not fit the workout layout
var ErrMalformedData = errors.New("malformed sensor data")

// packageLayout describes the positional data a workout type expects
type packageLayout struct {
	fields []string
	build  func(data []float64) (Training, error)
}

// packageLayouts maps every supported tag to its data layout
var packageLayouts = map[WorkoutType]packageLayout{
	WorkoutSwimming: {
		fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			countPool, err := wholeNumber("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], countPool), nil
		},
	},
	WorkoutRunning: {
		fields: []string{"action", "duration", "weight"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2]), nil
		},
	},
	WorkoutWalking: {
		fields: []string{"action", "duration", "weight", "height"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3]), nil
		},
	},
}

// WorkoutTypes returns the supported tags in a stable order
func WorkoutTypes() []WorkoutType {
	return []WorkoutType{WorkoutSwimming, WorkoutRunning, WorkoutWalking}
}

// ParseWorkoutType checks that s is a supported tag
func ParseWorkoutType(s string) (WorkoutType, error) {
	wt := WorkoutType(s)
	if _, ok := packageLayouts[wt]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutType, s)
	}
	return wt, nil
}

// Fields returns the names of the positional values a tag expects, in order
func Fields(wt WorkoutType) []string {
	layout, ok := packageLayouts[wt]
	if !ok {
		return nil
	}
	out := make([]string, len(layout.fields))
	copy(out, layout.fields)
	return out
}

// ReadPackage builds the training for a sensor package.
// data must hold exactly the values the tag expects, in order.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	wt, err := ParseWorkoutType(workoutType)
	if err != nil {
		return nil, err
	}

	layout := packageLayouts[wt]
	if len(data) != len(layout.fields) {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrMalformedData, wt, len(layout.fields), len(data))
	}

	t, err := layout.build(data)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", wt, err)
	}
	return t, nil
}

// wholeNumber converts a count value, rejecting fractions and values outside the int range
func wholeNumber(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrMalformedData, name, v)
	}
	// -math.MinInt is a power of two, so the bound is exact as a float64
	if v < math.MinInt || v >= -math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range, got %v", ErrMalformedData, name, v)
	}
	return int(v), nil
}
