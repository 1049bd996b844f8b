package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []float64
		wantType    WorkoutType
		wantSpeed   float64
		wantCal     float64
	}{
		{"swimming", "SWM", []float64{720, 1, 80, 25, 40}, WorkoutSwimming, 1.0, 336.0},
		{"running", "RUN", []float64{15000, 1, 75}, WorkoutRunning, 9.75, 699.75},
		{"walking", "WLK", []float64{9000, 1, 75, 180}, WorkoutWalking, 5.85, 157.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ReadPackage(tt.workoutType, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, tr.Type())
			assert.InDelta(t, tt.wantSpeed, tr.MeanSpeed(), 1e-9)
			assert.InDelta(t, tt.wantCal, tr.SpentCalories(), 1e-9)
		})
	}
}

func TestReadPackageVariants(t *testing.T) {
	tr, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	swm, ok := tr.(*Swimming)
	require.True(t, ok, "expected *Swimming, got %T", tr)
	assert.Equal(t, 40, swm.CountPool())
	assert.Equal(t, 25.0, swm.LengthPool())

	tr, err = ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	wlk, ok := tr.(*SportsWalking)
	require.True(t, ok, "expected *SportsWalking, got %T", tr)
	assert.Equal(t, 180.0, wlk.Height())

	tr, err = ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	_, ok = tr.(*Running)
	assert.True(t, ok, "expected *Running, got %T", tr)
}

func TestReadPackageErrors(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []float64
		wantErr     error
	}{
		{"unknown tag", "XYZ", []float64{1, 2, 3}, ErrUnknownWorkoutType},
		{"lowercase tag", "run", []float64{15000, 1, 75}, ErrUnknownWorkoutType},
		{"empty tag", "", nil, ErrUnknownWorkoutType},
		{"running too few", "RUN", []float64{15000, 1}, ErrMalformedData},
		{"running too many", "RUN", []float64{15000, 1, 75, 180}, ErrMalformedData},
		{"walking missing height", "WLK", []float64{9000, 1, 75}, ErrMalformedData},
		{"swimming too few", "SWM", []float64{720, 1, 80, 25}, ErrMalformedData},
		{"swimming empty", "SWM", []float64{}, ErrMalformedData},
		{"fractional action", "RUN", []float64{15000.5, 1, 75}, ErrMalformedData},
		{"fractional laps", "SWM", []float64{720, 1, 80, 25, 40.5}, ErrMalformedData},
		{"NaN action", "WLK", []float64{math.NaN(), 1, 75, 180}, ErrMalformedData},
		{"infinite laps", "SWM", []float64{720, 1, 80, 25, math.Inf(1)}, ErrMalformedData},
		{"action above int range", "RUN", []float64{1e19, 1, 75}, ErrMalformedData},
		{"action at 2^63", "RUN", []float64{math.Exp2(63), 1, 75}, ErrMalformedData},
		{"laps below int range", "SWM", []float64{720, 1, 80, 25, -1e19}, ErrMalformedData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ReadPackage(tt.workoutType, tt.data)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadPackageLargeWholeNumber(t *testing.T) {
	tr, err := ReadPackage("RUN", []float64{1 << 40, 1, 75})
	require.NoError(t, err)
	assert.Equal(t, 1<<40, tr.Action())
}

func TestParseWorkoutType(t *testing.T) {
	for _, wt := range WorkoutTypes() {
		got, err := ParseWorkoutType(string(wt))
		require.NoError(t, err)
		assert.Equal(t, wt, got)
	}

	_, err := ParseWorkoutType("BIKE")
	assert.ErrorIs(t, err, ErrUnknownWorkoutType)
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"action", "duration", "weight"}, Fields(WorkoutRunning))
	assert.Equal(t, []string{"action", "duration", "weight", "height"}, Fields(WorkoutWalking))
	assert.Equal(t, []string{"action", "duration", "weight", "length_pool", "count_pool"}, Fields(WorkoutSwimming))
	assert.Nil(t, Fields("XYZ"))

	// Callers get a copy
	f := Fields(WorkoutRunning)
	f[0] = "changed"
	assert.Equal(t, "action", Fields(WorkoutRunning)[0])
}
