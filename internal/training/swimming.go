package training

// Swimming is a pool session measured in strokes and laps
type Swimming struct {
	session
	lengthPool float64 // meters
	countPool  int     // laps
}

// NewSwimming creates a swimming session in a pool of lengthPool meters
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) *Swimming {
	return &Swimming{
		session:    session{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// LengthPool returns the pool length in meters
func (s *Swimming) LengthPool() float64 { return s.lengthPool }

// CountPool returns the number of laps swum
func (s *Swimming) CountPool() int { return s.countPool }

// Type returns SWM
func (s *Swimming) Type() WorkoutType { return WorkoutSwimming }

// Distance returns the stroke-based distance in km
func (s *Swimming) Distance() float64 {
	return s.distance(SwimmingStepLength)
}

// MeanSpeed returns the lap-based average speed in km/h.
// Strokes are not used here: pool length times laps is the real distance.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / MetersPerKm / s.duration
}

// SpentCalories returns (speed + 1.1) * 2 * weight
func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimSpeedShift) * SwimWeightMultiplier * s.weight
}

// ShowTrainingInfo returns the session report
func (s *Swimming) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(s, s.duration)
}
