package training

// Running is a running session measured in strides
type Running struct {
	session
}

// NewRunning creates a running session
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{session: session{action: action, duration: duration, weight: weight}}
}

// Type returns RUN
func (r *Running) Type() WorkoutType { return WorkoutRunning }

// Distance returns the covered distance in km
func (r *Running) Distance() float64 {
	return r.distance(StepLength)
}

// MeanSpeed returns the average speed in km/h
func (r *Running) MeanSpeed() float64 {
	return r.meanSpeed(r.Distance())
}

// SpentCalories returns (18 * speed - 20) * weight / 1000 * minutes
func (r *Running) SpentCalories() float64 {
	return (RunSpeedMultiplier*r.MeanSpeed() - RunSpeedShift) *
		r.weight / MetersPerKm * r.duration * MinutesPerHr
}

// ShowTrainingInfo returns the session report
func (r *Running) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(r, r.duration)
}
