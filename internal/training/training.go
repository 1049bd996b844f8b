package training

// WorkoutType is the tag a sensor package carries to identify its discipline
type WorkoutType string

const (
	WorkoutSwimming WorkoutType = "SWM"
	WorkoutRunning  WorkoutType = "RUN"
	WorkoutWalking  WorkoutType = "WLK"
)

// Training is a completed session that can report its own statistics.
// Running, SportsWalking and Swimming are the only implementations.
type Training interface {
	// Type returns the fixed tag of the discipline
	Type() WorkoutType
	// Action, Duration and Weight return the sensor values shared by every discipline
	Action() int
	Duration() float64
	Weight() float64
	// Distance returns the covered distance in km
	Distance() float64
	// MeanSpeed returns the average speed over the whole session in km/h
	MeanSpeed() float64
	// SpentCalories returns the calories burned during the session
	SpentCalories() float64
	// ShowTrainingInfo assembles a report from the values above
	ShowTrainingInfo() InfoMessage
}

// session holds the sensor values shared by every discipline.
// It has no SpentCalories, so it never satisfies Training on its own.
type session struct {
	action   int     // strides or strokes
	duration float64 // hours
	weight   float64 // kg
}

// Action returns the number of strides or strokes
func (s session) Action() int { return s.action }

// Duration returns the session length in hours
func (s session) Duration() float64 { return s.duration }

// Weight returns the athlete's weight in kg
func (s session) Weight() float64 { return s.weight }

// distance converts a step count into km for the given step length
func (s session) distance(stepLength float64) float64 {
	return float64(s.action) * stepLength / MetersPerKm
}

// meanSpeed divides a distance by the session duration
func (s session) meanSpeed(distance float64) float64 {
	return distance / s.duration
}

// showTrainingInfo builds a report for any variant
func showTrainingInfo(t Training, duration float64) InfoMessage {
	return InfoMessage{
		TrainingType: t.Type(),
		Duration:     duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
