package training

import "math"

// SportsWalking is a race walking session measured in strides
type SportsWalking struct {
	session
	height float64 // cm
}

// NewSportsWalking creates a walking session for an athlete of the given height
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		session: session{action: action, duration: duration, weight: weight},
		height:  height,
	}
}

// Height returns the athlete's height in cm
func (w *SportsWalking) Height() float64 { return w.height }

// Type returns WLK
func (w *SportsWalking) Type() WorkoutType { return WorkoutWalking }

// Distance returns the covered distance in km
func (w *SportsWalking) Distance() float64 {
	return w.distance(StepLength)
}

// MeanSpeed returns the average speed in km/h
func (w *SportsWalking) MeanSpeed() float64 {
	return w.meanSpeed(w.Distance())
}

// SpentCalories returns (0.035 * weight + floor(speed^2 / height) * 0.029 * weight) * minutes.
// The speed term is floor-divided by height, so it stays zero until speed^2 reaches height.
func (w *SportsWalking) SpentCalories() float64 {
	speedTerm := math.Floor(math.Pow(w.MeanSpeed(), WalkSpeedExponent) / w.height)
	return (WalkWeightMultiplier*w.weight +
		speedTerm*WalkSpeedMultiplier*w.weight) * w.duration * MinutesPerHr
}

// ShowTrainingInfo returns the session report
func (w *SportsWalking) ShowTrainingInfo() InfoMessage {
	return showTrainingInfo(w, w.duration)
}
