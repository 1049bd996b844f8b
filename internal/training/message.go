package training

import "fmt"

// InfoMessage is a snapshot of the statistics of one session
type InfoMessage struct {
	TrainingType WorkoutType
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// GetMessage renders the report line. Field order and the 3 decimal places are fixed.
func (m InfoMessage) GetMessage() string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// String implements fmt.Stringer
func (m InfoMessage) String() string {
	return m.GetMessage()
}
