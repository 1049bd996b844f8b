package training

const (
	// Unit conversions
	MetersPerKm  = 1000
	MinutesPerHr = 60

	// Average step length (meters)
	StepLength         = 0.65
	SwimmingStepLength = 1.38

	// Running calorie coefficients
	RunSpeedMultiplier = 18
	RunSpeedShift      = 20

	// Walking calorie coefficients
	WalkWeightMultiplier = 0.035
	WalkSpeedExponent    = 2
	WalkSpeedMultiplier  = 0.029

	// Swimming calorie coefficients
	SwimSpeedShift       = 1.1
	SwimWeightMultiplier = 2
)
