// Package calculator holds the closed-form fitness formulas: BMI, calorie
// burn, distance and projected goal dates, plus the dashboard aggregates
// built on top of them. Everything here is pure and unit-agnostic beyond the
// documented imperial inputs.
package calculator

const (
	metersPerInch = 0.0254
	kgPerLb       = 0.453592
)

// BMICategory is the coarse WHO classification of a BMI value.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// CalculateBMI returns weight(kg) / height(m)².
// Inputs are not checked; callers pass positive values.
func CalculateBMI(heightInches, weightLbs float64) float64 {
	heightMeters := heightInches * metersPerInch
	return lbsToKg(weightLbs) / (heightMeters * heightMeters)
}

// GetBMICategory classifies bmi. Each band includes its lower bound and
// excludes its upper bound, so 25 is Overweight and 30 is Obese.
func GetBMICategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

func lbsToKg(lbs float64) float64 {
	return lbs * kgPerLb
}
