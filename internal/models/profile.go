package models

import "time"

// Gender is the self-reported gender on a profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Profile is the user's body profile and weight-loss goal.
// At most one profile exists; saving overwrites it.
type Profile struct {
	// ID is the unique identifier for the profile (UUID format).
	ID string `json:"id"`

	// Height in inches.
	Height float64 `json:"height"`

	// Weight in lbs at the time the profile was last edited.
	// Calorie estimates for walk sessions are based on this value.
	Weight float64 `json:"weight"`

	Age    int    `json:"age"`
	Gender Gender `json:"gender"`

	// TargetWeight in lbs.
	TargetWeight float64 `json:"targetWeight"`

	// WeeklyWeightLossGoal in lbs per week.
	WeeklyWeightLossGoal float64 `json:"weeklyWeightLossGoal"`

	// TargetDate is derived from Weight, TargetWeight and WeeklyWeightLossGoal
	// when the profile is saved.
	TargetDate time.Time `json:"targetDate"`
}
