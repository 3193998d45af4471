package calculator

import "time"

// CalculateWeightLossDate projects when targetWeight is reached from
// currentWeight at weeklyLossRate lbs/week, counting calendar days from.
//
// Fractional days are truncated. No validation is performed: a rate <= 0 or a
// target above the current weight yields a meaningless date, so callers must
// check rate > 0 and target < current beforehand.
func CalculateWeightLossDate(from time.Time, currentWeight, targetWeight, weeklyLossRate float64) time.Time {
	weeksNeeded := (currentWeight - targetWeight) / weeklyLossRate
	daysNeeded := int(weeksNeeded * 7)
	return from.AddDate(0, 0, daysNeeded)
}
