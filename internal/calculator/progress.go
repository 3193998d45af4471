package calculator

import (
	"math"
	"slices"
	"time"
)

// GoalForSummary is the minimal profile information needed for a progress summary.
type GoalForSummary struct {
	Height       float64 // inches
	Weight       float64 // lbs, used when no weight entries exist
	TargetWeight float64 // lbs
}

// WeightForSummary is one weight measurement.
type WeightForSummary struct {
	Date   time.Time
	Weight float64
	BMI    *float64 // stored BMI, nil if the entry never had one
}

// WalkForSummary is one walk session's contribution to the totals.
type WalkForSummary struct {
	Date     time.Time
	Duration float64 // hours
	Miles    float64
	Calories float64
}

// WeightPoint is one point of the weight-over-time series.
type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	BMI    float64   `json:"bmi"`
}

// WeekTotals aggregates the walks of one week. Weeks start on Sunday.
type WeekTotals struct {
	WeekStart time.Time `json:"weekStart"`
	Miles     float64   `json:"miles"`
	Calories  float64   `json:"calories"`
	Count     int       `json:"count"`
}

// Summary is the dashboard view of progress toward the weight goal.
type Summary struct {
	CurrentWeight   float64 `json:"currentWeight"`
	InitialWeight   float64 `json:"initialWeight"`
	WeightLost      float64 `json:"weightLost"` // negative when weight was gained
	WeightRemaining float64 `json:"weightRemaining"`
	GoalAchieved    bool    `json:"goalAchieved"`
	GoalProgress    float64 `json:"goalProgress"` // percent, at most 100

	CurrentBMI  float64     `json:"currentBmi"`
	BMICategory BMICategory `json:"bmiCategory"`

	TotalWalks    int     `json:"totalWalks"`
	TotalMiles    float64 `json:"totalMiles"`
	TotalCalories float64 `json:"totalCalories"`
	TotalHours    float64 `json:"totalHours"`

	WeightSeries []WeightPoint `json:"weightSeries"`
	Weekly       []WeekTotals  `json:"weekly"`
}

// Summarize computes progress from the goal, weight history and walk history.
// Inputs may be in any order.
//
// Algorithm:
// - Current/initial weight come from the latest/earliest entry, falling back to the goal weight
// - Progress = lost / (initial - target), capped at 100%
// - Walks are summed overall and per week (see WeeklyTotals)
func Summarize(goal GoalForSummary, weights []WeightForSummary, walks []WalkForSummary) Summary {
	weights = slices.Clone(weights)
	slices.SortStableFunc(weights, func(a, b WeightForSummary) int {
		return a.Date.Compare(b.Date)
	})

	s := Summary{
		CurrentWeight: goal.Weight,
		InitialWeight: goal.Weight,
	}
	if len(weights) > 0 {
		s.InitialWeight = weights[0].Weight
		s.CurrentWeight = weights[len(weights)-1].Weight
	}

	s.WeightLost = s.InitialWeight - s.CurrentWeight
	s.WeightRemaining = s.CurrentWeight - goal.TargetWeight
	s.GoalAchieved = s.WeightRemaining <= 0
	s.GoalProgress = goalProgress(s.WeightLost, s.InitialWeight-goal.TargetWeight, s.GoalAchieved)

	s.CurrentBMI = CalculateBMI(goal.Height, s.CurrentWeight)
	s.BMICategory = GetBMICategory(s.CurrentBMI)

	s.WeightSeries = make([]WeightPoint, len(weights))
	for i, w := range weights {
		bmi := CalculateBMI(goal.Height, w.Weight)
		if w.BMI != nil {
			bmi = *w.BMI
		}
		s.WeightSeries[i] = WeightPoint{Date: w.Date, Weight: w.Weight, BMI: bmi}
	}

	s.TotalWalks = len(walks)
	for _, w := range walks {
		s.TotalMiles += w.Miles
		s.TotalCalories += w.Calories
		s.TotalHours += w.Duration
	}
	s.Weekly = WeeklyTotals(walks)

	return s
}

func goalProgress(lost, toLose float64, achieved bool) float64 {
	if toLose <= 0 {
		// Started at or below target; there is no distance to measure against.
		if achieved {
			return 100
		}
		return 0
	}
	return math.Min(100, lost/toLose*100)
}

// WeeklyTotals groups walks by the Sunday starting their week, in the
// location of each walk's date, ordered by week start.
func WeeklyTotals(walks []WalkForSummary) []WeekTotals {
	// Keyed by instant: equal week starts parsed with distinct zone pointers
	// are not == as time.Time values.
	byWeek := make(map[int64]*WeekTotals)
	for _, w := range walks {
		start := WeekStart(w.Date)
		week, exists := byWeek[start.Unix()]
		if !exists {
			week = &WeekTotals{WeekStart: start}
			byWeek[start.Unix()] = week
		}
		week.Miles += w.Miles
		week.Calories += w.Calories
		week.Count++
	}

	weeks := make([]WeekTotals, 0, len(byWeek))
	for _, week := range byWeek {
		weeks = append(weeks, *week)
	}
	slices.SortFunc(weeks, func(a, b WeekTotals) int {
		return a.WeekStart.Compare(b.WeekStart)
	})
	return weeks
}

// WeekStart returns midnight of the Sunday on or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}
