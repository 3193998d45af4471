package models

import "time"

// WeightEntry is a single body-weight measurement.
type WeightEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	Date time.Time `json:"date"`

	// Weight in lbs.
	Weight float64 `json:"weight"`

	// BodyFat is an optional body-fat percentage.
	BodyFat *float64 `json:"bodyFat,omitempty"`

	// BMI is computed from the profile height when the entry is logged.
	// Entries written by older clients may not carry it.
	BMI *float64 `json:"bmi,omitempty"`
}

// RecordID returns the entry ID.
func (e WeightEntry) RecordID() string { return e.ID }

// RecordDate returns the measurement date.
func (e WeightEntry) RecordDate() time.Time { return e.Date }
