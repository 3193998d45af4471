package models

import "time"

// WalkSession is a single treadmill walk.
type WalkSession struct {
	// ID is the unique identifier for the session (UUID format).
	ID string `json:"id"`

	Date time.Time `json:"date"`

	// Duration in hours. Always > 0.
	Duration float64 `json:"duration"`

	// Speed in mph. Always > 0.
	Speed float64 `json:"speed"`

	// Equipment is a free-text description (e.g., "WalkingPad C2").
	Equipment string `json:"equipment"`

	// Incline in percent. Always >= 0.
	Incline float64 `json:"incline"`

	// CaloriesBurned is derived from the profile weight, speed, duration and incline.
	CaloriesBurned float64 `json:"caloriesBurned"`

	// MilesWalked is derived as speed × duration.
	MilesWalked float64 `json:"milesWalked"`
}

// RecordID returns the session ID.
func (s WalkSession) RecordID() string { return s.ID }

// RecordDate returns the session date.
func (s WalkSession) RecordDate() time.Time { return s.Date }
