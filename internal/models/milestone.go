package models

import "time"

// MilestoneType classifies a milestone.
type MilestoneType string

const (
	MilestoneWeight      MilestoneType = "weight"
	MilestoneConsistency MilestoneType = "consistency"
	MilestoneDistance    MilestoneType = "distance"
)

// Valid reports whether t is one of the known milestone types.
func (t MilestoneType) Valid() bool {
	switch t {
	case MilestoneWeight, MilestoneConsistency, MilestoneDistance:
		return true
	}
	return false
}

// Milestone is a noteworthy achievement (e.g., "First 10 lbs lost").
type Milestone struct {
	// ID is the unique identifier for the milestone (UUID format).
	ID string `json:"id"`

	Date        time.Time     `json:"date"`
	Type        MilestoneType `json:"type"`
	Description string        `json:"description"`
	Achieved    bool          `json:"achieved"`
}

// RecordID returns the milestone ID.
func (m Milestone) RecordID() string { return m.ID }

// RecordDate returns the milestone date.
func (m Milestone) RecordDate() time.Time { return m.Date }
