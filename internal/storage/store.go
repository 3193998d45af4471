// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/deskwalk/internal/models"
)

// Store defines the record operations for the four collections.
// Each collection is independent: no operation spans two of them.
type Store interface {
	// SaveProfile overwrites the singleton profile.
	// The profile.ID field is populated if empty.
	SaveProfile(ctx context.Context, profile *models.Profile) error

	// GetProfile returns the stored profile, or nil if none has been saved.
	GetProfile(ctx context.Context) (*models.Profile, error)

	// SaveWeightEntry inserts the entry, or replaces the entry with the same ID.
	// The entry.ID field is populated if empty.
	SaveWeightEntry(ctx context.Context, entry *models.WeightEntry) error

	// GetWeightEntries returns all entries in storage order.
	GetWeightEntries(ctx context.Context) ([]models.WeightEntry, error)

	// DeleteWeightEntry removes the entry with the given ID, if any.
	DeleteWeightEntry(ctx context.Context, id string) error

	// SaveWalkSession inserts the session, or replaces the session with the same ID.
	SaveWalkSession(ctx context.Context, session *models.WalkSession) error

	// GetWalkSessions returns all sessions in storage order.
	GetWalkSessions(ctx context.Context) ([]models.WalkSession, error)

	// DeleteWalkSession removes the session with the given ID, if any.
	DeleteWalkSession(ctx context.Context, id string) error

	// SaveMilestone inserts the milestone, or replaces the milestone with the same ID.
	SaveMilestone(ctx context.Context, milestone *models.Milestone) error

	// GetMilestones returns all milestones in storage order.
	GetMilestones(ctx context.Context) ([]models.Milestone, error)

	// DeleteMilestone removes the milestone with the given ID, if any.
	DeleteMilestone(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
