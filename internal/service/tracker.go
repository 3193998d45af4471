package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/deskwalk/internal/calculator"
	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/storage"
)

// ErrNoProfile is returned by operations that need a profile before one has been saved.
var ErrNoProfile = errors.New("no profile: run profile setup first")

// Tracker validates input, derives computed fields, and persists records.
// Every mutation returns the freshly re-read collection so callers never
// hold stale state.
type Tracker struct {
	store storage.Store
	now   func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithClock overrides time.Now for goal-date projection.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a new Tracker with the given storage backend.
func NewTracker(store storage.Store, opts ...TrackerOption) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetupProfile creates or overwrites the profile and projects its target date.
func (t *Tracker) SetupProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	slog.Info("SetupProfile request received",
		"weight", in.Weight,
		"target_weight", in.TargetWeight,
		"weekly_goal", in.WeeklyWeightLossGoal,
	)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := t.store.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := &models.Profile{
		Height:               in.Height,
		Weight:               in.Weight,
		Age:                  in.Age,
		Gender:               in.Gender,
		TargetWeight:         in.TargetWeight,
		WeeklyWeightLossGoal: in.WeeklyWeightLossGoal,
		TargetDate:           calculator.CalculateWeightLossDate(t.now(), in.Weight, in.TargetWeight, in.WeeklyWeightLossGoal),
	}
	// Editing keeps the existing ID.
	if existing != nil {
		profile.ID = existing.ID
	}

	if err := t.store.SaveProfile(ctx, profile); err != nil {
		slog.Error("SetupProfile failed", "error", err)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	slog.Info("Profile saved", "profile_id", profile.ID, "target_date", profile.TargetDate.Format(time.DateOnly))
	return profile, nil
}

// Profile returns the stored profile, or ErrNoProfile.
func (t *Tracker) Profile(ctx context.Context) (*models.Profile, error) {
	profile, err := t.store.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	return profile, nil
}

// LogWeight records a weight entry with its BMI and returns all entries, newest first.
func (t *Tracker) LogWeight(ctx context.Context, in WeightInput) ([]models.WeightEntry, error) {
	slog.Info("LogWeight request received", "entry_id", in.ID, "weight", in.Weight)

	if err := in.Validate(); err != nil {
		return nil, err
	}
	profile, err := t.Profile(ctx)
	if err != nil {
		return nil, err
	}

	bmi := calculator.CalculateBMI(profile.Height, in.Weight)
	entry := &models.WeightEntry{
		ID:      in.ID,
		Date:    in.Date,
		Weight:  in.Weight,
		BodyFat: in.BodyFat,
		BMI:     &bmi,
	}
	if err := t.store.SaveWeightEntry(ctx, entry); err != nil {
		slog.Error("LogWeight failed", "error", err)
		return nil, fmt.Errorf("failed to save weight entry: %w", err)
	}

	slog.Info("Weight entry saved", "entry_id", entry.ID, "bmi", bmi)
	return t.WeightEntries(ctx)
}

// WeightEntries returns all weight entries, newest first.
func (t *Tracker) WeightEntries(ctx context.Context) ([]models.WeightEntry, error) {
	entries, err := t.store.GetWeightEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight entries: %w", err)
	}
	models.SortByDateDesc(entries)
	return entries, nil
}

// DeleteWeightEntry removes an entry and returns the remaining entries, newest first.
func (t *Tracker) DeleteWeightEntry(ctx context.Context, id string) ([]models.WeightEntry, error) {
	slog.Info("DeleteWeightEntry request received", "entry_id", id)

	if err := t.store.DeleteWeightEntry(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete weight entry: %w", err)
	}
	return t.WeightEntries(ctx)
}

// LogWalk records a walk session with its calories and distance and returns
// all sessions, newest first. Calories use the profile weight.
func (t *Tracker) LogWalk(ctx context.Context, in WalkInput) ([]models.WalkSession, error) {
	slog.Info("LogWalk request received",
		"session_id", in.ID,
		"duration", in.Duration,
		"speed", in.Speed,
		"incline", in.Incline,
	)

	if err := in.Validate(); err != nil {
		return nil, err
	}
	profile, err := t.Profile(ctx)
	if err != nil {
		return nil, err
	}

	session := &models.WalkSession{
		ID:             in.ID,
		Date:           in.Date,
		Duration:       in.Duration,
		Speed:          in.Speed,
		Equipment:      in.Equipment,
		Incline:        in.Incline,
		CaloriesBurned: calculator.CalculateCaloriesBurned(profile.Weight, in.Speed, in.Duration, in.Incline),
		MilesWalked:    calculator.CalculateMilesWalked(in.Speed, in.Duration),
	}
	if err := t.store.SaveWalkSession(ctx, session); err != nil {
		slog.Error("LogWalk failed", "error", err)
		return nil, fmt.Errorf("failed to save walk session: %w", err)
	}

	slog.Info("Walk session saved",
		"session_id", session.ID,
		"calories", session.CaloriesBurned,
		"miles", session.MilesWalked,
	)
	return t.WalkSessions(ctx)
}

// WalkSessions returns all walk sessions, newest first.
func (t *Tracker) WalkSessions(ctx context.Context) ([]models.WalkSession, error) {
	sessions, err := t.store.GetWalkSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load walk sessions: %w", err)
	}
	models.SortByDateDesc(sessions)
	return sessions, nil
}

// DeleteWalkSession removes a session and returns the remaining sessions, newest first.
func (t *Tracker) DeleteWalkSession(ctx context.Context, id string) ([]models.WalkSession, error) {
	slog.Info("DeleteWalkSession request received", "session_id", id)

	if err := t.store.DeleteWalkSession(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete walk session: %w", err)
	}
	return t.WalkSessions(ctx)
}

// RecordMilestone saves a milestone and returns all milestones, newest first.
func (t *Tracker) RecordMilestone(ctx context.Context, in MilestoneInput) ([]models.Milestone, error) {
	slog.Info("RecordMilestone request received", "milestone_id", in.ID, "type", in.Type)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	milestone := &models.Milestone{
		ID:          in.ID,
		Date:        in.Date,
		Type:        in.Type,
		Description: in.Description,
		Achieved:    in.Achieved,
	}
	if err := t.store.SaveMilestone(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to save milestone: %w", err)
	}

	slog.Info("Milestone saved", "milestone_id", milestone.ID)
	return t.Milestones(ctx)
}

// Milestones returns all milestones, newest first.
func (t *Tracker) Milestones(ctx context.Context) ([]models.Milestone, error) {
	milestones, err := t.store.GetMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load milestones: %w", err)
	}
	models.SortByDateDesc(milestones)
	return milestones, nil
}

// DeleteMilestone removes a milestone and returns the remaining milestones, newest first.
func (t *Tracker) DeleteMilestone(ctx context.Context, id string) ([]models.Milestone, error) {
	slog.Info("DeleteMilestone request received", "milestone_id", id)

	if err := t.store.DeleteMilestone(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete milestone: %w", err)
	}
	return t.Milestones(ctx)
}
