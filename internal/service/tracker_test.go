package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/storage"
	"github.com/mmynk/deskwalk/internal/storage/memory"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

func setupTracker(t *testing.T) (*Tracker, *memory.Backend) {
	t.Helper()
	backend := memory.New()
	store := storage.NewLocalStore(backend)
	t.Cleanup(func() { store.Close() })
	return NewTracker(store, WithClock(func() time.Time { return fixedNow })), backend
}

func validProfile() ProfileInput {
	return ProfileInput{
		Height:               60,
		Weight:               200,
		Age:                  35,
		Gender:               models.GenderFemale,
		TargetWeight:         180,
		WeeklyWeightLossGoal: 2,
	}
}

func date(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSetupProfile(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	profile, err := tracker.SetupProfile(ctx, validProfile())
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	assert.True(t, profile.TargetDate.Equal(fixedNow.AddDate(0, 0, 70)), "target date %v", profile.TargetDate)

	edit := validProfile()
	edit.WeeklyWeightLossGoal = 1
	edited, err := tracker.SetupProfile(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, edited.ID)
	assert.True(t, edited.TargetDate.Equal(fixedNow.AddDate(0, 0, 140)))

	stored, err := tracker.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stored.WeeklyWeightLossGoal)
}

func TestProfile_Missing(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	_, err := tracker.Profile(ctx)
	assert.ErrorIs(t, err, ErrNoProfile)

	_, err = tracker.LogWalk(ctx, WalkInput{Date: date(time.October, 1), Duration: 1, Speed: 2, Equipment: "pad"})
	assert.ErrorIs(t, err, ErrNoProfile)

	_, err = tracker.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestLogWeight(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()
	_, err := tracker.SetupProfile(ctx, validProfile())
	require.NoError(t, err)

	_, err = tracker.LogWeight(ctx, WeightInput{Date: date(time.October, 1), Weight: 200})
	require.NoError(t, err)
	entries, err := tracker.LogWeight(ctx, WeightInput{Date: date(time.October, 8), Weight: 195})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, 195.0, entries[0].Weight)
	require.NotNil(t, entries[0].BMI)
	assert.InDelta(t, 38.0829, *entries[0].BMI, 0.001)

	// Editing by ID keeps the collection size.
	bodyFat := 30.0
	entries, err = tracker.LogWeight(ctx, WeightInput{ID: entries[0].ID, Date: date(time.October, 8), Weight: 194, BodyFat: &bodyFat})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 194.0, entries[0].Weight)
	assert.Equal(t, &bodyFat, entries[0].BodyFat)

	entries, err = tracker.DeleteWeightEntry(ctx, entries[1].ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 194.0, entries[0].Weight)
}

func TestLogWalk(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()
	_, err := tracker.SetupProfile(ctx, validProfile())
	require.NoError(t, err)

	sessions, err := tracker.LogWalk(ctx, WalkInput{
		Date:      date(time.October, 14),
		Duration:  0.5,
		Speed:     2.0,
		Equipment: "WalkingPad",
	})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.InDelta(t, 113.398, sessions[0].CaloriesBurned, 0.01)
	assert.Equal(t, 1.0, sessions[0].MilesWalked)

	sessions, err = tracker.LogWalk(ctx, WalkInput{
		Date:      date(time.October, 15),
		Duration:  1,
		Speed:     3.0,
		Equipment: "WalkingPad",
		Incline:   2,
	})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].Date.Equal(date(time.October, 15)))

	sessions, err = tracker.DeleteWalkSession(ctx, "missing")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestMilestones(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()

	milestones, err := tracker.RecordMilestone(ctx, MilestoneInput{
		Date:        date(time.October, 10),
		Type:        models.MilestoneDistance,
		Description: "Walked 10 miles",
		Achieved:    true,
	})
	require.NoError(t, err)
	require.Len(t, milestones, 1)

	milestones, err = tracker.DeleteMilestone(ctx, milestones[0].ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	_, err = tracker.RecordMilestone(ctx, MilestoneInput{Date: date(time.October, 10), Type: "streak"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"type", "description"}, verr.Fields())
}

func TestDashboard(t *testing.T) {
	tracker, _ := setupTracker(t)
	ctx := context.Background()
	_, err := tracker.SetupProfile(ctx, validProfile())
	require.NoError(t, err)

	_, err = tracker.LogWeight(ctx, WeightInput{Date: date(time.October, 8), Weight: 195})
	require.NoError(t, err)
	_, err = tracker.LogWeight(ctx, WeightInput{Date: date(time.October, 1), Weight: 200})
	require.NoError(t, err)
	_, err = tracker.LogWalk(ctx, WalkInput{Date: date(time.October, 12), Duration: 1, Speed: 2.5, Equipment: "pad"})
	require.NoError(t, err)
	_, err = tracker.LogWalk(ctx, WalkInput{Date: date(time.October, 19), Duration: 0.5, Speed: 2, Equipment: "pad"})
	require.NoError(t, err)

	d, err := tracker.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, d.InitialWeight)
	assert.Equal(t, 195.0, d.CurrentWeight)
	assert.InDelta(t, 25, d.GoalProgress, 0.001)
	assert.Equal(t, 2, d.TotalWalks)
	assert.InDelta(t, 3.5, d.TotalMiles, 1e-9)
	assert.Len(t, d.Weekly, 2)
	assert.Equal(t, 180.0, d.Profile.TargetWeight)
}

func TestTracker_StorageUnavailable(t *testing.T) {
	tracker, backend := setupTracker(t)
	ctx := context.Background()
	_, err := tracker.SetupProfile(ctx, validProfile())
	require.NoError(t, err)

	backend.SetAvailable(false)

	// Best effort: the profile reads as absent rather than failing.
	_, err = tracker.LogWalk(ctx, WalkInput{Date: date(time.October, 1), Duration: 1, Speed: 2, Equipment: "pad"})
	assert.ErrorIs(t, err, ErrNoProfile)

	sessions, err := tracker.WalkSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
