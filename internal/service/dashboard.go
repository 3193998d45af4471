package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/deskwalk/internal/calculator"
	"github.com/mmynk/deskwalk/internal/models"
)

// Dashboard is the progress overview: the profile plus aggregates over
// every weight entry and walk session.
type Dashboard struct {
	Profile models.Profile `json:"profile"`
	calculator.Summary
}

// Dashboard loads every collection and summarizes progress toward the goal.
func (t *Tracker) Dashboard(ctx context.Context) (*Dashboard, error) {
	profile, err := t.Profile(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := t.store.GetWeightEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight entries: %w", err)
	}
	sessions, err := t.store.GetWalkSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load walk sessions: %w", err)
	}

	weights := make([]calculator.WeightForSummary, len(entries))
	for i, e := range entries {
		weights[i] = calculator.WeightForSummary{Date: e.Date, Weight: e.Weight, BMI: e.BMI}
	}
	walks := make([]calculator.WalkForSummary, len(sessions))
	for i, s := range sessions {
		walks[i] = calculator.WalkForSummary{
			Date:     s.Date,
			Duration: s.Duration,
			Miles:    s.MilesWalked,
			Calories: s.CaloriesBurned,
		}
	}

	summary := calculator.Summarize(calculator.GoalForSummary{
		Height:       profile.Height,
		Weight:       profile.Weight,
		TargetWeight: profile.TargetWeight,
	}, weights, walks)

	slog.Info("Dashboard computed",
		"weight_entries", len(entries),
		"walk_sessions", len(sessions),
		"goal_progress", summary.GoalProgress,
	)

	return &Dashboard{Profile: *profile, Summary: summary}, nil
}
