package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/storage"
)

func TestBackend(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	backend, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := backend.Get(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Set then Get", func(t *testing.T) {
		if err := backend.Set(ctx, "k", []byte(`[1,2,3]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := backend.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[1,2,3]` {
			t.Errorf("Get = %s, want [1,2,3]", got)
		}
	})

	t.Run("Set overwrites", func(t *testing.T) {
		if err := backend.Set(ctx, "k", []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := backend.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `[]` {
			t.Errorf("Get = %s, want []", got)
		}
	})

	t.Run("Delete removes key and tolerates missing keys", func(t *testing.T) {
		if err := backend.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := backend.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := backend.Delete(ctx, "k"); err != nil {
			t.Errorf("Delete of missing key failed: %v", err)
		}
	})
}

func TestLocalStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deskwalk.db")
	ctx := context.Background()

	backend, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	session := &models.WalkSession{
		Date:           time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC),
		Duration:       0.5,
		Speed:          2.0,
		Equipment:      "WalkingPad",
		Incline:        1,
		CaloriesBurned: 105.2,
		MilesWalked:    1.0,
	}
	store := storage.NewLocalStore(backend)
	if err := store.SaveWalkSession(ctx, session); err != nil {
		t.Fatalf("SaveWalkSession failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	backend, err = New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen backend: %v", err)
	}
	store = storage.NewLocalStore(backend)
	defer store.Close()

	sessions, err := store.GetWalkSessions(ctx)
	if err != nil {
		t.Fatalf("GetWalkSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.ID != session.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, session.ID)
	}
	if !got.Date.Equal(session.Date) {
		t.Errorf("Date mismatch: got %v, want %v", got.Date, session.Date)
	}
	if got.MilesWalked != session.MilesWalked || got.Equipment != session.Equipment {
		t.Errorf("Session mismatch: got %+v, want %+v", got, *session)
	}
}
