package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/deskwalk/internal/models"
)

// Keys under which each collection is persisted.
const (
	ProfileKey       = "deskwalk:profile"
	WeightEntriesKey = "deskwalk:weight"
	WalkSessionsKey  = "deskwalk:walks"
	MilestonesKey    = "deskwalk:milestones"
)

// Policy decides what happens when the backend reports ErrUnavailable.
type Policy int

const (
	// BestEffort treats an unavailable backend as empty and drops writes.
	// Dropped writes are logged at warn level and are otherwise invisible.
	BestEffort Policy = iota

	// Strict returns ErrUnavailable to the caller.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "best-effort"
}

// CollectionObserver is notified of a collection's size whenever it is
// loaded or written.
type CollectionObserver interface {
	ObserveCollection(key string, size int)
}

// Ensure LocalStore implements Store
var _ Store = (*LocalStore)(nil)

// LocalStore implements Store on top of a key-value Backend. Every mutation
// is a read-modify-write of the whole collection without locking; concurrent
// writers to the same collection can lose updates.
type LocalStore struct {
	backend  Backend
	policy   Policy
	observer CollectionObserver
	newID    func() string
}

// Option configures a LocalStore.
type Option func(*LocalStore)

// WithPolicy sets the availability policy. The default is BestEffort.
func WithPolicy(p Policy) Option {
	return func(s *LocalStore) { s.policy = p }
}

// WithObserver registers an observer for collection sizes.
func WithObserver(o CollectionObserver) Option {
	return func(s *LocalStore) { s.observer = o }
}

// WithIDGenerator overrides UUID generation for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *LocalStore) { s.newID = newID }
}

// NewLocalStore creates a LocalStore over backend.
func NewLocalStore(backend Backend, opts ...Option) *LocalStore {
	s := &LocalStore{
		backend: backend,
		policy:  BestEffort,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the store's availability policy.
func (s *LocalStore) Policy() Policy {
	return s.policy
}

// Close closes the underlying backend.
func (s *LocalStore) Close() error {
	return s.backend.Close()
}

// SaveProfile overwrites the singleton profile.
func (s *LocalStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = s.newID()
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.backend.Set(ctx, ProfileKey, data); err != nil {
		return s.degrade("save", ProfileKey, err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil if there is none.
func (s *LocalStore) GetProfile(ctx context.Context) (*models.Profile, error) {
	data, err := s.backend.Get(ctx, ProfileKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.degrade("get", ProfileKey, err)
	}

	profile := &models.Profile{}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ProfileKey, err)
	}
	return profile, nil
}

// SaveWeightEntry upserts entry by ID.
func (s *LocalStore) SaveWeightEntry(ctx context.Context, entry *models.WeightEntry) error {
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	return upsert(ctx, s, WeightEntriesKey, *entry)
}

// GetWeightEntries returns every stored weight entry.
func (s *LocalStore) GetWeightEntries(ctx context.Context) ([]models.WeightEntry, error) {
	return loadAll[models.WeightEntry](ctx, s, WeightEntriesKey)
}

// DeleteWeightEntry removes the weight entry with the given ID.
func (s *LocalStore) DeleteWeightEntry(ctx context.Context, id string) error {
	return remove[models.WeightEntry](ctx, s, WeightEntriesKey, id)
}

// SaveWalkSession upserts session by ID.
func (s *LocalStore) SaveWalkSession(ctx context.Context, session *models.WalkSession) error {
	if session.ID == "" {
		session.ID = s.newID()
	}
	return upsert(ctx, s, WalkSessionsKey, *session)
}

// GetWalkSessions returns every stored walk session.
func (s *LocalStore) GetWalkSessions(ctx context.Context) ([]models.WalkSession, error) {
	return loadAll[models.WalkSession](ctx, s, WalkSessionsKey)
}

// DeleteWalkSession removes the walk session with the given ID.
func (s *LocalStore) DeleteWalkSession(ctx context.Context, id string) error {
	return remove[models.WalkSession](ctx, s, WalkSessionsKey, id)
}

// SaveMilestone upserts milestone by ID.
func (s *LocalStore) SaveMilestone(ctx context.Context, milestone *models.Milestone) error {
	if milestone.ID == "" {
		milestone.ID = s.newID()
	}
	return upsert(ctx, s, MilestonesKey, *milestone)
}

// GetMilestones returns every stored milestone.
func (s *LocalStore) GetMilestones(ctx context.Context) ([]models.Milestone, error) {
	return loadAll[models.Milestone](ctx, s, MilestonesKey)
}

// DeleteMilestone removes the milestone with the given ID.
func (s *LocalStore) DeleteMilestone(ctx context.Context, id string) error {
	return remove[models.Milestone](ctx, s, MilestonesKey, id)
}

// degrade applies the availability policy to a backend error.
func (s *LocalStore) degrade(op, key string, err error) error {
	if s.policy == BestEffort && errors.Is(err, ErrUnavailable) {
		slog.Warn("Storage unavailable, continuing without persistence",
			"op", op,
			"key", key,
			"error", err,
		)
		return nil
	}
	return fmt.Errorf("failed to %s %s: %w", op, key, err)
}

func (s *LocalStore) observe(key string, size int) {
	if s.observer != nil {
		s.observer.ObserveCollection(key, size)
	}
}

type record interface {
	RecordID() string
}

// loadAll reads and decodes a collection. A missing key, or an unavailable
// backend under BestEffort, yields an empty collection.
func loadAll[T record](ctx context.Context, s *LocalStore, key string) ([]T, error) {
	records, _, err := readAll[T](ctx, s, key)
	return records, err
}

// readAll is loadAll that also reports whether the read was degraded, in
// which case the empty result does not reflect what is stored.
func readAll[T record](ctx context.Context, s *LocalStore, key string) ([]T, bool, error) {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		s.observe(key, 0)
		return []T{}, false, nil
	}
	if err != nil {
		if err := s.degrade("load", key, err); err != nil {
			return nil, false, err
		}
		return []T{}, true, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if records == nil {
		records = []T{}
	}
	s.observe(key, len(records))
	return records, false, nil
}

// modify applies fn to the stored collection and writes the result back.
// The write is dropped when the read was degraded so the stored collection
// is never replaced by a partial one.
func modify[T record](ctx context.Context, s *LocalStore, op, key string, fn func([]T) []T) error {
	records, degraded, err := readAll[T](ctx, s, key)
	if err != nil {
		return err
	}
	if degraded {
		slog.Warn("Dropping write after failed read", "op", op, "key", key)
		return nil
	}
	return writeAll(ctx, s, key, fn(records))
}

func writeAll[T record](ctx context.Context, s *LocalStore, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return s.degrade("write", key, err)
	}
	s.observe(key, len(records))
	return nil
}

// upsert replaces the record with rec's ID, or appends rec.
func upsert[T record](ctx context.Context, s *LocalStore, key string, rec T) error {
	return modify(ctx, s, "save", key, func(records []T) []T {
		index := slices.IndexFunc(records, func(r T) bool { return r.RecordID() == rec.RecordID() })
		if index >= 0 {
			records[index] = rec
			return records
		}
		return append(records, rec)
	})
}

// remove filters out the record with the given ID. A missing ID is a no-op
// but the collection is still written back.
func remove[T record](ctx context.Context, s *LocalStore, key, id string) error {
	return modify(ctx, s, "delete", key, func(records []T) []T {
		return slices.DeleteFunc(records, func(r T) bool { return r.RecordID() == id })
	})
}
