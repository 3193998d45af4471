package redis

import (
	"context"
	"errors"
	"testing"

	goredis "github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/storage"
)

func TestBackend_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	backend := New(db)
	ctx := context.Background()

	mock.ExpectGet(storage.WalkSessionsKey).SetErr(goredis.Nil)
	_, err := backend.Get(ctx, storage.WalkSessionsKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	mock.ExpectGet(storage.WalkSessionsKey).SetVal(`[]`)
	value, err := backend.Get(ctx, storage.WalkSessionsKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	mock.ExpectGet(storage.WalkSessionsKey).SetErr(errors.New("connection refused"))
	_, err = backend.Get(ctx, storage.WalkSessionsKey)
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBackend_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	backend := New(db)
	ctx := context.Background()

	mock.ExpectSet(storage.ProfileKey, `{"id":"p1"}`, 0).SetVal("OK")
	require.NoError(t, backend.Set(ctx, storage.ProfileKey, []byte(`{"id":"p1"}`)))

	mock.ExpectDel(storage.ProfileKey).SetVal(1)
	require.NoError(t, backend.Delete(ctx, storage.ProfileKey))

	mock.ExpectSet(storage.ProfileKey, `{}`, 0).SetErr(errors.New("i/o timeout"))
	err := backend.Set(ctx, storage.ProfileKey, []byte(`{}`))
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStoreOverRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := storage.NewLocalStore(New(db), storage.WithIDGenerator(func() string { return "m1" }))
	ctx := context.Background()

	mock.ExpectGet(storage.MilestonesKey).SetErr(goredis.Nil)
	mock.ExpectSet(storage.MilestonesKey,
		`[{"id":"m1","date":"0001-01-01T00:00:00Z","type":"distance","description":"First 10 miles","achieved":true}]`,
		0,
	).SetVal("OK")

	err := store.SaveMilestone(ctx, &models.Milestone{
		Type:        models.MilestoneDistance,
		Description: "First 10 miles",
		Achieved:    true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
