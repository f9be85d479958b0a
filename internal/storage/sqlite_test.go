package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petworks/tamacore/internal/domain"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	state := domain.NewSaveState(time.UnixMilli(1_700_000_000_000))
	state.Currency.Gems = 99
	state.Shop.FeaturedIDs = []string{"hat_cap", "skin_red"}

	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, 99, loaded.Currency.Gems)
	assert.Equal(t, []string{"hat_cap", "skin_red"}, loaded.Shop.FeaturedIDs)
}

func TestSQLiteStoreMissingSave(t *testing.T) {
	store := newTestSQLiteStore(t)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	state := domain.NewSaveState(time.Now())
	for coins := 1; coins <= 3; coins++ {
		state.Currency.Coins = coins
		require.NoError(t, store.Save(ctx, state))
	}

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.Currency.Coins)

	// Still exactly one row.
	var count int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM save_blobs`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLiteStoreVersionMismatch(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	state := domain.NewSaveState(time.Now())
	state.Version = 1
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSQLiteStorePing(t *testing.T) {
	store := newTestSQLiteStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
