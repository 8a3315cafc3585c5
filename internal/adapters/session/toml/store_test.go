package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), ".rentora", "session.toml"))
	require.NoError(t, err)
	return store
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	session := domain.Session{
		Token: "tok-123",
		Profile: domain.Profile{
			DisplayName:     "Ops",
			Role:            domain.RoleAgent,
			RestrictedAgent: true,
		},
		EstablishedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(context.Background(), session))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
}

func TestStoreLoadMissingFileMeansNoSession(t *testing.T) {
	t.Parallel()

	_, err := newTestStore(t).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreLoadMalformedFileDegradesToNoSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml {{"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreLoadNewerSchemaVersionDegradesToNoSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.toml")
	contents := `version = 99

[session]
token = "tok"
display_name = "Ops"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreLoadTokenWithoutProfileDegradesToNoSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.toml")
	contents := `version = 1

[session]
token = "tok"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreSaveRefusesUnauthenticatedSession(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.Error(t, store.Save(context.Background(), domain.Session{Token: "tok"}))
	require.Error(t, store.Save(context.Background(), domain.Session{Profile: domain.Profile{DisplayName: "Ops"}}))
}

func TestStoreClearIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	session := domain.Session{Token: "tok", Profile: domain.Profile{DisplayName: "Ops"}}
	require.NoError(t, store.Save(context.Background(), session))

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreSaveSetsRestrictiveFileMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.toml")
	store, err := NewStore(path)
	require.NoError(t, err)

	session := domain.Session{Token: "tok", Profile: domain.Profile{DisplayName: "Ops"}}
	require.NoError(t, store.Save(context.Background(), session))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
