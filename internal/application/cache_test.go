package application

import (
	"testing"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCacheReplaceAllDropsDuplicateIDs(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)
	cache.ReplaceAll([]domain.Record{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
		{ID: "1", Name: "Duplicate"},
	})

	view := cache.Snapshot()
	require.Len(t, view.Records, 2)
	assert.Equal(t, "First", view.Records[0].Name)
	assert.Equal(t, "Second", view.Records[1].Name)
}

func TestEntityCacheGenerationStrictlyIncreases(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)

	g1 := cache.ReplaceAll([]domain.Record{{ID: "1"}})
	g2 := cache.ReplaceAll([]domain.Record{{ID: "1"}, {ID: "2"}})
	assert.Greater(t, g2, g1)

	seq := cache.RefreshSeq()
	require.True(t, cache.PatchStatus("1", domain.StatusBlocked, seq))
	assert.Greater(t, cache.Snapshot().Generation, g2)
}

func TestEntityCachePatchStatusTouchesOnlyTheStatusField(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)
	cache.ReplaceAll([]domain.Record{
		{ID: "1", Name: "Asha", Email: "asha@example.com", Status: domain.StatusActive},
		{ID: "2", Name: "Ben", Email: "ben@example.com", Status: domain.StatusActive},
	})
	before := cache.Snapshot()

	require.True(t, cache.PatchStatus("1", domain.StatusBlocked, before.RefreshSeq))

	after := cache.Snapshot()
	assert.Equal(t, domain.StatusBlocked, after.Records[0].Status)

	patched := after.Records[0]
	patched.Status = before.Records[0].Status
	assert.Equal(t, before.Records[0], patched)
	assert.Equal(t, before.Records[1], after.Records[1])
}

func TestEntityCachePatchStatusDiscardsStaleResult(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)
	cache.ReplaceAll([]domain.Record{{ID: "1", Status: domain.StatusActive}})
	observed := cache.RefreshSeq()

	// One overlapping refresh is fine; the patch lands on the fresh record.
	cache.ReplaceAll([]domain.Record{{ID: "1", Name: "Refreshed", Status: domain.StatusActive}})
	require.True(t, cache.PatchStatus("1", domain.StatusBlocked, observed))

	view := cache.Snapshot()
	assert.Equal(t, "Refreshed", view.Records[0].Name)
	assert.Equal(t, domain.StatusBlocked, view.Records[0].Status)

	// Two refreshes beyond the observed point supersede the result.
	observed = cache.RefreshSeq()
	cache.ReplaceAll([]domain.Record{{ID: "1", Status: domain.StatusActive}})
	cache.ReplaceAll([]domain.Record{{ID: "1", Status: domain.StatusActive}})
	assert.False(t, cache.PatchStatus("1", domain.StatusBlocked, observed))
	assert.Equal(t, domain.StatusActive, cache.Snapshot().Records[0].Status)
}

func TestEntityCachePatchStatusSkipsRemovedRecord(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)
	cache.ReplaceAll([]domain.Record{{ID: "1"}})
	observed := cache.RefreshSeq()

	cache.ReplaceAll([]domain.Record{{ID: "2"}})
	assert.False(t, cache.PatchStatus("1", domain.StatusBlocked, observed))
}

func TestEntityCacheRemovePreservesOrder(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionProperties)
	cache.ReplaceAll([]domain.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	observed := cache.RefreshSeq()

	require.True(t, cache.Remove("b", observed))

	view := cache.Snapshot()
	require.Len(t, view.Records, 2)
	assert.Equal(t, "a", view.Records[0].ID)
	assert.Equal(t, "c", view.Records[1].ID)

	// Positions stay consistent after the shift.
	require.True(t, cache.PatchStatus("c", domain.StatusPublished, observed))
	assert.Equal(t, domain.StatusPublished, cache.Snapshot().Records[1].Status)
}

func TestEntityCacheSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	cache := NewEntityCache(domain.CollectionUsers)
	cache.ReplaceAll([]domain.Record{{ID: "1", Name: "Asha"}})

	view := cache.Snapshot()
	view.Records[0].Name = "mutated"

	assert.Equal(t, "Asha", cache.Snapshot().Records[0].Name)
}

func TestCacheSetReturnsSameCachePerCollection(t *testing.T) {
	t.Parallel()

	caches := NewCacheSet()
	assert.Same(t, caches.For(domain.CollectionUsers), caches.For(domain.CollectionUsers))
	assert.NotSame(t, caches.For(domain.CollectionUsers), caches.For(domain.CollectionOwners))
}
