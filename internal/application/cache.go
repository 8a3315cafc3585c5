package application

import (
	"sync"

	"github.com/rentora/admin-cli/internal/domain"
)

// EntityCache holds the last-known server snapshot for one collection.
// Generation strictly increases on every full refresh and every applied
// mutation; RefreshSeq counts full refreshes only and orders mutation
// results against overlapping refreshes.
type EntityCache struct {
	key domain.CollectionKey

	mu         sync.RWMutex
	records    []domain.Record
	positions  map[string]int
	generation uint64
	refreshSeq uint64
}

// CacheView is an immutable snapshot handed to readers.
type CacheView struct {
	Key        domain.CollectionKey
	Records    []domain.Record
	Generation uint64
	RefreshSeq uint64
}

func NewEntityCache(key domain.CollectionKey) *EntityCache {
	return &EntityCache{key: key, positions: map[string]int{}}
}

// ReplaceAll installs a full server snapshot, dropping duplicate ids
// (first occurrence wins, server response order preserved).
func (c *EntityCache) ReplaceAll(records []domain.Record) uint64 {
	deduped := make([]domain.Record, 0, len(records))
	positions := make(map[string]int, len(records))
	for _, record := range records {
		if _, seen := positions[record.ID]; seen {
			continue
		}
		positions[record.ID] = len(deduped)
		deduped = append(deduped, record)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = deduped
	c.positions = positions
	c.generation++
	c.refreshSeq++

	return c.generation
}

func (c *EntityCache) Snapshot() CacheView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]domain.Record, len(c.records))
	copy(records, c.records)

	return CacheView{
		Key:        c.key,
		Records:    records,
		Generation: c.generation,
		RefreshSeq: c.refreshSeq,
	}
}

func (c *EntityCache) RefreshSeq() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.refreshSeq
}

// PatchStatus writes the server-confirmed status onto the record that
// currently carries the id. The patch is discarded when the record is
// gone or when more than one full refresh completed since observedSeq;
// every other field of the current record is left as the freshest
// snapshot delivered it.
func (c *EntityCache) PatchStatus(id string, status domain.ModerationStatus, observedSeq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refreshSeq > observedSeq+1 {
		return false
	}
	pos, ok := c.positions[id]
	if !ok {
		return false
	}

	c.records[pos].Status = status
	c.generation++

	return true
}

// Remove drops the record with the id, subject to the same staleness
// rule as PatchStatus. Order of the remaining records is preserved.
func (c *EntityCache) Remove(id string, observedSeq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refreshSeq > observedSeq+1 {
		return false
	}
	pos, ok := c.positions[id]
	if !ok {
		return false
	}

	c.records = append(c.records[:pos], c.records[pos+1:]...)
	delete(c.positions, id)
	for i := pos; i < len(c.records); i++ {
		c.positions[c.records[i].ID] = i
	}
	c.generation++

	return true
}

// CacheSet lazily creates one EntityCache per collection.
type CacheSet struct {
	mu     sync.Mutex
	caches map[domain.CollectionKey]*EntityCache
}

func NewCacheSet() *CacheSet {
	return &CacheSet{caches: map[domain.CollectionKey]*EntityCache{}}
}

func (s *CacheSet) For(key domain.CollectionKey) *EntityCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, ok := s.caches[key]
	if !ok {
		cache = NewEntityCache(key)
		s.caches[key] = cache
	}

	return cache
}
