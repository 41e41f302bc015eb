// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package interner deduplicates Str allocations: equal text interned through
// the same Interner ends up sharing a single allocation.
package interner // import "go.opentelemetry.io/strref/interner"

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/elastic/go-freelru"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"

	"go.opentelemetry.io/strref/str"
)

// Interner is a bounded cache of Str values keyed by their text. The least
// recently used entries are evicted once the capacity is reached. It is safe
// for concurrent use.
type Interner struct {
	mu    sync.Mutex
	cache *lru.LRU[string, str.Str]

	// Internal statistics
	hit     atomic.Uint64
	miss    atomic.Uint64
	added   atomic.Uint64
	evicted atomic.Uint64
}

// Statistics holds the counters of an Interner.
type Statistics struct {
	// Number of Intern calls served from the cache.
	Hit uint64
	// Number of Intern calls that had to create an entry.
	Miss uint64
	// Number of entries added to the cache.
	Added uint64
	// Number of entries dropped from the cache by eviction or purging.
	Evicted uint64
}

func hashString(s string) uint32 {
	return uint32(xxh3.HashString(s))
}

// New returns an Interner holding up to capacity entries.
func New(capacity uint32) (*Interner, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("invalid interner capacity %d", capacity)
	}
	cache, err := lru.New[string, str.Str](capacity, hashString)
	if err != nil {
		return nil, fmt.Errorf("failed to create interner cache: %w", err)
	}
	in := &Interner{cache: cache}
	cache.SetOnEvict(in.onEvict)
	log.Debugf("Created interner with capacity %d", capacity)
	return in, nil
}

// onEvict drops the reference held by the cache. It runs with mu held.
func (in *Interner) onEvict(_ string, value str.Str) {
	value.Release()
	in.evicted.Add(1)
}

// Intern returns an owning Str with the text of v. If the text is cached, the
// result shares the cached allocation. Otherwise v is snapshotted, which
// shares the allocation of Static and Arc-backed values and copies everything
// else, and the snapshot is cached.
//
// The caller owns the returned Str and should Release it when done.
func (in *Interner) Intern(v str.Viewer) str.Str {
	in.mu.Lock()
	defer in.mu.Unlock()

	if cached, ok := in.cache.Get(v.View()); ok {
		in.hit.Add(1)
		return cached.Clone()
	}
	in.miss.Add(1)

	s := str.Snapshot(v)
	// Key by the snapshot's view, which stays valid as long as the entry.
	in.cache.Add(s.View(), s)
	in.added.Add(1)
	return s.Clone()
}

// text is a plain string the caller does not own, so snapshots copy it.
type text string

func (t text) View() string { return string(t) }

// InternString is Intern for a plain string. The text is copied on a miss.
func (in *Interner) InternString(s string) str.Str {
	return in.Intern(text(s))
}

// Lookup returns an owning Str for the text of v if it is cached.
func (in *Interner) Lookup(v str.Viewer) (str.Str, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	cached, ok := in.cache.Peek(v.View())
	if !ok {
		return str.Str{}, false
	}
	return cached.Clone(), true
}

// Len returns the number of cached entries.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.cache.Len()
}

// Purge removes all cached entries.
func (in *Interner) Purge() {
	in.mu.Lock()
	defer in.mu.Unlock()
	log.Debugf("Purging %d interned strings", in.cache.Len())
	in.cache.Purge()
}

// GetAndResetStatistics returns the statistics of the Interner and resets all
// counters to 0.
func (in *Interner) GetAndResetStatistics() Statistics {
	return Statistics{
		Hit:     in.hit.Swap(0),
		Miss:    in.miss.Swap(0),
		Added:   in.added.Swap(0),
		Evicted: in.evicted.Swap(0),
	}
}
