// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package interner

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/strref/internal/unsafestr"
	"go.opentelemetry.io/strref/str"
)

func newInterner(t *testing.T, capacity uint32) *Interner {
	t.Helper()
	in, err := New(capacity)
	require.NoError(t, err)
	return in
}

func TestNewInvalidCapacity(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
}

func TestInternDeduplicates(t *testing.T) {
	in := newInterner(t, 16)

	a := in.InternString("foo")
	b := in.InternString(string([]byte("foo")))
	assert.Equal(t, "foo", a.View())
	assert.Equal(t, unsafestr.Data(a.View()), unsafestr.Data(b.View()))
	assert.Equal(t, str.KindShared, a.Kind())
	assert.Equal(t, 1, in.Len())

	assert.Equal(t, Statistics{Hit: 1, Miss: 1, Added: 1}, in.GetAndResetStatistics())
	assert.Equal(t, Statistics{}, in.GetAndResetStatistics())
}

func TestInternSnapshotRules(t *testing.T) {
	tests := map[string]struct {
		value    func() str.Viewer
		kind     str.Kind
		zeroCopy bool
	}{
		"static": {
			value:    func() str.Viewer { return str.Literal("static") },
			kind:     str.KindStatic,
			zeroCopy: true,
		},
		"arc backed": {
			value:    func() str.Viewer { return str.FromString("arc backed") },
			kind:     str.KindShared,
			zeroCopy: true,
		},
		"owned buffer": {
			value:    func() str.Viewer { return str.Owned("owned buffer") },
			kind:     str.KindShared,
			zeroCopy: false,
		},
		"local": {
			value:    func() str.Viewer { return str.IntoLocal(str.Owned("local")) },
			kind:     str.KindShared,
			zeroCopy: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			in := newInterner(t, 16)
			v := test.value()

			s := in.Intern(v)
			assert.Equal(t, v.View(), s.View())
			assert.Equal(t, test.kind, s.Kind())
			if test.zeroCopy {
				assert.Equal(t, unsafestr.Data(v.View()), unsafestr.Data(s.View()))
			} else {
				assert.NotEqual(t, unsafestr.Data(v.View()), unsafestr.Data(s.View()))
			}
		})
	}
}

func TestInternDoesNotAliasCallerBuffer(t *testing.T) {
	in := newInterner(t, 16)
	buf := []byte("mutable")

	s := in.Intern(str.Owned(buf))
	buf[0] = 'M'
	assert.Equal(t, "mutable", s.View())

	cached, ok := in.Lookup(str.Literal("mutable"))
	require.True(t, ok)
	assert.Equal(t, unsafestr.Data(s.View()), unsafestr.Data(cached.View()))
}

func TestEviction(t *testing.T) {
	in := newInterner(t, 2)

	a := in.InternString("a")
	in.InternString("b")
	in.InternString("c")

	assert.Equal(t, 2, in.Len())
	_, ok := in.Lookup(str.Literal("a"))
	assert.False(t, ok)

	stats := in.GetAndResetStatistics()
	assert.Equal(t, uint64(3), stats.Miss)
	assert.Equal(t, uint64(1), stats.Evicted)

	// The evicted entry released its reference, the caller's stays valid.
	assert.Equal(t, "a", a.View())
	before := str.ReadStats()
	a.Release()
	assert.Equal(t, uint64(1), str.ReadStats().Sub(before).Frees)
}

func TestPurge(t *testing.T) {
	in := newInterner(t, 8)
	x := in.InternString("x")
	y := in.InternString("y")
	x.Release()
	y.Release()
	in.GetAndResetStatistics()
	before := str.ReadStats()

	// Only the cache still holds the allocations, purging frees them.
	in.Purge()
	assert.Equal(t, uint64(2), str.ReadStats().Sub(before).Frees)
	assert.Equal(t, uint64(2), in.GetAndResetStatistics().Evicted)
	assert.Zero(t, in.Len())
	_, ok := in.Lookup(str.Literal("x"))
	assert.False(t, ok)
}

func TestConcurrentIntern(t *testing.T) {
	in := newInterner(t, 64)
	words := []string{"alpha", "beta", "gamma", "delta"}
	results := make([][]str.Str, 16)
	wg := sync.WaitGroup{}

	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for _, w := range words {
					results[i] = append(results[i], in.InternString(w))
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(words), in.Len())
	addrs := map[string]uintptr{}
	for _, r := range results {
		for _, s := range r {
			addr, ok := addrs[s.View()]
			if !ok {
				addrs[s.View()] = unsafestr.Data(s.View())
				continue
			}
			assert.Equal(t, addr, unsafestr.Data(s.View()))
		}
	}
	assert.Len(t, addrs, len(words))
}
