// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import "iter"

// Map is a map keyed by text that owns its Str keys. Entries inserted with a
// Str can be looked up with a plain string or any other Viewer holding the
// same text.
//
// The zero value is an empty map ready to use. Map is not safe for concurrent
// use.
type Map[V any] struct {
	m map[string]mapEntry[V]
}

type mapEntry[V any] struct {
	key   Str
	value V
}

// Put stores value under key, taking over the ownership of key. If an entry
// with the same text exists, its key is released and replaced.
func (m *Map[V]) Put(key Str, value V) {
	if m.m == nil {
		m.m = make(map[string]mapEntry[V])
	}
	if old, ok := m.m[key.text]; ok {
		old.key.Release()
	}
	m.m[key.text] = mapEntry[V]{key: key, value: value}
}

// Get returns the value stored under the text key.
func (m *Map[V]) Get(key string) (value V, ok bool) {
	e, ok := m.m[key]
	return e.value, ok
}

// Lookup returns the value stored under the text of key.
func (m *Map[V]) Lookup(key Viewer) (value V, ok bool) {
	return m.Get(key.View())
}

// Key returns a new owner of the stored key with the same text as key.
func (m *Map[V]) Key(key Viewer) (Str, bool) {
	e, ok := m.m[key.View()]
	if !ok {
		return Str{}, false
	}
	return e.key.Clone(), true
}

// Delete removes the entry for the text of key and releases its key.
func (m *Map[V]) Delete(key Viewer) (present bool) {
	e, ok := m.m[key.View()]
	if !ok {
		return false
	}
	delete(m.m, key.View())
	e.key.Release()
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.m)
}

// All iterates over the entries in unspecified order. The yielded keys are
// borrowed from the map.
func (m *Map[V]) All() iter.Seq2[Str, V] {
	return func(yield func(Str, V) bool) {
		for _, e := range m.m {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clear removes all entries and releases their keys.
func (m *Map[V]) Clear() {
	for _, e := range m.m {
		e.key.Release()
	}
	clear(m.m)
}
