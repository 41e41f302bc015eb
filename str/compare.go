// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// Equal reports whether a and b hold the same text.
func Equal(a, b Viewer) bool {
	return a.View() == b.View()
}

// Compare compares the text of a and b lexicographically, like
// strings.Compare.
func Compare(a, b Viewer) int {
	return strings.Compare(a.View(), b.View())
}

// Hash returns the hash of the text of v. It equals HashString(v.View()).
func Hash(v Viewer) uint64 {
	return xxh3.HashString(v.View())
}

// HashString returns the hash of s, consistent with Hash and Str.Hash.
func HashString(s string) uint64 {
	return xxh3.HashString(s)
}

// Equal reports whether s and o hold the same text.
func (s Str) Equal(o Viewer) bool {
	return s.text == o.View()
}

// EqualString reports whether s holds the text o.
func (s Str) EqualString(o string) bool {
	return s.text == o
}

// Compare compares s and o lexicographically.
func (s Str) Compare(o Viewer) int {
	return strings.Compare(s.text, o.View())
}

// Less reports whether s sorts before o.
func (s Str) Less(o Viewer) bool {
	return s.text < o.View()
}

// Hash returns the hash of the text of s.
func (s Str) Hash() uint64 {
	return xxh3.HashString(s.text)
}

func (s LocalStr) Equal(o Viewer) bool {
	return s.text == o.View()
}

func (s LocalStr) EqualString(o string) bool {
	return s.text == o
}

func (s LocalStr) Compare(o Viewer) int {
	return strings.Compare(s.text, o.View())
}

func (s LocalStr) Less(o Viewer) bool {
	return s.text < o.View()
}

func (s LocalStr) Hash() uint64 {
	return xxh3.HashString(s.text)
}
