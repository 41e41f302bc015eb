// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package fields provides allocation-free tokenizers yielding substrings of
// their input.
package fields // import "go.opentelemetry.io/strref/internal/fields"

import (
	"iter"
	"strings"
)

var asciiSpace = [256]uint8{'\t': 1, '\n': 1, '\v': 1, '\f': 1, '\r': 1, ' ': 1}

// Fields yields the substrings of s separated by runs of ASCII white space.
// If n > 0, at most n fields are yielded and the last one holds the remainder
// of s starting at its first non-space character. Nothing is yielded for a
// blank s.
func Fields(s string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		si := 0
		for i := 1; ; i++ {
			for si < len(s) && asciiSpace[s[si]] != 0 {
				si++
			}
			if si >= len(s) {
				return
			}
			if i == n {
				yield(s[si:])
				return
			}

			start := si
			for si < len(s) && asciiSpace[s[si]] == 0 {
				si++
			}
			if !yield(s[start:si]) {
				return
			}
		}
	}
}

// Split yields the substrings of s separated by sep, like strings.SplitN
// without allocating. If n > 0, at most n substrings are yielded and the last
// one holds the unsplit remainder. An empty sep yields s unsplit.
func Split(s, sep string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if sep == "" {
			yield(s)
			return
		}
		for i := 1; i != n; i++ {
			end := strings.Index(s, sep)
			if end < 0 {
				break
			}
			if !yield(s[:end]) {
				return
			}
			s = s[end+len(sep):]
		}
		yield(s)
	}
}
