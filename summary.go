// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"

	"go.opentelemetry.io/strref/interner"
)

type summary struct {
	files          uint64
	lines          uint64
	tokens         uint64
	uniqueTokens   uint64
	tokenBytes     uint64
	uniqueBytes    uint64
	allocatedBytes uint64
	cache          interner.Statistics
	top            []tokenCount
}

// savedBytes is the amount of memory the interner avoided allocating
// compared to keeping a private copy of every token.
func (s *summary) savedBytes() uint64 {
	if s.allocatedBytes > s.tokenBytes {
		return 0
	}
	return s.tokenBytes - s.allocatedBytes
}

func percent(total, part uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func (s *summary) print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Files: %d\n", s.files)
	_, _ = fmt.Fprintf(w, "Lines: %d\n", s.lines)
	_, _ = fmt.Fprintf(w, "Tokens: %d (%d bytes)\n", s.tokens, s.tokenBytes)
	_, _ = fmt.Fprintf(w, "Unique tokens: %d (%d bytes)\n", s.uniqueTokens, s.uniqueBytes)
	_, _ = fmt.Fprintf(w, "Allocated: %d bytes\n", s.allocatedBytes)
	_, _ = fmt.Fprintf(w, "Saved: %d bytes (%.1f%%)\n",
		s.savedBytes(), percent(s.tokenBytes, s.savedBytes()))
	_, _ = fmt.Fprintf(w, "Interner: %d hits, %d misses, %d evicted\n",
		s.cache.Hit, s.cache.Miss, s.cache.Evicted)

	if len(s.top) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\nMost frequent tokens:\n")
	for _, tc := range s.top {
		_, _ = fmt.Fprintf(w, "%10d %s\n", tc.count, strconv.Quote(tc.token.View()))
	}
}
