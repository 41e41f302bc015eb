// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import (
	"strings"
	"sync/atomic"
)

// Internal statistics
var (
	allocs      atomic.Uint64
	copies      atomic.Uint64
	copiedBytes atomic.Uint64
	frees       atomic.Uint64
)

// Stats is a snapshot of the package-wide allocation counters.
type Stats struct {
	// Number of Arc and Rc allocations created.
	Allocs uint64
	// Number of times string data was copied, including Duplicate calls and
	// copies forced by crossing between sharing mechanisms.
	Copies uint64
	// Number of bytes copied by the above.
	CopiedBytes uint64
	// Number of allocations whose reference count dropped to zero.
	Frees uint64
}

// ReadStats returns the current values of the counters. The counters are
// never reset, callers interested in rates compute deltas.
func ReadStats() Stats {
	return Stats{
		Allocs:      allocs.Load(),
		Copies:      copies.Load(),
		CopiedBytes: copiedBytes.Load(),
		Frees:       frees.Load(),
	}
}

// Sub returns the counter deltas between s and an earlier snapshot.
func (s Stats) Sub(earlier Stats) Stats {
	return Stats{
		Allocs:      s.Allocs - earlier.Allocs,
		Copies:      s.Copies - earlier.Copies,
		CopiedBytes: s.CopiedBytes - earlier.CopiedBytes,
		Frees:       s.Frees - earlier.Frees,
	}
}

// copyText returns a copy of s that does not share memory with it.
func copyText(s string) string {
	if s == "" {
		return ""
	}
	copies.Add(1)
	copiedBytes.Add(uint64(len(s)))
	return strings.Clone(s)
}

func copyBytes(s string) []byte {
	copies.Add(1)
	copiedBytes.Add(uint64(len(s)))
	return []byte(s)
}
