// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import "sync/atomic"

// Arc is an immutable string allocation with an atomically updated reference
// count. It may be retained and released from any goroutine, and it is the
// allocation behind the Shared variant of Str.
type Arc struct {
	refs atomic.Int64
	text string
}

// NewArc returns an allocation holding text with one reference, owned by the
// caller. text is stored without copying.
func NewArc(text string) *Arc {
	allocs.Add(1)
	a := &Arc{text: text}
	a.refs.Store(1)
	return a
}

// View returns the text of the allocation.
func (a *Arc) View() string {
	return a.text
}

// Refs returns the current reference count.
func (a *Arc) Refs() int64 {
	return a.refs.Load()
}

// Retain adds a reference and returns a. Retaining a freed allocation
// panics and leaves it freed.
func (a *Arc) Retain() *Arc {
	for {
		n := a.refs.Load()
		if n <= 0 {
			panic("str: Retain of a freed Arc")
		}
		if a.refs.CompareAndSwap(n, n+1) {
			return a
		}
	}
}

// Release drops a reference. It reports whether this was the last one, in
// which case the allocation drops its text. Releasing a freed allocation
// panics and leaves the count at zero.
func (a *Arc) Release() bool {
	for {
		n := a.refs.Load()
		if n <= 0 {
			panic("str: negative Arc reference count")
		}
		if !a.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n > 1 {
			return false
		}
		a.text = ""
		frees.Add(1)
		return true
	}
}

// IntoStr hands the caller's reference over to the returned Str.
func (a *Arc) IntoStr() Str {
	return Str{text: a.text, arc: a}
}

// ToStr returns a new owner of the allocation. The caller keeps its own
// reference.
func (a *Arc) ToStr() Str {
	return a.Retain().IntoStr()
}

// IntoLocal copies the text into a new thread-confined allocation and drops
// the caller's reference to a. Rc and Arc counts cannot be combined, so this
// always copies.
func (a *Arc) IntoLocal() LocalStr {
	l := a.ToLocal()
	a.Release()
	return l
}

// ToLocal copies the text into a new thread-confined allocation.
func (a *Arc) ToLocal() LocalStr {
	return newLocal(copyText(a.text))
}
