// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package str provides Str, an immutable string value that can be stored by
// many owners without duplicating its memory.
//
// A Str is either Static, referencing text that lives for the whole program
// (typically a constant), or Shared, referencing a reference-counted Arc
// allocation. Cloning a Str never copies text. Equality, ordering and hashing
// only look at the text, so a Str and a plain string with the same contents
// are interchangeable as comparison operands and map keys.
//
// Go has no destructors: assigning a Str borrows it, Clone creates a new
// owner and Release drops one. Forgetting a Release never corrupts memory,
// the allocation is then reclaimed by the garbage collector instead.
//
//	type registry struct {
//		names []str.Str
//		index map[string]int
//	}
//
//	func (r *registry) add(v str.Viewer) {
//		s := str.Into(v)
//		r.index[s.View()] = len(r.names)
//		r.names = append(r.names, s)
//	}
//
// Values are converted into a Str through three capabilities: Viewer borrows
// the text, Consumer takes ownership of it and Snapshotter creates a new
// owner from a borrow. LocalStr is the thread-confined counterpart of Str
// backed by Rc; crossing between the two always copies the text once.
package str // import "go.opentelemetry.io/strref/str"

import (
	"io"
)

// Kind identifies the representation of a Str or LocalStr.
type Kind uint8

const (
	// KindStatic references text with program lifetime.
	KindStatic Kind = iota
	// KindShared references a reference-counted allocation.
	KindShared
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Str is an immutable, cheaply cloneable string. The zero value is the empty
// Static string.
//
// Str is safe for concurrent use: the Shared variant is backed by an Arc.
//
// Str is not comparable: == and map[Str] would compare the representation
// along with the text. Use Equal, Compare, or a map keyed by View (or Map).
type Str struct {
	_    [0]func()
	text string
	// arc is nil for the Static variant.
	arc  *Arc
}

// newShared wraps text, which the caller must own, into a new allocation.
func newShared(text string) Str {
	if text == "" {
		return Str{}
	}
	return NewArc(text).IntoStr()
}

// Kind returns the representation of s.
func (s Str) Kind() Kind {
	if s.arc != nil {
		return KindShared
	}
	return KindStatic
}

// View returns the text of s. The result must not be modified through unsafe
// conversions.
func (s Str) View() string {
	return s.text
}

// String implements fmt.Stringer.
func (s Str) String() string {
	return s.text
}

// Len returns the length of the text in bytes.
func (s Str) Len() int {
	return len(s.text)
}

// IsEmpty reports whether the text is empty.
func (s Str) IsEmpty() bool {
	return s.text == ""
}

// WriteTo writes the text to w.
func (s Str) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.text)
	return int64(n), err
}

// Duplicate returns a newly allocated, mutable copy of the text. It is the
// only operation of Str that copies the whole text; prefer Clone whenever the
// copy is not going to be modified.
func (s Str) Duplicate() []byte {
	return copyBytes(s.text)
}

// Clone returns a new owner of the same text. A Static value is copied as is,
// a Shared value gains a reference on its allocation.
func (s Str) Clone() Str {
	if s.arc != nil {
		s.arc.Retain()
	}
	return s
}

// Release drops the ownership held by s and resets it to the empty Static
// value. The allocation behind a Shared value is freed once its last owner is
// released. Releasing the zero value is a no-op.
func (s *Str) Release() {
	if s.arc != nil {
		s.arc.Release()
	}
	*s = Str{}
}

// IntoStr returns s itself.
func (s Str) IntoStr() Str {
	return s
}

// ToStr is the same as Clone.
func (s Str) ToStr() Str {
	return s.Clone()
}

// IntoLocal converts s into a LocalStr, dropping the ownership held by s. A
// Static value stays Static, a Shared value is copied into a new Rc since the
// two reference counts cannot be combined.
func (s Str) IntoLocal() LocalStr {
	if s.arc == nil {
		return LocalStr{text: s.text}
	}
	return s.arc.IntoLocal()
}

// ToLocal converts s into a LocalStr without dropping the ownership held by
// s. Shared values are copied.
func (s Str) ToLocal() LocalStr {
	if s.arc == nil {
		return LocalStr{text: s.text}
	}
	return s.arc.ToLocal()
}

// MarshalText implements encoding.TextMarshaler.
func (s Str) MarshalText() ([]byte, error) {
	return []byte(s.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is copied into
// a new allocation. A previous value of s is overwritten without release.
func (s *Str) UnmarshalText(text []byte) error {
	*s = Owned(text).ToStr()
	return nil
}
