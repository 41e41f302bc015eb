// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import "go.opentelemetry.io/strref/internal/unsafestr"

// Viewer is implemented by every string-like value that can expose its text
// without allocating.
type Viewer interface {
	View() string
}

// Consumer is implemented by values that can hand their ownership over to a
// Str, avoiding a copy where the representation permits it. The consumed
// value must not be used afterwards.
type Consumer interface {
	Viewer
	IntoStr() Str
}

// Snapshotter is implemented by values that can produce a new owning Str
// while the caller keeps the original.
type Snapshotter interface {
	Viewer
	ToStr() Str
}

// LocalConsumer is the LocalStr counterpart of Consumer.
type LocalConsumer interface {
	Viewer
	IntoLocal() LocalStr
}

// LocalSnapshotter is the LocalStr counterpart of Snapshotter.
type LocalSnapshotter interface {
	Viewer
	ToLocal() LocalStr
}

// Compile-time interface checks
var (
	_ Consumer         = Str{}
	_ Snapshotter      = Str{}
	_ LocalConsumer    = Str{}
	_ LocalSnapshotter = Str{}
	_ Consumer         = LocalStr{}
	_ Snapshotter      = LocalStr{}
	_ LocalConsumer    = LocalStr{}
	_ LocalSnapshotter = LocalStr{}
	_ Consumer         = (*Arc)(nil)
	_ Snapshotter      = (*Arc)(nil)
	_ LocalConsumer    = (*Arc)(nil)
	_ LocalSnapshotter = (*Arc)(nil)
	_ Consumer         = (*Rc)(nil)
	_ Snapshotter      = (*Rc)(nil)
	_ LocalConsumer    = (*Rc)(nil)
	_ LocalSnapshotter = (*Rc)(nil)
	_ Consumer         = Literal("")
	_ Snapshotter      = Literal("")
	_ LocalConsumer    = Literal("")
	_ LocalSnapshotter = Literal("")
	_ Consumer         = Owned(nil)
	_ Snapshotter      = Owned(nil)
	_ LocalConsumer    = Owned(nil)
	_ LocalSnapshotter = Owned(nil)
)

// Literal is text that lives for the whole program, such as a string
// constant. Converting it never allocates.
type Literal string

func (l Literal) View() string { return string(l) }
func (l Literal) IntoStr() Str { return Str{text: string(l)} }
func (l Literal) ToStr() Str { return Str{text: string(l)} }
func (l Literal) IntoLocal() LocalStr { return LocalStr{text: string(l)} }
func (l Literal) ToLocal() LocalStr { return LocalStr{text: string(l)} }

// Owned is a byte buffer exclusively owned by the caller.
//
// IntoStr and IntoLocal take over the buffer itself: the result shares its
// memory and the caller must not modify or reuse the buffer afterwards.
// ToStr and ToLocal treat the buffer as borrowed and copy it.
type Owned []byte

// View returns the contents of o without copying. The result changes if o is
// modified.
func (o Owned) View() string {
	return unsafestr.FromBytes(o)
}

func (o Owned) IntoStr() Str {
	return newShared(o.View())
}

func (o Owned) ToStr() Str {
	return newShared(copyText(o.View()))
}

func (o Owned) IntoLocal() LocalStr {
	return newLocal(o.View())
}

func (o Owned) ToLocal() LocalStr {
	return newLocal(copyText(o.View()))
}

// View returns the text of v.
func View(v Viewer) string {
	return v.View()
}

// FromStatic returns a Static Str for s. s must live for the rest of the
// program, which holds for string constants.
func FromStatic(s string) Str {
	return Literal(s).IntoStr()
}

// FromOwned takes ownership of b and returns a Str sharing its memory. b must
// not be modified afterwards.
func FromOwned(b []byte) Str {
	return Owned(b).IntoStr()
}

// FromString returns a Str holding a private copy of s. The copy makes sure
// the result neither pins a larger buffer s may be a substring of nor follows
// memory s may alias through unsafe conversions.
func FromString(s string) Str {
	return newShared(copyText(s))
}

// Into converts v into a Str, taking over its ownership if v implements
// Consumer and copying its view otherwise.
func Into(v Viewer) Str {
	if c, ok := v.(Consumer); ok {
		return c.IntoStr()
	}
	return FromString(v.View())
}

// Snapshot returns a new owning Str for v while leaving v untouched. Static
// and Arc-backed values are shared, everything else is copied once.
func Snapshot(v Viewer) Str {
	if s, ok := v.(Snapshotter); ok {
		return s.ToStr()
	}
	return FromString(v.View())
}

// IntoLocal is the LocalStr counterpart of Into.
func IntoLocal(v Viewer) LocalStr {
	if c, ok := v.(LocalConsumer); ok {
		return c.IntoLocal()
	}
	return newLocal(copyText(v.View()))
}

// SnapshotLocal is the LocalStr counterpart of Snapshot.
func SnapshotLocal(v Viewer) LocalStr {
	if s, ok := v.(LocalSnapshotter); ok {
		return s.ToLocal()
	}
	return newLocal(copyText(v.View()))
}
