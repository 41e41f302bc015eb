// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str // import "go.opentelemetry.io/strref/str"

import "io"

// Rc is an immutable string allocation with a plain reference count. It is
// cheaper to retain and release than Arc but must stay confined to the
// goroutine that created it, together with every LocalStr referencing it.
// Nothing enforces the confinement; concurrent use is a data race.
type Rc struct {
	refs int64
	text string
}

// NewRc returns an allocation holding text with one reference, owned by the
// caller. text is stored without copying.
func NewRc(text string) *Rc {
	allocs.Add(1)
	return &Rc{refs: 1, text: text}
}

// View returns the text of the allocation.
func (r *Rc) View() string {
	return r.text
}

// Refs returns the current reference count.
func (r *Rc) Refs() int64 {
	return r.refs
}

// Retain adds a reference and returns r.
func (r *Rc) Retain() *Rc {
	if r.refs <= 0 {
		panic("str: Retain of a freed Rc")
	}
	r.refs++
	return r
}

// Release drops a reference. It reports whether this was the last one, in
// which case the allocation drops its text.
func (r *Rc) Release() bool {
	if r.refs <= 0 {
		panic("str: negative Rc reference count")
	}
	r.refs--
	if r.refs > 0 {
		return false
	}
	r.text = ""
	frees.Add(1)
	return true
}

// IntoLocal hands the caller's reference over to the returned LocalStr.
func (r *Rc) IntoLocal() LocalStr {
	return LocalStr{text: r.text, rc: r}
}

// ToLocal returns a new owner of the allocation.
func (r *Rc) ToLocal() LocalStr {
	return r.Retain().IntoLocal()
}

// IntoStr copies the text into a new Arc and drops the caller's reference
// to r.
func (r *Rc) IntoStr() Str {
	s := r.ToStr()
	r.Release()
	return s
}

// ToStr copies the text into a new Arc.
func (r *Rc) ToStr() Str {
	return newShared(copyText(r.text))
}

// LocalStr is the thread-confined variant of Str. Its Shared representation
// is backed by an Rc, so neither the value nor its clones may be used from
// more than one goroutine. Use Str for values that cross goroutines. The
// confinement is a documented contract only: neither the compiler nor vet
// can detect a LocalStr crossing goroutines.
//
// Like Str, LocalStr is not comparable; use Equal or Compare.
type LocalStr struct {
	_    [0]func()
	text string
	// rc is nil for the Static variant.
	rc   *Rc
}

func newLocal(text string) LocalStr {
	if text == "" {
		return LocalStr{}
	}
	return NewRc(text).IntoLocal()
}

// Kind returns the representation of s.
func (s LocalStr) Kind() Kind {
	if s.rc != nil {
		return KindShared
	}
	return KindStatic
}

// View returns the text of s.
func (s LocalStr) View() string {
	return s.text
}

func (s LocalStr) String() string {
	return s.text
}

// Len returns the length of the text in bytes.
func (s LocalStr) Len() int {
	return len(s.text)
}

// IsEmpty reports whether the text is empty.
func (s LocalStr) IsEmpty() bool {
	return s.text == ""
}

// WriteTo writes the text to w.
func (s LocalStr) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.text)
	return int64(n), err
}

// Duplicate returns a newly allocated, mutable copy of the text.
func (s LocalStr) Duplicate() []byte {
	return copyBytes(s.text)
}

// Clone returns a new owner of the same text without copying it.
func (s LocalStr) Clone() LocalStr {
	if s.rc != nil {
		s.rc.Retain()
	}
	return s
}

// Release drops the ownership held by s and resets it to the empty Static
// value.
func (s *LocalStr) Release() {
	if s.rc != nil {
		s.rc.Release()
	}
	*s = LocalStr{}
}

// IntoLocal returns s itself.
func (s LocalStr) IntoLocal() LocalStr {
	return s
}

// ToLocal is the same as Clone.
func (s LocalStr) ToLocal() LocalStr {
	return s.Clone()
}

// IntoStr converts s into a Str that may cross goroutines, dropping the
// ownership held by s. Shared values are copied into a new Arc.
func (s LocalStr) IntoStr() Str {
	if s.rc == nil {
		return Str{text: s.text}
	}
	return s.rc.IntoStr()
}

// ToStr converts s into a Str without dropping the ownership held by s.
func (s LocalStr) ToStr() Str {
	if s.rc == nil {
		return Str{text: s.text}
	}
	return s.rc.ToStr()
}
