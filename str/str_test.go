// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package str

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/strref/internal/unsafestr"
)

func TestZeroValue(t *testing.T) {
	var s Str
	assert.Equal(t, KindStatic, s.Kind())
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.String())
	assert.True(t, s.EqualString(""))

	// Releasing the zero value is a no-op.
	assert.NotPanics(t, func() { s.Release() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "static", KindStatic.String())
	assert.Equal(t, "shared", KindShared.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestDisplay(t *testing.T) {
	tests := map[string]Str{
		"static": FromStatic("oo"),
		"shared": FromString("oo"),
		"owned":  FromOwned([]byte("oo")),
	}

	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "foo", "f"+s.String())
			assert.Equal(t, "foo", fmt.Sprintf("f%s", s))
			assert.Equal(t, "foo", fmt.Sprintf("f%v", s))

			var buf bytes.Buffer
			buf.WriteString("f")
			n, err := s.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, int64(2), n)
			assert.Equal(t, "foo", buf.String())
		})
	}
}

func TestDuplicate(t *testing.T) {
	s := FromString("immutable")
	before := ReadStats()

	d := s.Duplicate()
	assert.Equal(t, "immutable", string(d))
	assert.NotEqual(t, unsafestr.Data(s.View()), bytesData(d))

	d[0] = 'I'
	assert.Equal(t, "immutable", s.View())
	assert.Equal(t, "Immutable", string(d))

	delta := ReadStats().Sub(before)
	assert.Equal(t, uint64(1), delta.Copies)
	assert.Equal(t, uint64(len("immutable")), delta.CopiedBytes)
	assert.Zero(t, delta.Allocs)
}

func TestDuplicateOwned(t *testing.T) {
	buf := []byte("owned")
	s := FromOwned(buf)

	d := s.Duplicate()
	d[0] = 'O'
	assert.Equal(t, "owned", s.View())
}

func TestCloneShared(t *testing.T) {
	s := FromString("shared text")
	require.Equal(t, KindShared, s.Kind())
	addr := unsafestr.Data(s.View())
	before := ReadStats()

	c := s.Clone()
	assert.Equal(t, addr, unsafestr.Data(c.View()))
	assert.Equal(t, int64(2), s.arc.Refs())
	assert.Same(t, s.arc, c.arc)

	delta := ReadStats().Sub(before)
	assert.Zero(t, delta.Allocs)
	assert.Zero(t, delta.Copies)

	c.Release()
	assert.Equal(t, int64(1), s.arc.Refs())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, KindStatic, c.Kind())
	assert.Equal(t, "shared text", s.View())
}

func TestCloneStatic(t *testing.T) {
	text := "static text"
	s := FromStatic(text)
	require.Equal(t, KindStatic, s.Kind())
	before := ReadStats()

	c := s.Clone()
	assert.Equal(t, unsafestr.Data(text), unsafestr.Data(c.View()))
	assert.Equal(t, KindStatic, c.Kind())
	assert.Zero(t, ReadStats().Sub(before).Allocs)
	assert.Zero(t, testing.AllocsPerRun(100, func() {
		_ = s.Clone()
	}))
}

func TestReleaseFreesOnLastOwner(t *testing.T) {
	s := FromString("last owner")
	a := s.arc
	c1 := s.Clone()
	c2 := c1.Clone()
	before := ReadStats()

	s.Release()
	c1.Release()
	assert.Zero(t, ReadStats().Sub(before).Frees)
	assert.Equal(t, "last owner", c2.View())
	assert.Equal(t, int64(1), a.Refs())

	c2.Release()
	assert.Equal(t, uint64(1), ReadStats().Sub(before).Frees)
	assert.Zero(t, a.Refs())
	assert.Empty(t, a.View())
}

func TestIntoStrIsIdentity(t *testing.T) {
	s := FromString("identity")
	into := s.IntoStr()
	assert.Same(t, s.arc, into.arc)
	assert.Equal(t, int64(1), s.arc.Refs())

	to := s.ToStr()
	assert.Same(t, s.arc, to.arc)
	assert.Equal(t, int64(2), s.arc.Refs())
}

func TestEmptyVariants(t *testing.T) {
	static := FromStatic("")
	shared := NewArc("").IntoStr()

	assert.Equal(t, KindStatic, static.Kind())
	assert.Equal(t, KindShared, shared.Kind())
	assert.True(t, static.Equal(shared))
	assert.True(t, shared.Equal(Literal("")))
	assert.Zero(t, static.Compare(shared))
	assert.Equal(t, HashString(""), static.Hash())
	assert.Equal(t, HashString(""), shared.Hash())

	// Copies of the empty text never allocate.
	assert.Equal(t, KindStatic, FromString("").Kind())
	assert.Equal(t, KindStatic, FromOwned(nil).Kind())
}

func TestTextMarshaling(t *testing.T) {
	type record struct {
		Name Str `json:"name"`
	}

	out, err := json.Marshal(record{Name: FromStatic("foo")})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"foo"}`, string(out))

	input := []byte(`{"name":"bar"}`)
	var r record
	require.NoError(t, json.Unmarshal(input, &r))
	assert.True(t, r.Name.EqualString("bar"))
	assert.Equal(t, KindShared, r.Name.Kind())

	// The decoded value must not alias the decoder's input.
	copy(input, `{"name":"baz"}`)
	assert.Equal(t, "bar", r.Name.View())
}

func TestConcurrentCloneRelease(t *testing.T) {
	s := FromString("concurrent")
	wg := sync.WaitGroup{}

	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				c := s.Clone()
				assert.Equal(t, "concurrent", c.View())
				c.Release()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(1), s.arc.Refs())
}
