// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package unsafestr holds the few conversions between strings and byte buffers
// that must not copy.
package unsafestr // import "go.opentelemetry.io/strref/internal/unsafestr"

import "unsafe"

// FromBytes returns a string sharing memory with b. The caller must not modify
// b afterwards, otherwise the returned string changes with it.
func FromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Data returns the address of the bytes backing s, or 0 for the empty string.
func Data(s string) uintptr {
	if s == "" {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}
