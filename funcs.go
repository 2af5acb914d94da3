// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmap

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts m to a string representation using V's String
// function.
func String[V fmt.Stringer](m *Map[V]) string {
	return StringFunc(m, func(value V) string { return value.String() })
}

// String converts m to a string representation using %v formatting
// for the values.
func (m *Map[V]) String() string {
	return StringFunc(m, func(value V) string { return fmt.Sprint(value) })
}

type strKV struct {
	key uint64
	k   string
	v   string
}

// StringFunc converts m to a string representation with the help of
// a strV function to stringify m's values. Keys are rendered in
// decimal, in ascending order.
func StringFunc[V any](m *Map[V], strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "intmap.Map[]"
	}
	strs := make([]strKV, m.Len())
	s := 0
	i := 0
	for it := m.Iter(); it.Next(); {
		kv := &strs[i]
		kv.key = it.Key()
		kv.k = strconv.FormatUint(it.Key(), 10)
		kv.v = strV(it.Value())
		s += len(kv.k) + len(kv.v)
		i++
	}
	slices.SortFunc(strs, func(a, b strKV) bool { return a.key < b.key })

	var b strings.Builder
	b.Grow(len("intmap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("intmap.Map[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and values are in m1
// and m2. Values are compared using ==.
func Equal[V comparable](m1, m2 *Map[V]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Iter(); it.Next(); {
		v2, ok := m2.Get(it.Key())
		if !ok || it.Value() != v2 {
			return false
		}
	}
	return true
}

// EqualFunc returns true if the same set of keys are in m1 and m2
// and the values stored for each key compare equal using eq.
func EqualFunc[V1, V2 any](m1 *Map[V1], m2 *Map[V2], eq func(V1, V2) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Iter(); it.Next(); {
		v2, ok := m2.Get(it.Key())
		if !ok || !eq(it.Value(), v2) {
			return false
		}
	}
	return true
}
