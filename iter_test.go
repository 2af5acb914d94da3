// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmap

import (
	"iter"
	"maps"
	"testing"

	"golang.org/x/exp/slices"
)

func TestRangeFuncs(t *testing.T) {
	m := New(
		KeyValue[string]{1, "one"},
		KeyValue[string]{2, "two"},
		KeyValue[string]{3, "three"},
	)

	t.Run("All", func(t *testing.T) {
		exp := map[uint64]string{1: "one", 2: "two", 3: "three"}
		got := make(map[uint64]string)
		for k, v := range m.All() {
			got[k] = v
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		exp := map[uint64]struct{}{1: {}, 2: {}, 3: {}}
		got := make(map[uint64]struct{})
		for k := range m.Keys() {
			got[k] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})

	t.Run("Values", func(t *testing.T) {
		exp := map[string]struct{}{"one": {}, "two": {}, "three": {}}
		got := make(map[string]struct{})
		for v := range m.Values() {
			got[v] = struct{}{}
		}
		if !maps.Equal(exp, got) {
			t.Errorf("expected: %v got: %v", exp, got)
		}
	})
}

func TestRangeFuncsEmpty(t *testing.T) {
	for range New[int]().All() {
		t.Error("All on empty map yielded a pair")
	}
	var nilMap *Map[int]
	for range nilMap.All() {
		t.Error("All on nil map yielded a pair")
	}
	for range nilMap.AllMut() {
		t.Error("AllMut on nil map yielded a pair")
	}
	for range nilMap.Drain() {
		t.Error("Drain on nil map yielded a pair")
	}
}

func TestRangeFuncBreak(t *testing.T) {
	m := New[uint64]()
	for i := uint64(0); i < 100; i++ {
		m.Insert(i, i)
	}
	seen := 0
	for range m.All() {
		seen++
		if seen == 10 {
			break
		}
	}
	if seen != 10 {
		t.Errorf("expected 10 pairs before break got: %d", seen)
	}
	if m.Len() != 100 {
		t.Errorf("read-only iteration changed the map: len %d", m.Len())
	}
}

func TestAllMut(t *testing.T) {
	m := New[int]()
	for i := uint64(0); i < 50; i++ {
		m.Insert(i, int(i))
	}
	for k, v := range m.AllMut() {
		*v = int(k) * 2
	}
	for i := uint64(0); i < 50; i++ {
		if v, _ := m.Get(i); v != int(i)*2 {
			t.Errorf("expected: %d got: %d", int(i)*2, v)
		}
	}
}

func TestValuesMut(t *testing.T) {
	m := New(
		KeyValue[int]{1, 10},
		KeyValue[int]{2, 20},
	)
	for v := range m.ValuesMut() {
		*v++
	}
	sum := 0
	for v := range m.Values() {
		sum += v
	}
	if sum != 32 {
		t.Errorf("expected sum: 32 got: %d", sum)
	}
}

func TestIterationOrderRepeats(t *testing.T) {
	build := func() *Map[int] {
		m := New[int]()
		for i := 0; i < 200; i++ {
			m.Insert(uint64(i*7), i)
		}
		return m
	}
	keysOf := func(m *Map[int]) []uint64 {
		var keys []uint64
		for k := range m.Keys() {
			keys = append(keys, k)
		}
		return keys
	}
	if !slices.Equal(keysOf(build()), keysOf(build())) {
		t.Error("same inserts produced different iteration orders")
	}

	m := build()
	var viaIter []uint64
	for it := m.Iter(); it.Next(); {
		viaIter = append(viaIter, it.Key())
	}
	if !slices.Equal(viaIter, keysOf(m)) {
		t.Error("Iter and Keys disagree on order")
	}
}

func TestDrain(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		m := New[uint64]()
		for i := uint64(0); i < 100; i++ {
			m.Insert(i, i*10)
		}
		got := make(map[uint64]uint64)
		for k, v := range m.Drain() {
			got[k] = v
		}
		if len(got) != 100 {
			t.Errorf("expected 100 drained pairs got: %d", len(got))
		}
		for i := uint64(0); i < 100; i++ {
			if got[i] != i*10 {
				t.Errorf("wrong value drained for %d: %d", i, got[i])
			}
		}
		if m.Len() != 0 {
			t.Errorf("expected empty map after drain: len %d", m.Len())
		}
		m.checkInvariants()
	})

	t.Run("break", func(t *testing.T) {
		m := New[uint64]()
		for i := uint64(0); i < 100; i++ {
			m.Insert(i, i)
		}
		drained := 0
		for range m.Drain() {
			drained++
			if drained == 7 {
				break
			}
		}
		// Breaking out still discards the rest.
		if m.Len() != 0 {
			t.Errorf("expected empty map after abandoned drain: len %d", m.Len())
		}
		m.checkInvariants()
	})

	t.Run("count", func(t *testing.T) {
		m := New[uint64]()
		for i := uint64(0); i < 10; i++ {
			m.Insert(i, i)
		}
		want := 9
		for range m.Drain() {
			if m.Len() != want {
				t.Errorf("expected len: %d got: %d", want, m.Len())
			}
			want--
		}
	})

	t.Run("reuse", func(t *testing.T) {
		m := New[uint64]()
		m.Insert(1, 1)
		for range m.Drain() {
		}
		m.Insert(2, 2)
		if v, ok := m.Get(2); !ok || v != 2 {
			t.Errorf("Get(2) = %d, %t after drain", v, ok)
		}
		if m.Len() != 1 {
			t.Errorf("expected len: 1 got: %d", m.Len())
		}
	})
}

func TestCollect(t *testing.T) {
	var seq iter.Seq2[uint64, string] = func(yield func(uint64, string) bool) {
		for _, kv := range []KeyValue[string]{{1, "a"}, {2, "b"}, {1, "c"}} {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
	m := Collect(seq)
	if m.Len() != 2 {
		t.Fatalf("expected len: 2 got: %d", m.Len())
	}
	if v, _ := m.Get(1); v != "a" {
		t.Errorf("expected first value to win, got: %q", v)
	}

	m2 := Collect(m.All())
	if !Equal(m, m2) {
		t.Error("collecting All() changed the contents")
	}
}
