// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmap

import "iter"

// All returns an iterator over key-value pairs from m.
func (m *Map[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m.
func (m *Map[V]) Keys() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// AllMut returns an iterator over keys and pointers to the values
// stored for them, so values can be updated in place during the
// walk. Inserting into or removing from m during the walk is not
// supported.
func (m *Map[V]) AllMut() iter.Seq2[uint64, *V] {
	return func(yield func(uint64, *V) bool) {
		if m == nil {
			return
		}
		for bi := range m.buckets {
			b := m.buckets[bi]
			for si := range b {
				if !yield(b[si].Key, &b[si].Value) {
					return
				}
			}
		}
	}
}

// ValuesMut returns an iterator over pointers to the values in m.
// Inserting into or removing from m during the walk is not
// supported.
func (m *Map[V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		if m == nil {
			return
		}
		for bi := range m.buckets {
			b := m.buckets[bi]
			for si := range b {
				if !yield(&b[si].Value) {
					return
				}
			}
		}
	}
}

// Drain returns an iterator that removes each pair from m as it is
// yielded. When the sequence stops, whether it was exhausted or the
// caller broke out early, any pairs not yet yielded are discarded
// too, leaving m empty.
func (m *Map[V]) Drain() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		if m == nil {
			return
		}
		defer m.Clear()
		for bi := range m.buckets {
			b := m.buckets[bi]
			for len(b) > 0 {
				last := len(b) - 1
				kv := b[last]
				b[last] = KeyValue[V]{}
				b = b[:last]
				m.buckets[bi] = b
				m.count--
				if !yield(kv.Key, kv.Value) {
					return
				}
			}
		}
	}
}

// Collect builds a Map from any sequence of key-value pairs. When a
// key appears more than once the first value wins.
func Collect[V any](seq iter.Seq2[uint64, V]) *Map[V] {
	m := New[V]()
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}
