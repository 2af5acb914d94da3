// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmap

// Entry is a cursor to the position a single key occupies, or would
// occupy, in a Map. It is obtained from [Map.Entry] and lets callers
// look a key up once and then read, insert or remove at the found
// position without a second lookup.
//
// An Entry records bucket positions, so it is only valid until the
// next operation that modifies the Map. Using it after that is
// undefined.
type Entry[V any] struct {
	m      *Map[V]
	key    uint64
	bucket int
	slot   int // index of the pair in its bucket, -1 when vacant
}

// Entry returns a cursor for key. The cursor is occupied when key is
// in m and vacant otherwise.
func (m *Map[V]) Entry(key uint64) Entry[V] {
	if m == nil {
		panic("Entry called on nil map")
	}
	m.lazyInit()
	bi := m.indexFor(key)
	b := m.buckets[bi]
	for i := range b {
		if b[i].Key == key {
			return Entry[V]{m: m, key: key, bucket: bi, slot: i}
		}
	}
	return Entry[V]{m: m, key: key, bucket: bi, slot: -1}
}

// Occupied reports whether the Entry's key was found in the Map.
func (e Entry[V]) Occupied() bool {
	return e.slot >= 0
}

// Key returns the key the Entry was created for.
func (e Entry[V]) Key() uint64 {
	return e.key
}

// Value returns a pointer to the stored value, for reading or
// updating it in place. It panics when the Entry is vacant.
func (e Entry[V]) Value() *V {
	if e.slot < 0 {
		panic("Value called on vacant Entry")
	}
	return &e.m.buckets[e.bucket][e.slot].Value
}

// Insert stores value for the Entry's key and returns a pointer to
// the stored copy. It panics when the Entry is occupied.
//
// Insert appends to the bucket the Entry already found and skips the
// load check, so the returned pointer stays valid until the next
// direct insert into the Map.
func (e Entry[V]) Insert(value V) *V {
	if e.slot >= 0 {
		panic("Insert called on occupied Entry")
	}
	m := e.m
	m.count++
	b := append(m.buckets[e.bucket], KeyValue[V]{Key: e.key, Value: value})
	m.buckets[e.bucket] = b
	return &b[len(b)-1].Value
}

// Remove removes the Entry's key from the Map and returns the value
// that was stored. It panics when the Entry is vacant.
func (e Entry[V]) Remove() V {
	if e.slot < 0 {
		panic("Remove called on vacant Entry")
	}
	m := e.m
	b := m.buckets[e.bucket]
	v := b[e.slot].Value
	last := len(b) - 1
	b[e.slot] = b[last]
	b[last] = KeyValue[V]{}
	m.buckets[e.bucket] = b[:last]
	m.count--
	return v
}

// OrInsert returns a pointer to the value stored for the Entry's
// key, inserting value first when the Entry is vacant. It supports
// the counting idiom:
//
//	n := m.Entry(key).OrInsert(0)
//	*n++
func (e Entry[V]) OrInsert(value V) *V {
	if e.slot >= 0 {
		return e.Value()
	}
	return e.Insert(value)
}

// OrInsertWith is like OrInsert but calls f for the inserted value
// only when the Entry is vacant.
func (e Entry[V]) OrInsertWith(f func() V) *V {
	if e.slot >= 0 {
		return e.Value()
	}
	return e.Insert(f())
}
