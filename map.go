// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intmap provides Map, a hash table specialized for uint64
// keys. It trades the generality of Go's built-in map for speed:
// instead of running keys through a general hash function, Map
// scrambles them with a single multiply and picks a bucket by
// masking the low bits of the product.
//
// The scramble is deterministic and unseeded, so Map is not hardened
// against adversarial key sets the way the built-in map is. Callers
// deriving keys from untrusted input should pre-hash it with a
// stronger hash, for example [github.com/cespare/xxhash/v2], and use
// the digest as the key.
package intmap

// This file contains the hash table itself. The data is arranged
// into an array of buckets whose length is always a power of two.
// Each bucket is a slice of key/value pairs; keys whose scrambled
// low bits select the same bucket share its slice.
//
// When the table grows, a new bucket array twice as big is
// allocated and every pair is rehomed under the new mask. Growth
// only runs inside Insert, Set, Reserve and the constructors, so
// pointers handed out by GetMut and Entry stay valid until the next
// call to one of those.

import (
	"math/bits"

	"golang.org/x/exp/slices"
)

const (
	// defaultCapacity is the bucket count of a Map fresh out of New.
	defaultCapacity = 4

	// maxLoadRate is the percentage of pairs to buckets above which
	// the table doubles.
	maxLoadRate = 70
)

// scrambleMult is 2^64 divided by the golden ratio, rounded to an
// odd number. Multiplying by it sends nearby keys to distant
// buckets.
const scrambleMult uint64 = 11400714819323198549

// scramble mixes key before bucket selection. The multiply wraps.
func scramble(key uint64) uint64 {
	return key * scrambleMult
}

// KeyValue contains a Key and Value.
type KeyValue[V any] struct {
	Key   uint64
	Value V
}

// Map implements a hashmap keyed by uint64. The zero Map is empty
// and ready for use.
//
// A Map is not safe for concurrent use and must not be copied after
// first use.
type Map[V any] struct {
	// array of buckets. Empty until the first inserting operation.
	buckets [][]KeyValue[V]
	size    uint   // log2 of len(buckets) once initialized
	mask    uint64 // len(buckets) - 1
	count   int    // # live pairs == size of map
}

// Iterator is instantiated by a call to Iter(). It allows iterating
// over a Map.
type Iterator[V any] struct {
	m      *Map[V]
	key    uint64
	value  V
	bucket int
	slot   int
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[V]) Key() uint64 {
	return it.key
}

// Value returns the value at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[V]) Value() V {
	return it.value
}

// New instantiates a new Map initialized with any KeyValues passed.
// When the same key appears more than once the first value wins.
func New[V any](kvs ...KeyValue[V]) *Map[V] {
	if len(kvs) == 0 {
		return NewHint[V](defaultCapacity)
	}
	m := NewHint[V](len(kvs))
	for _, kv := range kvs {
		m.Insert(kv.Key, kv.Value)
	}
	return m
}

// NewHint instantiates a new Map with a hint as to how many elements
// will be inserted. The bucket count starts at the hint rounded up
// to a power of two, at least two.
func NewHint[V any](hint int) *Map[V] {
	m := &Map[V]{}
	m.grow()
	for len(m.buckets) < hint {
		m.grow()
	}
	return m
}

// Len returns the count of pairs in m.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// IsEmpty reports whether m holds no pairs.
func (m *Map[V]) IsEmpty() bool {
	return m.Len() == 0
}

// Capacity returns the current bucket count. It only ever grows;
// removing pairs does not shrink the table.
func (m *Map[V]) Capacity() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Get returns the value associated with key and true if that key is
// in the Map, otherwise it returns the zero value of V and false.
func (m *Map[V]) Get(key uint64) (V, bool) {
	if v := m.GetMut(key); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil if
// the key is absent. The pointer is valid until the next operation
// that inserts into or removes from m.
func (m *Map[V]) GetMut(key uint64) *V {
	if m == nil || m.count == 0 {
		return nil
	}
	b := m.buckets[m.indexFor(key)]
	for i := range b {
		if b[i].Key == key {
			return &b[i].Value
		}
	}
	return nil
}

// ContainsKey reports whether key is in m.
func (m *Map[V]) ContainsKey(key uint64) bool {
	_, ok := m.Get(key)
	return ok
}

// Insert associates key with value if key is not already in m. It
// reports whether the pair was inserted; when the key was already
// present the stored value is left alone.
func (m *Map[V]) Insert(key uint64, value V) bool {
	if m == nil {
		panic("Insert called on nil map")
	}
	m.lazyInit()
	bi := m.indexFor(key)
	b := m.buckets[bi]
	for i := range b {
		if b[i].Key == key {
			return false
		}
	}
	m.count++
	m.buckets[bi] = append(b, KeyValue[V]{Key: key, Value: value})
	m.maybeGrow()
	return true
}

// Set associates key with value in m, overwriting any previous
// value.
func (m *Map[V]) Set(key uint64, value V) {
	if m == nil {
		panic("Set called on nil map")
	}
	m.lazyInit()
	bi := m.indexFor(key)
	b := m.buckets[bi]
	for i := range b {
		if b[i].Key == key {
			b[i].Value = value
			return
		}
	}
	m.count++
	m.buckets[bi] = append(b, KeyValue[V]{Key: key, Value: value})
	m.maybeGrow()
}

// Remove removes key from m, returning the value that was stored
// and true if the key was present. The pair that was last in the
// bucket is swapped into the hole, so bucket order is not
// preserved.
func (m *Map[V]) Remove(key uint64) (V, bool) {
	var zero V
	if m == nil || m.count == 0 {
		return zero, false
	}
	bi := m.indexFor(key)
	b := m.buckets[bi]
	for i := range b {
		if b[i].Key != key {
			continue
		}
		v := b[i].Value
		last := len(b) - 1
		b[i] = b[last]
		b[last] = KeyValue[V]{} // clear the vacated slot in case V has pointers
		m.buckets[bi] = b[:last]
		m.count--
		return v, true
	}
	return zero, false
}

// Iter instantiates an Iterator to explore the pairs of the Map.
// Pairs come out in bucket order, which depends on the scramble and
// the current capacity; callers must not rely on it.
func (m *Map[V]) Iter() *Iterator[V] {
	if m == nil || m.count == 0 {
		return &Iterator[V]{}
	}
	return &Iterator[V]{m: m}
}

// Next moves the iterator to the next pair. Next returns false when
// the iterator is complete. Inserting into or removing from the Map
// during the walk is not supported.
func (it *Iterator[V]) Next() bool {
	m := it.m
	if m == nil {
		return false
	}
	for it.bucket < len(m.buckets) {
		b := m.buckets[it.bucket]
		if it.slot < len(b) {
			it.key = b[it.slot].Key
			it.value = b[it.slot].Value
			it.slot++
			return true
		}
		it.bucket++
		it.slot = 0
	}
	var zero V
	it.key = 0
	it.value = zero
	return false
}

// Clear removes all pairs from m. The bucket array and bucket
// capacity are kept for reuse.
func (m *Map[V]) Clear() {
	if m == nil || m.count == 0 {
		return
	}
	for i := range m.buckets {
		clear(m.buckets[i]) // release values in case V has pointers
		m.buckets[i] = m.buckets[i][:0]
	}
	m.count = 0
}

// Retain removes every pair for which keep returns false. Pairs are
// visited in an unspecified order.
func (m *Map[V]) Retain(keep func(key uint64, value V) bool) {
	if m == nil || m.count == 0 {
		return
	}
	removed := 0
	for bi := range m.buckets {
		b := m.buckets[bi]
		n := 0
		for _, kv := range b {
			if keep(kv.Key, kv.Value) {
				b[n] = kv
				n++
			}
		}
		removed += len(b) - n
		clear(b[n:])
		m.buckets[bi] = b[:n]
	}
	m.count -= removed
}

// Reserve grows m until the bucket count reaches the current pair
// count plus additional, rounded up to a power of two. It never
// shrinks the table.
func (m *Map[V]) Reserve(additional int) {
	if m == nil {
		panic("Reserve called on nil map")
	}
	capacity := nextPowerOfTwo(m.count + additional)
	for len(m.buckets) < capacity {
		m.grow()
	}
}

// Load returns the number of non-empty buckets.
func (m *Map[V]) Load() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.buckets {
		if len(b) > 0 {
			n++
		}
	}
	return n
}

// LoadRate returns the number of pairs as a percentage of the
// bucket count.
func (m *Map[V]) LoadRate() float64 {
	if m == nil || len(m.buckets) == 0 {
		return 0
	}
	return float64(m.count) / float64(len(m.buckets)) * 100
}

// Collisions returns a histogram of bucket usage: for every bucket
// holding more than one pair, the result maps the pair count to the
// number of buckets holding that many. An empty result means no two
// keys share a bucket.
func (m *Map[V]) Collisions() *Map[int] {
	hist := New[int]()
	if m == nil {
		return hist
	}
	for _, b := range m.buckets {
		if len(b) > 1 {
			n := hist.Entry(uint64(len(b))).OrInsert(0)
			*n++
		}
	}
	return hist
}

// Clone returns a copy of m. Values are copied with =, so pointer
// values keep referring to the same data.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return nil
	}
	out := &Map[V]{
		buckets: make([][]KeyValue[V], len(m.buckets)),
		size:    m.size,
		mask:    m.mask,
		count:   m.count,
	}
	for i, b := range m.buckets {
		out.buckets[i] = slices.Clone(b)
	}
	return out
}

// ToMap copies m into a built-in map.
func (m *Map[V]) ToMap() map[uint64]V {
	out := make(map[uint64]V, m.Len())
	for it := m.Iter(); it.Next(); {
		out[it.Key()] = it.Value()
	}
	return out
}

// lazyInit gives the zero Map its first bucket array.
func (m *Map[V]) lazyInit() {
	if len(m.buckets) != 0 {
		return
	}
	for len(m.buckets) < defaultCapacity {
		m.grow()
	}
}

// grow doubles the bucket count and rehomes every pair under the
// new mask. Growing invalidates pointers returned by GetMut and
// Entry.
func (m *Map[V]) grow() {
	m.size++
	m.mask = 1<<m.size - 1
	old := m.buckets
	m.buckets = make([][]KeyValue[V], 1<<m.size)
	for _, b := range old {
		for _, kv := range b {
			bi := m.indexFor(kv.Key)
			m.buckets[bi] = append(m.buckets[bi], kv)
		}
	}
	m.checkInvariants()
}

// ensureLoadRate doubles the table while the pair count exceeds
// maxLoadRate percent of the bucket count.
func (m *Map[V]) ensureLoadRate() {
	for m.count*100/len(m.buckets) > maxLoadRate {
		m.grow()
	}
}

// maybeGrow runs the load check after an insertion. The check is
// skipped unless bit 2 of the count is set, so it runs for four
// counts out of every eight.
func (m *Map[V]) maybeGrow() {
	if m.count&4 == 4 {
		m.ensureLoadRate()
	}
}

// indexFor returns the bucket index for key under the current mask.
func (m *Map[V]) indexFor(key uint64) int {
	return int(scramble(key) & m.mask)
}

// nextPowerOfTwo rounds n up to a power of two. It returns 1 for
// n <= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
