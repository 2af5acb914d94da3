// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build intmapcheck

package intmap

import "fmt"

// checkInvariants panics if the structure of m is inconsistent. It
// is compiled in only under the intmapcheck build tag; the default
// build gets a no-op.
func (m *Map[V]) checkInvariants() {
	if len(m.buckets) == 0 {
		if m.size != 0 || m.mask != 0 || m.count != 0 {
			panic(fmt.Sprintf("bad map state: empty table with size=%d mask=%#x count=%d",
				m.size, m.mask, m.count))
		}
		return
	}
	if len(m.buckets) != 1<<m.size {
		panic(fmt.Sprintf("bad map state: %d buckets, size exponent %d",
			len(m.buckets), m.size))
	}
	if m.mask != uint64(len(m.buckets))-1 {
		panic(fmt.Sprintf("bad map state: mask %#x for %d buckets",
			m.mask, len(m.buckets)))
	}
	count := 0
	seen := make(map[uint64]struct{}, m.count)
	for bi, b := range m.buckets {
		for _, kv := range b {
			if _, ok := seen[kv.Key]; ok {
				panic(fmt.Sprintf("bad map state: key %d stored twice", kv.Key))
			}
			seen[kv.Key] = struct{}{}
			if home := m.indexFor(kv.Key); home != bi {
				panic(fmt.Sprintf("bad map state: key %d in bucket %d, belongs in %d",
					kv.Key, bi, home))
			}
			count++
		}
	}
	if count != m.count {
		panic(fmt.Sprintf("bad map state: count %d but %d pairs stored", m.count, count))
	}
}
