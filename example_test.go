// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmap_test

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-intmap/intmap"
)

func ExampleMap_Entry() {
	counters := intmap.New[int]()
	for _, id := range []uint64{10, 30, 10, 40, 50, 50, 60, 50} {
		n := counters.Entry(id).OrInsert(0)
		*n++
	}

	for _, id := range []uint64{10, 30, 40, 50, 60} {
		n, _ := counters.Get(id)
		fmt.Printf("%d seen %d times\n", id, n)
	}
	// Output:
	// 10 seen 2 times
	// 30 seen 1 times
	// 40 seen 1 times
	// 50 seen 3 times
	// 60 seen 1 times
}

func ExampleMap_Iter() {
	m := intmap.New(
		intmap.KeyValue[string]{100, "a"},
		intmap.KeyValue[string]{200, "b"},
		intmap.KeyValue[string]{300, "c"},
	)

	for i := m.Iter(); i.Next(); {
		fmt.Printf("%d is %q\n", i.Key(), i.Value())
	}
}

// Strings or other non-integer keys can be pre-hashed; the digest
// becomes the key, so lookups must hash the same way.
func ExampleMap_stringKeys() {
	m := intmap.New[string]()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		m.Insert(xxhash.Sum64String(name), name)
	}

	if v, ok := m.Get(xxhash.Sum64String("beta")); ok {
		fmt.Println("found", v)
	}
	if _, ok := m.Get(xxhash.Sum64String("delta")); !ok {
		fmt.Println("delta not present")
	}
	// Output:
	// found beta
	// delta not present
}

func ExampleMap_Drain() {
	pending := intmap.New(
		intmap.KeyValue[string]{1, "flush"},
	)
	for id, op := range pending.Drain() {
		fmt.Println(id, op)
	}
	fmt.Println("left:", pending.Len())
	// Output:
	// 1 flush
	// left: 0
}
