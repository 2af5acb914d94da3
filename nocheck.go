// Copyright 2026 The intmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !intmapcheck

package intmap

func (m *Map[V]) checkInvariants() {}
