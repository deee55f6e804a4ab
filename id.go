// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dns

import (
	"math/rand/v2"
	"sync/atomic"
)

var idSeq = atomic.Uint32{}

func init() {
	idSeq.Store(rand.Uint32())
}

// NextID returns the next 16-bit message id. The teacher's Id()
// (uint16(rand.Int()) ^ uint16(time.Now().Nanosecond())) mixes two
// low-entropy sources and can repeat within the same nanosecond under
// load; this package instead seeds a counter once from a CSPRNG-backed
// source and increments it, satisfying "any 16-bit-wide non-repeating
// scheme" for a full 65536-call epoch without a syscall per call.
func NextID() uint16 {
	return uint16(idSeq.Add(1))
}
