// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sequence hands out the lowest free sequence numbers.
package sequence

import "slices"

// 🔢 Allocator tracks the numbers already taken by conforming files and the
// counter used to pick the next free one.
//
// The used set must be complete before the first call to Next; the counter
// only moves forward, so a number recorded after it has been passed would
// never be honoured.
type Allocator struct {
	used    map[uint64]struct{}
	counter uint64
}

// 🏭 NewAllocator creates an allocator whose counter starts at 1.
func NewAllocator(used ...uint64) *Allocator {
	a := &Allocator{
		used:    make(map[uint64]struct{}, len(used)),
		counter: 1,
	}
	for _, n := range used {
		a.Use(n)
	}
	return a
}

// Use marks n as occupied.
func (a *Allocator) Use(n uint64) {
	a.used[n] = struct{}{}
}

// IsUsed reports whether n is occupied by a conforming file.
func (a *Allocator) IsUsed(n uint64) bool {
	_, ok := a.used[n]
	return ok
}

// Used returns the occupied numbers in ascending order.
func (a *Allocator) Used() []uint64 {
	out := make([]uint64, 0, len(a.used))
	for n := range a.used {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// 🎯 Next skips the counter past occupied numbers and returns it. The number
// is offered, not consumed: call Commit once it has actually been taken.
func (a *Allocator) Next() uint64 {
	for a.IsUsed(a.counter) {
		a.counter++
	}
	return a.counter
}

// Commit consumes the number last returned by Next.
func (a *Allocator) Commit() {
	a.counter++
}
