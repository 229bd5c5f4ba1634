// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regs // import "go.opentelemetry.io/perfregs/regs"

import (
	"iter"
	"math/bits"
)

// Mask is a set of register IDs. Bit i set means register i was captured.
// It has the layout of perf_event_attr.sample_regs_user.
type Mask uint64

// MaskOf returns the mask containing ids.
func MaskOf(ids ...ID) Mask {
	var m Mask
	for _, id := range ids {
		m |= 1 << (id % MaxRegs)
	}
	return m
}

// lowMask returns a mask with the ids [0, n) set.
func lowMask(n ID) Mask {
	if n >= MaxRegs {
		return ^Mask(0)
	}
	return Mask(1)<<n - 1
}

// Has reports whether id is in m.
func (m Mask) Has(id ID) bool {
	return id < MaxRegs && m&(1<<id) != 0
}

// Count returns the number of ids in m.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// IDs yields the ids in m in ascending order.
func (m Mask) IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for rest := uint64(m); rest != 0; rest &= rest - 1 {
			if !yield(ID(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}
