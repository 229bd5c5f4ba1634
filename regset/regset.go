// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package regset expands the registers captured by a perf sample into a
// RegSet that can be queried by register ID.
package regset // import "go.opentelemetry.io/perfregs/regset"

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/regs"
)

// RegSet holds the registers of one sample. It is immutable once built and
// may be read from any number of goroutines.
type RegSet struct {
	arch arch.Type
	mask regs.Mask
	data [regs.MaxRegs]uint64
}

// New builds the RegSet of a sample taken on the session architecture cur.
// packed holds one value per bit set in mask, in ascending bit order, which
// is how the kernel writes them. New panics if len(packed) differs from the
// number of bits in mask.
func New(cur *arch.Current, abi arch.ABI, mask regs.Mask, packed []uint64) *RegSet {
	if n := mask.Count(); n != len(packed) {
		panic(fmt.Sprintf("regset: %d register values for %d mask bits", len(packed), n))
	}

	machine := cur.Get()
	rs := &RegSet{
		arch: arch.ForABI(machine, abi),
		mask: mask,
	}
	j := 0
	for id := range mask.IDs() {
		rs.data[id] = packed[j]
		j++
	}

	if machine == arch.ARM64 && abi == arch.ABI32 && mask.Has(regs.ARM64PC) {
		// The kernel dumps a compat task with the arm64 layout, where the
		// program counter does not sit in the arm pc slot. The mask stays
		// as sampled.
		rs.data[regs.ARMPC] = rs.data[regs.ARM64PC]
	}
	return rs
}

// Arch returns the architecture the register IDs are numbered under.
func (rs *RegSet) Arch() arch.Type {
	return rs.arch
}

// Mask returns the registers present in rs.
func (rs *RegSet) Mask() regs.Mask {
	return rs.mask
}

// Value returns the value of register id and whether the sample captured it.
// id must be below regs.MaxRegs.
func (rs *RegSet) Value(id regs.ID) (uint64, bool) {
	if id >= regs.MaxRegs {
		panic(fmt.Sprintf("regset: register %d out of range", id))
	}
	if !rs.mask.Has(id) {
		return 0, false
	}
	return rs.data[id], true
}

// SP returns the stack pointer.
func (rs *RegSet) SP() (uint64, bool) {
	id, ok := regs.SPReg(rs.arch)
	if !ok {
		return 0, false
	}
	return rs.Value(id)
}

// IP returns the program counter.
func (rs *RegSet) IP() (uint64, bool) {
	id, ok := regs.PCReg(rs.arch)
	if !ok {
		return 0, false
	}
	return rs.Value(id)
}

// Each calls fn for every captured register in ascending ID order. The name
// is "unknown" if the architecture is not supported.
func (rs *RegSet) Each(fn func(id regs.ID, name string, value uint64)) {
	for id := range rs.mask.IDs() {
		fn(id, regs.Name(id, rs.arch), rs.data[id])
	}
}

// String formats the captured registers as space separated name=value pairs.
func (rs *RegSet) String() string {
	var sb strings.Builder
	rs.Each(func(_ regs.ID, name string, value uint64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=0x%x", name, value)
	})
	return sb.String()
}
