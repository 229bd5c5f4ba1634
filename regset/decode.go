// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regset // import "go.opentelemetry.io/perfregs/regset"

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/regs"
)

var (
	// ErrShortRecord is returned when a record ends before all registers
	// announced by the mask were read.
	ErrShortRecord = errors.New("register record too short")
	// ErrInvalidABI is returned for ABI tags the kernel does not define.
	ErrInvalidABI = errors.New("invalid register ABI")
	// ErrValueCount is returned when the number of values does not match the mask.
	ErrValueCount = errors.New("register count does not match mask")
)

const wordSize = 8

// Decode reads the register block of a raw perf sample, as laid out for
// PERF_SAMPLE_REGS_USER and PERF_SAMPLE_REGS_INTR: a u64 ABI tag followed,
// unless the tag is ABINone, by one u64 per bit set in mask. mask is the
// sample_regs_user or sample_regs_intr value the event was opened with.
//
// It returns the RegSet and the number of bytes of raw it consumed.
func Decode(cur *arch.Current, mask regs.Mask, raw []byte) (*RegSet, int, error) {
	rs, n, err := decode(cur, mask, raw)
	recordDecode(cur.Get(), err)
	return rs, n, err
}

func decode(cur *arch.Current, mask regs.Mask, raw []byte) (*RegSet, int, error) {
	if len(raw) < wordSize {
		return nil, 0, fmt.Errorf("%w: no ABI tag in %d bytes", ErrShortRecord, len(raw))
	}

	abi := arch.ABI(binary.LittleEndian.Uint64(raw))
	switch abi {
	case arch.ABINone:
		// Kernel threads have no user registers; only the tag is written.
		return New(cur, abi, 0, nil), wordSize, nil
	case arch.ABI32, arch.ABI64:
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidABI, uint64(abi))
	}

	count := mask.Count()
	size := wordSize * (1 + count)
	if len(raw) < size {
		return nil, 0, fmt.Errorf("%w: need %d bytes for %d registers, have %d",
			ErrShortRecord, size, count, len(raw))
	}

	packed := make([]uint64, count)
	for i := range packed {
		packed[i] = binary.LittleEndian.Uint64(raw[wordSize*(i+1):])
	}
	return New(cur, abi, mask, packed), size, nil
}

// FromValues builds a RegSet like New, but reports a mismatch between mask
// and values as an error instead of panicking. Use it for data that did not
// come straight from the kernel.
func FromValues(cur *arch.Current, abi arch.ABI, mask regs.Mask, values []uint64) (*RegSet, error) {
	if abi == arch.ABINone {
		return New(cur, abi, 0, nil), nil
	}
	if n := mask.Count(); n != len(values) {
		return nil, fmt.Errorf("%w: %d values for %d mask bits", ErrValueCount, len(values), n)
	}
	return New(cur, abi, mask, values), nil
}
