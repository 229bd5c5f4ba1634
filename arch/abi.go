// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package arch // import "go.opentelemetry.io/perfregs/arch"

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ABI is the register ABI tag the kernel stores in front of the registers of
// a perf sample (PERF_SAMPLE_REGS_USER and PERF_SAMPLE_REGS_INTR).
type ABI uint64

const (
	ABINone ABI = unix.PERF_SAMPLE_REGS_ABI_NONE
	ABI32   ABI = unix.PERF_SAMPLE_REGS_ABI_32
	ABI64   ABI = unix.PERF_SAMPLE_REGS_ABI_64
)

func (a ABI) String() string {
	switch a {
	case ABINone:
		return "none"
	case ABI32:
		return "32"
	case ABI64:
		return "64"
	}
	return fmt.Sprintf("ABI(%d)", uint64(a))
}

// ParseABI converts the textual forms "32", "64" and "none" to an ABI.
func ParseABI(s string) (ABI, error) {
	switch s {
	case "32":
		return ABI32, nil
	case "64":
		return ABI64, nil
	case "none":
		return ABINone, nil
	}
	return ABINone, fmt.Errorf("invalid register ABI %q", s)
}

// ForABI returns the architecture whose register numbering a sample with
// the given ABI uses on a machine of type machine. A 32-bit task on a 64-bit
// kernel is narrowed, a 64-bit sample seen by a 32-bit build is widened and
// everything else is returned unchanged.
func ForABI(machine Type, abi ABI) Type {
	switch abi {
	case ABI32:
		switch machine {
		case X86_64:
			return X86_32
		case ARM64:
			return ARM
		}
	case ABI64:
		switch machine {
		case X86_32:
			return X86_64
		case ARM:
			return ARM64
		}
	}
	return machine
}
