// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package arch identifies the instruction set architecture that captured
// registers are interpreted under.
package arch // import "go.opentelemetry.io/perfregs/arch"

// Type identifies an architecture together with its register width.
type Type uint8

const (
	// Unsupported is returned for architectures perfregs has no tables for.
	Unsupported Type = iota
	X86_32
	X86_64
	ARM
	ARM64
	RISCV64
)

var typeToName = [...]string{
	Unsupported: "unknown",
	X86_32:      "x86",
	X86_64:      "x86_64",
	ARM:         "arm",
	ARM64:       "arm64",
	RISCV64:     "riscv64",
}

// String returns the short architecture name used in reports. Unsupported
// and out of range values map to "unknown".
func (t Type) String() string {
	if int(t) < len(typeToName) {
		return typeToName[t]
	}
	return typeToName[Unsupported]
}

// Supported reports whether register tables exist for t.
func (t Type) Supported() bool {
	return t > Unsupported && t <= RISCV64
}

// Is64Bit reports whether registers of t are 64 bits wide.
func (t Type) Is64Bit() bool {
	switch t {
	case X86_64, ARM64, RISCV64:
		return true
	}
	return false
}
