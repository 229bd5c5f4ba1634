// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regs // import "go.opentelemetry.io/perfregs/regs"

import (
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/perfregs/arch"
)

// ErrUnknownRegister is the error a panic of Name wraps.
var ErrUnknownRegister = errors.New("unknown register")

const unknownName = "unknown"

// The segment registers are numbered but samples never carry reliable
// values for them.
var x86Segments = MaskOf(X86DS, X86ES, X86FS, X86GS)

var x86Names = [x86_64Max]string{
	X86AX:    "ax",
	X86BX:    "bx",
	X86CX:    "cx",
	X86DX:    "dx",
	X86SI:    "si",
	X86DI:    "di",
	X86BP:    "bp",
	X86SP:    "sp",
	X86IP:    "ip",
	X86Flags: "flags",
	X86CS:    "cs",
	X86SS:    "ss",
	X86DS:    "ds",
	X86ES:    "es",
	X86FS:    "fs",
	X86GS:    "gs",
}

var armNames = [armMax]string{
	ARMFP: "fp",
	ARMIP: "ip",
	ARMSP: "sp",
	ARMLR: "lr",
	ARMPC: "pc",
}

var arm64Names = [arm64Max]string{
	ARM64LR: "lr",
	ARM64SP: "sp",
	ARM64PC: "pc",
}

var riscvNames = [riscvMax]string{
	RISCVPC:  "pc",
	RISCVRA:  "ra",
	RISCVSP:  "sp",
	RISCVGP:  "gp",
	RISCVTP:  "tp",
	RISCVT0:  "t0",
	RISCVT1:  "t1",
	RISCVT2:  "t2",
	RISCVS0:  "s0",
	RISCVS1:  "s1",
	RISCVA0:  "a0",
	RISCVA1:  "a1",
	RISCVA2:  "a2",
	RISCVA3:  "a3",
	RISCVA4:  "a4",
	RISCVA5:  "a5",
	RISCVA6:  "a6",
	RISCVA7:  "a7",
	RISCVS2:  "s2",
	RISCVS3:  "s3",
	RISCVS4:  "s4",
	RISCVS5:  "s5",
	RISCVS6:  "s6",
	RISCVS7:  "s7",
	RISCVS8:  "s8",
	RISCVS9:  "s9",
	RISCVS10: "s10",
	RISCVS11: "s11",
	RISCVT3:  "t3",
	RISCVT4:  "t4",
	RISCVT5:  "t5",
	RISCVT6:  "t6",
}

// gpNames holds "r0".."r29", the names of numbered general purpose registers.
var gpNames = func() (names [30]string) {
	for i := range names {
		names[i] = "r" + strconv.Itoa(i)
	}
	return names
}()

// SupportedMask returns the registers a sample of architecture t can carry.
// It is zero for unsupported architectures.
func SupportedMask(t arch.Type) Mask {
	switch t {
	case arch.X86_32:
		return lowMask(x86_32Max) &^ x86Segments
	case arch.X86_64:
		return lowMask(x86_64Max) &^ x86Segments
	case arch.ARM:
		return lowMask(armMax)
	case arch.ARM64:
		return lowMask(arm64Max)
	case arch.RISCV64:
		return lowMask(riscvMax)
	}
	return 0
}

// Name returns the canonical name of register id under architecture t, as
// used in reports. Unsupported architectures yield "unknown".
//
// Name panics with an error wrapping ErrUnknownRegister if id is not a
// register of a supported t: the caller and the catalog disagree about the
// numbering and no name can be trusted.
func Name(id ID, t arch.Type) string {
	name, ok := Lookup(id, t)
	if !ok {
		panic(fmt.Errorf("%w %d for arch %s", ErrUnknownRegister, id, t))
	}
	return name
}

// Lookup is like Name but reports an unknown register instead of panicking.
// For unsupported architectures it returns "unknown" and true.
func Lookup(id ID, t arch.Type) (string, bool) {
	switch t {
	case arch.X86_64:
		if id >= X86R8 && id <= X86R15 {
			return gpNames[id-X86R8+8], true
		}
		return lookup(x86Names[:], id)
	case arch.X86_32:
		return lookup(x86Names[:], id)
	case arch.ARM:
		if id <= ARMR10 {
			return gpNames[id-ARMR0], true
		}
		if name, ok := lookup(armNames[:], id); ok {
			return name, true
		}
		// Registers beyond the arm set use the arm64 numbering.
		return arm64Name(id)
	case arch.ARM64:
		return arm64Name(id)
	case arch.RISCV64:
		return lookup(riscvNames[:], id)
	}
	return unknownName, true
}

func arm64Name(id ID) (string, bool) {
	if id <= ARM64X29 {
		return gpNames[id-ARM64X0], true
	}
	return lookup(arm64Names[:], id)
}

func lookup(table []string, id ID) (string, bool) {
	if int(id) < len(table) && table[id] != "" {
		return table[id], true
	}
	return "", false
}

// SPReg returns the stack pointer of architecture t.
func SPReg(t arch.Type) (ID, bool) {
	switch t {
	case arch.X86_32, arch.X86_64:
		return X86SP, true
	case arch.ARM:
		return ARMSP, true
	case arch.ARM64:
		return ARM64SP, true
	case arch.RISCV64:
		return RISCVSP, true
	}
	return 0, false
}

// PCReg returns the program counter of architecture t.
func PCReg(t arch.Type) (ID, bool) {
	switch t {
	case arch.X86_32, arch.X86_64:
		return X86IP, true
	case arch.ARM:
		return ARMPC, true
	case arch.ARM64:
		return ARM64PC, true
	case arch.RISCV64:
		return RISCVPC, true
	}
	return 0, false
}
