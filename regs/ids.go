// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package regs is the register catalog: the perf register numbering of each
// supported architecture, the registers a sample can carry and their names.
//
// Register numbers follow the kernel's asm/perf_regs.h, because that is the
// numbering of the sample records being decoded.
package regs // import "go.opentelemetry.io/perfregs/regs"

// ID is a perf register number. Its meaning depends on the architecture it
// is interpreted under. IDs are always below MaxRegs.
type ID uint8

// MaxRegs is the number of register slots a sample mask can address.
const MaxRegs = 64

// x86, shared by both widths. r8..r15 only exist on x86_64.
const (
	X86AX ID = iota
	X86BX
	X86CX
	X86DX
	X86SI
	X86DI
	X86BP
	X86SP
	X86IP
	X86Flags
	X86CS
	X86SS
	X86DS
	X86ES
	X86FS
	X86GS
	X86R8
	X86R9
	X86R10
	X86R11
	X86R12
	X86R13
	X86R14
	X86R15

	x86_32Max = X86GS + 1
	x86_64Max = X86R15 + 1
)

// 32-bit arm.
const (
	ARMR0  ID = 0
	ARMR10 ID = 10
	ARMFP  ID = 11
	ARMIP  ID = 12
	ARMSP  ID = 13
	ARMLR  ID = 14
	ARMPC  ID = 15

	armMax = ARMPC + 1
)

// arm64.
const (
	ARM64X0  ID = 0
	ARM64X29 ID = 29
	ARM64LR  ID = 30
	ARM64SP  ID = 31
	ARM64PC  ID = 32

	arm64Max = ARM64PC + 1
)

// riscv64, named after the standard calling convention.
const (
	RISCVPC ID = iota
	RISCVRA
	RISCVSP
	RISCVGP
	RISCVTP
	RISCVT0
	RISCVT1
	RISCVT2
	RISCVS0
	RISCVS1
	RISCVA0
	RISCVA1
	RISCVA2
	RISCVA3
	RISCVA4
	RISCVA5
	RISCVA6
	RISCVA7
	RISCVS2
	RISCVS3
	RISCVS4
	RISCVS5
	RISCVS6
	RISCVS7
	RISCVS8
	RISCVS9
	RISCVS10
	RISCVS11
	RISCVT3
	RISCVT4
	RISCVT5
	RISCVT6

	riscvMax = RISCVT6 + 1
)
