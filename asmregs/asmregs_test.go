// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package asmregs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	aa "golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/regs"
)

func TestFromX86(t *testing.T) {
	tests := []struct {
		reg  x86asm.Reg
		want regs.ID
	}{
		{x86asm.AL, regs.X86AX},
		{x86asm.EAX, regs.X86AX},
		{x86asm.RAX, regs.X86AX},
		{x86asm.RSP, regs.X86SP},
		{x86asm.ESP, regs.X86SP},
		{x86asm.RBP, regs.X86BP},
		{x86asm.RIP, regs.X86IP},
		{x86asm.R8L, regs.X86R8},
		{x86asm.R9, regs.X86R9},
		{x86asm.R15B, regs.X86R15},
		{x86asm.FS, regs.X86FS},
	}
	for _, tt := range tests {
		id, ok := FromX86(tt.reg)
		require.True(t, ok, tt.reg.String())
		assert.Equal(t, tt.want, id, tt.reg.String())
	}

	id, _ := FromX86(x86asm.R9)
	assert.Equal(t, "r9", regs.Name(id, arch.X86_64))

	for _, r := range []x86asm.Reg{0, x86asm.X0, x86asm.CR0, x86asm.F0} {
		_, ok := FromX86(r)
		assert.False(t, ok, r.String())
	}
}

func TestFromARM64(t *testing.T) {
	tests := []struct {
		arg  aa.Arg
		want regs.ID
	}{
		{aa.X0, regs.ARM64X0},
		{aa.X29, regs.ARM64X29},
		{aa.X30, regs.ARM64LR},
		{aa.W5, 5},
		{aa.RegSP(aa.SP), regs.ARM64SP},
		{aa.RegSP(aa.WSP), regs.ARM64SP},
		{aa.RegSP(aa.X3), 3},
	}
	for _, tt := range tests {
		id, ok := FromARM64(tt.arg)
		require.True(t, ok, tt.arg.String())
		assert.Equal(t, tt.want, id, tt.arg.String())
	}

	id, _ := FromARM64(aa.X30)
	assert.Equal(t, "lr", regs.Name(id, arch.ARM64))

	for _, arg := range []aa.Arg{aa.XZR, aa.WZR, aa.V0, aa.Imm{Imm: 4}} {
		_, ok := FromARM64(arg)
		assert.False(t, ok, arg.String())
	}
}

func TestDecodeARM64Register(t *testing.T) {
	tests := map[string]aa.Reg{
		"X0":          aa.X0,
		"X30":         aa.X30,
		"W7":          aa.W7,
		"SP":          aa.SP,
		"WSP":         aa.WSP,
		"X2, LSL #3":  aa.X2,
		"W1, UXTW #2": aa.W1,
	}
	for name, want := range tests {
		reg, ok := DecodeARM64Register(name)
		require.True(t, ok, name)
		assert.Equal(t, want, reg, name)
		if want != aa.SP && want != aa.WSP && len(name) <= 3 {
			assert.Equal(t, name, reg.String())
		}
	}

	for _, name := range []string{"", "XZR", "WZR", "X31", "Q0", "X", "Xa"} {
		_, ok := DecodeARM64Register(name)
		assert.False(t, ok, name)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		arch arch.Type
		name string
		want regs.ID
		ok   bool
	}{
		{arch.X86_64, "rax", regs.X86AX, true},
		{arch.X86_64, "R9B", regs.X86R9, true},
		{arch.X86_64, "rip", regs.X86IP, true},
		{arch.X86_64, "r9d", regs.X86R9, true},
		{arch.X86_64, "r9l", regs.X86R9, true},
		{arch.X86_64, "ds", 0, false},
		{arch.X86_64, "xmm0", 0, false},
		{arch.X86_32, "esp", regs.X86SP, true},
		{arch.X86_32, "r8", 0, false},
		{arch.ARM64, "x29", regs.ARM64X0 + 29, true},
		{arch.ARM64, "w3", regs.ARM64X0 + 3, true},
		{arch.ARM64, "X30", regs.ARM64LR, true},
		{arch.ARM64, "sp", regs.ARM64SP, true},
		{arch.ARM64, "xzr", 0, false},
		{arch.ARM, "r0", 0, false},
		{arch.RISCV64, "a0", 0, false},
		{arch.Unsupported, "rax", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.arch.String()+"/"+tt.name, func(t *testing.T) {
			id, ok := Lookup(tt.arch, tt.name)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}
