// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/perfregs/arch"
)

var supported = []arch.Type{arch.X86_32, arch.X86_64, arch.ARM, arch.ARM64, arch.RISCV64}

func TestSupportedMask(t *testing.T) {
	tests := map[arch.Type]Mask{
		arch.X86_32:      0x0fff,
		arch.X86_64:      0xff0fff,
		arch.ARM:         0xffff,
		arch.ARM64:       0x1_ffff_ffff,
		arch.RISCV64:     0xffff_ffff,
		arch.Unsupported: 0,
	}
	for typ, want := range tests {
		t.Run(typ.String(), func(t *testing.T) {
			require.Equal(t, want, SupportedMask(typ))
		})
	}
}

func TestSupportedMaskExcludesSegments(t *testing.T) {
	for _, typ := range []arch.Type{arch.X86_32, arch.X86_64} {
		mask := SupportedMask(typ)
		for _, id := range []ID{X86DS, X86ES, X86FS, X86GS} {
			assert.False(t, mask.Has(id), "%s: %s", typ, Name(id, typ))
		}
		assert.True(t, mask.Has(X86CS))
		assert.True(t, mask.Has(X86SS))
	}
}

func TestNameCoversSupportedMask(t *testing.T) {
	for _, typ := range supported {
		t.Run(typ.String(), func(t *testing.T) {
			seen := make(map[string]ID)
			for id := range SupportedMask(typ).IDs() {
				var name string
				require.NotPanics(t, func() { name = Name(id, typ) })
				require.NotEmpty(t, name)
				if prev, ok := seen[name]; ok {
					t.Fatalf("%s: ids %d and %d are both named %q", typ, prev, id, name)
				}
				seen[name] = id
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		arch arch.Type
		id   ID
		want string
	}{
		// Kernel numbering: r9 is id 17 and id 9 is flags.
		{arch.X86_64, X86R9, "r9"},
		{arch.X86_64, 9, "flags"},
		{arch.X86_64, X86R8, "r8"},
		{arch.X86_64, X86R15, "r15"},
		{arch.X86_64, X86Flags, "flags"},
		{arch.X86_64, X86IP, "ip"},
		{arch.X86_64, X86GS, "gs"},
		{arch.X86_32, X86AX, "ax"},
		{arch.X86_32, X86SP, "sp"},
		{arch.X86_32, X86SS, "ss"},
		{arch.ARM, ARMR0, "r0"},
		{arch.ARM, ARMR10, "r10"},
		{arch.ARM, ARMFP, "fp"},
		{arch.ARM, ARMIP, "ip"},
		{arch.ARM, ARMSP, "sp"},
		{arch.ARM, ARMLR, "lr"},
		{arch.ARM, ARMPC, "pc"},
		{arch.ARM, ARM64PC, "pc"},
		{arch.ARM, 20, "r20"},
		{arch.ARM64, ARM64X0, "r0"},
		{arch.ARM64, ARM64X29, "r29"},
		{arch.ARM64, 15, "r15"},
		{arch.ARM64, ARM64LR, "lr"},
		{arch.ARM64, ARM64SP, "sp"},
		{arch.ARM64, ARM64PC, "pc"},
		{arch.RISCV64, RISCVPC, "pc"},
		{arch.RISCV64, RISCVRA, "ra"},
		{arch.RISCV64, RISCVS0, "s0"},
		{arch.RISCV64, RISCVA7, "a7"},
		{arch.RISCV64, RISCVS11, "s11"},
		{arch.RISCV64, RISCVT6, "t6"},
		{arch.Unsupported, 0, "unknown"},
		{arch.Unsupported, 63, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.id, tt.arch), "%s id %d", tt.arch, tt.id)
	}
}

func TestNameUnknownRegisterPanics(t *testing.T) {
	tests := []struct {
		arch arch.Type
		id   ID
	}{
		{arch.X86_32, X86R8},
		{arch.X86_64, x86_64Max},
		{arch.ARM, arm64Max},
		{arch.ARM64, 40},
		{arch.RISCV64, riscvMax},
		{arch.RISCV64, 63},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "%s id %d", tt.arch, tt.id)
				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, ErrUnknownRegister)
			}()
			Name(tt.id, tt.arch)
		}()
	}
	assert.PanicsWithError(t, "unknown register 16 for arch x86", func() {
		Name(X86R8, arch.X86_32)
	})
}

func TestSpecialRegs(t *testing.T) {
	for _, typ := range supported {
		sp, ok := SPReg(typ)
		require.True(t, ok)
		assert.Equal(t, "sp", Name(sp, typ))

		pc, ok := PCReg(typ)
		require.True(t, ok)
		assert.Contains(t, []string{"ip", "pc"}, Name(pc, typ))
		assert.True(t, SupportedMask(typ).Has(sp))
		assert.True(t, SupportedMask(typ).Has(pc))
	}

	_, ok := SPReg(arch.Unsupported)
	assert.False(t, ok)
	_, ok = PCReg(arch.Unsupported)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	name, ok := Lookup(X86R12, arch.X86_64)
	require.True(t, ok)
	assert.Equal(t, "r12", name)

	_, ok = Lookup(X86R12, arch.X86_32)
	assert.False(t, ok)

	_, ok = Lookup(MaxRegs-1, arch.ARM64)
	assert.False(t, ok)

	name, ok = Lookup(42, arch.Unsupported)
	require.True(t, ok)
	assert.Equal(t, "unknown", name)
}
