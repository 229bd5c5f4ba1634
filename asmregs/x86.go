// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package asmregs // import "go.opentelemetry.io/perfregs/asmregs"

import (
	"strings"

	"golang.org/x/arch/x86/x86asm"

	"go.opentelemetry.io/perfregs/regs"
)

// x86Regs maps every width alias of a register to its perf ID plus one, so
// that zero marks registers without a perf ID.
var x86Regs [256]uint8

// x86ByName indexes the registers of x86Regs by their x86asm name.
var x86ByName = make(map[string]x86asm.Reg)

func setX86(id regs.ID, aliases ...x86asm.Reg) {
	for _, r := range aliases {
		x86Regs[r] = uint8(id) + 1
		name := r.String()
		x86ByName[name] = r
		if len(name) > 2 && name[0] == 'R' && name[1] >= '0' && name[1] <= '9' &&
			strings.HasSuffix(name, "L") {
			// x86asm calls R8D..R15D R8L..R15L.
			x86ByName[strings.TrimSuffix(name, "L")+"D"] = r
		}
	}
}

func init() {
	setX86(regs.X86AX, x86asm.AL, x86asm.AH, x86asm.AX, x86asm.EAX, x86asm.RAX)
	setX86(regs.X86BX, x86asm.BL, x86asm.BH, x86asm.BX, x86asm.EBX, x86asm.RBX)
	setX86(regs.X86CX, x86asm.CL, x86asm.CH, x86asm.CX, x86asm.ECX, x86asm.RCX)
	setX86(regs.X86DX, x86asm.DL, x86asm.DH, x86asm.DX, x86asm.EDX, x86asm.RDX)
	setX86(regs.X86SI, x86asm.SIB, x86asm.SI, x86asm.ESI, x86asm.RSI)
	setX86(regs.X86DI, x86asm.DIB, x86asm.DI, x86asm.EDI, x86asm.RDI)
	setX86(regs.X86BP, x86asm.BPB, x86asm.BP, x86asm.EBP, x86asm.RBP)
	setX86(regs.X86SP, x86asm.SPB, x86asm.SP, x86asm.ESP, x86asm.RSP)
	setX86(regs.X86IP, x86asm.IP, x86asm.EIP, x86asm.RIP)
	setX86(regs.X86CS, x86asm.CS)
	setX86(regs.X86SS, x86asm.SS)
	setX86(regs.X86DS, x86asm.DS)
	setX86(regs.X86ES, x86asm.ES)
	setX86(regs.X86FS, x86asm.FS)
	setX86(regs.X86GS, x86asm.GS)
	setX86(regs.X86R8, x86asm.R8B, x86asm.R8W, x86asm.R8L, x86asm.R8)
	setX86(regs.X86R9, x86asm.R9B, x86asm.R9W, x86asm.R9L, x86asm.R9)
	setX86(regs.X86R10, x86asm.R10B, x86asm.R10W, x86asm.R10L, x86asm.R10)
	setX86(regs.X86R11, x86asm.R11B, x86asm.R11W, x86asm.R11L, x86asm.R11)
	setX86(regs.X86R12, x86asm.R12B, x86asm.R12W, x86asm.R12L, x86asm.R12)
	setX86(regs.X86R13, x86asm.R13B, x86asm.R13W, x86asm.R13L, x86asm.R13)
	setX86(regs.X86R14, x86asm.R14B, x86asm.R14W, x86asm.R14L, x86asm.R14)
	setX86(regs.X86R15, x86asm.R15B, x86asm.R15W, x86asm.R15L, x86asm.R15)
}

// FromX86 returns the x86 perf register holding r. All widths of a register
// (AL, AX, EAX, RAX) map to the same ID. Only x86_64 has R8..R15.
func FromX86(r x86asm.Reg) (regs.ID, bool) {
	if int(r) >= len(x86Regs) || x86Regs[r] == 0 {
		return 0, false
	}
	return regs.ID(x86Regs[r] - 1), true
}
