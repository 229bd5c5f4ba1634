// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package asmregs // import "go.opentelemetry.io/perfregs/asmregs"

import (
	"strings"

	aa "golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/regs"
)

// Lookup returns the perf register of architecture t that a disassembler
// names name, e.g. "eax" or "R9B" on x86 and "w3" or "sp" on arm64. Names
// are case insensitive. Registers that t does not sample are rejected.
func Lookup(t arch.Type, name string) (regs.ID, bool) {
	name = strings.ToUpper(name)

	var id regs.ID
	var ok bool
	switch t {
	case arch.X86_32, arch.X86_64:
		var r x86asm.Reg
		if r, ok = x86ByName[name]; ok {
			id, ok = FromX86(r)
		}
	case arch.ARM64:
		var r aa.Reg
		if r, ok = DecodeARM64Register(name); ok {
			id, ok = FromARM64(aa.RegSP(r))
		}
	}
	if !ok || !regs.SupportedMask(t).Has(id) {
		return 0, false
	}
	return id, true
}
