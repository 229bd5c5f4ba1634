// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package asmregs maps registers of decoded instructions to perf register
// IDs, so that code analysing machine code can look their values up in a
// regset.RegSet.
package asmregs // import "go.opentelemetry.io/perfregs/asmregs"

import (
	"strconv"

	aa "golang.org/x/arch/arm64/arm64asm"

	"go.opentelemetry.io/perfregs/regs"
)

// FromARM64 converts an arm64asm register operand (Reg, RegSP or
// RegExtshiftAmount) naming X0..X30, W0..W30 or SP/WSP into the arm64 perf
// register ID. X30 is the link register.
func FromARM64(arg aa.Arg) (regs.ID, bool) {
	var reg aa.Reg
	switch r := arg.(type) {
	case aa.Reg:
		reg = r
	case aa.RegSP:
		if aa.Reg(r) == aa.SP || aa.Reg(r) == aa.WSP {
			return regs.ARM64SP, true
		}
		reg = aa.Reg(r)
	case aa.RegExtshiftAmount:
		// The fields of RegExtshiftAmount are not exported.
		// https://github.com/golang/go/issues/51517
		n, ok := DecodeARM64Register(r.String())
		if !ok {
			return 0, false
		}
		if n == aa.SP || n == aa.WSP {
			return regs.ARM64SP, true
		}
		reg = n
	default:
		return 0, false
	}

	switch {
	case reg >= aa.X0 && reg <= aa.X30:
		return regs.ARM64X0 + regs.ID(reg-aa.X0), true
	case reg >= aa.W0 && reg <= aa.W30:
		return regs.ARM64X0 + regs.ID(reg-aa.W0), true
	}
	return 0, false
}

// DecodeARM64Register inverts arm64asm Reg.String() for general purpose
// registers. The zero registers have no value and are rejected. Note that
// arm64asm encodes SP and WSP with the values of XZR and WZR.
func DecodeARM64Register(name string) (aa.Reg, bool) {
	// A RegExtshiftAmount string is "<reg>" optionally followed by
	// ", <extend> #<amount>".
	for i := 0; i < len(name); i++ {
		if name[i] == ',' {
			name = name[:i]
			break
		}
	}
	switch name {
	case "", "WZR", "XZR":
		return 0, false
	case "SP":
		return aa.SP, true
	case "WSP":
		return aa.WSP, true
	}

	var base aa.Reg
	switch name[0] {
	case 'W':
		base = aa.W0
	case 'X':
		base = aa.X0
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(name[1:], 10, 8)
	if err != nil || n > 30 {
		return 0, false
	}
	return base + aa.Reg(n), true
}
