// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package arch // import "go.opentelemetry.io/perfregs/arch"

import (
	"strconv"
	"strings"

	"go.opentelemetry.io/perfregs/internal/log"
)

// Parse maps a machine name, as reported by uname(2) or recorded in a
// profile, to a Type. Unknown names are logged and yield Unsupported.
func Parse(name string) Type {
	switch name {
	case "x86", "i686":
		return X86_32
	case "x86_64":
		return X86_64
	case "riscv64":
		return RISCV64
	case "aarch64":
		return ARM64
	}
	if strings.HasPrefix(name, "arm") {
		// "arm64" carries no armvN version and is plain ARM.
		// "armv8l" is what a 32-bit build sees on an aarch64 kernel. The
		// kernel, and therefore the sampled registers, are 64-bit.
		if armVersion(name) >= 8 {
			return ARM64
		}
		return ARM
	}
	log.Errorf("Unsupported arch: %q", name)
	return Unsupported
}

// armVersion extracts N from names shaped like "armvN...". It returns 0 when
// name carries no version.
func armVersion(name string) int {
	rest, ok := strings.CutPrefix(name, "armv")
	if !ok {
		return 0
	}
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return v
}
