// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package arch // import "go.opentelemetry.io/perfregs/arch"

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Host returns the architecture of the running kernel. This is the
// architecture samples are taken under, which may be wider than the one this
// binary was built for.
func Host() (Type, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Unsupported, fmt.Errorf("failed to get machine name: %w", err)
	}
	return Parse(unix.ByteSliceToString(uts.Machine[:])), nil
}
