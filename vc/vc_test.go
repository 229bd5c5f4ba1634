// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package vc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, Version(), String())

	revision, buildTimestamp = "abc123", "2026-01-02"
	t.Cleanup(func() { revision, buildTimestamp = "", "" })
	assert.Equal(t, Version()+" (revision abc123, built 2026-01-02)", String())
}
