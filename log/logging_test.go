// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.opentelemetry.io/perfregs/arch"
)

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() {
		SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	})

	// Unknown machine names are reported through the installed logger.
	assert.Equal(t, arch.Unsupported, arch.Parse("pdp11"))
	assert.Contains(t, buf.String(), `Unsupported arch: \"pdp11\"`)
}
