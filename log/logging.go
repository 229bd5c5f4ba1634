// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package log lets programs embedding perfregs control its logging.
package log // import "go.opentelemetry.io/perfregs/log"

import (
	"log/slog"

	"go.opentelemetry.io/perfregs/internal/log"
)

// SetLevel configures the level of the default perfregs logger.
func SetLevel(level slog.Level) {
	log.SetLevel(level)
}

// SetLogger replaces the logger used by perfregs.
func SetLogger(l *slog.Logger) {
	log.SetLogger(l)
}
