// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package log is the logger shared by all perfregs packages.
package log // import "go.opentelemetry.io/perfregs/internal/log"

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// level backs the default handler so SetLevel can change verbosity without
// replacing a logger installed by the embedding program.
var level = new(slog.LevelVar)

// globalLogger holds the [slog.Logger] used within go.opentelemetry.io/perfregs.
// By default it writes text records to stderr at info level.
var globalLogger = func() *atomic.Pointer[slog.Logger] {
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	p := new(atomic.Pointer[slog.Logger])
	p.Store(l)
	return p
}()

// SetLogger sets the global Logger to l.
func SetLogger(l *slog.Logger) {
	globalLogger.Store(l)
}

// SetLevel changes the level of the default stderr logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetDebugLogger configures the global logger to write debug-level logs to stderr.
func SetDebugLogger() {
	SetLevel(slog.LevelDebug)
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func getLogger() *slog.Logger {
	return globalLogger.Load()
}

func logf(l slog.Level, msg string, args ...any) {
	logger := getLogger()
	if !logger.Enabled(context.Background(), l) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	logger.Log(context.Background(), l, msg)
}

// Debugf logs detailed information about register decoding.
func Debugf(msg string, args ...any) {
	logf(slog.LevelDebug, msg, args...)
}

// Infof logs informational messages, e.g. the resolved session architecture.
func Infof(msg string, args ...any) {
	logf(slog.LevelInfo, msg, args...)
}

// Warnf logs conditions that are unexpected but handled.
func Warnf(msg string, args ...any) {
	logf(slog.LevelWarn, msg, args...)
}

// Errorf logs errors that were recovered from, such as an unsupported
// architecture name.
func Errorf(msg string, args ...any) {
	logf(slog.LevelError, msg, args...)
}

// Error logs err at error level.
func Error(err error) {
	if logger := getLogger(); logger.Enabled(context.Background(), slog.LevelError) {
		logger.Error(err.Error())
	}
}
