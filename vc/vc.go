// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package vc provides buildtime information.
package vc // import "go.opentelemetry.io/perfregs/vc"

import "fmt"

// Set at link time with -ldflags "-X go.opentelemetry.io/perfregs/vc.version=...".
var (
	revision       = ""
	buildTimestamp = ""
	version        = "dev"
)

// Revision returns the VCS revision of the build.
func Revision() string {
	return revision
}

// BuildTimestamp returns the timestamp of the build.
func BuildTimestamp() string {
	return buildTimestamp
}

// Version in vX.Y.Z{-N-abbrev} format.
func Version() string {
	return version
}

// String describes the build for -version output.
func String() string {
	if revision == "" {
		return version
	}
	return fmt.Sprintf("%s (revision %s, built %s)", version, revision, buildTimestamp)
}
