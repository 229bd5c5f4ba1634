// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the settings of a register decoding session.
package config // import "go.opentelemetry.io/perfregs/config"

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/internal/log"
)

// Config is the configuration of a profiling session as far as register
// interpretation is concerned.
type Config struct {
	// Arch is the machine name of the profiled system, e.g. "aarch64". If
	// empty the architecture of the running kernel is used.
	Arch string
	// ABI is the register ABI of the samples: "32", "64" or "none". If empty
	// the samples are taken to have the width of the session architecture.
	ABI string
	// VerboseMode enables debug logging.
	VerboseMode bool
}

// Validate checks the configuration for values that can not be used.
func (cfg *Config) Validate() error {
	if strings.ContainsAny(cfg.Arch, " \t\n") {
		return fmt.Errorf("invalid architecture name %q", cfg.Arch)
	}
	if cfg.ABI == "" {
		return nil
	}
	if _, err := arch.ParseABI(cfg.ABI); err != nil {
		return err
	}
	return nil
}

// SampleABI returns the register ABI of samples taken on machine. Without a
// configured ABI it is the native width of machine. It returns ABINone for
// configurations that do not pass Validate.
func (cfg *Config) SampleABI(machine arch.Type) arch.ABI {
	if cfg.ABI == "" {
		if machine.Is64Bit() {
			return arch.ABI64
		}
		return arch.ABI32
	}
	abi, _ := arch.ParseABI(cfg.ABI)
	return abi
}

// NewCurrent creates the session architecture. An architecture name perfregs
// has no tables for is not an error: the session runs with arch.Unsupported
// and reports registers as "unknown".
func (cfg *Config) NewCurrent() (*arch.Current, error) {
	t := arch.Unsupported
	if cfg.Arch != "" {
		t = arch.Parse(cfg.Arch)
	} else {
		var err error
		if t, err = arch.Host(); err != nil {
			return nil, err
		}
	}
	log.Debugf("Session architecture: %s", t)
	return arch.NewCurrent(t), nil
}
