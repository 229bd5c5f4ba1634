// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"go.opentelemetry.io/perfregs/config"
	"go.opentelemetry.io/perfregs/internal/log"
	"go.opentelemetry.io/perfregs/regs"
)

// Help strings for command line arguments
var (
	abiHelp = "Register ABI of the sample (32, 64 or none). Defaults to the width of " +
		"the architecture. 32 on a 64-bit machine interprets the registers of a compat task."
	archHelp = "Machine name of the profiled system, as printed by uname -m. " +
		"Defaults to the running kernel."
	configHelp  = "Path to a configuration file with one 'flag value' pair per line."
	listHelp    = "List the registers a sample of the architecture can carry."
	maskHelp    = "Hexadecimal mask of the captured registers (sample_regs_user)."
	regHelp     = "Print the perf register a disassembler register name (e.g. eax, w3) maps to."
	valuesHelp  = "Comma separated hexadecimal register values in ascending register order."
	verboseHelp = "Enable verbose logging."
	versionHelp = "Show version."
)

type cliArgs struct {
	config.Config

	List    bool
	Mask    string
	Reg     string
	Values  string
	Version bool

	Fs *flag.FlagSet
}

func parseArgs(args []string) (*cliArgs, error) {
	var cli cliArgs

	fs := flag.NewFlagSet("perfregs", flag.ContinueOnError)

	// Please keep the parameters ordered alphabetically in the source-code.
	fs.StringVar(&cli.ABI, "abi", "", abiHelp)
	fs.StringVar(&cli.Arch, "arch", "", archHelp)
	fs.String("config", "", configHelp)
	fs.BoolVar(&cli.List, "list", false, listHelp)
	fs.StringVar(&cli.Mask, "mask", "", maskHelp)
	fs.StringVar(&cli.Reg, "reg", "", regHelp)
	fs.BoolVar(&cli.VerboseMode, "v", false, "Shorthand for -verbose.")
	fs.StringVar(&cli.Values, "values", "", valuesHelp)
	fs.BoolVar(&cli.VerboseMode, "verbose", false, verboseHelp)
	fs.BoolVar(&cli.Version, "version", false, versionHelp)

	cli.Fs = fs

	return &cli, ff.Parse(fs, args,
		ff.WithEnvVarPrefix("PERFREGS"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	)
}

// Dump logs all flags at debug level.
func (cli *cliArgs) Dump() {
	log.Debugf("Config:")
	cli.Fs.VisitAll(func(f *flag.Flag) {
		log.Debugf("%s: %v", f.Name, f.Value)
	})
}

// Validate checks the flags beyond what config.Config.Validate covers.
func (cli *cliArgs) Validate() error {
	if err := cli.Config.Validate(); err != nil {
		return err
	}
	if cli.List || cli.Reg != "" {
		return nil
	}
	if cli.Mask == "" {
		return errors.New("-mask is required unless -list, -reg or -version is given")
	}
	if _, err := parseMask(cli.Mask); err != nil {
		return err
	}
	_, err := parseValues(cli.Values)
	return err
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, 64)
}

func parseMask(s string) (regs.Mask, error) {
	m, err := parseHex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid register mask %q: %w", s, err)
	}
	return regs.Mask(m), nil
}

func parseValues(s string) ([]uint64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	values := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := parseHex(f)
		if err != nil {
			return nil, fmt.Errorf("invalid register value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
