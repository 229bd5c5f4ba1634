// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// perfregs decodes the registers captured by a perf sample and prints them
// by name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/asmregs"
	"go.opentelemetry.io/perfregs/internal/log"
	"go.opentelemetry.io/perfregs/regs"
	"go.opentelemetry.io/perfregs/regset"
	"go.opentelemetry.io/perfregs/vc"
)

type exitCode int

const (
	exitSuccess exitCode = 0
	exitFailure exitCode = 1

	// Go 'flag' package calls os.Exit(2) on flag parse errors, if ExitOnError is set
	exitParseError exitCode = 2
)

func main() {
	os.Exit(int(run(os.Args[1:], os.Stdout)))
}

func run(args []string, out io.Writer) exitCode {
	cli, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return parseError("Failure to parse arguments: %v", err)
	}

	if cli.Version {
		fmt.Fprintln(out, vc.String())
		return exitSuccess
	}

	if cli.VerboseMode {
		log.SetDebugLogger()
		cli.Dump()
	}

	if err = cli.Validate(); err != nil {
		return parseError("Invalid arguments: %v", err)
	}

	cur, err := cli.NewCurrent()
	if err != nil {
		return failure("Failed to determine architecture: %v", err)
	}

	if cli.List {
		listRegisters(out, arch.ForABI(cur.Get(), cli.SampleABI(cur.Get())))
		return exitSuccess
	}

	if cli.Reg != "" {
		t := arch.ForABI(cur.Get(), cli.SampleABI(cur.Get()))
		id, ok := asmregs.Lookup(t, cli.Reg)
		if !ok {
			return failure("Register %q is not sampled on %s", cli.Reg, t)
		}
		fmt.Fprintf(out, "%s: %d %s\n", cli.Reg, id, regs.Name(id, t))
		return exitSuccess
	}

	// Validate succeeded, so these parse.
	mask, _ := parseMask(cli.Mask)
	values, _ := parseValues(cli.Values)

	abi := cli.SampleABI(cur.Get())
	effective := arch.ForABI(cur.Get(), abi)
	for id := range mask.IDs() {
		if _, ok := regs.Lookup(id, effective); !ok {
			return failure("Register %d is not defined for %s", id, effective)
		}
	}

	rs, err := regset.FromValues(cur, abi, mask, values)
	if err != nil {
		return failure("Failed to build register set: %v", err)
	}
	printRegSet(out, cur.Get(), abi, rs)
	return exitSuccess
}

func listRegisters(out io.Writer, t arch.Type) {
	fmt.Fprintf(out, "arch: %s\n", t)
	for id := range regs.SupportedMask(t).IDs() {
		fmt.Fprintf(out, "%2d %s\n", id, regs.Name(id, t))
	}
}

func printRegSet(out io.Writer, machine arch.Type, abi arch.ABI, rs *regset.RegSet) {
	fmt.Fprintf(out, "arch: %s (machine %s, abi %s)\n", rs.Arch(), machine, abi)
	printSpecial(out, "sp", rs.SP)
	printSpecial(out, "ip", rs.IP)
	rs.Each(func(id regs.ID, name string, value uint64) {
		fmt.Fprintf(out, "%2d %-5s 0x%016x\n", id, name, value)
	})
}

func printSpecial(out io.Writer, label string, get func() (uint64, bool)) {
	if v, ok := get(); ok {
		fmt.Fprintf(out, "%s: 0x%x\n", label, v)
		return
	}
	fmt.Fprintf(out, "%s: not captured\n", label)
}

func parseError(msg string, args ...any) exitCode {
	log.Errorf(msg, args...)
	return exitParseError
}

func failure(msg string, args ...any) exitCode {
	log.Errorf(msg, args...)
	return exitFailure
}
