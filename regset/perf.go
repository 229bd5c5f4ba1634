// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regset // import "go.opentelemetry.io/perfregs/regset"

import (
	"github.com/elastic/go-perf"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/regs"
)

// FromUserRegs returns the user registers of a sample read from an event
// opened with attr.
func FromUserRegs(cur *arch.Current, attr *perf.Attr, rec *perf.SampleRecord) (*RegSet, error) {
	rs, err := FromValues(cur, arch.ABI(rec.UserRegisterABI),
		regs.Mask(attr.SampleRegistersUser), rec.UserRegisters)
	recordDecode(cur.Get(), err)
	return rs, err
}

// FromIntrRegs returns the registers captured at the sampling interrupt.
func FromIntrRegs(cur *arch.Current, attr *perf.Attr, rec *perf.SampleRecord) (*RegSet, error) {
	rs, err := FromValues(cur, arch.ABI(rec.IntrRegisterABI),
		regs.Mask(attr.SampleRegistersIntr), rec.IntrRegisters)
	recordDecode(cur.Get(), err)
	return rs, err
}

// ConfigureUserRegs requests the user registers of the session architecture
// on every sample of attr.
func ConfigureUserRegs(cur *arch.Current, attr *perf.Attr) {
	attr.SampleFormat.UserRegisters = true
	attr.SampleRegistersUser = uint64(regs.SupportedMask(cur.Get()))
}
