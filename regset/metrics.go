// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package regset // import "go.opentelemetry.io/perfregs/regset"

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"go.opentelemetry.io/perfregs/arch"
	"go.opentelemetry.io/perfregs/internal/log"
	"go.opentelemetry.io/perfregs/vc"
)

var (
	meter = otel.Meter("go.opentelemetry.io/perfregs/regset",
		metric.WithInstrumentationVersion(vc.Version()))

	decodedCounter     metric.Int64Counter
	decodeErrorCounter metric.Int64Counter
)

func init() {
	var err error
	decodedCounter, err = meter.Int64Counter("perfregs.regset.decoded",
		metric.WithDescription("Number of register blocks decoded"),
		metric.WithUnit("{record}"))
	if err != nil {
		log.Errorf("Creating Int64Counter: %v", err)
	}
	decodeErrorCounter, err = meter.Int64Counter("perfregs.regset.decode_errors",
		metric.WithDescription("Number of register blocks that failed to decode"),
		metric.WithUnit("{record}"))
	if err != nil {
		log.Errorf("Creating Int64Counter: %v", err)
	}
}

// recordDecode counts the outcome of decoding one register block.
func recordDecode(machine arch.Type, err error) {
	opt := metric.WithAttributes(attribute.String("arch", machine.String()))
	if err != nil {
		log.Debugf("Failed to decode registers: %v", err)
		if decodeErrorCounter != nil {
			decodeErrorCounter.Add(context.Background(), 1, opt)
		}
		return
	}
	if decodedCounter != nil {
		decodedCounter.Add(context.Background(), 1, opt)
	}
}
