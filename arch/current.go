// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package arch // import "go.opentelemetry.io/perfregs/arch"

import "sync/atomic"

// Current holds the architecture of a profiling session: the machine the
// samples were taken on. It is created once when the session starts and
// handed to everything that interprets registers.
//
// Reads are atomic, but Current does not order overrides against snapshot
// construction running on other goroutines. Sessions that override the
// architecture while sampling concurrently must serialize that themselves.
type Current struct {
	arch atomic.Uint32
}

// NewCurrent returns a Current set to t.
func NewCurrent(t Type) *Current {
	c := &Current{}
	c.Set(t)
	return c
}

// Get returns the architecture in effect.
func (c *Current) Get() Type {
	return Type(c.arch.Load())
}

// Set replaces the architecture in effect.
func (c *Current) Set(t Type) {
	c.arch.Store(uint32(t))
}

// Override installs t and returns a function that restores the previous
// architecture. Calling the returned function more than once has no further
// effect. Overrides nest when restored in reverse order:
//
//	defer cur.Override(arch.ARM)()
func (c *Current) Override(t Type) (restore func()) {
	prev := Type(c.arch.Swap(uint32(t)))
	var done atomic.Bool
	return func() {
		if done.CompareAndSwap(false, true) {
			c.Set(prev)
		}
	}
}

// With runs fn with t installed and restores the previous architecture when
// fn returns or panics.
func (c *Current) With(t Type, fn func() error) error {
	defer c.Override(t)()
	return fn()
}
