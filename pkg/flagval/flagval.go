// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagval provides the value contracts behind flag-like options:
// switches, which may be set once, and counters, which are incremented once
// per occurrence.
package flagval

import (
	"fortio.org/safecast"

	"github.com/yeetrun/vvvv/pkg/argerr"
)

// Switch is a value that can be turned on exactly once.
//
// For example, a two-state enum can be a switch:
//
//	type Agree bool
//
//	func (a *Agree) Set() error {
//	    if *a {
//	        return argerr.ErrSwitchAlreadySet
//	    }
//	    *a = true
//	    return nil
//	}
//
//	func (a *Agree) IsSet() bool { return bool(*a) }
type Switch interface {
	// Set turns the switch on. It returns argerr.ErrSwitchAlreadySet if the
	// switch is already on.
	Set() error
	// IsSet reports whether the switch is on.
	IsSet() bool
}

// Counter is a value incremented once per occurrence of its option.
type Counter interface {
	// Inc increments the counter. It returns argerr.ErrTooManyOptions and
	// leaves the counter unchanged on overflow.
	Inc() error
}

// Flag is a boolean Switch.
type Flag bool

func (f *Flag) Set() error {
	if *f {
		return argerr.ErrSwitchAlreadySet
	}
	*f = true
	return nil
}

func (f *Flag) IsSet() bool { return bool(*f) }

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Count is a Counter bounded by the range of N.
type Count[N unsigned] struct {
	N N
}

func (c *Count[N]) Inc() error {
	if c.N+1 == 0 {
		return argerr.ErrTooManyOptions
	}
	c.N++
	return nil
}

// Int returns the count as an int, failing if it does not fit.
func (c Count[N]) Int() (int, error) {
	return safecast.Conv[int](uint64(c.N))
}

// AtMost is a Counter that refuses to go past Max.
type AtMost struct {
	N   uint
	Max uint
}

func (c *AtMost) Inc() error {
	if c.N >= c.Max {
		return argerr.ErrTooManyOptions
	}
	c.N++
	return nil
}

var (
	_ Switch  = (*Flag)(nil)
	_ Counter = (*Count[uint8])(nil)
	_ Counter = (*AtMost)(nil)
)
