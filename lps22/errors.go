// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned when a OneShot conversion did not complete
	// within Opts.Poll.MaxAttempts reads of the STATUS register.
	ErrNotReady = errors.New("lps22: data not ready")
	// ErrInvalidAddress is returned by NewI2C when Opts.StrictAddress is set
	// and the address is neither PrimaryAddress nor SecondaryAddress.
	ErrInvalidAddress = errors.New("lps22: invalid address")

	errInvalidUnit = errors.New("lps22: invalid unit")
)

// BusError is returned when a register transaction fails on the I²C bus,
// for example on a NACK or a timeout. The transport error is available
// through errors.Unwrap.
type BusError struct {
	// Op is either "read" or "write".
	Op string
	// Reg is the register address, without the auto-increment flag.
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lps22: %s register 0x%02x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
