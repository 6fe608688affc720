// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

// PollPolicy controls the wait for a OneShot conversion to complete.
//
// The zero value polls the STATUS register back to back until the data is
// ready. If the device never sets the ready bit, for example because it was
// disconnected after initialization, the read blocks until its context is
// canceled.
type PollPolicy struct {
	// MaxAttempts is the number of STATUS reads after which ErrNotReady is
	// returned. 0 means no limit.
	MaxAttempts int
	// Interval is the delay between two STATUS reads. 0 yields the
	// processor and reads again.
	Interval time.Duration
}

// channel describes one of the two output channels of the device.
type channel struct {
	name string
	// Bit of the STATUS register set when new data is available.
	ready byte
	// Output register read once to discard the stale sample.
	stale byte
}

var (
	chPressure    = channel{name: "pressure", ready: 0x01, stale: regPressOutH}
	chTemperature = channel{name: "temperature", ready: 0x02, stale: regTempOutH}
)

// trigger starts a conversion and waits for ch to be ready. It does nothing
// in Continuous mode.
//
// It must be called with dev.mu held.
func (dev *Dev) trigger(ctx context.Context, ch channel) error {
	if dev.mode != OneShot {
		return nil
	}
	if err := dev.writeMaskedReg(regCtrl2, ctrl2OneShot, 0xff); err != nil {
		return err
	}
	if _, err := dev.readUint8(ch.stale); err != nil {
		return err
	}
	return dev.waitReady(ctx, ch)
}

// waitReady polls STATUS until the ready bit of ch is set. ctx is only
// checked between two reads.
func (dev *Dev) waitReady(ctx context.Context, ch channel) error {
	p := dev.opts.Poll
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("lps22: %s not ready: %w", ch.name, err)
		}
		status, err := dev.readUint8(regStatus)
		if err != nil {
			return err
		}
		if status&ch.ready != 0 {
			return nil
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return fmt.Errorf("%w: %s after %d attempts", ErrNotReady, ch.name, attempt)
		}
		if p.Interval <= 0 {
			runtime.Gosched()
			continue
		}
		t := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("lps22: %s not ready: %w", ch.name, ctx.Err())
		case <-t.C:
		}
	}
}
