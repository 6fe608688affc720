// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

import (
	"context"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPoll_MaxAttempts(t *testing.T) {
	ops := triggerOps(chPressure, 3)
	// Drop the final ready status: the device never completes.
	ops = ops[:len(ops)-1]
	opts := &Opts{Poll: PollPolicy{MaxAttempts: 2}}
	dev, bus := newDev(t, opts, oneShotOps(), ops)
	if err := dev.SetMode(OneShot); err != nil {
		t.Fatal(err)
	}
	_, err := dev.Pressure(Hectopascal)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestPoll_Interval(t *testing.T) {
	opts := &Opts{Poll: PollPolicy{MaxAttempts: 5, Interval: time.Millisecond}}
	dev, bus := newDev(t, opts, oneShotOps(), triggerOps(chTemperature, 4), temperatureOps(-500))
	if err := dev.SetMode(OneShot); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	c, err := dev.Temperature(Celsius)
	if err != nil {
		t.Fatal(err)
	}
	if c != -5 {
		t.Errorf("got %v°C expected -5°C", c)
	}
	if d := time.Since(start); d < 3*time.Millisecond {
		t.Errorf("poll returned after %s, expected at least 3 intervals", d)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestPoll_Canceled(t *testing.T) {
	ops := triggerOps(chTemperature, 1)
	// Only the trigger goes out, the STATUS register is never read.
	ops = ops[:3]
	dev, bus := newDev(t, nil, oneShotOps(), ops)
	if err := dev.SetMode(OneShot); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dev.TemperatureContext(ctx, Celsius)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestPoll_Deadline(t *testing.T) {
	// An unbounded poll on a device that never becomes ready returns when
	// the context expires.
	var ops []i2ctest.IO
	ops = append(ops, triggerOps(chPressure, 1)[:3]...)
	for i := 0; i < 1000; i++ {
		ops = append(ops, i2ctest.IO{Addr: addr, W: []byte{regStatus}, R: []byte{0x00}})
	}
	opts := &Opts{Poll: PollPolicy{Interval: time.Millisecond}}
	dev, _ := newDev(t, opts, oneShotOps(), ops)
	if err := dev.SetMode(OneShot); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := dev.PressureContext(ctx, Pascal)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestPoll_BusError(t *testing.T) {
	ops := triggerOps(chTemperature, 1)
	ops = ops[:3]
	dev, _ := newDev(t, nil, oneShotOps(), ops)
	if err := dev.SetMode(OneShot); err != nil {
		t.Fatal(err)
	}
	_, err := dev.Temperature(Celsius)
	var be *BusError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BusError, got %v", err)
	}
	if be.Reg != regStatus {
		t.Errorf("failed on register 0x%02x, expected STATUS", be.Reg)
	}
}
