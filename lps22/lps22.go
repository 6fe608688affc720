// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GermanBionicSystems/barodevices/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// PrimaryAddress is the bus address with SA0 pulled high.
	PrimaryAddress uint16 = 0x5d
	// SecondaryAddress is the bus address with SA0 pulled low. It is also
	// used for any address other than PrimaryAddress, unless
	// Opts.StrictAddress is set.
	SecondaryAddress uint16 = 0x5c
)

// Mode is the acquisition mode of the device.
type Mode bool

const (
	// Continuous makes the device free-run at 1 Hz. Reads return the last
	// converted sample.
	Continuous Mode = false
	// OneShot powers the device down between reads. Every read triggers a
	// conversion and waits for it.
	OneShot Mode = true
)

func (m Mode) String() string {
	if m == OneShot {
		return "OneShot"
	}
	return "Continuous"
}

// PressureUnit selects the unit returned by Dev.Pressure.
type PressureUnit int

const (
	// Pascal returns the pressure in Pa.
	Pascal PressureUnit = iota
	// Hectopascal returns the pressure in hPa, the native unit of the device.
	Hectopascal
)

func (u PressureUnit) String() string {
	switch u {
	case Pascal:
		return "Pa"
	case Hectopascal:
		return "hPa"
	}
	return fmt.Sprintf("PressureUnit(%d)", int(u))
}

// TemperatureUnit selects the unit returned by Dev.Temperature.
type TemperatureUnit int

const (
	// Celsius returns the temperature in °C.
	Celsius TemperatureUnit = iota
	// Fahrenheit returns the temperature in °F.
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	}
	return fmt.Sprintf("TemperatureUnit(%d)", int(u))
}

const (
	// Temperature counts per degree Celsius.
	temperatureScale float64 = 100
	// Pressure counts per hPa.
	pressureScale float64 = 4096
	// One pressure count in nPa is 1e11/4096 = 48828125/2.
	pressureCountNano = 48828125

	// Minimum SenseContinuous interval, the output data rate set by NewI2C.
	minSenseInterval = time.Second
)

// Opts holds the configuration options for the device.
type Opts struct {
	// StrictAddress makes NewI2C return ErrInvalidAddress for an address
	// other than PrimaryAddress or SecondaryAddress instead of falling back
	// to SecondaryAddress.
	StrictAddress bool
	// Poll bounds the wait for OneShot conversions. The zero value waits
	// forever.
	Poll PollPolicy
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Dev represents a LPS22 sensor.
type Dev struct {
	d     *i2c.Dev
	mu    sync.Mutex
	opts  Opts
	mode  Mode
	debug DebugF

	// Protects stop, which is not guarded by mu so that Halt can interrupt
	// a OneShot wait holding mu.
	stopMu sync.Mutex
	stop   context.CancelFunc
}

// NewI2C returns a new LPS22 sensor using the specified bus and address.
// The device is configured for a 1 Hz output data rate with the low-pass
// filter and block data update enabled, in Continuous mode. If opts is nil,
// DefaultOpts is used.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	a, err := selectAddress(addr, opts.StrictAddress)
	if err != nil {
		return nil, err
	}
	dev := &Dev{d: &i2c.Dev{Bus: b, Addr: a}, opts: *opts, mode: Continuous, debug: noop}
	return dev, dev.start()
}

func selectAddress(addr uint16, strict bool) (uint16, error) {
	switch addr {
	case PrimaryAddress:
		return PrimaryAddress, nil
	case SecondaryAddress:
		return SecondaryAddress, nil
	}
	if strict {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidAddress, addr)
	}
	return SecondaryAddress, nil
}

// start writes the default configuration and selects Continuous mode.
func (dev *Dev) start() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.writeReg(regCtrl1, ctrl1Default); err != nil {
		return err
	}
	return dev.setMode(Continuous)
}

// EnableDebug sets a function called for every register transaction. nil
// disables the output.
func (dev *Dev) EnableDebug(f DebugF) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if f == nil {
		f = noop
	}
	dev.debug = f
}

// Addr returns the bus address the device was opened with.
func (dev *Dev) Addr() uint16 {
	return dev.d.Addr
}

// Mode returns the current acquisition mode.
func (dev *Dev) Mode() Mode {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.mode
}

// SetMode changes the acquisition mode by updating the output data rate in
// CTRL_REG1. The other CTRL_REG1 fields are preserved. The mode is unchanged
// if the write fails.
func (dev *Dev) SetMode(m Mode) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.setMode(m)
}

// SetOneShot selects OneShot mode if oneshot is true and Continuous mode
// otherwise.
func (dev *Dev) SetOneShot(oneshot bool) error {
	return dev.SetMode(Mode(oneshot))
}

func (dev *Dev) setMode(m Mode) error {
	odr := ctrl1ODR1Hz
	if m == OneShot {
		odr = ctrl1ODROff
	}
	if err := dev.writeMaskedReg(regCtrl1, odr, ctrl1KeepMask); err != nil {
		return err
	}
	dev.mode = m
	return nil
}

// Temperature returns the temperature in the requested unit, rounded to one
// decimal.
func (dev *Dev) Temperature(u TemperatureUnit) (float64, error) {
	return dev.TemperatureContext(context.Background(), u)
}

// TemperatureContext is Temperature with a context bounding the OneShot
// wait.
func (dev *Dev) TemperatureContext(ctx context.Context, u TemperatureUnit) (float64, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.temperature(ctx, u)
}

func (dev *Dev) temperature(ctx context.Context, u TemperatureUnit) (float64, error) {
	if u != Celsius && u != Fahrenheit {
		return 0, fmt.Errorf("%w: %s", errInvalidUnit, u)
	}
	raw, err := dev.readTemperature(ctx)
	if err != nil {
		return 0, err
	}
	t := float64(raw) / temperatureScale
	if u == Fahrenheit {
		t = 32 + t*9/5
	}
	return common.Round(t, 1), nil
}

// Pressure returns the pressure in the requested unit, rounded to an
// integer.
func (dev *Dev) Pressure(u PressureUnit) (float64, error) {
	return dev.PressureContext(context.Background(), u)
}

// PressureContext is Pressure with a context bounding the OneShot wait.
func (dev *Dev) PressureContext(ctx context.Context, u PressureUnit) (float64, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.pressure(ctx, u)
}

func (dev *Dev) pressure(ctx context.Context, u PressureUnit) (float64, error) {
	if u != Pascal && u != Hectopascal {
		return 0, fmt.Errorf("%w: %s", errInvalidUnit, u)
	}
	raw, err := dev.readPressure(ctx)
	if err != nil {
		return 0, err
	}
	p := float64(raw) / pressureScale
	if u == Pascal {
		p *= 100
	}
	return common.Round(p, 0), nil
}

// readTemperature returns the raw count of TEMP_OUT, in 1/100 °C.
func (dev *Dev) readTemperature(ctx context.Context) (int16, error) {
	if err := dev.trigger(ctx, chTemperature); err != nil {
		return 0, err
	}
	return dev.readInt16(regTempOutL)
}

// readPressure returns the raw 24 bits count of PRESS_OUT, in 1/4096 hPa.
func (dev *Dev) readPressure(ctx context.Context) (uint32, error) {
	if err := dev.trigger(ctx, chPressure); err != nil {
		return 0, err
	}
	high, err := dev.readUint16(regPressOutL)
	if err != nil {
		return 0, err
	}
	xl, err := dev.readUint8(regPressOutXL)
	if err != nil {
		return 0, err
	}
	return uint32(high)*256 + uint32(xl), nil
}

// Sense reads temperature and pressure from the device at full resolution
// and writes the values to the specified env variable. Humidity is not
// supported and is set to 0. Implements physic.SenseEnv.
func (dev *Dev) Sense(env *physic.Env) error {
	return dev.sense(context.Background(), env)
}

func (dev *Dev) sense(ctx context.Context, env *physic.Env) error {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0
	dev.mu.Lock()
	defer dev.mu.Unlock()
	t, err := dev.readTemperature(ctx)
	if err != nil {
		return err
	}
	p, err := dev.readPressure(ctx)
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(t)*10*physic.MilliKelvin
	env.Pressure = physic.Pressure(int64(p)*pressureCountNano/2) * physic.NanoPascal
	return nil
}

// SenseContinuous continuously reads from the device and writes the value to
// the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
//
// If interval is less than the device output data rate period, an error is
// returned.
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSenseInterval {
		return nil, fmt.Errorf("lps22: sample interval %s is < %s", interval, minSenseInterval)
	}
	dev.stopMu.Lock()
	defer dev.stopMu.Unlock()
	if dev.stop != nil {
		return nil, errors.New("lps22: SenseContinuous already running")
	}
	ctx, cancel := context.WithCancel(context.Background())
	dev.stop = cancel
	ch := make(chan physic.Env, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := dev.sense(ctx, &e); err != nil {
					continue
				}
				select {
				case ch <- e:
				default:
				}
			}
		}
	}()
	return ch, nil
}

// Precision returns the sensor's precision, or minimum value between steps
// the device can measure.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = 10 * physic.MilliKelvin
	env.Pressure = physic.Pressure(pressureCountNano/2) * physic.NanoPascal
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation in progress, including a OneShot
// wait for a conversion that never completes. The device keeps its
// acquisition mode. Implements conn.Resource.
func (dev *Dev) Halt() error {
	dev.stopMu.Lock()
	defer dev.stopMu.Unlock()
	if dev.stop != nil {
		dev.stop()
		dev.stop = nil
	}
	return nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("lps22: %s", dev.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
