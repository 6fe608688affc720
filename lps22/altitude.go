// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

import "context"

const (
	// Sea level reference pressure in hPa.
	seaLevelPressure = 1013.25
	// Exponent of the barometric formula.
	barometricExponent = 1 / float64(5.257)
	// Temperature lapse rate in K/m.
	lapseRate = 0.0065
)

// Altitude returns the altitude in meters estimated from a fresh pressure
// reading and a fresh temperature reading, in that order. In OneShot mode
// each reading triggers its own conversion.
func (dev *Dev) Altitude() (float64, error) {
	return dev.AltitudeContext(context.Background())
}

// AltitudeContext is Altitude with a context bounding the OneShot waits.
func (dev *Dev) AltitudeContext(ctx context.Context) (float64, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	p, err := dev.pressure(ctx, Hectopascal)
	if err != nil {
		return 0, err
	}
	t, err := dev.temperature(ctx, Celsius)
	if err != nil {
		return 0, err
	}
	return AltitudeFrom(p, t), nil
}

// AltitudeFrom returns the altitude in meters for a pressure in hPa and a
// temperature in °C, relative to a sea level pressure of 1013.25 hPa.
//
// The result matches Dev.Altitude for the same readings. The power in the
// barometric formula is approximated to the second order, so the error grows
// with the distance to sea level pressure.
func AltitudeFrom(hPa, celsius float64) float64 {
	return (approxPow(seaLevelPressure/hPa, barometricExponent) - 1) * (celsius + 273.15) / lapseRate
}

// approxPow returns x**n expanded to the second order around x = 1.
//
// The float64 conversions keep the compiler from fusing the multiply-adds,
// so the result is the same on every architecture.
func approxPow(x, n float64) float64 {
	d := x - 1
	return 1 + float64(n*d) + float64(n*(n-1)*d*d)/2
}
