// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lps22 provides a driver for the ST LPS22HB/HD/HH MEMS barometric
// pressure sensors over I²C.
//
// The device can free-run at 1 Hz (Continuous mode) or sleep between
// explicit conversions (OneShot mode). In OneShot mode each read triggers a
// conversion and busy-polls the STATUS register until the data is ready. By
// default that poll never gives up; set Opts.Poll to bound it.
//
// Range: 260 hPa - 1260 hPa
//
// Resolution: 1/4096 hPa, 0.01°C
//
// Readings are available either as presentation values (Temperature,
// Pressure and Altitude return rounded float64s in the requested unit) or
// through the physic.SenseEnv interface at full resolution.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.st.com/resource/en/datasheet/lps22hb.pdf
package lps22
