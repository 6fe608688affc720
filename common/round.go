// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, rounding a reading to a fixed number of decimal digits.
package common

import "math"

// Round returns x rounded to the given number of decimal digits. Halfway
// values are rounded away from zero, as math.Round does. digits may be
// negative to round to tens, hundreds and so on.
func Round(x float64, digits int) float64 {
	n := math.Pow10(digits)
	return math.Round(x*n) / n
}
