// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	var tests = []struct {
		x      float64
		digits int
		result float64
	}{
		{x: 23.25, digits: 1, result: 23.3},
		{x: 23.44, digits: 1, result: 23.4},
		{x: -5.25, digits: 1, result: -5.3},
		{x: 1013.5, digits: 0, result: 1014},
		{x: -0.5, digits: 0, result: -1},
		{x: 0, digits: 1, result: 0},
		{x: 1234, digits: -2, result: 1200},
	}
	for _, test := range tests {
		res := Round(test.x, test.digits)
		if math.Abs(res-test.result) > 1e-9 {
			t.Errorf("Round(%v, %d)!=%v received %v", test.x, test.digits, test.result, res)
		}
	}
}
