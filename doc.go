// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package barodevices is a container for barometric sensor drivers.
//
// The drivers live in sub packages, for example lps22 for the ST
// LPS22HB/HD/HH family.
package barodevices
