// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lps22

// Register map. Only the registers used by the driver are listed.
const (
	regCtrl1      byte = 0x10
	regCtrl2      byte = 0x11
	regStatus     byte = 0x27
	regPressOutXL byte = 0x28
	regPressOutL  byte = 0x29
	regPressOutH  byte = 0x2a
	regTempOutL   byte = 0x2b
	regTempOutH   byte = 0x2c

	// Set in the register address to read several registers in one
	// transaction.
	autoIncrement byte = 0x80
)

const (
	// ODR=1Hz, EN_LPFP=1, BDU=1
	ctrl1Default byte = 0x1a
	// Bits of CTRL_REG1 kept when changing the output data rate.
	ctrl1KeepMask byte = 0x0f
	ctrl1ODR1Hz   byte = 0x10
	// Power down. The device only converts when ONE_SHOT is set.
	ctrl1ODROff byte = 0x00

	ctrl2OneShot byte = 0x01
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

func noop(string, ...interface{}) {}

// writeReg writes a single byte register.
func (dev *Dev) writeReg(reg, value byte) error {
	dev.debug("write register %#02x value %#02x", reg, value)
	if err := dev.d.Tx([]byte{reg, value}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// readReg writes the register address then reads len(r) bytes. The caller
// sets autoIncrement for multi byte reads.
func (dev *Dev) readReg(reg byte, r []byte) error {
	if err := dev.d.Tx([]byte{reg}, r); err != nil {
		return &BusError{Op: "read", Reg: reg &^ autoIncrement, Err: err}
	}
	dev.debug("read register %#02x content % x", reg&^autoIncrement, r)
	return nil
}

func (dev *Dev) readUint8(reg byte) (uint8, error) {
	var r [1]byte
	if err := dev.readReg(reg, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (dev *Dev) readInt8(reg byte) (int8, error) {
	v, err := dev.readUint8(reg)
	return int8(v), err
}

// readUint16 reads two consecutive registers, least significant byte first.
func (dev *Dev) readUint16(reg byte) (uint16, error) {
	var r [2]byte
	if err := dev.readReg(reg|autoIncrement, r[:]); err != nil {
		return 0, err
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}

func (dev *Dev) readInt16(reg byte) (int16, error) {
	v, err := dev.readUint16(reg)
	return int16(v), err
}

// writeMaskedReg replaces the bits of reg cleared in mask with value. It is
// a read-modify-write over two transactions; concurrent users of the bus must
// serialize around it.
func (dev *Dev) writeMaskedReg(reg, value, mask byte) error {
	dev.debug("write masked %#02x, mask %#02x, value %#02x", reg, mask, value)
	cur, err := dev.readUint8(reg)
	if err != nil {
		return err
	}
	return dev.writeReg(reg, (cur&mask)|value)
}
