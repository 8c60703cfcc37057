package cpu

// This file holds the operand-width-generic execution bodies shared by the
// 256-entry opcode table in opcodes.go. Each function is bound into the
// table once per addressing mode it supports; none of them hand-roll wrap
// arithmetic themselves (see addressing.go's Pointer).

func setNZ(p *Flags, value uint16, eightBit bool) {
	if eightBit {
		v := uint8(value)
		p.Z = v == 0
		p.N = v&0x80 != 0
		return
	}
	p.Z = value == 0
	p.N = value&0x8000 != 0
}

// readWidth reads an operand through ptr at the A/memory (M) or index (X)
// width.
func (c *CPU) readWidth(ptr Pointer, eightBit bool) uint16 {
	if eightBit {
		return uint16(c.hooks.Read(ptr.At(0)))
	}
	return c.read16(ptr)
}

func (c *CPU) writeWidth(ptr Pointer, v uint16, eightBit bool) {
	if eightBit {
		c.hooks.Write(ptr.At(0), uint8(v))
		return
	}
	c.write16(ptr, v)
}

// --- arithmetic -------------------------------------------------------

// decimalAdd8/decimalAdd16 implement the per-nibble BCD adjustment: the
// low nibble is corrected first (subtract 10, carry into the high nibble
// on overflow past 9), then the next nibble, and so on.
func decimalAdd8(a, b uint8, carryIn bool) (uint8, bool) {
	lo := int(a&0xF) + int(b&0xF)
	if carryIn {
		lo++
	}
	carry := false
	if lo > 9 {
		lo -= 10
		carry = true
	}
	hi := int(a>>4) + int(b>>4)
	if carry {
		hi++
	}
	carry = false
	if hi > 9 {
		hi -= 10
		carry = true
	}
	return uint8(hi<<4) | uint8(lo), carry
}

func decimalAdd16(a, b uint16, carryIn bool) (uint16, bool) {
	var result uint16
	carry := carryIn
	for n := uint(0); n < 4; n++ {
		shift := n * 4
		da := (a >> shift) & 0xF
		db := (b >> shift) & 0xF
		sum := da + db
		if carry {
			sum++
		}
		carry = false
		if sum > 9 {
			sum -= 10
			carry = true
		}
		result |= sum << shift
	}
	return result, carry
}

func decimalSub8(a, b uint8, borrowIn bool) (uint8, bool) {
	lo := int(a&0xF) - int(b&0xF)
	if borrowIn {
		lo--
	}
	borrow := false
	if lo < 0 {
		lo += 10
		borrow = true
	}
	hi := int(a>>4) - int(b>>4)
	if borrow {
		hi--
	}
	noBorrow := true
	if hi < 0 {
		hi += 10
		noBorrow = false
	}
	return uint8(hi<<4) | uint8(lo&0xF), noBorrow
}

func decimalSub16(a, b uint16, borrowIn bool) (uint16, bool) {
	var result uint16
	borrow := borrowIn
	for n := uint(0); n < 4; n++ {
		shift := n * 4
		da := int((a >> shift) & 0xF)
		db := int((b >> shift) & 0xF)
		d := da - db
		if borrow {
			d--
		}
		borrow = false
		if d < 0 {
			d += 10
			borrow = true
		}
		result |= uint16(d&0xF) << shift
	}
	return result, !borrow
}

// addWithCarry implements ADC and SBC (subtract==true flips the operand's
// bits before the binary add, the standard 6502/65816 technique; the BCD
// path takes the separate decimalAdd/decimalSub route instead). Overflow
// is always computed from the pre-adjustment binary sum.
func (c *CPU) addWithCarry(operand uint16, subtract bool) {
	eightBit := c.Reg.P.M
	mask := uint16(0xFFFF)
	sign := uint16(0x8000)
	if eightBit {
		mask = 0xFF
		sign = 0x80
	}
	a := uint16(c.Reg.A) & mask
	operand &= mask

	addend := operand
	if subtract {
		addend = (^operand) & mask
	}
	carryIn := c.Reg.P.C

	var carryInt uint32
	if carryIn {
		carryInt = 1
	}
	binSum := uint32(a) + uint32(addend) + carryInt
	truncated := uint16(binSum) & mask
	v := (^(a ^ addend) & (a ^ truncated) & sign) != 0

	var result uint16
	var carryOut bool
	if !c.Reg.P.D {
		result = truncated
		carryOut = binSum > uint32(mask)
	} else if !subtract {
		if eightBit {
			r, co := decimalAdd8(uint8(a), uint8(operand), carryIn)
			result, carryOut = uint16(r), co
		} else {
			result, carryOut = decimalAdd16(a, operand, carryIn)
		}
	} else {
		borrowIn := !carryIn
		if eightBit {
			r, no := decimalSub8(uint8(a), uint8(operand), borrowIn)
			result, carryOut = uint16(r), no
		} else {
			result, carryOut = decimalSub16(a, operand, borrowIn)
		}
	}

	c.Reg.P.V = v
	c.Reg.P.C = carryOut
	if eightBit {
		c.Reg.A.SetLo(uint8(result))
	} else {
		c.Reg.A = Register16(result)
	}
	setNZ(&c.Reg.P, result, eightBit)
}

func doADC(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.addWithCarry(c.readWidth(ptr, c.Reg.P.M), false)
}

func doSBC(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.addWithCarry(c.readWidth(ptr, c.Reg.P.M), true)
}

// --- logic / compare ----------------------------------------------------

func doAND(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	result := uint16(c.Reg.A) & v
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(result))
	} else {
		c.Reg.A = Register16(result)
	}
	setNZ(&c.Reg.P, result, c.Reg.P.M)
}

func doORA(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	result := uint16(c.Reg.A) | v
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(result))
	} else {
		c.Reg.A = Register16(result)
	}
	setNZ(&c.Reg.P, result, c.Reg.P.M)
}

func doEOR(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	result := uint16(c.Reg.A) ^ v
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(result))
	} else {
		c.Reg.A = Register16(result)
	}
	setNZ(&c.Reg.P, result, c.Reg.P.M)
}

func compare(c *CPU, reg uint16, v uint16, eightBit bool) {
	mask := uint16(0xFFFF)
	if eightBit {
		mask = 0xFF
	}
	r := reg & mask
	v &= mask
	diff := r - v
	c.Reg.P.C = r >= v
	setNZ(&c.Reg.P, diff, eightBit)
}

func doCMP(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	compare(c, uint16(c.Reg.A), c.readWidth(ptr, c.Reg.P.M), c.Reg.P.M)
}

func doCPX(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	compare(c, uint16(c.Reg.X), c.readWidth(ptr, c.Reg.P.XB), c.Reg.P.XB)
}

func doCPY(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	compare(c, uint16(c.Reg.Y), c.readWidth(ptr, c.Reg.P.XB), c.Reg.P.XB)
}

func doBIT(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	result := uint16(c.Reg.A) & v
	if mode != ModeImmediateM {
		if c.Reg.P.M {
			c.Reg.P.N = v&0x80 != 0
			c.Reg.P.V = v&0x40 != 0
		} else {
			c.Reg.P.N = v&0x8000 != 0
			c.Reg.P.V = v&0x4000 != 0
		}
	}
	if c.Reg.P.M {
		c.Reg.P.Z = uint8(result) == 0
	} else {
		c.Reg.P.Z = result == 0
	}
}

func doTSB(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	a := uint16(c.Reg.A)
	if c.Reg.P.M {
		c.Reg.P.Z = uint8(a)&uint8(v) == 0
	} else {
		c.Reg.P.Z = a&v == 0
	}
	c.writeWidth(ptr, v|a, c.Reg.P.M)
}

func doTRB(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	a := uint16(c.Reg.A)
	if c.Reg.P.M {
		c.Reg.P.Z = uint8(a)&uint8(v) == 0
	} else {
		c.Reg.P.Z = a&v == 0
	}
	c.writeWidth(ptr, v&^a, c.Reg.P.M)
}

// --- loads / stores -------------------------------------------------------

func doLDA(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.M)
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(v))
	} else {
		c.Reg.A = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.M)
}

func doLDX(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.XB)
	if c.Reg.P.XB {
		c.Reg.X.SetLo(uint8(v))
	} else {
		c.Reg.X = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.XB)
}

func doLDY(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	v := c.readWidth(ptr, c.Reg.P.XB)
	if c.Reg.P.XB {
		c.Reg.Y.SetLo(uint8(v))
	} else {
		c.Reg.Y = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.XB)
}

func doSTA(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.writeWidth(ptr, uint16(c.Reg.A), c.Reg.P.M)
}

func doSTX(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.writeWidth(ptr, uint16(c.Reg.X), c.Reg.P.XB)
}

func doSTY(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.writeWidth(ptr, uint16(c.Reg.Y), c.Reg.P.XB)
}

func doSTZ(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.writeWidth(ptr, 0, c.Reg.P.M)
}

// --- read-modify-write ----------------------------------------------------

func (c *CPU) rmw(mode AddrMode, f func(uint16, bool) uint16) {
	if mode == ModeAccumulator {
		v := f(uint16(c.Reg.A), c.Reg.P.M)
		if c.Reg.P.M {
			c.Reg.A.SetLo(uint8(v))
		} else {
			c.Reg.A = Register16(v)
		}
		setNZ(&c.Reg.P, v, c.Reg.P.M)
		return
	}
	ptr := c.resolve(mode)
	v := f(c.readWidth(ptr, c.Reg.P.M), c.Reg.P.M)
	c.writeWidth(ptr, v, c.Reg.P.M)
	setNZ(&c.Reg.P, v, c.Reg.P.M)
}

func doINC(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		if eightBit {
			return uint16(uint8(v + 1))
		}
		return v + 1
	})
}

func doDEC(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		if eightBit {
			return uint16(uint8(v - 1))
		}
		return v - 1
	})
}

func doASL(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		if eightBit {
			c.Reg.P.C = v&0x80 != 0
			return uint16(uint8(v << 1))
		}
		c.Reg.P.C = v&0x8000 != 0
		return v << 1
	})
}

func doLSR(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		c.Reg.P.C = v&1 != 0
		if eightBit {
			return uint16(uint8(v) >> 1)
		}
		return v >> 1
	})
}

func doROL(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		oldCarry := uint16(0)
		if c.Reg.P.C {
			oldCarry = 1
		}
		if eightBit {
			c.Reg.P.C = v&0x80 != 0
			return uint16(uint8(v<<1) | uint8(oldCarry))
		}
		c.Reg.P.C = v&0x8000 != 0
		return (v << 1) | oldCarry
	})
}

func doROR(c *CPU, mode AddrMode) {
	c.rmw(mode, func(v uint16, eightBit bool) uint16 {
		oldCarry := uint16(0)
		if c.Reg.P.C {
			oldCarry = 1
		}
		c.Reg.P.C = v&1 != 0
		if eightBit {
			return uint16(uint8(v)>>1) | (oldCarry << 7)
		}
		return (v >> 1) | (oldCarry << 15)
	})
}

// --- branches / jumps -------------------------------------------------

func branch(c *CPU, mode AddrMode, cond bool) {
	ptr := c.resolve(mode)
	if cond {
		c.Reg.PC = Register16(uint16(ptr.Base))
	}
}

func doBPL(c *CPU, mode AddrMode) { branch(c, mode, !c.Reg.P.N) }
func doBMI(c *CPU, mode AddrMode) { branch(c, mode, c.Reg.P.N) }
func doBVC(c *CPU, mode AddrMode) { branch(c, mode, !c.Reg.P.V) }
func doBVS(c *CPU, mode AddrMode) { branch(c, mode, c.Reg.P.V) }
func doBCC(c *CPU, mode AddrMode) { branch(c, mode, !c.Reg.P.C) }
func doBCS(c *CPU, mode AddrMode) { branch(c, mode, c.Reg.P.C) }
func doBNE(c *CPU, mode AddrMode) { branch(c, mode, !c.Reg.P.Z) }
func doBEQ(c *CPU, mode AddrMode) { branch(c, mode, c.Reg.P.Z) }
func doBRA(c *CPU, mode AddrMode) { branch(c, mode, true) }
func doBRL(c *CPU, mode AddrMode) { branch(c, mode, true) }

func doJMP(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.Reg.PC = Register16(uint16(ptr.Base))
}

func doJML(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	c.Reg.K = uint8(ptr.Base >> 16)
	c.Reg.PC = Register16(uint16(ptr.Base))
}

func doJSR(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	ret := uint16(c.Reg.PC) - 1
	c.pushNew16(ret)
	c.Reg.PC = Register16(uint16(ptr.Base))
}

func doJSL(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	ret := uint16(c.Reg.PC) - 1
	c.pushNew8(c.Reg.K)
	c.pushNew16(ret)
	c.Reg.K = uint8(ptr.Base >> 16)
	c.Reg.PC = Register16(uint16(ptr.Base))
}

func doRTS(c *CPU, mode AddrMode) {
	ret := c.pullNew16()
	c.Reg.PC = Register16(ret + 1)
}

func doRTL(c *CPU, mode AddrMode) {
	ret := c.pullNew16()
	k := c.pullNew8()
	c.Reg.PC = Register16(ret + 1)
	c.Reg.K = k
}

func doRTI(c *CPU, mode AddrMode) {
	p := c.pullOld8()
	c.Reg.P.FromBits(p)
	ret := c.pullOld16()
	c.Reg.PC = Register16(ret)
	if !c.Reg.P.E {
		c.Reg.K = c.pullOld8()
	}
	c.applyInvariants()
}

// --- stack ---------------------------------------------------------------

func doPHA(c *CPU, mode AddrMode) {
	if c.Reg.P.M {
		c.pushOld8(c.Reg.A.Lo())
	} else {
		c.pushOld16(uint16(c.Reg.A))
	}
}

func doPLA(c *CPU, mode AddrMode) {
	if c.Reg.P.M {
		v := c.pullOld8()
		c.Reg.A.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
	} else {
		v := c.pullOld16()
		c.Reg.A = Register16(v)
		setNZ(&c.Reg.P, v, false)
	}
}

func doPHX(c *CPU, mode AddrMode) {
	if c.Reg.P.XB {
		c.pushOld8(c.Reg.X.Lo())
	} else {
		c.pushOld16(uint16(c.Reg.X))
	}
}

func doPLX(c *CPU, mode AddrMode) {
	if c.Reg.P.XB {
		v := c.pullOld8()
		c.Reg.X.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
	} else {
		v := c.pullOld16()
		c.Reg.X = Register16(v)
		setNZ(&c.Reg.P, v, false)
	}
	c.applyInvariants()
}

func doPHY(c *CPU, mode AddrMode) {
	if c.Reg.P.XB {
		c.pushOld8(c.Reg.Y.Lo())
	} else {
		c.pushOld16(uint16(c.Reg.Y))
	}
}

func doPLY(c *CPU, mode AddrMode) {
	if c.Reg.P.XB {
		v := c.pullOld8()
		c.Reg.Y.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
	} else {
		v := c.pullOld16()
		c.Reg.Y = Register16(v)
		setNZ(&c.Reg.P, v, false)
	}
	c.applyInvariants()
}

func doPHP(c *CPU, mode AddrMode) { c.pushOld8(c.Reg.P.ToBits()) }
func doPLP(c *CPU, mode AddrMode) {
	c.Reg.P.FromBits(c.pullOld8())
	c.applyInvariants()
}

func doPHB(c *CPU, mode AddrMode) { c.pushOld8(c.Reg.DBR) }
func doPLB(c *CPU, mode AddrMode) {
	v := c.pullOld8()
	c.Reg.DBR = v
	setNZ(&c.Reg.P, uint16(v), true)
}
func doPHK(c *CPU, mode AddrMode) { c.pushOld8(c.Reg.K) }
func doPHD(c *CPU, mode AddrMode) { c.pushNew16(uint16(c.Reg.D)) }
func doPLD(c *CPU, mode AddrMode) {
	v := c.pullNew16()
	c.Reg.D = Register16(v)
	setNZ(&c.Reg.P, v, false)
}

func doPEA(c *CPU, mode AddrMode) {
	v := c.fetch16()
	c.pushNew16(v)
}

func doPEI(c *CPU, mode AddrMode) {
	ptr := c.directPointerNoWrap(c.fetch8())
	v := c.read16(ptr)
	c.pushNew16(v)
}

func doPER(c *CPU, mode AddrMode) {
	disp := int16(c.fetch16())
	target := uint16(int32(uint16(c.Reg.PC)) + int32(disp))
	c.pushNew16(target)
}

// --- flags / mode switches ----------------------------------------------

func doCLC(c *CPU, mode AddrMode) { c.Reg.P.C = false }
func doSEC(c *CPU, mode AddrMode) { c.Reg.P.C = true }
func doCLI(c *CPU, mode AddrMode) { c.Reg.P.I = false }
func doSEI(c *CPU, mode AddrMode) { c.Reg.P.I = true }
func doCLD(c *CPU, mode AddrMode) { c.Reg.P.D = false }
func doSED(c *CPU, mode AddrMode) { c.Reg.P.D = true }
func doCLV(c *CPU, mode AddrMode) { c.Reg.P.V = false }

func doREP(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	mask := uint8(c.hooks.Read(ptr.At(0)))
	bits := c.Reg.P.ToBits() &^ mask
	c.Reg.P.FromBits(bits)
	c.applyInvariants()
}

func doSEP(c *CPU, mode AddrMode) {
	ptr := c.resolve(mode)
	mask := uint8(c.hooks.Read(ptr.At(0)))
	bits := c.Reg.P.ToBits() | mask
	c.Reg.P.FromBits(bits)
	c.applyInvariants()
}

func doXCE(c *CPU, mode AddrMode) {
	c.Reg.P.C, c.Reg.P.E = c.Reg.P.E, c.Reg.P.C
	c.applyInvariants()
}

// --- transfers -------------------------------------------------------

func doTAX(c *CPU, mode AddrMode) {
	v := uint16(c.Reg.A)
	if c.Reg.P.XB {
		c.Reg.X.SetLo(uint8(v))
	} else {
		c.Reg.X = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.XB)
}

func doTAY(c *CPU, mode AddrMode) {
	v := uint16(c.Reg.A)
	if c.Reg.P.XB {
		c.Reg.Y.SetLo(uint8(v))
	} else {
		c.Reg.Y = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.XB)
}

func doTXA(c *CPU, mode AddrMode) {
	v := uint16(c.Reg.X)
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(v))
	} else {
		c.Reg.A = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.M)
}

func doTYA(c *CPU, mode AddrMode) {
	v := uint16(c.Reg.Y)
	if c.Reg.P.M {
		c.Reg.A.SetLo(uint8(v))
	} else {
		c.Reg.A = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.M)
}

func doTXY(c *CPU, mode AddrMode) {
	c.Reg.Y = c.Reg.X
	setNZ(&c.Reg.P, uint16(c.Reg.Y), c.Reg.P.XB)
}

func doTYX(c *CPU, mode AddrMode) {
	c.Reg.X = c.Reg.Y
	setNZ(&c.Reg.P, uint16(c.Reg.X), c.Reg.P.XB)
}

func doTSX(c *CPU, mode AddrMode) {
	v := uint16(c.Reg.S)
	if c.Reg.P.XB {
		c.Reg.X.SetLo(uint8(v))
	} else {
		c.Reg.X = Register16(v)
	}
	setNZ(&c.Reg.P, v, c.Reg.P.XB)
}

func doTXS(c *CPU, mode AddrMode) {
	c.Reg.S = c.Reg.X
	c.applyInvariants()
}

func doTCD(c *CPU, mode AddrMode) {
	c.Reg.D = c.Reg.A
	setNZ(&c.Reg.P, uint16(c.Reg.D), false)
}

func doTDC(c *CPU, mode AddrMode) {
	c.Reg.A = c.Reg.D
	setNZ(&c.Reg.P, uint16(c.Reg.A), false)
}

func doTCS(c *CPU, mode AddrMode) {
	c.Reg.S = c.Reg.A
	c.applyInvariants()
}

func doTSC(c *CPU, mode AddrMode) {
	c.Reg.A = c.Reg.S
	setNZ(&c.Reg.P, uint16(c.Reg.A), false)
}

func doXBA(c *CPU, mode AddrMode) {
	lo, hi := c.Reg.A.Lo(), c.Reg.A.Hi()
	c.Reg.A.SetLo(hi)
	c.Reg.A.SetHi(lo)
	setNZ(&c.Reg.P, uint16(hi), true)
}

// --- increment/decrement registers --------------------------------------

func doINX(c *CPU, mode AddrMode) { incDecReg(c, &c.Reg.X, 1) }
func doDEX(c *CPU, mode AddrMode) { incDecReg(c, &c.Reg.X, -1) }
func doINY(c *CPU, mode AddrMode) { incDecReg(c, &c.Reg.Y, 1) }
func doDEY(c *CPU, mode AddrMode) { incDecReg(c, &c.Reg.Y, -1) }

func incDecReg(c *CPU, reg *Register16, delta int) {
	if c.Reg.P.XB {
		v := uint8(int(reg.Lo()) + delta)
		reg.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
		return
	}
	v := uint16(int(uint16(*reg)) + delta)
	*reg = Register16(v)
	setNZ(&c.Reg.P, v, false)
}

func doINA(c *CPU, mode AddrMode) {
	if c.Reg.P.M {
		v := c.Reg.A.Lo() + 1
		c.Reg.A.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
		return
	}
	v := uint16(c.Reg.A) + 1
	c.Reg.A = Register16(v)
	setNZ(&c.Reg.P, v, false)
}

func doDEA(c *CPU, mode AddrMode) {
	if c.Reg.P.M {
		v := c.Reg.A.Lo() - 1
		c.Reg.A.SetLo(v)
		setNZ(&c.Reg.P, uint16(v), true)
		return
	}
	v := uint16(c.Reg.A) - 1
	c.Reg.A = Register16(v)
	setNZ(&c.Reg.P, v, false)
}

// --- block move, misc -----------------------------------------------------

func doMVP(c *CPU, mode AddrMode) {
	dbank := c.fetch8()
	sbank := c.fetch8()
	src := uint32(sbank)<<16 | uint32(c.Reg.X)
	dst := uint32(dbank)<<16 | uint32(c.Reg.Y)
	v := c.hooks.Read(src)
	c.hooks.Write(dst, v)
	c.Reg.X = Register16(uint16(c.Reg.X) - 1)
	c.Reg.Y = Register16(uint16(c.Reg.Y) - 1)
	c.Reg.A = Register16(uint16(c.Reg.A) - 1)
	c.Reg.DBR = dbank
	if uint16(c.Reg.A) != 0xFFFF {
		c.Reg.PC -= 3
	}
}

func doMVN(c *CPU, mode AddrMode) {
	dbank := c.fetch8()
	sbank := c.fetch8()
	src := uint32(sbank)<<16 | uint32(c.Reg.X)
	dst := uint32(dbank)<<16 | uint32(c.Reg.Y)
	v := c.hooks.Read(src)
	c.hooks.Write(dst, v)
	c.Reg.X = Register16(uint16(c.Reg.X) + 1)
	c.Reg.Y = Register16(uint16(c.Reg.Y) + 1)
	c.Reg.A = Register16(uint16(c.Reg.A) - 1)
	c.Reg.DBR = dbank
	if uint16(c.Reg.A) != 0xFFFF {
		c.Reg.PC -= 3
	}
}

func doNOP(c *CPU, mode AddrMode) {}

// doWDM is the reserved two-byte NOP: it consumes and discards one
// operand byte.
func doWDM(c *CPU, mode AddrMode) { c.fetch8() }

func doSTP(c *CPU, mode AddrMode) { c.stopped = true }
func doWAI(c *CPU, mode AddrMode) { c.wai = true }

func doCOP(c *CPU, mode AddrMode) {
	c.fetch8() // COP skips one operand byte, like BRK
	c.enterInterrupt(COP)
}

func doBRK(c *CPU, mode AddrMode) {
	c.fetch8() // BRK skips one operand byte
	c.enterInterrupt(BRK)
}
