package cpu

// Two push/pull conventions exist on the 65C816: "old" wraps within the
// 0x01 page when the CPU is in emulation mode (every byte of a multi-byte
// push stays inside page 1), while "new" always decrements/increments the
// full 16-bit S and only has its high byte corrected back to 0x01 once the
// whole operation has completed, in emulation mode. Hardware interrupt
// entry, PHA/PLA and PHP/PLP use "old"; PEA/PEI/PER and JSL/RTL use "new".

func (c *CPU) pushOld8(v uint8) {
	c.hooks.Write(uint32(c.Reg.S), v)
	if c.Reg.P.E {
		c.Reg.S.SetLo(c.Reg.S.Lo() - 1)
	} else {
		c.Reg.S--
	}
}

func (c *CPU) pullOld8() uint8 {
	if c.Reg.P.E {
		c.Reg.S.SetLo(c.Reg.S.Lo() + 1)
	} else {
		c.Reg.S++
	}
	return c.hooks.Read(uint32(c.Reg.S))
}

func (c *CPU) pushOld16(v uint16) {
	c.pushOld8(uint8(v >> 8))
	c.pushOld8(uint8(v))
}

func (c *CPU) pullOld16() uint16 {
	lo := c.pullOld8()
	hi := c.pullOld8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushNew8(v uint8) {
	c.hooks.Write(uint32(c.Reg.S), v)
	c.Reg.S--
}

func (c *CPU) pullNew8() uint8 {
	c.Reg.S++
	return c.hooks.Read(uint32(c.Reg.S))
}

func (c *CPU) fixNewStackHigh() {
	if c.Reg.P.E {
		c.Reg.S.SetHi(0x01)
	}
}

func (c *CPU) pushNew16(v uint16) {
	c.pushNew8(uint8(v >> 8))
	c.pushNew8(uint8(v))
	c.fixNewStackHigh()
}

func (c *CPU) pullNew16() uint16 {
	lo := c.pullNew8()
	hi := c.pullNew8()
	c.fixNewStackHigh()
	return uint16(hi)<<8 | uint16(lo)
}
