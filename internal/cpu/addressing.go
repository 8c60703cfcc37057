package cpu

// WrapClass tells a Pointer how its address wraps when advanced by an
// offset, keeping wrap-boundary logic out of every addressing-mode call
// site.
type WrapClass uint8

const (
	// WrapLong does not wrap within this access; advancing past
	// 0xFFFFFF wraps the full 24-bit bus, matching real address-bus
	// rollover. Used by Long/Long,X operands.
	WrapLong WrapClass = iota
	// WrapBank wraps within the 16-bit offset of the current bank; the
	// bank byte never changes. This is the common case: Absolute,
	// Absolute,X/Y, Direct (new-style), the high byte of most 16-bit
	// fetches.
	WrapBank
	// WrapPage wraps within the low 8 bits only, leaving the rest of
	// the address untouched. This is the emulation-mode direct-page
	// quirk: when D's low byte is zero and E is set, (Direct) and
	// Direct,X/Y style accesses wrap inside the zero page instead of
	// spilling into the next page.
	WrapPage
	// WrapBank24 wraps within the full 24-bit address, used by the
	// second indirection step of (Direct),Y / (Stack,S),Y
	// once the 24-bit base pointer has been fetched from the direct
	// page: adding Y must carry across the bank boundary like any other
	// 24-bit address arithmetic.
	WrapBank24
)

// Pointer is a resolved operand address: a 24-bit base plus the wrap class
// that governs how +1 (and other small offsets) advances it. At is a pure
// function of the pointer.
type Pointer struct {
	Base uint32
	Wrap WrapClass
}

// At returns the effective address offset bytes past the pointer's base,
// honoring its wrap class.
func (p Pointer) At(offset uint32) uint32 {
	switch p.Wrap {
	case WrapPage:
		page := p.Base &^ 0xFF
		return page | ((p.Base + offset) & 0xFF)
	case WrapBank:
		bank := p.Base &^ 0xFFFF
		return bank | ((p.Base + offset) & 0xFFFF)
	case WrapBank24:
		return (p.Base + offset) & 0xFFFFFF
	default: // WrapLong
		return (p.Base + offset) & 0xFFFFFF
	}
}

// AddrMode enumerates the 65C816 addressing modes.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediateM // width follows the M flag
	ModeImmediateX // width follows the X flag
	ModeImmediate8 // always a single literal byte (REP/SEP operand)
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteJMP // K-bank prefixed, used only by JMP/JSR absolute
	ModeAbsoluteIndirect
	ModeAbsoluteIndirectLong
	ModeAbsoluteIndexedIndirect
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeDirectIndirect
	ModeDirectIndirectLong
	ModeDirectIndexedIndirect
	ModeDirectIndirectIndexed
	ModeDirectIndirectIndexedLong
	ModeLong
	ModeLongX
	ModeRelative8
	ModeRelative16
	ModeStackRelative
	ModeStackRelativeIndirectIndexed
)

// directWraps reports whether the zero-page-wrap quirk applies to
// Direct-family addressing right now: D's low byte is zero and the CPU is
// in emulation mode. Native mode never takes this path, even when D's low
// byte happens to be zero.
func (c *CPU) directWraps() bool {
	return c.Reg.P.E && c.Reg.D.Lo() == 0
}

// resolve computes the Pointer for the given addressing mode, consuming
// any instruction bytes the mode needs (advancing PC) along the way.
func (c *CPU) resolve(mode AddrMode) Pointer {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return Pointer{}

	case ModeImmediateM:
		p := Pointer{Base: uint32(c.Reg.K)<<16 | uint32(c.Reg.PC), Wrap: WrapBank}
		if c.Reg.P.M {
			c.Reg.PC++
		} else {
			c.Reg.PC += 2
		}
		return p

	case ModeImmediateX:
		p := Pointer{Base: uint32(c.Reg.K)<<16 | uint32(c.Reg.PC), Wrap: WrapBank}
		if c.Reg.P.XB {
			c.Reg.PC++
		} else {
			c.Reg.PC += 2
		}
		return p

	case ModeImmediate8:
		p := Pointer{Base: uint32(c.Reg.K)<<16 | uint32(c.Reg.PC), Wrap: WrapBank}
		c.Reg.PC++
		return p

	case ModeAbsolute:
		off := c.fetch16()
		return Pointer{Base: uint32(c.Reg.DBR)<<16 | uint32(off), Wrap: WrapBank}

	case ModeAbsoluteX:
		off := c.fetch16() + uint16(c.Reg.X)
		return Pointer{Base: uint32(c.Reg.DBR)<<16 | uint32(off), Wrap: WrapBank}

	case ModeAbsoluteY:
		off := c.fetch16() + uint16(c.Reg.Y)
		return Pointer{Base: uint32(c.Reg.DBR)<<16 | uint32(off), Wrap: WrapBank}

	case ModeAbsoluteJMP:
		off := c.fetch16()
		return Pointer{Base: uint32(c.Reg.K)<<16 | uint32(off), Wrap: WrapBank}

	case ModeAbsoluteIndirect:
		off := c.fetch16()
		ptr := Pointer{Base: uint32(off), Wrap: WrapBank}
		target := c.read16(ptr)
		return Pointer{Base: uint32(c.Reg.K)<<16 | uint32(target), Wrap: WrapBank}

	case ModeAbsoluteIndirectLong:
		off := c.fetch16()
		ptr := Pointer{Base: uint32(off), Wrap: WrapBank}
		lo := c.hooks.Read(ptr.At(0))
		hi := c.hooks.Read(ptr.At(1))
		bank := c.hooks.Read(ptr.At(2))
		return Pointer{Base: uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo), Wrap: WrapLong}

	case ModeAbsoluteIndexedIndirect:
		off := c.fetch16() + uint16(c.Reg.X)
		ptr := Pointer{Base: uint32(c.Reg.K)<<16 | uint32(off), Wrap: WrapBank}
		target := c.read16(ptr)
		return Pointer{Base: uint32(c.Reg.K)<<16 | uint32(target), Wrap: WrapBank}

	case ModeDirect:
		off := uint16(c.Reg.D) + uint16(c.fetch8())
		if c.directWraps() {
			return Pointer{Base: uint32(off & 0xFF), Wrap: WrapPage}
		}
		return Pointer{Base: uint32(off), Wrap: WrapBank}

	case ModeDirectX:
		off := uint16(c.Reg.D) + uint16(c.fetch8()) + uint16(c.Reg.X)
		if c.directWraps() {
			return Pointer{Base: uint32(off & 0xFF), Wrap: WrapPage}
		}
		return Pointer{Base: uint32(off), Wrap: WrapBank}

	case ModeDirectY:
		off := uint16(c.Reg.D) + uint16(c.fetch8()) + uint16(c.Reg.Y)
		if c.directWraps() {
			return Pointer{Base: uint32(off & 0xFF), Wrap: WrapPage}
		}
		return Pointer{Base: uint32(off), Wrap: WrapBank}

	case ModeDirectIndirect:
		dp := c.directPointer(c.fetch8())
		target := c.read16(dp)
		return Pointer{Base: uint32(c.Reg.DBR)<<16 | uint32(target), Wrap: WrapBank}

	case ModeDirectIndirectLong:
		dp := c.directPointerNoWrap(c.fetch8())
		lo := c.hooks.Read(dp.At(0))
		hi := c.hooks.Read(dp.At(1))
		bank := c.hooks.Read(dp.At(2))
		return Pointer{Base: uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo), Wrap: WrapLong}

	case ModeDirectIndexedIndirect:
		disp := c.fetch8()
		off := uint16(c.Reg.D) + uint16(disp) + uint16(c.Reg.X)
		var dp Pointer
		if c.directWraps() {
			dp = Pointer{Base: uint32(off & 0xFF), Wrap: WrapPage}
		} else {
			dp = Pointer{Base: uint32(off), Wrap: WrapBank}
		}
		target := c.read16(dp)
		return Pointer{Base: uint32(c.Reg.DBR)<<16 | uint32(target), Wrap: WrapBank}

	case ModeDirectIndirectIndexed:
		dp := c.directPointer(c.fetch8())
		target := c.read16(dp)
		base := uint32(c.Reg.DBR)<<16 | uint32(target)
		return Pointer{Base: (base + uint32(c.Reg.Y)) & 0xFFFFFF, Wrap: WrapBank24}

	case ModeDirectIndirectIndexedLong:
		dp := c.directPointerNoWrap(c.fetch8())
		lo := c.hooks.Read(dp.At(0))
		hi := c.hooks.Read(dp.At(1))
		bank := c.hooks.Read(dp.At(2))
		base := uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
		return Pointer{Base: (base + uint32(c.Reg.Y)) & 0xFFFFFF, Wrap: WrapLong}

	case ModeLong:
		lo := c.fetch8()
		hi := c.fetch8()
		bank := c.fetch8()
		return Pointer{Base: uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo), Wrap: WrapLong}

	case ModeLongX:
		lo := c.fetch8()
		hi := c.fetch8()
		bank := c.fetch8()
		base := uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
		return Pointer{Base: (base + uint32(c.Reg.X)) & 0xFFFFFF, Wrap: WrapLong}

	case ModeRelative8:
		disp := int8(c.fetch8())
		target := uint16(int32(uint16(c.Reg.PC)) + int32(disp))
		return Pointer{Base: uint32(c.Reg.K)<<16 | uint32(target), Wrap: WrapBank}

	case ModeRelative16:
		disp := int16(c.fetch16())
		target := uint16(int32(uint16(c.Reg.PC)) + int32(disp))
		return Pointer{Base: uint32(c.Reg.K)<<16 | uint32(target), Wrap: WrapBank}

	case ModeStackRelative:
		disp := c.fetch8()
		off := uint16(c.Reg.S) + uint16(disp)
		return Pointer{Base: uint32(off), Wrap: WrapBank}

	case ModeStackRelativeIndirectIndexed:
		disp := c.fetch8()
		off := uint16(c.Reg.S) + uint16(disp)
		sp := Pointer{Base: uint32(off), Wrap: WrapBank}
		target := c.read16(sp)
		base := uint32(c.Reg.DBR)<<16 | uint32(target)
		return Pointer{Base: (base + uint32(c.Reg.Y)) & 0xFFFFFF, Wrap: WrapBank24}

	default:
		return Pointer{}
	}
}

// directPointer builds the bank-0 Pointer for a direct-page displacement,
// applying the old-wrap quirk of directWraps. Used by (Direct), (Direct,X)
// and (Direct),Y, the "old" family that still honors the emulation-mode
// zero-page wrap.
func (c *CPU) directPointer(disp uint8) Pointer {
	off := uint16(c.Reg.D) + uint16(disp)
	if c.directWraps() {
		return Pointer{Base: uint32(off & 0xFF), Wrap: WrapPage}
	}
	return Pointer{Base: uint32(off), Wrap: WrapBank}
}

// directPointerNoWrap builds the bank-0 Pointer for a direct-page
// displacement without ever applying the zero-page wrap quirk, regardless
// of D's low byte or the emulation-mode bit. [Direct], [Direct],Y and
// PEI's direct-page fetch use this "new" family; unlike directPointer they
// never wrapped inside page zero even on the hardware this core models.
func (c *CPU) directPointerNoWrap(disp uint8) Pointer {
	off := uint16(c.Reg.D) + uint16(disp)
	return Pointer{Base: uint32(off), Wrap: WrapBank}
}
