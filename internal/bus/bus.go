// Package bus implements the SNES address bus: the pure address
// resolution that routes a 24-bit CPU address to work RAM, cartridge
// ROM/SRAM, or one of the memory-mapped I/O register blocks, plus the
// open-bus latch unmapped reads fall back to.
package bus

import (
	"github.com/snes-emu/snes/internal/apu"
	"github.com/snes-emu/snes/internal/cartridge"
	"github.com/snes-emu/snes/internal/dma"
	"github.com/snes-emu/snes/internal/input"
	"github.com/snes-emu/snes/internal/mailbox"
	"github.com/snes-emu/snes/internal/memory"
	"github.com/snes-emu/snes/internal/ppu"
	"github.com/snes-emu/snes/internal/timer"
)

// Bus owns every addressable device and resolves CPU addresses onto
// them. It does not itself run the master clock; callers (internal/system)
// drive Ppu.Tick/Apu.CatchUpTo/Timer.Tick around each Read/Write.
type Bus struct {
	WRam    *memory.WRam
	Sram    *memory.Sram
	Cart    *cartridge.Cartridge
	Ppu     *ppu.Ppu
	Apu     *apu.Apu
	Mailbox *mailbox.Mailbox
	Dma     *dma.Controller
	Timer   *timer.Scheduler
	Joypad  *input.Joypad

	mdr         uint8 // open-bus data latch: last byte any device drove
	joyStrobe   bool
	breakpoints map[uint32]bool
}

// New wires a fresh Bus around the given cartridge. The caller is
// responsible for constructing the other components with consistent
// wiring (a shared Mailbox between Apu and Bus, a shared Joypad between
// Bus and Timer's auto-read sampler).
func New(cart *cartridge.Cartridge, pp *ppu.Ppu, au *apu.Apu, mbox *mailbox.Mailbox, d *dma.Controller, tm *timer.Scheduler, joy *input.Joypad) *Bus {
	return &Bus{
		WRam:        memory.New(),
		Sram:        memory.NewSram(cart.SRAMSize()),
		Cart:        cart,
		Ppu:         pp,
		Apu:         au,
		Mailbox:     mbox,
		Dma:         d,
		Timer:       tm,
		Joypad:      joy,
		breakpoints: make(map[uint32]bool),
	}
}

// SetBreakpoint arms or disarms a breakpoint at a 24-bit address.
func (b *Bus) SetBreakpoint(addr uint32, on bool) {
	if on {
		b.breakpoints[addr] = true
	} else {
		delete(b.breakpoints, addr)
	}
}

// Breakpoint implements cpu.Hooks' breakpoint check for a bank:pc pair.
func (b *Bus) Breakpoint(bank uint8, pc uint16) bool {
	return b.breakpoints[uint32(bank)<<16|uint32(pc)]
}

// Read resolves addr and returns its byte, latching the open-bus value.
func (b *Bus) Read(addr uint32) uint8 {
	v, ok := b.readMapped(addr)
	if ok {
		b.mdr = v
	}
	return b.mdr
}

// ReadPure is Read without side effects on latched ports (VRAM/CGRAM
// read buffers, OAM address, WRAM port pointer, mailbox). It is used for
// debugger-style peeks and never called by the interpreter loop itself.
func (b *Bus) ReadPure(addr uint32) uint8 {
	bank := uint8(addr >> 16)
	offset := uint16(addr)
	if isSystemBank(bank) && offset < 0x2000 {
		return b.WRam.Read(uint32(offset))
	}
	if bank == 0x7E || bank == 0x7F {
		return b.WRam.Read((uint32(bank-0x7E) << 16) | uint32(offset))
	}
	if off, ok := b.Cart.ResolveROM(addr); ok {
		return b.Cart.ReadROM(off)
	}
	return b.mdr
}

func isSystemBank(bank uint8) bool {
	stripped := bank &^ 0x80
	return stripped <= 0x3F
}

func (b *Bus) readMapped(addr uint32) (uint8, bool) {
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	if bank == 0x7E || bank == 0x7F {
		return b.WRam.Read((uint32(bank-0x7E) << 16) | uint32(offset)), true
	}

	if isSystemBank(bank) {
		switch {
		case offset < 0x2000:
			return b.WRam.Read(uint32(offset)), true
		case offset >= 0x2100 && offset <= 0x213F:
			return b.Ppu.ReadReg(offset), true
		case offset >= 0x2140 && offset <= 0x217F:
			return b.Mailbox.CPURead(int(offset & 0x3)), true
		case offset == 0x2180:
			return b.WRam.PortRead(), true
		case offset == 0x4016:
			return b.Joypad.Port1.ReadBit(), true
		case offset == 0x4017:
			return b.Joypad.Port2.ReadBit(), true
		case offset == 0x420B || offset == 0x420C:
			return b.Dma.ReadReg(offset), true
		case offset >= 0x4200 && offset <= 0x421F:
			return b.Timer.ReadReg(offset), true
		case offset >= 0x4300 && offset <= 0x437F:
			return b.Dma.ReadReg(offset), true
		}
	}

	if v, ok := b.readSRAM(bank, offset); ok {
		return v, true
	}

	if off, ok := b.Cart.ResolveROM(addr); ok {
		return b.Cart.ReadROM(off), true
	}

	return 0, false
}

// Write resolves addr and routes the byte to its device, latching the
// open-bus value the way real hardware drives the data bus on writes too.
func (b *Bus) Write(addr uint32, value uint8) {
	b.mdr = value
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	if bank == 0x7E || bank == 0x7F {
		b.WRam.Write((uint32(bank-0x7E)<<16)|uint32(offset), value)
		return
	}

	if isSystemBank(bank) {
		switch {
		case offset < 0x2000:
			b.WRam.Write(uint32(offset), value)
			return
		case offset >= 0x2100 && offset <= 0x213F:
			b.Ppu.WriteReg(offset, value)
			return
		case offset >= 0x2140 && offset <= 0x217F:
			b.Mailbox.CPUWrite(int(offset&0x3), value)
			return
		case offset == 0x2180:
			b.WRam.PortWrite(value)
			return
		case offset == 0x2181:
			cur := b.WRam.PortAddress()
			b.WRam.SetPortAddress(uint32(value) | cur&0x1FF00)
			return
		case offset == 0x2182:
			cur := b.WRam.PortAddress()
			b.WRam.SetPortAddress(cur&0x1FF | uint32(value)<<8)
			return
		case offset == 0x2183:
			cur := b.WRam.PortAddress()
			b.WRam.SetPortAddress(cur&0xFFFF | uint32(value&1)<<16)
			return
		case offset == 0x4016:
			held := value&1 != 0
			b.joyStrobe = held
			b.Joypad.Strobe(held)
			return
		case offset == 0x420B || offset == 0x420C:
			b.Dma.WriteReg(offset, value)
			return
		case offset >= 0x4200 && offset <= 0x421F:
			b.Timer.WriteReg(offset, value)
			return
		case offset >= 0x4300 && offset <= 0x437F:
			b.Dma.WriteReg(offset, value)
			return
		}
	}

	b.writeSRAM(bank, offset, value)
}

// readSRAM and writeSRAM cover the cartridge save-RAM windows: banks
// 0x70-0x7D (and their 0xF0-0xFD mirrors) under LoROM, banks 0x30-0x3F/
// 0xB0-0xBF offset 0x6000-0x7FFF under HiROM.
func (b *Bus) readSRAM(bank uint8, offset uint16) (uint8, bool) {
	if b.Sram.Len() == 0 {
		return 0, false
	}
	if off, ok := b.sramOffset(bank, offset); ok {
		return b.Sram.Read(off), true
	}
	return 0, false
}

func (b *Bus) writeSRAM(bank uint8, offset uint16, value uint8) bool {
	if b.Sram.Len() == 0 {
		return false
	}
	if off, ok := b.sramOffset(bank, offset); ok {
		b.Sram.Write(off, value)
		return true
	}
	return false
}

func (b *Bus) sramOffset(bank uint8, offset uint16) (uint32, bool) {
	stripped := bank &^ 0x80
	switch b.Cart.Mapping() {
	case cartridge.LoROM:
		if stripped >= 0x70 && stripped <= 0x7D && offset < 0x8000 {
			return uint32(stripped-0x70)*0x8000 + uint32(offset), true
		}
	case cartridge.HiROM:
		if stripped >= 0x30 && stripped <= 0x3F && offset >= 0x6000 && offset <= 0x7FFF {
			return uint32(stripped-0x30)*0x2000 + uint32(offset-0x6000), true
		}
	}
	return 0, false
}
