// Package apu implements the interpreter for the SNES's SPC700-style
// audio CPU: an 8-bit processor with a 64 KiB address space, a boot ROM
// overlay, and the four-byte mailbox linking it to the main CPU.
package apu

import "github.com/snes-emu/snes/internal/mailbox"

// Flags is the audio CPU's status byte. P selects which 256-byte page
// direct-page addressing targets (0x0000 or 0x0100).
type Flags struct {
	C bool
	Z bool
	I bool
	H bool
	B bool
	P bool
	V bool
	N bool
}

func (f *Flags) FromBits(b uint8) {
	f.C = b&0x01 != 0
	f.Z = b&0x02 != 0
	f.I = b&0x04 != 0
	f.H = b&0x08 != 0
	f.B = b&0x10 != 0
	f.P = b&0x20 != 0
	f.V = b&0x40 != 0
	f.N = b&0x80 != 0
}

func (f Flags) ToBits() uint8 {
	var b uint8
	if f.C {
		b |= 0x01
	}
	if f.Z {
		b |= 0x02
	}
	if f.I {
		b |= 0x04
	}
	if f.H {
		b |= 0x08
	}
	if f.B {
		b |= 0x10
	}
	if f.P {
		b |= 0x20
	}
	if f.V {
		b |= 0x40
	}
	if f.N {
		b |= 0x80
	}
	return b
}

// bootROM stands in for the 64-byte IPL boot ROM mapped at 0xFFC0-0xFFFF
// when the ROM-enable latch is set: it spins reading mailbox port 0
// waiting for a non-zero byte, then jumps to the address the main CPU
// wrote into ports 2-3, the same handshake shape real cartridge loaders
// rely on without reproducing the original Sony ROM's exact bytes.
var bootROM = buildBootROM()

func buildBootROM() [64]uint8 {
	var rom [64]uint8
	// MOV A, $F4 ; BEQ -4 ; MOV X, #0 ; JMP [!$00F6+X]
	prog := []uint8{
		0xE4, 0xF4, // MOV A, $F4
		0xF0, 0xFC, // BEQ -4 (spin until non-zero)
		0xCD, 0x00, // MOV X, #0
		0x1F, 0xF6, 0x00, // JMP [!$00F6+X] (target word from ports 2-3)
	}
	copy(rom[:], prog)
	rom[62] = 0xC0
	rom[63] = 0xFF
	return rom
}

// Apu owns its entire 64 KiB RAM and the register file of the audio CPU.
type Apu struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       Flags

	ram      [0x10000]uint8
	romLatch bool

	mbox *mailbox.Mailbox

	cycles  uint64
	stopped bool
}

// New creates an Apu wired to the shared mailbox, with the boot ROM
// enabled as on power-on.
func New(mbox *mailbox.Mailbox) *Apu {
	a := &Apu{mbox: mbox, romLatch: true}
	a.PC = 0xFFC0
	return a
}

// Cycles reports the audio CPU's own cycle counter, advanced 24 per
// instruction (this core does not model per-opcode variance).
func (a *Apu) Cycles() uint64 { return a.cycles }

// CatchUpTo steps the audio CPU until its own cycle counter reaches at
// least target, implementing the lazy catch-up scheduling the main CPU's
// clock drives.
func (a *Apu) CatchUpTo(target uint64) {
	for a.cycles < target && !a.stopped {
		a.Step()
	}
}

func (a *Apu) dpBase() uint16 {
	if a.P.P {
		return 0x0100
	}
	return 0
}

// Read performs a byte read, applying the boot-ROM overlay and the
// mailbox's memory-mapped ports.
func (a *Apu) Read(addr uint16) uint8 {
	if addr >= 0xFFC0 && a.romLatch {
		return bootROM[addr-0xFFC0]
	}
	if addr >= 0x00F4 && addr <= 0x00F7 {
		return a.mbox.APURead(int(addr - 0x00F4))
	}
	return a.ram[addr]
}

// Write performs a byte write, routing the mailbox ports and the
// ROM-enable latch at 0x00F1.
func (a *Apu) Write(addr uint16, v uint8) {
	if addr == 0x00F1 {
		a.romLatch = v&0x80 != 0
		a.ram[addr] = v
		return
	}
	if addr >= 0x00F4 && addr <= 0x00F7 {
		a.mbox.APUWrite(int(addr-0x00F4), v)
	}
	a.ram[addr] = v
}

func (a *Apu) fetch8() uint8 {
	v := a.Read(a.PC)
	a.PC++
	return v
}

func (a *Apu) fetch16() uint16 {
	lo := a.fetch8()
	hi := a.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (a *Apu) push8(v uint8) {
	a.Write(0x0100|uint16(a.SP), v)
	a.SP--
}

func (a *Apu) pull8() uint8 {
	a.SP++
	return a.Read(0x0100 | uint16(a.SP))
}

func (a *Apu) setNZ(v uint8) {
	a.P.Z = v == 0
	a.P.N = v&0x80 != 0
}

// Step executes exactly one instruction and advances the audio CPU's
// cycle counter by 24, the fixed approximation this core uses instead of
// per-opcode timing.
func (a *Apu) Step() {
	if a.stopped {
		return
	}
	op := a.fetch8()
	entry := apuOpcodeTable[op]
	entry(a)
	a.cycles += 24
}

// Stopped reports whether SLEEP or STOP has halted the audio CPU.
func (a *Apu) Stopped() bool { return a.stopped }
