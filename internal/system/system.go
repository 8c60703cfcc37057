// Package system wires the main CPU, audio CPU, PPU, DMA engine, timer
// and bus into one runnable machine and exposes the small host API a
// front end drives: construct from a ROM image, feed input, run until a
// frame completes or a breakpoint hits, and read back the rendered
// frame and save RAM.
package system

import (
	"fmt"

	"github.com/snes-emu/snes/internal/apu"
	"github.com/snes-emu/snes/internal/bus"
	"github.com/snes-emu/snes/internal/cartridge"
	"github.com/snes-emu/snes/internal/cpu"
	"github.com/snes-emu/snes/internal/dma"
	"github.com/snes-emu/snes/internal/input"
	"github.com/snes-emu/snes/internal/mailbox"
	"github.com/snes-emu/snes/internal/ppu"
	"github.com/snes-emu/snes/internal/timer"
)

// RunResult reports why Run or Step returned control to the host.
type RunResult int

const (
	FrameDone RunResult = iota
	BreakpointHit
	Stepped
)

// accessCycles is the fixed per-access master-cycle cost every bus
// access charges, fast and slow distinctions left as unmodeled future
// work.
const accessCycles = 6

// Emulator is the complete machine: one main CPU driving a bus, a
// picture unit and an audio CPU advanced lazily via a catch-up model,
// a DMA engine that can seize the CPU's step loop, and the H/V timer
// that raises NMI/IRQ and samples auto-read input.
type Emulator struct {
	CPU     *cpu.CPU
	Bus     *bus.Bus
	Ppu     *ppu.Ppu
	Apu     *apu.Apu
	Dma     *dma.Controller
	Timer   *timer.Scheduler
	Cart    *cartridge.Cartridge
	Mailbox *mailbox.Mailbox
	Joypad  *input.Joypad

	cycles    uint64
	ppuCycles uint64

	nmiPending bool
	irqPending bool
	frameReady bool

	hdmaScanline int // last scanline HDMA was evaluated for, -1 before the first
}

// New builds a machine around rom under the given mapping mode, with
// sram providing the cartridge's initial battery-backed save RAM (may be
// nil or empty for cartridges without one). The Reset interrupt's
// vector-fetch-and-jump runs as part of construction, matching the
// "Reset interrupt pre-raised" contract of the host API.
func New(rom []uint8, mapping cartridge.MappingMode, sram []uint8) (*Emulator, error) {
	cart, err := cartridge.New(rom, mapping, len(sram))
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	e := newFromCartridge(cart)
	copy(e.Bus.Sram.Bytes(), sram)
	return e, nil
}

// LoadFile builds a machine from a ROM file on disk, detecting its
// mapping mode and SRAM size from the internal header; sram, if
// non-empty, seeds the save RAM.
func LoadFile(path string, sram []uint8) (*Emulator, error) {
	cart, err := cartridge.LoadFile(path)
	if err != nil {
		return nil, err
	}
	e := newFromCartridge(cart)
	copy(e.Bus.Sram.Bytes(), sram)
	return e, nil
}

func newFromCartridge(cart *cartridge.Cartridge) *Emulator {
	mbox := mailbox.New()
	joy := input.NewJoypad()
	e := &Emulator{
		Ppu:     ppu.New(),
		Apu:     apu.New(mbox),
		Dma:     dma.New(),
		Cart:    cart,
		Mailbox: mbox,
		Joypad:  joy,
	}
	e.Timer = timer.New(joy)
	e.Bus = bus.New(cart, e.Ppu, e.Apu, mbox, e.Dma, e.Timer, joy)
	e.CPU = cpu.New(e)
	e.CPU.Reset()
	e.hdmaScanline = -1
	return e
}

// SetInput replaces the controller plugged into port (0 or 1).
func (e *Emulator) SetInput(port int, device input.Device) {
	e.Joypad.SetDevice(port, device)
}

// OutputImage returns the current RGBA8 frame buffer, 512x(2*active
// height), active height being 224 or 239 depending on the PPU's
// overscan bit.
func (e *Emulator) OutputImage() []uint8 {
	return e.Ppu.Frame()[:512*2*e.Ppu.ActiveHeight()*4]
}

// SRAM exposes the cartridge's battery-backed save RAM as a mutable
// byte view for the host to persist on demand.
func (e *Emulator) SRAM() []uint8 {
	return e.Bus.Sram.Bytes()
}

// SetBreakpoint arms or disarms a breakpoint at a 24-bit bank:pc address.
func (e *Emulator) SetBreakpoint(addr uint32, on bool) {
	e.Bus.SetBreakpoint(addr, on)
}

// Run steps the CPU until a frame completes or a breakpoint is hit.
func (e *Emulator) Run() RunResult {
	for {
		switch e.CPU.Step() {
		case cpu.FrameFinished:
			return FrameDone
		case cpu.BreakpointHit:
			return BreakpointHit
		}
	}
}

// Step executes exactly one unit of CPU work (an instruction, or one
// DMA byte while DMA is armed) and reports why it stopped.
func (e *Emulator) Step() RunResult {
	switch e.CPU.Step() {
	case cpu.FrameFinished:
		return FrameDone
	case cpu.BreakpointHit:
		return BreakpointHit
	default:
		return Stepped
	}
}

// --- cpu.Hooks ------------------------------------------------------

// Read implements cpu.Hooks: a mutating bus access that advances the
// master clock and lets the timer, and lazily the PPU and APU, catch up.
func (e *Emulator) Read(addr uint32) uint8 {
	v := e.Bus.Read(addr)
	e.advanceClock(addr)
	return v
}

// Write implements cpu.Hooks (see Read). It also satisfies dma.BusAccess,
// so the DMA engine drives the same bus and clock as the CPU.
func (e *Emulator) Write(addr uint32, value uint8) {
	e.Bus.Write(addr, value)
	e.advanceClock(addr)
}

// ReadPure implements cpu.Hooks' non-mutating peek.
func (e *Emulator) ReadPure(addr uint32) uint8 {
	return e.Bus.ReadPure(addr)
}

// advanceClock charges one fixed access against the master-cycle
// counter, runs the timer inline, and catches up the PPU and APU only
// when this access actually observes their output (a register access
// into their MMIO range) or a frame just completed — the lazy
// catch-up scheduling the main CPU drives as clock master.
func (e *Emulator) advanceClock(addr uint32) {
	e.cycles += accessCycles
	e.Timer.SetFrameHeight(e.Ppu.ActiveHeight())
	nmi, irq, frameFinished := e.Timer.Tick(accessCycles)
	if nmi {
		e.nmiPending = true
	}
	if irq {
		e.irqPending = true
	}
	if frameFinished {
		e.frameReady = true
	}

	if sl := e.Timer.Scanline(); sl != e.hdmaScanline {
		e.hdmaScanline = sl
		if sl == 0 {
			e.Dma.HDMAInit(e)
		}
		e.Dma.HDMAStep(e)
	}

	offset := uint16(addr)
	touchesPpu := offset >= 0x2100 && offset <= 0x213F
	touchesApu := offset >= 0x2140 && offset <= 0x217F
	if touchesPpu || frameFinished {
		if delta := e.cycles - e.ppuCycles; delta > 0 {
			e.Ppu.Tick(int(delta))
			e.ppuCycles = e.cycles
		}
	}
	if touchesApu || frameFinished {
		e.Apu.CatchUpTo(e.cycles)
	}
}

// DMAActive implements cpu.Hooks.
func (e *Emulator) DMAActive() bool { return e.Dma.Active() }

// StepDMAByte implements cpu.Hooks, driving the DMA engine over the same
// Read/Write pair (and so the same clock) the CPU itself uses.
func (e *Emulator) StepDMAByte() { e.Dma.StepByte(e) }

// PollInterrupt implements cpu.Hooks: NMI outranks the H/V timer IRQ and
// ignores irqMasked; the timer IRQ is blocked by it.
func (e *Emulator) PollInterrupt(irqMasked bool) (cpu.InterruptKind, bool) {
	if e.nmiPending {
		return cpu.NMI, true
	}
	if e.irqPending && !irqMasked {
		return cpu.IRQ, true
	}
	return cpu.NoInterrupt, false
}

// AckInterrupt implements cpu.Hooks.
func (e *Emulator) AckInterrupt(kind cpu.InterruptKind) {
	switch kind {
	case cpu.NMI:
		e.nmiPending = false
	case cpu.IRQ:
		e.irqPending = false
	}
}

// Breakpoint implements cpu.Hooks.
func (e *Emulator) Breakpoint(bank uint8, pc uint16) bool {
	return e.Bus.Breakpoint(bank, pc)
}

// FrameFinished implements cpu.Hooks, reporting and clearing the
// end-of-frame sentinel the timer raised.
func (e *Emulator) FrameFinished() bool {
	v := e.frameReady
	e.frameReady = false
	return v
}
