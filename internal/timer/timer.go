// Package timer implements the H/V counter and the CPU-visible interrupt
// and auto-joypad registers that ride on it: NMITIMEN, the H/V IRQ
// compare registers, RDNMI, TIMEUP, HVBJOY and the four auto-read
// joypad-report registers.
package timer

import "github.com/snes-emu/snes/internal/input"

const (
	dotsPerLine = 340
	hblankStart = 22
	hblankEnd   = 277
)

// IRQMode selects which H/V-count condition raises the timer IRQ.
type IRQMode uint8

const (
	IRQNone IRQMode = iota
	IRQHCount
	IRQVCount
	IRQHVCount
)

// Scheduler owns the render-position counters and every register that
// depends on them. frameHeight is 224 or 239 depending on the overscan
// bit the PPU reports; it sets where VBlank and the NMI begin, where
// frame-finished fires and where V wraps (after height+37).
type Scheduler struct {
	dot      int
	scanline int

	frameHeight int

	nmiEnable  bool
	irqMode    IRQMode
	autoJoy    bool
	htime      uint16
	vtime      uint16
	nmiFlag    bool // RDNMI bit 7, cleared on read
	irqFlag    bool // TIMEUP bit 7, cleared on read
	irqLine    bool // level passed to the CPU between polls
	conditionWasTrue bool

	inVBlank bool
	inHBlank bool

	joypad      *input.Joypad
	autoReadBuf [4]uint16 // port1 report, port2 report (each read out as lo/hi bytes)
}

// New creates a Scheduler at the top-left of the frame with auto-read
// disabled, wired to joypad for its auto-read sampling.
func New(joypad *input.Joypad) *Scheduler {
	return &Scheduler{frameHeight: 224, joypad: joypad}
}

// SetFrameHeight updates the active scanline count (224 non-overscan,
// 239 overscan), as reported by the PPU's overscan bit.
func (s *Scheduler) SetFrameHeight(h int) { s.frameHeight = h }

// Dot and Scanline expose the render position for the PPU's catch-up step.
func (s *Scheduler) Dot() int      { return s.dot }
func (s *Scheduler) Scanline() int { return s.scanline }
func (s *Scheduler) InVBlank() bool { return s.inVBlank }
func (s *Scheduler) InHBlank() bool { return s.inHBlank }

// Tick advances the H/V counters by the given number of master cycles,
// in fixed 4-cycle quanta, raising NMI/IRQ edges and reporting whether
// the scanline-end sentinel (277, height) was crossed.
func (s *Scheduler) Tick(cycles int) (nmi, irq, frameFinished bool) {
	for c := 0; c < cycles; c += 4 {
		s.dot++
		if s.dot > dotsPerLine-1 {
			s.dot = 0
			s.scanline++
			if s.scanline > s.frameHeight+37 {
				s.scanline = 0
			}
		}

		s.inHBlank = s.dot < hblankStart || s.dot > hblankEnd
		s.inVBlank = s.scanline < 1 || s.scanline > s.frameHeight

		if s.scanline == 2 && s.dot == 0 {
			s.nmiFlag = false
		}
		if s.scanline == s.frameHeight+1 && s.dot == 0 {
			wasSet := s.nmiFlag
			s.nmiFlag = true
			if s.nmiEnable && !wasSet {
				nmi = true
			}
			if s.autoJoy {
				s.sampleAutoRead()
			}
		}

		if s.evalIRQCondition() {
			irq = true
		}

		if s.dot == hblankEnd && s.scanline == s.frameHeight {
			frameFinished = true
		}
	}
	return
}

func (s *Scheduler) evalIRQCondition() bool {
	var cond bool
	switch s.irqMode {
	case IRQNone:
		s.conditionWasTrue = false
		return false
	case IRQHCount:
		cond = s.dot == int(s.htime)
	case IRQVCount:
		cond = s.scanline == int(s.vtime) && s.dot == 0
	case IRQHVCount:
		cond = s.scanline == int(s.vtime) && s.dot == int(s.htime)
	}
	rising := cond && !s.conditionWasTrue
	s.conditionWasTrue = cond
	if rising {
		s.irqFlag = true
		return true
	}
	return false
}

// snapshotter is implemented by devices that can report their full report
// word without disturbing the manual-read shift register; devices that
// don't implement it (a custom replay device, say) read back as zero from
// auto-joypad-read.
type snapshotter interface {
	Snapshot() uint16
}

func (s *Scheduler) sampleAutoRead() {
	s.joypad.Strobe(true)
	s.joypad.Strobe(false)
	s.autoReadBuf[0], s.autoReadBuf[1] = 0, 0
	if snap, ok := s.joypad.Port1.(snapshotter); ok {
		s.autoReadBuf[0] = snap.Snapshot()
	}
	if snap, ok := s.joypad.Port2.(snapshotter); ok {
		s.autoReadBuf[1] = snap.Snapshot()
	}
}

// WriteReg handles a CPU write into the 0x4200-0x421F range.
func (s *Scheduler) WriteReg(addr uint16, v uint8) {
	switch addr {
	case 0x4200:
		s.nmiEnable = v&0x80 != 0
		s.autoJoy = v&0x01 != 0
		s.irqMode = IRQMode((v >> 4) & 0x03)
	case 0x4207:
		s.htime = uint16(v) | s.htime&0x100
	case 0x4208:
		s.htime = s.htime&0x0FF | uint16(v&1)<<8
	case 0x4209:
		s.vtime = uint16(v) | s.vtime&0x100
	case 0x420A:
		s.vtime = s.vtime&0x0FF | uint16(v&1)<<8
	}
}

// ReadReg handles a CPU read from the 0x4200-0x421F range.
func (s *Scheduler) ReadReg(addr uint16) uint8 {
	switch addr {
	case 0x4210:
		v := uint8(0x02) // open bus / chip revision bits real hardware reports as 2
		if s.nmiFlag {
			v |= 0x80
		}
		s.nmiFlag = false
		return v
	case 0x4211:
		v := uint8(0)
		if s.irqFlag {
			v |= 0x80
		}
		if !s.conditionWasTrue {
			s.irqFlag = false
		}
		return v
	case 0x4212:
		var v uint8
		if s.inVBlank {
			v |= 0x80
		}
		if s.inHBlank {
			v |= 0x40
		}
		if s.autoReadInProgress() {
			v |= 0x01
		}
		return v
	case 0x4218:
		return uint8(s.autoReadBuf[0])
	case 0x4219:
		return uint8(s.autoReadBuf[0] >> 8)
	case 0x421A:
		return uint8(s.autoReadBuf[1])
	case 0x421B:
		return uint8(s.autoReadBuf[1] >> 8)
	}
	return 0
}

// autoReadInProgress reports HVBJOY bit 0: real hardware holds it for a
// short, fixed window after VBlank start. This core's catch-up model
// samples auto-read instantaneously, so the bit is always clear once
// observed; kept as a named method rather than a literal false so the
// simplification is visible at the call site.
func (s *Scheduler) autoReadInProgress() bool { return false }
