package apu

import (
	"testing"

	"github.com/snes-emu/snes/internal/mailbox"
)

func newTestApu() *Apu {
	a := New(mailbox.New())
	a.romLatch = false
	a.PC = 0x0200
	return a
}

func (a *Apu) loadProgram(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		a.ram[int(addr)+i] = b
	}
	a.PC = addr
}

func TestFlagsRoundTrip(t *testing.T) {
	var f Flags
	f.FromBits(0xFF)
	if f.ToBits() != 0xFF {
		t.Fatalf("got %#x, want 0xff", f.ToBits())
	}
	f.FromBits(0x00)
	if f.ToBits() != 0x00 {
		t.Fatalf("got %#x, want 0x00", f.ToBits())
	}
}

func TestBootROMOverlayGatedByLatch(t *testing.T) {
	a := New(mailbox.New())
	if a.Read(0xFFFF) != bootROM[63] {
		t.Fatalf("expected boot ROM byte visible while latch set")
	}
	a.Write(0x00F1, 0x00)
	a.ram[0xFFFF] = 0x42
	if a.Read(0xFFFF) != 0x42 {
		t.Fatalf("expected RAM visible after clearing ROM latch")
	}
}

func TestMailboxPortsRouteThroughMbox(t *testing.T) {
	mbox := mailbox.New()
	a := New(mbox)
	mbox.CPUWrite(0, 0x7A)
	if a.Read(0x00F4) != 0x7A {
		t.Fatalf("expected APU to observe CPU's mailbox write")
	}
	a.Write(0x00F4, 0x55)
	if mbox.CPURead(0) != 0x55 {
		t.Fatalf("expected mailbox to observe APU's write")
	}
}

func TestMOVImmediateSetsNZ(t *testing.T) {
	a := newTestApu()
	a.loadProgram(0x0200, 0xE8, 0x00) // MOV A,#0
	a.Step()
	if a.A != 0 || !a.P.Z || a.P.N {
		t.Fatalf("A=%#x Z=%v N=%v, want A=0 Z=true N=false", a.A, a.P.Z, a.P.N)
	}

	a.loadProgram(0x0200, 0xE8, 0x80) // MOV A,#0x80
	a.Step()
	if a.A != 0x80 || a.P.Z || !a.P.N {
		t.Fatalf("A=%#x Z=%v N=%v, want A=0x80 Z=false N=true", a.A, a.P.Z, a.P.N)
	}
}

func TestMOVDirectPageWriteAndReadRoundTrip(t *testing.T) {
	a := newTestApu()
	a.loadProgram(0x0200, 0xE8, 0x37, 0xC4, 0x10) // MOV A,#$37 ; MOV $10,A
	a.Step()
	a.Step()
	if a.ram[0x10] != 0x37 {
		t.Fatalf("ram[0x10]=%#x, want 0x37", a.ram[0x10])
	}

	a.loadProgram(0x0210, 0xE4, 0x10) // MOV A,$10
	a.A = 0
	a.Step()
	if a.A != 0x37 {
		t.Fatalf("A=%#x, want 0x37", a.A)
	}
}

func TestDirectPageFlagSelectsUpperPage(t *testing.T) {
	a := newTestApu()
	a.P.P = true
	a.loadProgram(0x0200, 0xE8, 0x42, 0xC4, 0x05) // MOV A,#$42 ; MOV $05,A
	a.Step()
	a.Step()
	if a.ram[0x105] != 0x42 {
		t.Fatalf("ram[0x105]=%#x, want 0x42 (P flag should select page 1)", a.ram[0x105])
	}
	if a.ram[0x005] == 0x42 {
		t.Fatalf("write leaked into page 0 despite P flag set")
	}
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	a := newTestApu()
	a.A = 0x7F
	a.loadProgram(0x0200, 0x88, 0x01) // ADC A,#1
	a.Step()
	if a.A != 0x80 || !a.P.V || !a.P.N || a.P.C {
		t.Fatalf("A=%#x C=%v V=%v N=%v, want A=0x80 C=false V=true N=true", a.A, a.P.C, a.P.V, a.P.N)
	}
}

func TestSBCBinaryBorrow(t *testing.T) {
	a := newTestApu()
	a.A = 0x00
	a.P.C = true // no-borrow-in
	a.loadProgram(0x0200, 0xA8, 0x01) // SBC A,#1
	a.Step()
	if a.A != 0xFF || a.P.C {
		t.Fatalf("A=%#x C=%v, want A=0xff C=false", a.A, a.P.C)
	}
}

func TestCMPSetsCarryWhenRegGreaterEqual(t *testing.T) {
	a := newTestApu()
	a.A = 0x10
	a.loadProgram(0x0200, 0x68, 0x10) // CMP A,#$10
	a.Step()
	if !a.P.C || !a.P.Z {
		t.Fatalf("C=%v Z=%v, want both true for equal operands", a.P.C, a.P.Z)
	}
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	a := newTestApu()
	a.P.Z = true
	a.loadProgram(0x0200, 0xF0, 0x05) // BEQ +5
	a.Step()
	if a.PC != 0x0207 {
		t.Fatalf("PC=%#x, want 0x0207", a.PC)
	}

	a.P.Z = false
	a.loadProgram(0x0300, 0xF0, 0x05) // BEQ +5, not taken
	a.Step()
	if a.PC != 0x0302 {
		t.Fatalf("PC=%#x, want 0x0302", a.PC)
	}
}

func TestCALLRETRoundTrip(t *testing.T) {
	a := newTestApu()
	a.SP = 0xFF
	a.loadProgram(0x0200, 0x3F, 0x00, 0x04) // CALL $0400
	a.ram[0x0400] = 0x6F                    // RET
	a.Step()
	if a.PC != 0x0400 {
		t.Fatalf("PC=%#x after CALL, want 0x0400", a.PC)
	}
	a.Step()
	if a.PC != 0x0203 {
		t.Fatalf("PC=%#x after RET, want 0x0203", a.PC)
	}
}

func TestTCALLDispatchesThroughVectorTable(t *testing.T) {
	a := newTestApu()
	a.SP = 0xFF
	a.ram[0xFFDE] = 0x00
	a.ram[0xFFDF] = 0x05 // TCALL 0 vector -> 0x0500
	a.loadProgram(0x0200, 0x01)
	a.Step()
	if a.PC != 0x0500 {
		t.Fatalf("PC=%#x, want 0x0500", a.PC)
	}
}

func TestPushPullPSWRoundTrip(t *testing.T) {
	a := newTestApu()
	a.SP = 0xFF
	a.P.C = true
	a.P.N = true
	a.loadProgram(0x0200, 0x0D, 0x60, 0x8E) // PUSH PSW ; CLRC ; POP PSW
	a.Step()
	a.Step()
	if a.P.C {
		t.Fatalf("expected CLRC to clear carry before restore")
	}
	a.Step()
	if !a.P.C || !a.P.N {
		t.Fatalf("C=%v N=%v after POP PSW, want both true restored", a.P.C, a.P.N)
	}
}

func TestSET1CLR1BitOps(t *testing.T) {
	a := newTestApu()
	a.ram[0x20] = 0x00
	a.loadProgram(0x0200, 0x22, 0x20) // SET1 $20.1
	a.Step()
	if a.ram[0x20] != 0x02 {
		t.Fatalf("ram[0x20]=%#x, want 0x02", a.ram[0x20])
	}
	a.loadProgram(0x0202, 0x32, 0x20) // CLR1 $20.1
	a.Step()
	if a.ram[0x20] != 0x00 {
		t.Fatalf("ram[0x20]=%#x, want 0x00", a.ram[0x20])
	}
}

func TestBBSBranchesWhenBitSet(t *testing.T) {
	a := newTestApu()
	a.ram[0x20] = 0x04 // bit 2 set
	a.loadProgram(0x0200, 0x43, 0x20, 0x05) // BBS $20.2, +5
	a.Step()
	if a.PC != 0x0208 {
		t.Fatalf("PC=%#x, want 0x0208", a.PC)
	}
}

func TestMOV1CopiesCarryToMemoryBit(t *testing.T) {
	a := newTestApu()
	a.P.C = true
	a.ram[0x20] = 0x00
	// operand encodes bit 3 (hh>>5==3) at address 0x20: hh = 0x20|(3<<5)=0x60, ll=0x20
	a.loadProgram(0x0200, 0xCA, 0x20, 0x60) // MOV1 m.3,C
	a.Step()
	if a.ram[0x20] != 0x08 {
		t.Fatalf("ram[0x20]=%#x, want 0x08", a.ram[0x20])
	}
}

func TestMULProducesYAProduct(t *testing.T) {
	a := newTestApu()
	a.Y = 0x10
	a.A = 0x10
	a.loadProgram(0x0200, 0xCF)
	a.Step()
	if a.Y != 0x01 || a.A != 0x00 {
		t.Fatalf("Y=%#x A=%#x, want Y=1 A=0 (0x10*0x10=0x100)", a.Y, a.A)
	}
}

func TestDIVByZeroSetsOverflowAndSaturates(t *testing.T) {
	a := newTestApu()
	a.Y, a.A, a.X = 0x01, 0x00, 0x00
	a.loadProgram(0x0200, 0x9E)
	a.Step()
	if a.A != 0xFF || !a.P.V {
		t.Fatalf("A=%#x V=%v, want A=0xff V=true on divide by zero", a.A, a.P.V)
	}
}

func TestXCNSwapsNibbles(t *testing.T) {
	a := newTestApu()
	a.A = 0x12
	a.loadProgram(0x0200, 0x9F)
	a.Step()
	if a.A != 0x21 {
		t.Fatalf("A=%#x, want 0x21", a.A)
	}
}

func TestSleepAndStopHaltStepping(t *testing.T) {
	a := newTestApu()
	a.loadProgram(0x0200, 0xEF, 0xE8, 0xFF) // SLEEP ; MOV A,#$FF (should never execute)
	a.Step()
	if !a.Stopped() {
		t.Fatalf("expected SLEEP to halt the audio CPU")
	}
	before := a.A
	a.Step()
	if a.A != before {
		t.Fatalf("Step after SLEEP should be a no-op")
	}
}

func TestCatchUpToAdvancesExactlyEnoughInstructions(t *testing.T) {
	a := newTestApu()
	for i := 0; i < 10; i++ {
		a.ram[0x0200+i] = 0x00 // NOP
	}
	a.CatchUpTo(72)
	if a.cycles != 72 {
		t.Fatalf("cycles=%d, want exactly 72 (three 24-cycle instructions)", a.cycles)
	}
}
