package cpu

import "testing"

// instrTest drives one instruction through Step() from a fresh reset and
// checks the resulting register/flag state, in the vein of a classic
// opcode-table regression test.
type instrTest struct {
	name     string
	setup    func(c *CPU, h *mockHooks)
	code     []uint8 // bytes placed at the reset PC
	wantA    uint16
	checkA   bool
	wantP    func(p Flags) bool
	wantDesc string
}

func runInstrTest(t *testing.T, tt instrTest) *CPU {
	t.Helper()
	c, h := newTestCPU(0x8000)
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), tt.code...)
	if tt.setup != nil {
		tt.setup(c, h)
	}
	c.Step()
	if tt.checkA && uint16(c.Reg.A) != tt.wantA {
		t.Errorf("%s: A = %#04x, want %#04x", tt.name, uint16(c.Reg.A), tt.wantA)
	}
	if tt.wantP != nil && !tt.wantP(c.Reg.P) {
		t.Errorf("%s: P = %+v, failed flag check (%s)", tt.name, c.Reg.P, tt.wantDesc)
	}
	return c
}

func TestLDAImmediate(t *testing.T) {
	tests := []instrTest{
		{
			name: "zero sets Z",
			code: []uint8{0xA9, 0x00},
			setup: func(c *CPU, h *mockHooks) {
				c.Reg.P.M = true
				c.Reg.A = 0xFF
			},
			checkA: true, wantA: 0x00,
			wantP: func(p Flags) bool { return p.Z && !p.N },
		},
		{
			name: "negative sets N",
			code: []uint8{0xA9, 0x80},
			setup: func(c *CPU, h *mockHooks) {
				c.Reg.P.M = true
			},
			checkA: true, wantA: 0x80,
			wantP: func(p Flags) bool { return p.N && !p.Z },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { runInstrTest(t, tt) })
	}
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.M = true
	c.Reg.P.D = false
	c.Reg.A = 0x7F // +127
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x69, 0x01) // ADC #$01
	c.Step()

	if c.Reg.A.Lo() != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", c.Reg.A.Lo())
	}
	if !c.Reg.P.V {
		t.Error("V not set, want overflow from 127+1")
	}
	if !c.Reg.P.N {
		t.Error("N not set, want negative result")
	}
	if c.Reg.P.C {
		t.Error("C set, want no carry out of an 8-bit add that doesn't exceed 0xFF")
	}
}

func TestADCDecimalMode(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.M = true
	c.Reg.P.D = true
	c.Reg.A = 0x15 // BCD 15
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x69, 0x27) // ADC #$27 (BCD 27)
	c.Step()

	if c.Reg.A.Lo() != 0x42 {
		t.Fatalf("A = %#02x, want BCD 0x42 (15+27=42)", c.Reg.A.Lo())
	}
	if c.Reg.P.C {
		t.Error("C set, want no decimal carry out of 15+27")
	}
}

func TestADCDecimalModeCarriesOut(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.M = true
	c.Reg.P.D = true
	c.Reg.A = 0x99
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x69, 0x01) // ADC #$01
	c.Step()

	if c.Reg.A.Lo() != 0x00 {
		t.Fatalf("A = %#02x, want BCD 0x00 (99+1 wraps)", c.Reg.A.Lo())
	}
	if !c.Reg.P.C {
		t.Error("C not set, want decimal carry out of 99+1")
	}
}

func TestSBCBinaryBorrow(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.M = true
	c.Reg.P.D = false
	c.Reg.P.C = true // no borrow going in
	c.Reg.A = 0x00
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xE9, 0x01) // SBC #$01
	c.Step()

	if c.Reg.A.Lo() != 0xFF {
		t.Fatalf("A = %#02x, want 0xFF (0-1 wraps)", c.Reg.A.Lo())
	}
	if c.Reg.P.C {
		t.Error("C set, want borrow out of 0-1")
	}
}

func TestRepSepAlwaysOneByte(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.E = false
	c.Reg.P.M = false
	c.Reg.P.C = false
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xC2, 0x30) // REP #$30
	c.Step()

	if c.Reg.P.M || c.Reg.P.XB {
		t.Fatalf("P = %+v, want M and XB cleared by REP #$30", c.Reg.P)
	}
	if uint16(c.Reg.PC) != 0x8002 {
		t.Errorf("PC = %#04x, want 0x8002 (REP always consumes exactly one operand byte)", uint16(c.Reg.PC))
	}

	c.Reg.PC = 0x8000
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xE2, 0x30) // SEP #$30
	c.Step()
	if !c.Reg.P.M || !c.Reg.P.XB {
		t.Fatalf("P = %+v, want M and XB set by SEP #$30", c.Reg.P)
	}
}

func TestXCESwapsCarryAndEmulation(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.E = true
	c.Reg.P.C = false
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xFB) // XCE
	c.Step()

	if c.Reg.P.E {
		t.Error("E still set after XCE, want native mode")
	}
	if !c.Reg.P.C {
		t.Error("C not set after XCE, want old E (1) moved into C")
	}
}

func TestStackPushPullRoundTrip(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.M = true
	c.Reg.A = 0x42
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x48) // PHA
	c.Step()
	c.Reg.A = 0x00
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x68) // PLA
	c.Step()

	if c.Reg.A.Lo() != 0x42 {
		t.Fatalf("A = %#02x after PHA/PLA round trip, want 0x42", c.Reg.A.Lo())
	}
}

func TestPEIDoesNotApplyZeroPageWrap(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.E = true
	c.Reg.D = 0
	h.setBytes(0x0000FF, 0x34, 0x12) // would read back 0x1234 if not wrapped
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xD4, 0xFF) // PEI $FF

	c.Step()

	lo := h.Read(uint32(c.Reg.S) + 1)
	hi := h.Read(uint32(c.Reg.S) + 2)
	if got := uint16(hi)<<8 | uint16(lo); got != 0x1234 {
		t.Fatalf("PEI pushed %#04x, want 0x1234 (dp fetch must not zero-page wrap)", got)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, h := newTestCPU(0x8000)
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x20, 0x00, 0x90) // JSR $9000
	h.setBytes(0x009000, 0x60)                                        // RTS
	c.Step()
	if uint16(c.Reg.PC) != 0x9000 {
		t.Fatalf("PC = %#04x after JSR, want 0x9000", uint16(c.Reg.PC))
	}
	c.Step()
	if uint16(c.Reg.PC) != 0x8003 {
		t.Fatalf("PC = %#04x after RTS, want 0x8003 (return address + 1)", uint16(c.Reg.PC))
	}
}

func TestJSLRTLRoundTripPreservesBank(t *testing.T) {
	c, h := newTestCPU(0x8000)
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x22, 0x00, 0x00, 0x01) // JSL $010000
	h.setBytes(0x010000, 0x6B)                                              // RTL
	c.Step()
	if c.Reg.K != 0x01 || uint16(c.Reg.PC) != 0x0000 {
		t.Fatalf("K:PC = %02X:%04X after JSL, want 01:0000", c.Reg.K, uint16(c.Reg.PC))
	}
	c.Step()
	if c.Reg.K != 0x00 || uint16(c.Reg.PC) != 0x8004 {
		t.Fatalf("K:PC = %02X:%04X after RTL, want 00:8004", c.Reg.K, uint16(c.Reg.PC))
	}
}

func TestBranchTaken(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.Z = true
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xF0, 0x10) // BEQ +16
	c.Step()
	if uint16(c.Reg.PC) != 0x8012 {
		t.Fatalf("PC = %#04x, want 0x8012 (0x8002 + 0x10)", uint16(c.Reg.PC))
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, h := newTestCPU(0x8000)
	c.Reg.P.Z = false
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0xF0, 0x10) // BEQ +16
	c.Step()
	if uint16(c.Reg.PC) != 0x8002 {
		t.Fatalf("PC = %#04x, want 0x8002 (fallthrough)", uint16(c.Reg.PC))
	}
}

func TestWDMConsumesOperandByte(t *testing.T) {
	c, h := newTestCPU(0x8000)
	h.setBytes(uint32(c.Reg.K)<<16|uint32(c.Reg.PC), 0x42, 0xAA)
	c.Step()
	if uint16(c.Reg.PC) != 0x8002 {
		t.Fatalf("PC = %#04x, want 0x8002 (WDM consumes its operand byte)", uint16(c.Reg.PC))
	}
}
