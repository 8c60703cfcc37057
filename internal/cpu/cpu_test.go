package cpu

import "testing"

func TestFlagsBitsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits uint8
	}{
		{"zero", 0x00},
		{"all", 0xFF},
		{"carryOnly", 0x01},
		{"negativeOnly", 0x80},
		{"mixed", 0x6D},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flags
			f.FromBits(tt.bits)
			if got := f.ToBits(); got != tt.bits {
				t.Errorf("round trip %#02x -> %#02x, want %#02x", tt.bits, got, tt.bits)
			}
		})
	}
}

func TestDefaultFlags(t *testing.T) {
	f := DefaultFlags()
	if !f.E || !f.M || !f.XB || !f.I {
		t.Errorf("DefaultFlags = %+v, want E,M,XB,I all set", f)
	}
	if f.C || f.Z || f.D || f.V || f.N {
		t.Errorf("DefaultFlags = %+v, want remaining flags clear", f)
	}
}

func TestReset(t *testing.T) {
	c, h := newTestCPU(0x8000)

	if c.Reg.K != 0 || uint16(c.Reg.PC) != 0x8000 {
		t.Errorf("PC = %02X:%04X, want 00:8000", c.Reg.K, uint16(c.Reg.PC))
	}
	if uint16(c.Reg.S) != 0x01FF {
		t.Errorf("S = %#04x, want 0x01FF", uint16(c.Reg.S))
	}
	if !c.Reg.P.E || !c.Reg.P.M || !c.Reg.P.XB || !c.Reg.P.I {
		t.Errorf("P after reset = %+v, want emulation mode with M/XB/I set", c.Reg.P)
	}
	if len(h.acked) != 1 || h.acked[0] != Reset {
		t.Errorf("acked = %v, want [Reset]", h.acked)
	}
}

func TestApplyInvariantsEmulationForcesWidths(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	c.Reg.P.M = false
	c.Reg.P.XB = false
	c.Reg.X = 0x1234
	c.Reg.Y = 0x5678
	c.applyInvariants()

	if !c.Reg.P.M || !c.Reg.P.XB {
		t.Fatalf("P = %+v, want M and XB forced set in emulation mode", c.Reg.P)
	}
	if c.Reg.X.Hi() != 0 || c.Reg.Y.Hi() != 0 {
		t.Errorf("X=%#04x Y=%#04x, want high bytes cleared", uint16(c.Reg.X), uint16(c.Reg.Y))
	}
	if c.Reg.S.Hi() != 0x01 {
		t.Errorf("S high byte = %#02x, want 0x01", c.Reg.S.Hi())
	}
}

func TestApplyInvariantsNativeXBClearsIndexHighBytes(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	c.Reg.P.E = false
	c.Reg.P.XB = true
	c.Reg.X = 0x1234
	c.Reg.Y = 0x5678
	c.applyInvariants()

	if c.Reg.X.Hi() != 0 || c.Reg.Y.Hi() != 0 {
		t.Errorf("X=%#04x Y=%#04x, want high bytes cleared when XB set in native mode", uint16(c.Reg.X), uint16(c.Reg.Y))
	}
}

func TestApplyInvariantsNativeWideLeavesIndexAlone(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	c.Reg.P.E = false
	c.Reg.P.XB = false
	c.Reg.X = 0x1234
	c.applyInvariants()

	if uint16(c.Reg.X) != 0x1234 {
		t.Errorf("X = %#04x, want untouched when XB clear", uint16(c.Reg.X))
	}
}

func TestRegister16LoHi(t *testing.T) {
	var r Register16 = 0x1234
	if r.Lo() != 0x34 || r.Hi() != 0x12 {
		t.Fatalf("Lo/Hi of %#04x = %#02x/%#02x, want 0x34/0x12", uint16(r), r.Lo(), r.Hi())
	}
	r.SetLo(0xAB)
	if uint16(r) != 0x12AB {
		t.Errorf("after SetLo = %#04x, want 0x12AB", uint16(r))
	}
	r.SetHi(0xCD)
	if uint16(r) != 0xCDAB {
		t.Errorf("after SetHi = %#04x, want 0xCDAB", uint16(r))
	}
}
