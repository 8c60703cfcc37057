package mailbox

import "testing"

func TestCPUToAPUDirection(t *testing.T) {
	m := New()
	m.CPUWrite(2, 0x42)
	if got := m.APURead(2); got != 0x42 {
		t.Fatalf("APURead(2)=%#x, want 0x42", got)
	}
}

func TestAPUToCPUDirection(t *testing.T) {
	m := New()
	m.APUWrite(0, 0xAA)
	if got := m.CPURead(0); got != 0xAA {
		t.Fatalf("CPURead(0)=%#x, want 0xaa", got)
	}
}

func TestPortIndexWraps(t *testing.T) {
	m := New()
	m.CPUWrite(4, 0x11) // wraps to port 0
	if got := m.APURead(0); got != 0x11 {
		t.Fatalf("port index should wrap mod 4, got %#x", got)
	}
}

func TestLastWriteWinsWithNoInterlock(t *testing.T) {
	m := New()
	m.CPUWrite(1, 0x01)
	m.CPUWrite(1, 0x02)
	if got := m.APURead(1); got != 0x02 {
		t.Fatalf("APURead(1)=%#x, want the last write 0x02", got)
	}
}
