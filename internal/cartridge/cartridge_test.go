package cartridge

import (
	"bytes"
	"testing"
)

func buildLoROM(title string) []uint8 {
	rom := make([]uint8, 0x8000)
	header := 0x7FC0
	copy(rom[header:], title)
	rom[header+0x15] = 0x20 // LoROM mode byte
	rom[header+0x18] = 3    // sram shift -> 1<<(3+10) = 8KiB
	rom[header+0x1C] = 0x00
	rom[header+0x1D] = 0x00
	rom[header+0x1E] = 0xFF
	rom[header+0x1F] = 0xFF
	return rom
}

func TestDetectPrefersValidChecksumMapping(t *testing.T) {
	rom := buildLoROM("TEST GAME")
	mapping, err := Detect(rom)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if mapping != LoROM {
		t.Fatalf("Detect() = %v, want LoROM", mapping)
	}
}

func TestLoadStripsCopierHeaderAndReadsTitle(t *testing.T) {
	rom := buildLoROM("SUPER TEST")
	withCopier := append(make([]uint8, 0x200), rom...)
	c, err := Load(bytes.NewReader(withCopier))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Title(); got != "SUPER TEST" {
		t.Fatalf("Title()=%q, want %q", got, "SUPER TEST")
	}
	if got := c.SRAMSize(); got != 8*1024 {
		t.Fatalf("SRAMSize()=%d, want 8192", got)
	}
}

func TestResolveROMLoROMExcludesSystemBank(t *testing.T) {
	c, _ := New(make([]uint8, 0x8000), LoROM, 0)
	if _, ok := c.ResolveROM(0x002000); ok {
		t.Fatal("bank 0 offset 0x2000 is I/O space, should not resolve to ROM")
	}
	off, ok := c.ResolveROM(0x008000)
	if !ok || off != 0 {
		t.Fatalf("ResolveROM(0x008000) = (%#x, %v), want (0, true)", off, ok)
	}
}

func TestResolveROMHiROMMapsFullBank(t *testing.T) {
	c, _ := New(make([]uint8, 0x400000), HiROM, 0)
	off, ok := c.ResolveROM(0xC10000)
	if !ok || off != 0x010000 {
		t.Fatalf("ResolveROM(0xC10000) = (%#x, %v), want (0x10000, true)", off, ok)
	}
}

func TestNewRejectsExHiROM(t *testing.T) {
	_, err := New(make([]uint8, 0x8000), ExHiROM, 0)
	if err == nil {
		t.Fatal("New() with ExHiROM should fail; it is the core's one mandated construction error")
	}
}

func TestReadROMWrapsToImageSize(t *testing.T) {
	rom := make([]uint8, 0x100)
	rom[0] = 0x55
	c, _ := New(rom, LoROM, 0)
	if got := c.ReadROM(0x100); got != 0x55 {
		t.Fatalf("ReadROM(0x100)=%#x, want wraparound to rom[0]=0x55", got)
	}
}
