// Package cartridge implements ROM loading and address mapping for SNES
// cartridges: LoROM and HiROM layouts plus battery-backed SRAM sizing.
package cartridge

import (
	"fmt"
	"io"
	"os"
)

// MappingMode is the cartridge's address layout, read from the internal
// header's mapping byte at offset 0x15 (LoROM) or 0x15+0x8000 (HiROM).
type MappingMode uint8

const (
	LoROM MappingMode = iota
	HiROM
	// ExHiROM is a third cartridge layout (4 MiB+ HiROM images with the
	// second half mapped into banks 0x00-0x3F). The bus mapper in this
	// core only resolves LoROM and HiROM; New rejects it outright rather
	// than silently mis-mapping a ROM it cannot address.
	ExHiROM
)

func (m MappingMode) String() string {
	switch m {
	case HiROM:
		return "HiROM"
	case ExHiROM:
		return "ExHiROM"
	default:
		return "LoROM"
	}
}

// Cartridge holds the raw ROM image, its mapping mode, and the save RAM
// size its header declares. The save RAM itself is not cartridge state:
// the bus owns WRAM, SRAM and ROM storage exclusively, so a Cartridge
// only tells the bus how big to allocate.
type Cartridge struct {
	rom      []uint8
	mapping  MappingMode
	sramSize int
	title    string
}

// headerOffset returns the byte offset of the internal header (its
// 21-byte title, followed by the mapping byte at +0x15, SRAM size at
// +0x18 and complement/checksum at +0x1C/+0x1E) for a given mapping mode.
// The offset assumes any 512-byte copier header has already been
// stripped (Load detects one by rom length mod 0x400).
func headerOffset(mapping MappingMode) int {
	if mapping == HiROM {
		return 0xFFC0
	}
	return 0x7FC0
}

// New builds a Cartridge from a raw ROM image (with any 512-byte copier
// header already stripped) and an explicit mapping mode. Mapping
// detection from the header bytes is the caller's job (see Detect);
// keeping the two separate lets tests build a Cartridge directly from a
// synthetic ROM without fabricating a full header.
func New(rom []uint8, mapping MappingMode, sramSize int) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, fmt.Errorf("cartridge: empty ROM image")
	}
	if mapping == ExHiROM {
		return nil, fmt.Errorf("cartridge: ExHiROM mapping is not supported")
	}
	c := &Cartridge{rom: rom, mapping: mapping, sramSize: sramSize}
	off := headerOffset(mapping)
	if off+21 <= len(rom) {
		end := off + 21
		for end > off && (rom[end-1] == 0 || rom[end-1] == ' ') {
			end--
		}
		c.title = string(rom[off:end])
	}
	return c, nil
}

// LoadFile reads a ROM image from disk, stripping a copier header if
// present, and detects its mapping mode from the internal header.
func LoadFile(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads a ROM image from r and detects its mapping mode.
func Load(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%0x400 == 0x200 {
		data = data[0x200:] // strip a copier header
	}
	mapping, err := Detect(data)
	if err != nil {
		return nil, err
	}
	return New(data, mapping, sramSizeFromHeader(data, mapping))
}

// Detect guesses LoROM vs HiROM by scoring each candidate header's
// checksum/complement pair and mapping-mode nibble, the same heuristic
// real SNES loaders use when a ROM carries no reliable out-of-band tag.
func Detect(rom []uint8) (MappingMode, error) {
	loScore := headerScore(rom, LoROM)
	hiScore := headerScore(rom, HiROM)
	if loScore == 0 && hiScore == 0 {
		return LoROM, fmt.Errorf("cartridge: could not identify LoROM/HiROM header, defaulting to LoROM")
	}
	if hiScore > loScore {
		return HiROM, nil
	}
	return LoROM, nil
}

func headerScore(rom []uint8, mapping MappingMode) int {
	off := headerOffset(mapping)
	if off+0x20 > len(rom) {
		return 0
	}
	score := 0
	modeByte := rom[off+0x15]
	if mapping == LoROM && modeByte&0x01 == 0 {
		score++
	}
	if mapping == HiROM && modeByte&0x01 == 1 {
		score++
	}
	checksum := uint16(rom[off+0x1E]) | uint16(rom[off+0x1F])<<8
	complement := uint16(rom[off+0x1C]) | uint16(rom[off+0x1D])<<8
	if checksum^complement == 0xFFFF {
		score += 2
	}
	return score
}

func sramSizeFromHeader(rom []uint8, mapping MappingMode) int {
	off := headerOffset(mapping)
	if off+0x18 >= len(rom) {
		return 0
	}
	shift := rom[off+0x18]
	if shift == 0 {
		return 0
	}
	return 1 << (shift + 10)
}

// Mapping reports the cartridge's address layout.
func (c *Cartridge) Mapping() MappingMode { return c.mapping }

// Title returns the 21-character internal ROM title.
func (c *Cartridge) Title() string { return c.title }

// ReadROM returns the ROM byte at a mapping-relative offset, wrapping to
// the ROM's actual size (real cartridges mirror a power-of-two image
// across an address range larger than its physical contents).
func (c *Cartridge) ReadROM(offset uint32) uint8 {
	if len(c.rom) == 0 {
		return 0
	}
	return c.rom[offset%uint32(len(c.rom))]
}

// SRAMSize reports the size of battery-backed save RAM this cartridge's
// header declares, in bytes. The bus allocates and owns the actual
// storage (see memory.Sram).
func (c *Cartridge) SRAMSize() int { return c.sramSize }

// ResolveROM maps a CPU-bus address to a ROM byte offset under this
// cartridge's mapping mode. It returns ok=false for addresses that do not
// land on ROM under this mapping (callers fall through to other bus
// regions in that case).
func (c *Cartridge) ResolveROM(addr uint32) (offset uint32, ok bool) {
	bank := uint8(addr >> 16)
	off := uint16(addr)

	switch c.mapping {
	case LoROM:
		if bank&0x7F < 0x40 && off < 0x8000 {
			return 0, false // system/IO region, not ROM
		}
		romBank := uint32(bank & 0x7F)
		return romBank*0x8000 + uint32(off&0x7FFF), true

	default: // HiROM
		if bank&0x7F < 0x40 && off < 0x8000 {
			return 0, false
		}
		return (uint32(bank&0x3F) << 16) | uint32(off), true
	}
}
