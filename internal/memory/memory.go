// Package memory implements the SNES console's own RAM: the 128 KiB of
// work RAM every mapping exposes at banks 0x7E-0x7F plus its auto-
// incrementing MMIO access port, and the battery-backed cartridge SRAM.
package memory

// WRamSize is the fixed size of the console's work RAM.
const WRamSize = 128 * 1024

// WRam is the 128 KiB of work RAM shared by every cartridge mapping. Besides
// the direct 0x7E0000-0x7FFFFF window the bus resolves onto it directly, it
// is reachable through the WMDATA/WMADDx port at 0x2180-0x2183: writing the
// three address bytes latches a 17-bit pointer, and every WMDATA access
// (read or write) auto-increments that pointer afterward.
type WRam struct {
	data [WRamSize]uint8
	port uint32 // 17-bit latched pointer for the WMDATA port
}

// New creates a zero-filled work RAM bank.
func New() *WRam {
	return &WRam{}
}

// Read returns the byte at a direct 17-bit work-RAM address (addr & 0x1FFFF).
func (w *WRam) Read(addr uint32) uint8 {
	return w.data[addr&(WRamSize-1)]
}

// Write stores a byte at a direct 17-bit work-RAM address.
func (w *WRam) Write(addr uint32, value uint8) {
	w.data[addr&(WRamSize-1)] = value
}

// SetPortAddress programs the WMADDL/WMADDM/WMADDH latch (0x2181-0x2183).
// Only the low 17 bits are meaningful.
func (w *WRam) SetPortAddress(addr uint32) {
	w.port = addr & 0x1FFFF
}

// PortAddress returns the current WMDATA pointer, for WMADDx readback.
func (w *WRam) PortAddress() uint32 {
	return w.port
}

// PortRead reads through the WMDATA port (0x2180) and advances the pointer.
func (w *WRam) PortRead() uint8 {
	v := w.Read(w.port)
	w.port = (w.port + 1) & 0x1FFFF
	return v
}

// PortWrite writes through the WMDATA port (0x2180) and advances the pointer.
func (w *WRam) PortWrite(value uint8) {
	w.Write(w.port, value)
	w.port = (w.port + 1) & 0x1FFFF
}

// Sram is battery-backed cartridge memory, up to 512 KiB. The host loads its
// initial contents before construction and may read them back at any time
// to persist them; the core never sizes or formats the save file itself.
type Sram struct {
	data []uint8
}

// NewSram allocates save RAM of the given size in bytes. A size of zero is
// valid for cartridges without battery-backed memory; all accesses then
// behave as open bus (see Read/Write).
func NewSram(size int) *Sram {
	return &Sram{data: make([]uint8, size)}
}

// Read returns a byte from save RAM, wrapping within its size. Reads against
// a zero-length Sram return 0, the same as any other unmapped bus region.
func (s *Sram) Read(addr uint32) uint8 {
	if len(s.data) == 0 {
		return 0
	}
	return s.data[int(addr)%len(s.data)]
}

// Write stores a byte to save RAM. Writes against a zero-length Sram are
// silently dropped.
func (s *Sram) Write(addr uint32, value uint8) {
	if len(s.data) == 0 {
		return
	}
	s.data[int(addr)%len(s.data)] = value
}

// Bytes exposes the whole save RAM as a mutable byte view so the host can
// load or persist it on demand.
func (s *Sram) Bytes() []uint8 {
	return s.data
}

// Len reports the configured SRAM size in bytes.
func (s *Sram) Len() int {
	return len(s.data)
}
