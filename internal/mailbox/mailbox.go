// Package mailbox implements the four-byte bidirectional register pair
// linking the main CPU and the audio CPU. There is no FIFO and no
// interlock: the last write wins, and a read always returns whatever the
// other side most recently wrote.
package mailbox

// Mailbox is eight bytes total: four the main CPU writes and the audio
// CPU reads, and four the audio CPU writes and the main CPU reads.
type Mailbox struct {
	toAPU [4]uint8
	toCPU [4]uint8
}

// New returns a zeroed mailbox, matching the hardware's power-on state.
func New() *Mailbox {
	return &Mailbox{}
}

// CPUWrite stores a byte the audio CPU will observe on its next read of
// port i (0-3, corresponding to 0x2140-0x2143 on the main bus).
func (m *Mailbox) CPUWrite(port int, v uint8) { m.toAPU[port&3] = v }

// CPURead returns the most recent byte the audio CPU wrote to port i.
func (m *Mailbox) CPURead(port int) uint8 { return m.toCPU[port&3] }

// APUWrite stores a byte the main CPU will observe on its next read of
// port i (0-3, corresponding to 0x00F4-0x00F7 on the audio CPU's bus).
func (m *Mailbox) APUWrite(port int, v uint8) { m.toCPU[port&3] = v }

// APURead returns the most recent byte the main CPU wrote to port i.
func (m *Mailbox) APURead(port int) uint8 { return m.toAPU[port&3] }
