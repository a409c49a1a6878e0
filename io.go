// io.go - the host-supplied port I/O callbacks

package cpu8080

// IOHost is the abstract I/O collaborator spec.md §1 calls out as an
// external component: two callbacks the host wires to its own port
// map. Grounded on the Z80Bus interface's In/Out methods in the
// teacher and on SwiftCallbacks{input, output} in the original Rust
// emulator's invader.rs.
type IOHost interface {
	// In reads the named input port into the accumulator (IN opcode).
	In(port byte) byte
	// Out writes the accumulator to the named output port (OUT opcode).
	Out(port byte, value byte)
}

// NullIO is a host that answers every IN with 0 and discards every OUT,
// useful for the CP/M diagnostic harness and for tests that don't
// exercise port I/O.
type NullIO struct{}

func (NullIO) In(byte) byte    { return 0 }
func (NullIO) Out(byte, byte) {}
