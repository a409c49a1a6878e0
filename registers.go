// registers.go - the 8080 register file, PC/SP and register-pair views

package cpu8080

// Registers holds the seven scratchpad registers, the two 16-bit
// pointers and the interrupt-enable latch. Register pairs (BC, DE, HL,
// PSW) are computed views over the byte registers rather than separate
// storage (spec.md §9 "Register-pair addressing"), matching the
// teacher's BC()/SetBC()-style accessors on CPU_Z80.
type Registers struct {
	A, B, C, D, E, H, L byte

	SP, PC uint16

	Flags Flags

	// InterruptEnabled is the EI/DI latch. RST acceptance clears it
	// unless the interrupt message says otherwise (spec.md §4.4).
	InterruptEnabled bool
}

// pair constructs a 16-bit value from two bytes, high byte first,
// per spec.md §3's "higher-addressed letter as the high byte" rule.
func pair(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func unpair(v uint16) (hi, lo byte) {
	return byte(v >> 8), byte(v)
}

func (r *Registers) BC() uint16      { return pair(r.B, r.C) }
func (r *Registers) SetBC(v uint16)  { r.B, r.C = unpair(v) }
func (r *Registers) DE() uint16      { return pair(r.D, r.E) }
func (r *Registers) SetDE(v uint16)  { r.D, r.E = unpair(v) }
func (r *Registers) HL() uint16      { return pair(r.H, r.L) }
func (r *Registers) SetHL(v uint16)  { r.H, r.L = unpair(v) }
func (r *Registers) PSW() uint16     { return pair(r.A, r.Flags.Byte()) }
func (r *Registers) SetPSW(v uint16) {
	hi, lo := unpair(v)
	r.A = hi
	r.Flags.SetByte(lo)
}

// Zero resets every register to its power-on value (Restart message,
// spec.md §4.4), mirroring the teacher's per-component Reset methods
// in component_reset.go.
func (r *Registers) Zero() {
	*r = Registers{}
}
