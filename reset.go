// reset.go - the Restart control message

package cpu8080

// restart implements spec.md §4.4's Restart message: zero RAM, zero
// registers (including SP, PC and flags), and clear the interrupt
// latch. The control channel itself is left open. Grounded on the
// per-component Reset() methods in component_reset.go, generalized
// from "restore constructor defaults" to the CPU's own state.
func (c *CPU) restart() {
	c.mem.Zero()
	c.regs.Zero()
	c.pacer.accumulated = 0
}
