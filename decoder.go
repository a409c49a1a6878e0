// decoder.go - shared fetch/stack helpers and dispatch-table assembly

package cpu8080

// fetch8 reads the byte at PC and advances PC by one. Used for
// single-byte immediate operands (MVI, ADI, ...).
func (c *CPU) fetch8() (byte, error) {
	v, err := c.mem.Load(c.regs.PC)
	if err != nil {
		return 0, err
	}
	c.regs.PC++
	return v, nil
}

// fetch16 reads a little-endian 16-bit immediate (low byte first, per
// spec.md §6) and advances PC by two.
func (c *CPU) fetch16() (uint16, error) {
	lo, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	return pair(hi, lo), nil
}

// pushWord stores a 16-bit value on the stack, high byte at the higher
// address (spec.md §6), and decrements SP by two.
func (c *CPU) pushWord(v uint16) error {
	hi, lo := unpair(v)
	if err := c.mem.Store(c.regs.SP-1, hi); err != nil {
		return err
	}
	if err := c.mem.Store(c.regs.SP-2, lo); err != nil {
		return err
	}
	c.regs.SP -= 2
	return nil
}

// popWord loads a 16-bit value from the stack and increments SP by two.
func (c *CPU) popWord() (uint16, error) {
	lo, err := c.mem.Load(c.regs.SP)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Load(c.regs.SP + 1)
	if err != nil {
		return 0, err
	}
	c.regs.SP += 2
	return pair(hi, lo), nil
}

// reg8 returns a pointer to the 8-bit register named by the 3-bit
// field the opcode encodes in DDD/SSS position (000=B ... 111=A), or
// nil for 110=M (the caller must special-case the HL-memory operand).
// Grounded on the teacher's regs8 [8]*byte lookup array in CPU_Z80.
func (c *CPU) reg8(code byte) *byte {
	switch code & 0x07 {
	case 0:
		return &c.regs.B
	case 1:
		return &c.regs.C
	case 2:
		return &c.regs.D
	case 3:
		return &c.regs.E
	case 4:
		return &c.regs.H
	case 5:
		return &c.regs.L
	case 7:
		return &c.regs.A
	default:
		return nil
	}
}

// readOperand returns the value named by an 8080 SSS/DDD field,
// fetching through HL for code 6 (M).
func (c *CPU) readOperand(code byte) (byte, error) {
	if r := c.reg8(code); r != nil {
		return *r, nil
	}
	return c.mem.Load(c.regs.HL())
}

// writeOperand stores into the register or HL-indirect memory cell
// named by an 8080 SSS/DDD field.
func (c *CPU) writeOperand(code byte, value byte) error {
	if r := c.reg8(code); r != nil {
		*r = value
		return nil
	}
	return c.mem.Store(c.regs.HL(), value)
}

// nop is the shared no-op used both for the real 0x00 NOP and for the
// undocumented NOP-equivalent opcodes spec.md §4.3 requires: each still
// carries its table-specified (non-uniform) cycle cost even though it
// performs no state change.
func nop(c *CPU) error { return nil }

// initOps builds the 256-entry dispatch table. Every slot is populated
// (spec.md: "the table is total"); family-specific opcodes are filled
// in by the init* helpers in opcodes_*.go, grounded on the teacher's
// initBaseOps/initCBOps/... split across multiple files per opcode
// family in cpu_z80.go.
func (c *CPU) initOps() {
	for i := range c.ops {
		c.ops[i] = nop
	}

	c.initDataOps()
	c.initALUOps()
	c.initControlOps()
	c.initMiscOps()
}
