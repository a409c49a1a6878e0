// opcodes_misc.go - stack push/pop of register pairs, port I/O, the
// interrupt-enable flip-flop and halt.

package cpu8080

type pushPopPair struct {
	code byte
	get  func(*Registers) uint16
	set  func(*Registers, uint16)
}

var pushPopPairs = []pushPopPair{
	{0, (*Registers).BC, (*Registers).SetBC},
	{1, (*Registers).DE, (*Registers).SetDE},
	{2, (*Registers).HL, (*Registers).SetHL},
	{3, (*Registers).PSW, (*Registers).SetPSW},
}

func (c *CPU) initMiscOps() {
	for _, pp := range pushPopPairs {
		pp := pp
		c.ops[0xC5|pp.code<<4] = func(c *CPU) error { return c.pushWord(pp.get(&c.regs)) }
		c.ops[0xC1|pp.code<<4] = func(c *CPU) error {
			v, err := c.popWord()
			if err != nil {
				return err
			}
			pp.set(&c.regs, v)
			return nil
		}
	}

	c.ops[0xDB] = func(c *CPU) error {
		port, err := c.fetch8()
		if err != nil {
			return err
		}
		c.regs.A = c.io.In(port)
		return nil
	}
	c.ops[0xD3] = func(c *CPU) error {
		port, err := c.fetch8()
		if err != nil {
			return err
		}
		c.io.Out(port, c.regs.A)
		return nil
	}

	c.ops[0xF3] = func(c *CPU) error { c.regs.InterruptEnabled = false; return nil }
	c.ops[0xFB] = func(c *CPU) error { c.regs.InterruptEnabled = true; return nil }

	// HLT leaves PC pointing at the HLT opcode itself rather than past
	// it (spec.md §8, S5): the core never resumes a halted CPU on its
	// own, so there is no "next instruction" for PC to usefully name.
	c.ops[0x76] = func(c *CPU) error {
		c.halted = true
		c.regs.PC--
		return nil
	}
}
