// opcodes_control.go - jumps, calls, returns and restarts.
//
// The conditional forms share one 3-bit CCC field across JMP/CALL/RET
// (NZ,Z,NC,C,PO,PE,P,M); initControlOps builds all three families from
// one condition table rather than eight near-duplicate literals per
// instruction, following the teacher's range-loop table construction.

package cpu8080

type condition struct {
	code byte
	test func(*Flags) bool
}

var conditions = []condition{
	{0, func(f *Flags) bool { return !f.test(FlagZ) }},
	{1, func(f *Flags) bool { return f.test(FlagZ) }},
	{2, func(f *Flags) bool { return !f.test(FlagC) }},
	{3, func(f *Flags) bool { return f.test(FlagC) }},
	{4, func(f *Flags) bool { return !f.test(FlagP) }},
	{5, func(f *Flags) bool { return f.test(FlagP) }},
	{6, func(f *Flags) bool { return !f.test(FlagS) }},
	{7, func(f *Flags) bool { return f.test(FlagS) }},
}

func (c *CPU) initControlOps() {
	for _, cond := range conditions {
		cond := cond
		c.ops[0xC2|cond.code<<3] = func(c *CPU) error { return c.jccOp(cond) }
		c.ops[0xC4|cond.code<<3] = func(c *CPU) error { return c.cccOp(cond) }
		c.ops[0xC0|cond.code<<3] = func(c *CPU) error { return c.rccOp(cond) }
	}

	c.ops[0xC3] = (*CPU).jmpOp
	c.ops[0xCD] = (*CPU).callOp
	c.ops[0xC9] = (*CPU).retOp

	for n := byte(0); n < 8; n++ {
		n := n
		c.ops[0xC7|n<<3] = func(c *CPU) error { return c.rstOp(n) }
	}
}

func (c *CPU) jmpOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	c.regs.PC = addr
	return nil
}

func (c *CPU) jccOp(cond condition) error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	if cond.test(&c.regs.Flags) {
		c.regs.PC = addr
	}
	return nil
}

func (c *CPU) callOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	if err := c.pushWord(c.regs.PC); err != nil {
		return err
	}
	c.regs.PC = addr
	return nil
}

func (c *CPU) cccOp(cond condition) error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	if !cond.test(&c.regs.Flags) {
		return nil
	}
	if err := c.pushWord(c.regs.PC); err != nil {
		return err
	}
	c.regs.PC = addr
	return nil
}

func (c *CPU) retOp() error {
	addr, err := c.popWord()
	if err != nil {
		return err
	}
	c.regs.PC = addr
	return nil
}

func (c *CPU) rccOp(cond condition) error {
	if !cond.test(&c.regs.Flags) {
		return nil
	}
	addr, err := c.popWord()
	if err != nil {
		return err
	}
	c.regs.PC = addr
	return nil
}

func (c *CPU) rstOp(n byte) error {
	if err := c.pushWord(c.regs.PC); err != nil {
		return err
	}
	c.regs.PC = uint16(n) * 8
	return nil
}
