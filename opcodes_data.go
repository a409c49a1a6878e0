// opcodes_data.go - data transfer instructions: MOV, MVI, LXI, load/store,
// exchange and HL-as-address-register instructions.
//
// Grounded on the teacher's initBaseOps range loops (cpu_z80.go), which
// build MOV-style blocks by iterating the destination/source nibble
// rather than writing 64 literal table entries.

package cpu8080

// initDataOps fills the MOV block (0x40-0x7F, less HLT at 0x76), the
// per-register MVI/LXI/INX/DCX/STAX/LDAX rows, and the handful of
// HL/accumulator-addressed instructions.
func (c *CPU) initDataOps() {
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 { // HLT occupies the MOV M,M slot
				continue
			}
			d, s := dst, src
			c.ops[opcode] = func(c *CPU) error { return c.movOp(d, s) }
		}
	}

	for _, rp := range registerPairs {
		rp := rp
		c.ops[0x01|rp.code<<4] = func(c *CPU) error { return c.lxiOp(rp) }
		c.ops[0x03|rp.code<<4] = func(c *CPU) error { return c.inxOp(rp) }
		c.ops[0x0B|rp.code<<4] = func(c *CPU) error { return c.dcxOp(rp) }
	}

	for _, dst := range dddTargets {
		dst := dst
		c.ops[0x06|dst.code<<3] = func(c *CPU) error { return c.mviOp(dst.code) }
	}

	c.ops[0x02] = func(c *CPU) error { return c.mem.Store(c.regs.BC(), c.regs.A) }
	c.ops[0x12] = func(c *CPU) error { return c.mem.Store(c.regs.DE(), c.regs.A) }
	c.ops[0x0A] = c.ldaxOp(func(c *CPU) uint16 { return c.regs.BC() })
	c.ops[0x1A] = c.ldaxOp(func(c *CPU) uint16 { return c.regs.DE() })

	c.ops[0x22] = (*CPU).shldOp
	c.ops[0x2A] = (*CPU).lhldOp
	c.ops[0x32] = (*CPU).staOp
	c.ops[0x3A] = (*CPU).ldaOp

	c.ops[0xEB] = func(c *CPU) error {
		c.regs.H, c.regs.D = c.regs.D, c.regs.H
		c.regs.L, c.regs.E = c.regs.E, c.regs.L
		return nil
	}
	c.ops[0xE3] = (*CPU).xthlOp
	c.ops[0xF9] = func(c *CPU) error { c.regs.SP = c.regs.HL(); return nil }
	c.ops[0xE9] = func(c *CPU) error { c.regs.PC = c.regs.HL(); return nil }
}

// registerPair names a 16-bit pair as addressed by the LXI/INX/DCX/DAD
// 2-bit RP field (00=BC, 01=DE, 10=HL, 11=SP).
type registerPair struct {
	code byte
	get  func(*CPU) uint16
	set  func(*CPU, uint16)
}

var registerPairs = []registerPair{
	{0, func(c *CPU) uint16 { return c.regs.BC() }, func(c *CPU, v uint16) { c.regs.SetBC(v) }},
	{1, func(c *CPU) uint16 { return c.regs.DE() }, func(c *CPU, v uint16) { c.regs.SetDE(v) }},
	{2, func(c *CPU) uint16 { return c.regs.HL() }, func(c *CPU, v uint16) { c.regs.SetHL(v) }},
	{3, func(c *CPU) uint16 { return c.regs.SP }, func(c *CPU, v uint16) { c.regs.SP = v }},
}

// dddTarget names an 8-bit destination as addressed by the MVI/INR/DCR
// 3-bit DDD field.
type dddTarget struct{ code byte }

var dddTargets = []dddTarget{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}}

func (c *CPU) movOp(dst, src byte) error {
	v, err := c.readOperand(src)
	if err != nil {
		return err
	}
	return c.writeOperand(dst, v)
}

func (c *CPU) mviOp(dst byte) error {
	v, err := c.fetch8()
	if err != nil {
		return err
	}
	return c.writeOperand(dst, v)
}

func (c *CPU) lxiOp(rp registerPair) error {
	v, err := c.fetch16()
	if err != nil {
		return err
	}
	rp.set(c, v)
	return nil
}

func (c *CPU) inxOp(rp registerPair) error {
	rp.set(c, rp.get(c)+1)
	return nil
}

func (c *CPU) dcxOp(rp registerPair) error {
	rp.set(c, rp.get(c)-1)
	return nil
}

func (c *CPU) ldaxOp(addr func(*CPU) uint16) opFunc {
	return func(c *CPU) error {
		v, err := c.mem.Load(addr(c))
		if err != nil {
			return err
		}
		c.regs.A = v
		return nil
	}
}

func (c *CPU) staOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	return c.mem.Store(addr, c.regs.A)
}

func (c *CPU) ldaOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	v, err := c.mem.Load(addr)
	if err != nil {
		return err
	}
	c.regs.A = v
	return nil
}

func (c *CPU) shldOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	if err := c.mem.Store(addr, c.regs.L); err != nil {
		return err
	}
	return c.mem.Store(addr+1, c.regs.H)
}

func (c *CPU) lhldOp() error {
	addr, err := c.fetch16()
	if err != nil {
		return err
	}
	lo, err := c.mem.Load(addr)
	if err != nil {
		return err
	}
	hi, err := c.mem.Load(addr + 1)
	if err != nil {
		return err
	}
	c.regs.L, c.regs.H = lo, hi
	return nil
}

func (c *CPU) xthlOp() error {
	lo, err := c.mem.Load(c.regs.SP)
	if err != nil {
		return err
	}
	hi, err := c.mem.Load(c.regs.SP + 1)
	if err != nil {
		return err
	}
	if err := c.mem.Store(c.regs.SP, c.regs.L); err != nil {
		return err
	}
	if err := c.mem.Store(c.regs.SP+1, c.regs.H); err != nil {
		return err
	}
	c.regs.L, c.regs.H = lo, hi
	return nil
}
