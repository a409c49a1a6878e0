package cpu8080

import "testing"

func TestJmpUnconditional(t *testing.T) {
	c := newTestCPU([]byte{0xC3, 0x05, 0x00, 0x00, 0x00, 0x76}, 16) // JMP 0x0005; HLT
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if c.PC() != 5 {
		t.Fatalf("PC = %#04x, want 0x0005 (halted at HLT)", c.PC())
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newTestCPU([]byte{0xC5, 0xD1}, 16) // PUSH B; POP D
	c.regs.SP = 0x000F
	c.regs.B, c.regs.C = 0xBE, 0xEF

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.D != 0xBE || c.regs.E != 0xEF {
		t.Fatalf("D,E = %#02x,%#02x, want 0xBE,0xEF", c.regs.D, c.regs.E)
	}
	if c.regs.SP != 0x000F {
		t.Fatalf("SP = %#04x, want back to 0x000F", c.regs.SP)
	}
}

// S5 - CALL/RET (spec.md §8).
func TestScenarioS5CallRet(t *testing.T) {
	rom := []byte{0x31, 0x00, 0x24, 0xCD, 0x08, 0x00, 0x76, 0x00, 0xC9}
	c := newTestCPU(rom, 0x2500)

	if err := c.Run(); err != nil {
		t.Fatal(err)
	}

	if c.SP() != 0x2400 {
		t.Fatalf("SP = %#04x, want 0x2400", c.SP())
	}
	if c.PC() != 6 {
		t.Fatalf("PC = %#04x, want 0x0006 (halted at HLT)", c.PC())
	}

	ramLo := c.RAM()
	// RAM is addressed starting at len(rom); 0x23FE/0x23FF both fall
	// past ROM, so offset into RAM by subtracting ROM size.
	lo := ramLo[0x23FE-len(rom)]
	hi := ramLo[0x23FF-len(rom)]
	if lo != 0x06 || hi != 0x00 {
		t.Fatalf("return address at 0x23FE/0x23FF = %#02x,%#02x, want 0x06,0x00", lo, hi)
	}
}

func TestRstPushesAndJumps(t *testing.T) {
	c := newTestCPU([]byte{0xCF}, 16) // RST 1
	c.regs.SP = 0x000F
	c.regs.PC = 0

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.PC() != 8 {
		t.Fatalf("PC = %#04x, want 0x0008", c.PC())
	}
	if c.SP() != 0x000D {
		t.Fatalf("SP = %#04x, want 0x000D", c.SP())
	}
	hi, _ := c.mem.Load(c.regs.SP + 1)
	lo, _ := c.mem.Load(c.regs.SP)
	if pair(hi, lo) != 0x0001 {
		t.Fatalf("pushed return address = %#04x, want 0x0001", pair(hi, lo))
	}
}
