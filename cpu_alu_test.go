package cpu8080

import "testing"

func TestAddSetsCarryAndAux(t *testing.T) {
	c := newTestCPU([]byte{0x80}, 16) // ADD B
	c.regs.A = 0xFF
	c.regs.B = 0x01
	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", c.regs.A)
	}
	if !c.regs.Flags.test(FlagC) || !c.regs.Flags.test(FlagAC) || !c.regs.Flags.test(FlagZ) {
		t.Fatalf("flags = %#02x, want C,AC,Z set", c.regs.Flags.Byte())
	}
}

func TestSubSetsBorrow(t *testing.T) {
	c := newTestCPU([]byte{0x90}, 16) // SUB B
	c.regs.A = 0x00
	c.regs.B = 0x01
	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0xFF {
		t.Fatalf("A = %#02x, want 0xFF", c.regs.A)
	}
	if !c.regs.Flags.test(FlagC) {
		t.Fatalf("expected borrow (C set)")
	}
}

func TestAnaAuxCarryQuirk(t *testing.T) {
	c := newTestCPU([]byte{0xA0}, 16) // ANA B
	c.regs.A = 0x08
	c.regs.B = 0x00
	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if !c.regs.Flags.test(FlagAC) {
		t.Fatalf("ANA should set AC from (a|b)&0x08, got %#02x", c.regs.Flags.Byte())
	}
	if c.regs.Flags.test(FlagC) {
		t.Fatalf("ANA must always clear C")
	}
}

func TestInrDoesNotTouchCarry(t *testing.T) {
	c := newTestCPU([]byte{0x3C}, 16) // INR A
	c.regs.A = 0xFF
	c.regs.Flags.set(FlagC)
	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", c.regs.A)
	}
	if !c.regs.Flags.test(FlagC) {
		t.Fatalf("INR must not clear a pre-existing carry")
	}
	if !c.regs.Flags.test(FlagZ) {
		t.Fatalf("INR wraparound should set Z")
	}
}

// S1 - RAL/RAR round trip (spec.md §8).
func TestScenarioS1RALRAR(t *testing.T) {
	c := newTestCPU([]byte{0x17, 0x1F}, 16) // RAL; RAR
	c.regs.A = 0xB5
	c.regs.Flags.reset(FlagC)

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x6A || !c.regs.Flags.test(FlagC) {
		t.Fatalf("after RAL: A=%#02x C=%v, want A=0x6A C=true", c.regs.A, c.regs.Flags.test(FlagC))
	}

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0xB5 || c.regs.Flags.test(FlagC) {
		t.Fatalf("after RAR: A=%#02x C=%v, want A=0xB5 C=false", c.regs.A, c.regs.Flags.test(FlagC))
	}
}

// S2 - DAD HL<-HL+BC (spec.md §8).
func TestScenarioS2DAD(t *testing.T) {
	c := newTestCPU([]byte{0x09}, 16) // DAD B
	c.regs.B, c.regs.C = 0x33, 0x9F
	c.regs.H, c.regs.L = 0xA1, 0x7B
	c.regs.Flags.reset(FlagC)

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.H != 0xD5 || c.regs.L != 0x1A || c.regs.Flags.test(FlagC) {
		t.Fatalf("after DAD B: H=%#02x L=%#02x C=%v, want H=0xD5 L=0x1A C=false",
			c.regs.H, c.regs.L, c.regs.Flags.test(FlagC))
	}
}

// S3 - DAA after ADD overflow (spec.md §8).
func TestScenarioS3DAAAfterOverflow(t *testing.T) {
	c := newTestCPU([]byte{0x87, 0x27}, 16) // ADD A; DAA
	c.regs.A = 0x88
	c.regs.Flags.reset(FlagC | FlagAC)

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x10 || !c.regs.Flags.test(FlagC) || !c.regs.Flags.test(FlagAC) {
		t.Fatalf("after ADD A: A=%#02x C=%v AC=%v, want A=0x10 C=true AC=true",
			c.regs.A, c.regs.Flags.test(FlagC), c.regs.Flags.test(FlagAC))
	}

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x76 || !c.regs.Flags.test(FlagC) || c.regs.Flags.test(FlagAC) {
		t.Fatalf("after DAA: A=%#02x C=%v AC=%v, want A=0x76 C=true AC=false",
			c.regs.A, c.regs.Flags.test(FlagC), c.regs.Flags.test(FlagAC))
	}
}

// S4 - DAA on 0x9B (spec.md §8).
func TestScenarioS4DAA9B(t *testing.T) {
	c := newTestCPU([]byte{0x27}, 16) // DAA
	c.regs.A = 0x9B
	c.regs.Flags.reset(FlagC | FlagAC)

	if err := c.step1(); err != nil {
		t.Fatal(err)
	}
	if c.regs.A != 0x01 || !c.regs.Flags.test(FlagC) || !c.regs.Flags.test(FlagAC) {
		t.Fatalf("after DAA: A=%#02x C=%v AC=%v, want A=0x01 C=true AC=true",
			c.regs.A, c.regs.Flags.test(FlagC), c.regs.Flags.test(FlagAC))
	}
}
