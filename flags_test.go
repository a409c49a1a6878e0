package cpu8080

import "testing"

func TestParity(t *testing.T) {
	cases := []struct {
		v    byte
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0xFF, true},
		{0x0F, true},
		{0x07, false},
	}
	for _, tc := range cases {
		if got := parity(tc.v); got != tc.even {
			t.Errorf("parity(%#02x) = %v, want %v", tc.v, got, tc.even)
		}
	}
}

func TestFlagsByteRoundTrip(t *testing.T) {
	var f Flags
	f.set(FlagC | FlagZ | FlagAC)
	if got := f.Byte(); got != byte(FlagC|FlagZ|FlagAC) {
		t.Fatalf("Byte() = %#02x, want %#02x", got, byte(FlagC|FlagZ|FlagAC))
	}

	var g Flags
	g.SetByte(0xFF)
	if got := g.Byte(); got != byte(flagsReservedMask) {
		t.Fatalf("SetByte(0xFF).Byte() = %#02x, want reserved bits masked off", got)
	}
}

func TestSetSZP(t *testing.T) {
	var f Flags
	f.setSZP(0x00)
	if !f.test(FlagZ) || f.test(FlagS) || !f.test(FlagP) {
		t.Fatalf("setSZP(0x00) flags wrong: %#02x", f.Byte())
	}

	f = 0
	f.setSZP(0x80)
	if f.test(FlagZ) || !f.test(FlagS) || f.test(FlagP) {
		t.Fatalf("setSZP(0x80) flags wrong: %#02x", f.Byte())
	}
}
