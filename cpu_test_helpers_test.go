// cpu_test_helpers_test.go - shared test rig, grounded on the teacher's
// newCPUZ80TestRig / requireZ80Equal* helpers (cpu_z80_test_helpers_test.go).

package cpu8080

func newTestCPU(rom []byte, ramSize int) *CPU {
	return NewCPU(rom, ramSize, NullIO{}, Config{})
}

// step1 runs exactly one fetch-decode-execute cycle directly, bypassing
// Run's message intake and HLT/PC-bound checks, for tests that only care
// about one instruction's effect on state.
func (c *CPU) step1() error { return c.step() }
