// cpu.go - the CPU handle, construction and run loop

package cpu8080

// opFunc executes one decoded instruction against CPU state. It may
// return a memory error (the only failure mode reachable mid-instruction);
// everything else about instruction semantics lives in the per-family
// opcodes_*.go files. Grounded on the teacher's baseOps[256]func(*CPU_Z80)
// dispatch table (cpu_z80.go initBaseOps).
type opFunc func(c *CPU) error

// CPU is the embeddable 8080 core: architectural state, the memory map,
// the host I/O callbacks and the control channel. Spec.md §4.5 frames
// the embedding surface as new_cpu/run/get_ram/send; this type exposes
// the same four operations as Go methods instead of a C ABI, since the
// ABI boundary itself is the host's concern, not the core's.
type CPU struct {
	regs Registers
	mem  *Memory
	io   IOHost

	pacer *pacer
	ops   [256]opFunc

	control chan Message
	halted  bool
}

// Config customizes CPU construction beyond the rom/ram/io essentials.
// A zero Config is the reference 2 MHz / 16,666-cycle pacing window.
type Config struct {
	// CycleBudget overrides the pacer's window size in cycles. Zero
	// selects the 16,666-cycle (~8.33ms) reference window.
	CycleBudget uint64
}

// NewCPU builds a CPU over the given ROM image and RAM size. io may be
// nil, in which case every port access is a no-op (NullIO). The
// returned CPU owns a fresh control channel; use Control() to obtain
// the host's sender endpoint.
func NewCPU(rom []byte, ramSize int, io IOHost, cfg Config) *CPU {
	if io == nil {
		io = NullIO{}
	}
	c := &CPU{
		mem:     NewMemory(rom, ramSize),
		io:      io,
		pacer:   newPacer(cfg.CycleBudget),
		control: make(chan Message, controlQueueSize),
	}
	c.initOps()
	return c
}

// Control returns the host's sender endpoint onto the control channel.
// Thread-safe: any number of goroutines may send concurrently.
func (c *CPU) Control() chan<- Message { return c.control }

// Send is a convenience wrapper around Control() for hosts that hold
// the CPU value directly rather than a bare channel handle.
func (c *CPU) Send(msg Message) { c.control <- msg }

// RAM exposes the writable region for a host-side video reader. See
// Memory.RAM for the concurrency contract.
func (c *CPU) RAM() []byte { return c.mem.RAM() }

// PC, SP and Registers let an embedding debugger or diagnostic harness
// (cmd/cpudiag) observe architectural state between Run calls; nothing
// in the core itself reads them.
func (c *CPU) PC() uint16           { return c.regs.PC }
func (c *CPU) SetPC(pc uint16)      { c.regs.PC = pc }
func (c *CPU) SP() uint16           { return c.regs.SP }
func (c *CPU) SetSP(sp uint16)      { c.regs.SP = sp }
func (c *CPU) A() byte              { return c.regs.A }
func (c *CPU) DE() uint16           { return c.regs.DE() }
func (c *CPU) Registers() Registers { return c.regs }

// Peek reads one byte from the CPU's address space, for a debugger or
// diagnostic harness (cmd/cpudiag) inspecting state between Run calls.
func (c *CPU) Peek(addr uint16) (byte, error) { return c.mem.Load(addr) }

// Pop and Push expose the stack-frame helpers a BDOS-style trap needs
// to resume a trapped CALL as if it had executed a normal RET.
func (c *CPU) Pop() (uint16, error) { return c.popWord() }
func (c *CPU) Push(v uint16) error  { return c.pushWord(v) }

// Resume clears a prior HLT so a host-level trap (cmd/cpudiag's BDOS
// stub) can service the halt and hand control back to Run.
func (c *CPU) Resume() { c.halted = false }

// Run executes the fetch-decode-execute loop until HLT, until PC
// advances past the end of ROM, or until a Shutdown message arrives.
// Messages are drained between instructions only (spec.md §4.4); it
// never preempts mid-instruction. Returns the first error encountered,
// or nil on a clean exit.
func (c *CPU) Run() error {
	paused := false

	for {
		if paused {
			msg, ok := <-c.control
			if !ok {
				return nil
			}
			if done, err := c.applyPausedMessage(msg, &paused); done || err != nil {
				return err
			}
			continue
		}

		select {
		case msg, ok := <-c.control:
			if !ok {
				return nil
			}
			if done, err := c.applyRunningMessage(msg, &paused); done || err != nil {
				return err
			}
			if paused {
				continue
			}
		default:
		}

		if c.halted {
			return nil
		}
		if int(c.regs.PC) >= c.mem.ROMSize() {
			return nil
		}

		if err := c.step(); err != nil {
			return err
		}
	}
}

// step fetches, decodes and executes exactly one instruction, then
// feeds its published cycle cost to the pacer.
func (c *CPU) step() error {
	opcode, err := c.mem.Load(c.regs.PC)
	if err != nil {
		return err
	}
	c.regs.PC++

	if err := c.ops[opcode](c); err != nil {
		return err
	}
	c.pacer.add(uint64(cycleTable[opcode]))
	return nil
}

// applyPausedMessage handles one message received while paused. done
// reports whether Run should return (Shutdown).
func (c *CPU) applyPausedMessage(msg Message, paused *bool) (done bool, err error) {
	switch msg.Kind {
	case MsgSuspend:
		*paused = false
	case MsgRestart:
		c.restart()
	case MsgShutdown:
		return true, nil
	case MsgInterrupt:
		err = c.acceptInterrupt(msg)
	}
	return false, err
}

// applyRunningMessage handles one message polled before a fetch.
func (c *CPU) applyRunningMessage(msg Message, paused *bool) (done bool, err error) {
	switch msg.Kind {
	case MsgSuspend:
		*paused = true
	case MsgRestart:
		c.restart()
	case MsgShutdown:
		return true, nil
	case MsgInterrupt:
		err = c.acceptInterrupt(msg)
	}
	return false, err
}

// acceptInterrupt implements spec.md §4.4's Interrupt message: if
// interrupts are enabled, synchronously execute RST irq_no (push PC,
// jump to 8*irq_no) and set InterruptEnabled to AllowNested; otherwise
// drop the message silently. An irq_no outside 0..=7 is a fatal,
// programmatic error from the host (spec.md §7).
func (c *CPU) acceptInterrupt(msg Message) error {
	if msg.IRQNo > 7 {
		return ErrUnsupportedInterrupt
	}
	if !c.regs.InterruptEnabled {
		return nil
	}
	if err := c.pushWord(c.regs.PC); err != nil {
		return err
	}
	c.regs.PC = uint16(msg.IRQNo) * 8
	c.regs.InterruptEnabled = msg.AllowNested
	c.pacer.add(uint64(cycleTable[0xc7|msg.IRQNo<<3]))
	return nil
}
