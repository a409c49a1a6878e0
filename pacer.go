// pacer.go - real-time throttling to the 8080's nominal 2 MHz clock

package cpu8080

import "time"

// defaultCycleBudget is the reference window from spec.md §4.4: 16,666
// cycles at 2 cycles/us is ~8.33ms, a 120Hz slice.
const defaultCycleBudget = 16666

// pacer accumulates executed cycles and sleeps after each budgeted
// window so average throughput tracks 2 MHz without a syscall per
// instruction. Grounded on the teacher's MIPS/perf accounting in
// CPU_Z80.Execute (perfStartTime/lastPerfReport), generalized from
// reporting to throttling.
type pacer struct {
	budget      uint64
	accumulated uint64
	windowStart time.Time
	sleep       func(time.Duration)
}

func newPacer(budget uint64) *pacer {
	if budget == 0 {
		budget = defaultCycleBudget
	}
	return &pacer{
		budget:      budget,
		windowStart: time.Now(),
		sleep:       time.Sleep,
	}
}

// add folds in the cycle cost of one instruction and, once the window
// budget is reached, sleeps off the remaining wall-clock slack.
func (p *pacer) add(cycles uint64) {
	p.accumulated += cycles
	if p.accumulated < p.budget {
		return
	}

	targetUs := p.accumulated / 2 // 2 cycles per microsecond at 2 MHz
	elapsed := time.Since(p.windowStart)
	target := time.Duration(targetUs) * time.Microsecond
	if remaining := target - elapsed; remaining > 0 {
		p.sleep(remaining)
	}

	p.accumulated = 0
	p.windowStart = time.Now()
}
