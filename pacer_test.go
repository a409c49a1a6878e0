package cpu8080

import (
	"testing"
	"time"
)

func TestPacerSleepsOncePerWindow(t *testing.T) {
	p := newPacer(100)
	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }
	p.windowStart = time.Now().Add(time.Hour) // force slack left in the window, so add must sleep

	p.add(50)
	if len(slept) != 0 {
		t.Fatalf("budget not yet reached, should not sleep")
	}

	p.add(60)
	if len(slept) != 1 {
		t.Fatalf("budget crossed, want exactly one sleep call, got %d", len(slept))
	}
	if p.accumulated != 0 {
		t.Fatalf("accumulated should reset after window close, got %d", p.accumulated)
	}
}

func TestPacerDefaultsBudget(t *testing.T) {
	p := newPacer(0)
	if p.budget != defaultCycleBudget {
		t.Fatalf("budget = %d, want default %d", p.budget, defaultCycleBudget)
	}
}
