package hop_schedules

import (
	"testing"
)

// Two units pulling each other toward agreement.
var coupledWeights = [][]float64{
	{0, 1},
	{1, 0},
}

func TestSynchronousPassUsesSnapshot(t *testing.T) {
	// Both units see the other's old value, so the opposed state swaps both
	// units in one synchronous pass.
	state := []int{1, -1}
	changed := SynchronousSchedule{}.UpdatePass(coupledWeights, state)
	if changed != 2 {
		t.Errorf("got %d changed units, want 2", changed)
	}
	if state[0] != -1 || state[1] != 1 {
		t.Errorf("got state %v, want [-1 1]", state)
	}
}

func TestAsynchronousPassSeesEarlierUpdates(t *testing.T) {
	// Unit 0 flips first, then unit 1 sees the new value and stays, so the
	// pass settles into agreement instead of swapping.
	state := []int{1, -1}
	changed := AsynchronousSchedule{}.UpdatePass(coupledWeights, state)
	if changed != 1 {
		t.Errorf("got %d changed units, want 1", changed)
	}
	if state[0] != -1 || state[1] != -1 {
		t.Errorf("got state %v, want [-1 -1]", state)
	}
}

func TestFixedPointChangesNothing(t *testing.T) {
	for _, schedule := range []UpdateScheduler{SynchronousSchedule{}, AsynchronousSchedule{}} {
		state := []int{1, 1}
		if changed := schedule.UpdatePass(coupledWeights, state); changed != 0 {
			t.Errorf("%s: got %d changed units at a fixed point, want 0", schedule.Name(), changed)
		}
		if state[0] != 1 || state[1] != 1 {
			t.Errorf("%s: fixed point state was mutated: %v", schedule.Name(), state)
		}
	}
}

func TestScheduleNames(t *testing.T) {
	if name := (SynchronousSchedule{}).Name(); name != "SYNCHRONOUS" {
		t.Errorf("got %s, want SYNCHRONOUS", name)
	}
	if name := (AsynchronousSchedule{}).Name(); name != "ASYNCHRONOUS" {
		t.Errorf("got %s, want ASYNCHRONOUS", name)
	}
}
