package reactive

import "testing"

func TestCreateSignalReadsInitialValue(t *testing.T) {
	Reset()
	get, _ := CreateSignal(42)
	if get() != 42 {
		t.Errorf("get() = %d, want 42", get())
	}
}

func TestSetterUpdatesValue(t *testing.T) {
	Reset()
	get, set := CreateSignal("a")
	set("b")
	if get() != "b" {
		t.Errorf("get() = %q, want %q", get(), "b")
	}
}

func TestEffectReexecutesOnDependencyChange(t *testing.T) {
	Reset()
	get, set := CreateSignal(0)
	runs := 0
	var lastSeen int
	CreateEffectSimple(func() {
		lastSeen = get()
		runs++
	})
	if runs != 1 || lastSeen != 0 {
		t.Fatalf("after creation: runs=%d lastSeen=%d, want 1,0", runs, lastSeen)
	}

	set(5)
	if runs != 2 || lastSeen != 5 {
		t.Errorf("after set(5): runs=%d lastSeen=%d, want 2,5", runs, lastSeen)
	}
}

func TestEffectDisposeStopsFutureRuns(t *testing.T) {
	Reset()
	get, set := CreateSignal(0)
	runs := 0
	dispose := CreateEffectSimple(func() {
		get()
		runs++
	})
	dispose()
	set(1)
	if runs != 1 {
		t.Errorf("runs after dispose+set = %d, want 1", runs)
	}
}

func TestCreateMemoDerivesFromDependency(t *testing.T) {
	Reset()
	get, set := CreateSignal(2)
	doubled := CreateMemo(func() int { return get() * 2 })
	if doubled() != 4 {
		t.Fatalf("doubled() = %d, want 4", doubled())
	}
	set(10)
	if doubled() != 20 {
		t.Errorf("doubled() after set(10) = %d, want 20", doubled())
	}
}

func TestSignalWithEqualsSkipsRedundantNotification(t *testing.T) {
	Reset()
	get, set := CreateSignalWithEquals(1, func(a, b int) bool { return a == b })
	runs := 0
	CreateEffectSimple(func() {
		get()
		runs++
	})
	set(1) // equal to current value: must not trigger a rerun
	if runs != 1 {
		t.Errorf("runs after setting an equal value = %d, want 1", runs)
	}
	set(2)
	if runs != 2 {
		t.Errorf("runs after setting a distinct value = %d, want 2", runs)
	}
}

func TestBatchCoalescesMultipleWrites(t *testing.T) {
	Reset()
	get, set := CreateSignal(0)
	runs := 0
	CreateEffectSimple(func() {
		get()
		runs++
	})
	BatchVoid(func() {
		set(1)
		set(2)
		set(3)
	})
	if runs != 2 {
		t.Errorf("runs after a 3-write batch = %d, want 2 (initial + one coalesced rerun)", runs)
	}
	if get() != 3 {
		t.Errorf("get() = %d, want 3", get())
	}
}

func TestUntrackPreventsDependencyRegistration(t *testing.T) {
	Reset()
	get, set := CreateSignal(0)
	runs := 0
	CreateEffectSimple(func() {
		Untrack(func() int { return get() })
		runs++
	})
	set(1)
	if runs != 1 {
		t.Errorf("runs after set following an untracked read = %d, want 1", runs)
	}
}

func TestSetWithDerivesFromPreviousValue(t *testing.T) {
	Reset()
	get, set := CreateSignal(10)
	SetWith(set, func(prev int) int { return prev + 5 }, get)
	if get() != 15 {
		t.Errorf("get() = %d, want 15", get())
	}
}
