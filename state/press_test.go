package state

import (
	"slices"
	"strings"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestCompareReleasedBeforePressed(t *testing.T) {
	pressed := []PressState{
		Pressed(),
		PressedSince(epoch),
		PressedSince(epoch.Add(time.Hour)),
	}
	for _, p := range pressed {
		if got := Compare(Released(), p); got != -1 {
			t.Errorf("Compare(Released, %v) = %d, want -1", p, got)
		}
		if got := Compare(p, Released()); got != 1 {
			t.Errorf("Compare(%v, Released) = %d, want 1", p, got)
		}
	}
	if got := Compare(Released(), Released()); got != 0 {
		t.Errorf("Compare(Released, Released) = %d, want 0", got)
	}
}

func TestCompareStampedPresses(t *testing.T) {
	older := PressedSince(epoch)
	newer := PressedSince(epoch.Add(342534 * time.Second))

	if !Less(older, newer) {
		t.Errorf("older press should sort before newer")
	}
	if Less(newer, older) {
		t.Errorf("newer press should not sort before older")
	}
	if !Less(Pressed(), older) {
		t.Errorf("unstamped press should sort before stamped press")
	}
	if !PressedSince(epoch).Equal(PressedSince(epoch.In(time.Local))) {
		t.Errorf("same instant in different locations should be equal")
	}
}

func TestCompareSortsByRecency(t *testing.T) {
	states := []PressState{
		PressedSince(epoch.Add(2 * time.Second)),
		Released(),
		PressedSince(epoch),
		Pressed(),
	}
	slices.SortFunc(states, Compare)

	want := []PressState{
		Released(),
		Pressed(),
		PressedSince(epoch),
		PressedSince(epoch.Add(2 * time.Second)),
	}
	for i := range want {
		if !states[i].Equal(want[i]) {
			t.Fatalf("sorted[%d] = %v, want %v", i, states[i], want[i])
		}
	}

	latest := slices.MaxFunc(states, Compare)
	if at, _ := latest.StartedAt(); !at.Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("MaxFunc picked press started at %v", at)
	}
}

func TestJustPressed(t *testing.T) {
	tests := []struct {
		name  string
		state PressState
		now   time.Time
		want  bool
	}{
		{"released", Released(), epoch, false},
		{"unstamped", Pressed(), epoch, true},
		{"stamped this instant", PressedSince(epoch), epoch, true},
		{"stamped within window", PressedSince(epoch), epoch.Add(time.Millisecond), true},
		{"stamped past window", PressedSince(epoch), epoch.Add(2 * time.Millisecond), false},
		{"held for a second", PressedSince(epoch), epoch.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.JustPressedAt(tt.now); got != tt.want {
				t.Errorf("JustPressedAt = %v, want %v", got, tt.want)
			}
		})
	}

	if !Pressed().JustPressed() {
		t.Errorf("Pressed().JustPressed() = false")
	}
}

func TestIsPressedFor(t *testing.T) {
	tests := []struct {
		name  string
		state PressState
		d     time.Duration
		want  bool
	}{
		{"released", Released(), 0, false},
		{"released long", Released(), time.Second, false},
		{"unstamped nonzero", Pressed(), time.Millisecond, false},
		{"unstamped zero", Pressed(), 0, false},
		{"held exactly", PressedSince(epoch.Add(-time.Second)), time.Second, true},
		{"held longer", PressedSince(epoch.Add(-2 * time.Second)), time.Second, true},
		{"held shorter", PressedSince(epoch.Add(-500 * time.Millisecond)), time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsPressedForAt(epoch, tt.d); got != tt.want {
				t.Errorf("IsPressedForAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElapsed(t *testing.T) {
	if _, ok := Released().ElapsedAt(epoch); ok {
		t.Errorf("released state should have no elapsed time")
	}
	if d, ok := Pressed().ElapsedAt(epoch); !ok || d != 0 {
		t.Errorf("unstamped press elapsed = %v, %v; want 0, true", d, ok)
	}
	d, ok := PressedSince(epoch).ElapsedAt(epoch.Add(1500 * time.Millisecond))
	if !ok || d != 1500*time.Millisecond {
		t.Errorf("stamped press elapsed = %v, %v; want 1.5s, true", d, ok)
	}
}

func TestStamp(t *testing.T) {
	if got := Released().Stamp(epoch); !got.IsReleased() {
		t.Errorf("stamping a released state should keep it released")
	}

	stamped := Pressed().Stamp(epoch)
	if at, ok := stamped.StartedAt(); !ok || !at.Equal(epoch) {
		t.Errorf("Stamp did not assign the instant: %v, %v", at, ok)
	}

	again := stamped.Stamp(epoch.Add(time.Second))
	if at, _ := again.StartedAt(); !at.Equal(epoch) {
		t.Errorf("Stamp overwrote an existing stamp: %v", at)
	}
}

func TestFromButtonState(t *testing.T) {
	if got := FromButtonState(ButtonPressed); got != Pressed() {
		t.Errorf("FromButtonState(Pressed) = %v", got)
	}
	if got := FromButtonState(ButtonReleased); got != Released() {
		t.Errorf("FromButtonState(Released) = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := Released().String(); got != "Released" {
		t.Errorf("Released().String() = %q", got)
	}
	if got := Pressed().String(); got != "Pressing since Now" {
		t.Errorf("Pressed().String() = %q", got)
	}
	long := PressedSince(time.Now().Add(-time.Hour))
	if got := long.String(); !strings.HasPrefix(got, "Pressing for ") {
		t.Errorf("long press String() = %q", got)
	}
}
