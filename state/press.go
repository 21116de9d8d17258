// Package state models the press state of a single button or axis.
//
// A receiver is either released or pressed since some instant. The instant
// is not known on the tick the press is detected: translators store an
// unstamped press and the stamp pass fills in the instant on the next tick.
// That gap is what JustPressed detects.
package state

import (
	"fmt"
	"time"
)

// JustPressedWindow is how long after its stamp a press still reads as just pressed.
const JustPressedWindow = time.Millisecond

// PressState is the current state of a button or axis.
// The zero value is released.
type PressState struct {
	pressed   bool
	stamped   bool
	startedAt time.Time
}

// Released returns the released state.
func Released() PressState {
	return PressState{}
}

// Pressed returns a press that has not been stamped yet.
func Pressed() PressState {
	return PressState{pressed: true}
}

// PressedSince returns a press that started at t.
func PressedSince(t time.Time) PressState {
	return PressState{pressed: true, stamped: true, startedAt: t}
}

// ButtonState is a generic two-state hardware signal.
type ButtonState int

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

func (b ButtonState) String() string {
	if b == ButtonPressed {
		return "Pressed"
	}
	return "Released"
}

// FromButtonState converts a hardware signal. Presses come out unstamped.
func FromButtonState(b ButtonState) PressState {
	if b == ButtonPressed {
		return Pressed()
	}
	return Released()
}

func (p PressState) IsReleased() bool {
	return !p.pressed
}

func (p PressState) IsPressed() bool {
	return p.pressed
}

// StartedAt returns the instant the press started, if it has been stamped.
func (p PressState) StartedAt() (time.Time, bool) {
	if !p.pressed || !p.stamped {
		return time.Time{}, false
	}
	return p.startedAt, true
}

// JustPressed reports whether the receiver was pressed on this tick.
func (p PressState) JustPressed() bool {
	return p.JustPressedAt(time.Now())
}

func (p PressState) JustPressedAt(now time.Time) bool {
	if !p.pressed {
		return false
	}
	if !p.stamped {
		return true
	}
	return now.Sub(p.startedAt) <= JustPressedWindow
}

// IsPressedFor reports whether the receiver has been held for at least d.
// Unstamped presses have no measurable duration and always report false.
func (p PressState) IsPressedFor(d time.Duration) bool {
	return p.IsPressedForAt(time.Now(), d)
}

func (p PressState) IsPressedForAt(now time.Time, d time.Duration) bool {
	if !p.pressed || !p.stamped {
		return false
	}
	return now.Sub(p.startedAt) >= d
}

// Elapsed returns how long the receiver has been pressed. An unstamped
// press reports zero. The second result is false for released receivers.
func (p PressState) Elapsed() (time.Duration, bool) {
	return p.ElapsedAt(time.Now())
}

func (p PressState) ElapsedAt(now time.Time) (time.Duration, bool) {
	if !p.pressed {
		return 0, false
	}
	if !p.stamped {
		return 0, true
	}
	return now.Sub(p.startedAt), true
}

// Stamp returns p with its start instant set to now if p is an unstamped press.
func (p PressState) Stamp(now time.Time) PressState {
	if p.pressed && !p.stamped {
		return PressedSince(now)
	}
	return p
}

// Equal reports whether two states are the same. Stamps are compared with
// time.Time.Equal so monotonic readings don't matter.
func (p PressState) Equal(o PressState) bool {
	return Compare(p, o) == 0
}

// Compare orders press states: released first, then unstamped presses,
// then stamped presses from the oldest to the most recent.
// It returns -1, 0 or +1 and can be passed to slices.SortFunc.
func Compare(a, b PressState) int {
	switch {
	case !a.pressed && !b.pressed:
		return 0
	case !a.pressed:
		return -1
	case !b.pressed:
		return 1
	}

	switch {
	case !a.stamped && !b.stamped:
		return 0
	case !a.stamped:
		return -1
	case !b.stamped:
		return 1
	}

	return a.startedAt.Compare(b.startedAt)
}

// Less reports whether a sorts before b.
func Less(a, b PressState) bool {
	return Compare(a, b) < 0
}

func (p PressState) String() string {
	if !p.pressed {
		return "Released"
	}
	if p.JustPressed() {
		return "Pressing since Now"
	}
	elapsed, _ := p.Elapsed()
	return fmt.Sprintf("Pressing for %s", elapsed.Round(time.Millisecond))
}
