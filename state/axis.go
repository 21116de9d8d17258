package state

import (
	"iter"
	"time"
)

// AxisState is the reading of one receiver: how far it is moved and whether
// that counts as a press. Digital buttons read 0 or 1.
type AxisState struct {
	Value float32
	Press PressState
}

// ZeroAxis is the state of a receiver at rest.
var ZeroAxis = AxisState{Value: 0, Press: Released()}

func NewAxisState(value float32, press PressState) AxisState {
	return AxisState{Value: value, Press: press}
}

// Set replaces both the value and the press state.
func (a *AxisState) Set(value float32, press PressState) {
	a.Value = value
	a.Press = press
}

// AxisStates is a group of readings, usually every receiver bound to one action.
type AxisStates []AxisState

func (s AxisStates) IsAllPressed() bool {
	return AllPressed(s.All())
}

func (s AxisStates) IsAllJustPressed() bool {
	return AllJustPressed(s.All())
}

func (s AxisStates) IsAllJustPressedAt(now time.Time) bool {
	return AllJustPressedAt(s.All(), now)
}

func (s AxisStates) IsAllReleased() bool {
	return AllReleased(s.All())
}

// All iterates over the readings in order.
func (s AxisStates) All() iter.Seq[AxisState] {
	return func(yield func(AxisState) bool) {
		for _, a := range s {
			if !yield(a) {
				return
			}
		}
	}
}

// AllPressed reports whether every reading is pressed. True for an empty sequence.
func AllPressed(seq iter.Seq[AxisState]) bool {
	return all(seq, func(a AxisState) bool { return a.Press.IsPressed() })
}

// AllJustPressed reports whether every reading was pressed on this tick.
// True for an empty sequence.
func AllJustPressed(seq iter.Seq[AxisState]) bool {
	return AllJustPressedAt(seq, time.Now())
}

func AllJustPressedAt(seq iter.Seq[AxisState], now time.Time) bool {
	return all(seq, func(a AxisState) bool { return a.Press.JustPressedAt(now) })
}

// AllReleased reports whether every reading is released. True for an empty sequence.
func AllReleased(seq iter.Seq[AxisState]) bool {
	return all(seq, func(a AxisState) bool { return a.Press.IsReleased() })
}

func all(seq iter.Seq[AxisState], pred func(AxisState) bool) bool {
	for a := range seq {
		if !pred(a) {
			return false
		}
	}
	return true
}
