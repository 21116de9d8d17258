package components

import (
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/state"
	"github.com/yohamta/donburi"
)

// InputViewData is the per-player record of every receiver's state and the
// actions bound to them. Translators write it; game code reads it.
type InputViewData struct {
	PlayerIndex     int // 0-3 player index
	Receivers       map[Receiver]state.AxisState
	Bindings        map[cfg.ActionID][]Receiver
	LastInputSource InputSource // SourceNone until the first change
}

var InputView = donburi.NewComponentType[InputViewData]()

// NewInputViewData returns an empty view with the given bindings.
func NewInputViewData(playerIndex int, bindings map[cfg.ActionID][]Receiver) InputViewData {
	if bindings == nil {
		bindings = map[cfg.ActionID][]Receiver{}
	}
	return InputViewData{
		PlayerIndex: playerIndex,
		Receivers:   map[Receiver]state.AxisState{},
		Bindings:    bindings,
	}
}

// BindingsFromConfig flattens cfg.InputBinding lists into receivers.
// Keys come first, then gamepad buttons, gamepad axes and mouse buttons.
func BindingsFromConfig(bindings map[cfg.ActionID]cfg.InputBinding) map[cfg.ActionID][]Receiver {
	out := make(map[cfg.ActionID][]Receiver, len(bindings))
	for action, b := range bindings {
		var rs []Receiver
		for _, k := range b.Keys {
			rs = append(rs, KeyboardKey(k))
		}
		for _, btn := range b.StandardGamepadButtons {
			rs = append(rs, GamepadButton(btn))
		}
		for _, axis := range b.StandardGamepadAxes {
			rs = append(rs, GamepadAxis(axis))
		}
		for _, mb := range b.MouseButtons {
			rs = append(rs, MouseButton(mb))
		}
		out[action] = rs
	}
	return out
}

// State returns the reading of r, or the rest state if r never changed.
func (v *InputViewData) State(r Receiver) state.AxisState {
	if s, ok := v.Receivers[r]; ok {
		return s
	}
	return state.ZeroAxis
}

// SetReceiverState replaces the press state of r and keeps its value.
func (v *InputViewData) SetReceiverState(r Receiver, press state.PressState) {
	s := v.State(r)
	s.Press = press
	v.put(r, s)
}

// SetAxisValue replaces both the value and the press state of r.
func (v *InputViewData) SetAxisValue(r Receiver, value float32, press state.PressState) {
	v.put(r, state.NewAxisState(value, press))
}

func (v *InputViewData) put(r Receiver, s state.AxisState) {
	if v.Receivers == nil {
		v.Receivers = map[Receiver]state.AxisState{}
	}
	v.Receivers[r] = s
}

// Reset returns every receiver to rest and forgets the last source.
func (v *InputViewData) Reset() {
	clear(v.Receivers)
	v.LastInputSource = SourceNone
}

// ResetSource returns every receiver driven by one device class to rest.
func (v *InputViewData) ResetSource(src InputSource) {
	for r := range v.Receivers {
		if r.Kind.Source() == src {
			delete(v.Receivers, r)
		}
	}
	if v.LastInputSource == src {
		v.LastInputSource = SourceNone
	}
}

// ActionStates returns the readings of every receiver bound to action, in
// binding order.
func (v *InputViewData) ActionStates(action cfg.ActionID) state.AxisStates {
	bound := v.Bindings[action]
	out := make(state.AxisStates, 0, len(bound))
	for _, r := range bound {
		out = append(out, v.State(r))
	}
	return out
}

// Action returns the reading of the bound receiver that ranks highest by
// press order, so the most recent press wins. Ties keep the earlier binding.
func (v *InputViewData) Action(action cfg.ActionID) state.AxisState {
	best := state.ZeroAxis
	for i, r := range v.Bindings[action] {
		s := v.State(r)
		if i == 0 || state.Compare(s.Press, best.Press) > 0 {
			best = s
		}
	}
	return best
}
