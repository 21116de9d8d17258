package components

import (
	"testing"
	"time"

	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/state"
	"github.com/hajimehoshi/ebiten/v2"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStateDefaultsToZero(t *testing.T) {
	var v InputViewData // Receivers map is nil
	r := GamepadButton(ebiten.StandardGamepadButtonRightBottom)
	if got := v.State(r); got != state.ZeroAxis {
		t.Errorf("State() = %+v, want ZeroAxis", got)
	}

	v.SetAxisValue(r, 0.8, state.Pressed())
	if got := v.State(r); got.Value != 0.8 || !got.Press.IsPressed() {
		t.Errorf("State() after SetAxisValue = %+v", got)
	}
}

func TestSetReceiverStateKeepsValue(t *testing.T) {
	v := NewInputViewData(0, nil)
	r := GamepadAxis(ebiten.StandardGamepadAxisLeftStickVertical)
	v.SetAxisValue(r, -0.5, state.Pressed())
	v.SetReceiverState(r, state.Released())

	got := v.State(r)
	if got.Value != -0.5 || !got.Press.IsReleased() {
		t.Errorf("State() = %+v, want value -0.5 released", got)
	}
}

func TestResetSource(t *testing.T) {
	v := NewInputViewData(0, nil)
	pad := GamepadButton(ebiten.StandardGamepadButtonRightBottom)
	stick := GamepadAxis(ebiten.StandardGamepadAxisLeftStickHorizontal)
	key := KeyboardKey(ebiten.KeyA)
	v.SetAxisValue(pad, 1, state.Pressed())
	v.SetAxisValue(stick, 0.4, state.Pressed())
	v.SetAxisValue(key, 1, state.Pressed())
	v.LastInputSource = SourceKeyboard

	v.ResetSource(SourceGamepad)
	if v.State(pad) != state.ZeroAxis || v.State(stick) != state.ZeroAxis {
		t.Errorf("gamepad receivers survived ResetSource")
	}
	if !v.State(key).Press.IsPressed() {
		t.Errorf("keyboard receiver was reset")
	}
	if v.LastInputSource != SourceKeyboard {
		t.Errorf("LastInputSource = %v, want Keyboard", v.LastInputSource)
	}

	v.Reset()
	if len(v.Receivers) != 0 || v.LastInputSource != SourceNone {
		t.Errorf("Reset left %+v", v)
	}
}

func TestActionPicksMostRecentPress(t *testing.T) {
	left := KeyboardKey(ebiten.KeyLeft)
	a := KeyboardKey(ebiten.KeyA)
	dpad := GamepadButton(ebiten.StandardGamepadButtonLeftLeft)
	v := NewInputViewData(0, map[cfg.ActionID][]Receiver{
		cfg.ActionMoveLeft: {left, a, dpad},
	})

	if got := v.Action(cfg.ActionMoveLeft); got != state.ZeroAxis {
		t.Errorf("idle action = %+v, want ZeroAxis", got)
	}

	v.SetAxisValue(left, 1, state.PressedSince(t0))
	v.SetAxisValue(dpad, 0.5, state.PressedSince(t0.Add(time.Second)))
	got := v.Action(cfg.ActionMoveLeft)
	if got.Value != 0.5 {
		t.Errorf("Action() = %+v, want the later d-pad press", got)
	}

	// a press that is not stamped yet ranks below stamped ones
	v.SetAxisValue(a, 1, state.Pressed())
	if got := v.Action(cfg.ActionMoveLeft); got.Value != 0.5 {
		t.Errorf("Action() = %+v, unstamped press should not win", got)
	}

	if got := v.Action(cfg.ActionJump); got != state.ZeroAxis {
		t.Errorf("unbound action = %+v, want ZeroAxis", got)
	}
}

func TestActionStatesChord(t *testing.T) {
	shift := KeyboardKey(ebiten.KeyShift)
	d := KeyboardKey(ebiten.KeyD)
	v := NewInputViewData(0, map[cfg.ActionID][]Receiver{
		cfg.ActionDash: {shift, d},
	})

	if v.ActionStates(cfg.ActionDash).IsAllPressed() {
		t.Errorf("chord pressed with nothing held")
	}
	v.SetAxisValue(shift, 1, state.Pressed())
	if v.ActionStates(cfg.ActionDash).IsAllPressed() {
		t.Errorf("chord pressed with one key held")
	}
	v.SetAxisValue(d, 1, state.Pressed())
	chord := v.ActionStates(cfg.ActionDash)
	if !chord.IsAllPressed() || !chord.IsAllJustPressedAt(t0) {
		t.Errorf("chord = %+v, want all just pressed", chord)
	}
	if len(v.ActionStates(cfg.ActionJump)) != 0 {
		t.Errorf("unbound action has states")
	}
}

func TestBindingsFromConfig(t *testing.T) {
	got := BindingsFromConfig(map[cfg.ActionID]cfg.InputBinding{
		cfg.ActionAttack: {
			Keys:                   []ebiten.Key{ebiten.KeyZ},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			StandardGamepadAxes:    []ebiten.StandardGamepadAxis{ebiten.StandardGamepadAxisRightStickHorizontal},
			MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		},
	})

	want := []Receiver{
		KeyboardKey(ebiten.KeyZ),
		GamepadButton(ebiten.StandardGamepadButtonRightLeft),
		GamepadAxis(ebiten.StandardGamepadAxisRightStickHorizontal),
		MouseButton(ebiten.MouseButtonLeft),
	}
	rs := got[cfg.ActionAttack]
	if len(rs) != len(want) {
		t.Fatalf("got %v, want %v", rs, want)
	}
	for i := range want {
		if rs[i] != want[i] {
			t.Errorf("receiver %d = %v, want %v", i, rs[i], want[i])
		}
	}
}

func TestReceiverSource(t *testing.T) {
	tests := []struct {
		r    Receiver
		want InputSource
	}{
		{GamepadButton(0), SourceGamepad},
		{GamepadAxis(0), SourceGamepad},
		{KeyboardKey(ebiten.KeyA), SourceKeyboard},
		{MouseButton(ebiten.MouseButtonLeft), SourceMouse},
		{MouseWheel(WheelY), SourceMouse},
	}
	for _, tt := range tests {
		if got := tt.r.Kind.Source(); got != tt.want {
			t.Errorf("%v source = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDrainKeepsCapacity(t *testing.T) {
	q := &InputEventsData{}
	q.Gamepad = append(q.Gamepad, GamepadEvent{Kind: GamepadButtonChanged}, GamepadEvent{Kind: GamepadAxisChanged})

	evs := q.DrainGamepad()
	if len(evs) != 2 {
		t.Fatalf("drained %d events, want 2", len(evs))
	}
	if len(q.Gamepad) != 0 || cap(q.Gamepad) < 2 {
		t.Errorf("queue after drain len=%d cap=%d", len(q.Gamepad), cap(q.Gamepad))
	}
}
