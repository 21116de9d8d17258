package systems

import (
	"testing"

	"github.com/automoto/padstate/components"
	"github.com/automoto/padstate/state"
	"github.com/automoto/padstate/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestTranslateKeyboardEventsFansOut(t *testing.T) {
	a := components.NewInputViewData(0, nil)
	b := components.NewInputViewData(1, nil)
	views := []*components.InputViewData{&a, &b}

	TranslateKeyboardEvents(views, []components.KeyboardEvent{
		{Key: ebiten.KeySpace, State: state.ButtonPressed},
	})

	r := components.KeyboardKey(ebiten.KeySpace)
	for _, v := range views {
		got := v.State(r)
		if !got.Press.IsPressed() || got.Value != 1 {
			t.Errorf("player %d space = %+v, want pressed 1", v.PlayerIndex, got)
		}
		if v.LastInputSource != components.SourceKeyboard {
			t.Errorf("player %d source = %v", v.PlayerIndex, v.LastInputSource)
		}
	}

	TranslateKeyboardEvents(views, []components.KeyboardEvent{
		{Key: ebiten.KeySpace, State: state.ButtonReleased},
	})
	if got := a.State(r); got != state.ZeroAxis {
		t.Errorf("released space = %+v, want ZeroAxis", got)
	}
}

func TestUpdateKeyboardInputOnlyMarkedViews(t *testing.T) {
	e := newTestECS()
	factory.CreateInputQueue(e)
	pad0, pad1 := ebiten.GamepadID(0), ebiten.GamepadID(1)
	withKeyboard := factory.CreatePlayer(e, 0, &pad0)
	gamepadOnly := factory.CreateGamepadPlayer(e, 1, &pad1)

	queue := getOrCreateInputEvents(e)
	queue.Keyboard = append(queue.Keyboard, components.KeyboardEvent{Key: ebiten.KeyZ, State: state.ButtonPressed})
	UpdateKeyboardInput(e)

	r := components.KeyboardKey(ebiten.KeyZ)
	if !components.InputView.Get(withKeyboard).State(r).Press.IsPressed() {
		t.Errorf("keyboard player missed Z")
	}
	if components.InputView.Get(gamepadOnly).State(r).Press.IsPressed() {
		t.Errorf("gamepad-only player saw Z")
	}
	if len(queue.Keyboard) != 0 {
		t.Errorf("keyboard queue not drained")
	}
}

func TestTranslateMouseEvents(t *testing.T) {
	v := components.NewInputViewData(0, nil)
	views := []*components.InputViewData{&v}

	TranslateMouseButtonEvents(views, []components.MouseButtonEvent{
		{Button: ebiten.MouseButtonLeft, State: state.ButtonPressed},
	})
	if got := v.State(components.MouseButton(ebiten.MouseButtonLeft)); !got.Press.IsPressed() {
		t.Errorf("left button = %+v, want pressed", got)
	}
	if v.LastInputSource != components.SourceMouse {
		t.Errorf("source = %v, want Mouse", v.LastInputSource)
	}

	wheelY := components.MouseWheel(components.WheelY)
	TranslateMouseWheelEvents(views, []components.MouseWheelEvent{{Y: -2}})
	first := v.State(wheelY)
	if !first.Press.IsPressed() || first.Value != -2 {
		t.Fatalf("wheel = %+v, want pressed -2", first)
	}
	if v.State(components.MouseWheel(components.WheelX)).Press.IsPressed() {
		t.Errorf("still X wheel reads pressed")
	}

	// a turning wheel keeps its press, a still wheel releases
	v.Receivers[wheelY] = state.NewAxisState(-2, first.Press.Stamp(epochForTests))
	TranslateMouseWheelEvents(views, []components.MouseWheelEvent{{Y: -1}})
	if at, ok := v.State(wheelY).Press.StartedAt(); !ok || !at.Equal(epochForTests) {
		t.Errorf("turning wheel lost its stamp")
	}
	TranslateMouseWheelEvents(views, []components.MouseWheelEvent{{}})
	if !v.State(wheelY).Press.IsReleased() {
		t.Errorf("still wheel should release")
	}
}
