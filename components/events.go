package components

import (
	"github.com/automoto/padstate/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GamepadEventKind is the type of a raw gamepad event
type GamepadEventKind int

const (
	GamepadConnected GamepadEventKind = iota
	GamepadDisconnected
	GamepadButtonChanged
	GamepadAxisChanged
)

func (k GamepadEventKind) String() string {
	switch k {
	case GamepadConnected:
		return "Connected"
	case GamepadDisconnected:
		return "Disconnected"
	case GamepadButtonChanged:
		return "ButtonChanged"
	case GamepadAxisChanged:
		return "AxisChanged"
	}
	return "Unknown"
}

// GamepadEvent is one raw reading from a gamepad. Button is set for
// button events, Axis for axis events. Value is the analog magnitude.
type GamepadEvent struct {
	Gamepad ebiten.GamepadID
	Kind    GamepadEventKind
	Button  ebiten.StandardGamepadButton
	Axis    ebiten.StandardGamepadAxis
	Value   float32
}

// KeyboardEvent is a key going down or up.
type KeyboardEvent struct {
	Key   ebiten.Key
	State state.ButtonState
}

// MouseButtonEvent is a mouse button going down or up.
type MouseButtonEvent struct {
	Button ebiten.MouseButton
	State  state.ButtonState
}

// MouseWheelEvent is the wheel movement of one tick.
type MouseWheelEvent struct {
	X, Y float32
}

// InputEventsData is the queue of raw events waiting for this tick's
// translators. Pollers append, translators drain.
type InputEventsData struct {
	Gamepad     []GamepadEvent
	Keyboard    []KeyboardEvent
	MouseButton []MouseButtonEvent
	MouseWheel  []MouseWheelEvent
}

var InputEvents = donburi.NewComponentType[InputEventsData]()

// DrainGamepad returns the pending gamepad events and empties the queue,
// keeping its capacity.
func (q *InputEventsData) DrainGamepad() []GamepadEvent {
	evs := q.Gamepad
	q.Gamepad = q.Gamepad[:0]
	return evs
}

func (q *InputEventsData) DrainKeyboard() []KeyboardEvent {
	evs := q.Keyboard
	q.Keyboard = q.Keyboard[:0]
	return evs
}

func (q *InputEventsData) DrainMouseButton() []MouseButtonEvent {
	evs := q.MouseButton
	q.MouseButton = q.MouseButton[:0]
	return evs
}

func (q *InputEventsData) DrainMouseWheel() []MouseWheelEvent {
	evs := q.MouseWheel
	q.MouseWheel = q.MouseWheel[:0]
	return evs
}
