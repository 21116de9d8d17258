package components

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ReceiverKind identifies the class of a button or axis
type ReceiverKind int

const (
	ReceiverGamepadButton ReceiverKind = iota
	ReceiverGamepadAxis
	ReceiverKeyboardKey
	ReceiverMouseButton
	ReceiverMouseWheel
)

func (k ReceiverKind) String() string {
	switch k {
	case ReceiverGamepadButton:
		return "GamepadButton"
	case ReceiverGamepadAxis:
		return "GamepadAxis"
	case ReceiverKeyboardKey:
		return "Key"
	case ReceiverMouseButton:
		return "MouseButton"
	case ReceiverMouseWheel:
		return "MouseWheel"
	}
	return "Unknown"
}

// Source returns the device class that drives receivers of this kind.
func (k ReceiverKind) Source() InputSource {
	switch k {
	case ReceiverGamepadButton, ReceiverGamepadAxis:
		return SourceGamepad
	case ReceiverKeyboardKey:
		return SourceKeyboard
	case ReceiverMouseButton, ReceiverMouseWheel:
		return SourceMouse
	}
	return SourceNone
}

// Receiver is a specific button or axis on a device class.
// It is comparable and used as a map key.
type Receiver struct {
	Kind ReceiverKind
	Code int
}

// Mouse wheel axes
const (
	WheelX = 0
	WheelY = 1
)

func GamepadButton(b ebiten.StandardGamepadButton) Receiver {
	return Receiver{Kind: ReceiverGamepadButton, Code: int(b)}
}

func GamepadAxis(a ebiten.StandardGamepadAxis) Receiver {
	return Receiver{Kind: ReceiverGamepadAxis, Code: int(a)}
}

func KeyboardKey(k ebiten.Key) Receiver {
	return Receiver{Kind: ReceiverKeyboardKey, Code: int(k)}
}

func MouseButton(b ebiten.MouseButton) Receiver {
	return Receiver{Kind: ReceiverMouseButton, Code: int(b)}
}

func MouseWheel(axis int) Receiver {
	return Receiver{Kind: ReceiverMouseWheel, Code: axis}
}

func (r Receiver) String() string {
	if r.Kind == ReceiverKeyboardKey {
		return "Key" + ebiten.Key(r.Code).String()
	}
	if r.Kind == ReceiverMouseWheel {
		if r.Code == WheelX {
			return "MouseWheelX"
		}
		return "MouseWheelY"
	}
	return fmt.Sprintf("%s%d", r.Kind, r.Code)
}

// InputSource is the device class that last changed a view
type InputSource int

const (
	SourceNone InputSource = iota
	SourceGamepad
	SourceKeyboard
	SourceMouse
)

func (s InputSource) String() string {
	switch s {
	case SourceGamepad:
		return "Gamepad"
	case SourceKeyboard:
		return "Keyboard"
	case SourceMouse:
		return "Mouse"
	}
	return "None"
}
