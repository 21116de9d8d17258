package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GamepadFlavor is the controller family, used for button prompts
type GamepadFlavor int

const (
	FlavorUnknown GamepadFlavor = iota
	FlavorXbox
	FlavorPlayStation
)

func (f GamepadFlavor) String() string {
	switch f {
	case FlavorXbox:
		return "Xbox"
	case FlavorPlayStation:
		return "PlayStation"
	}
	return "Unknown"
}

// GamepadMarkerData binds a view to one physical gamepad.
type GamepadMarkerData struct {
	Gamepad ebiten.GamepadID
	Bound   bool // false until a gamepad has been assigned
	Flavor  GamepadFlavor
}

var GamepadMarker = donburi.NewComponentType[GamepadMarkerData]()

// NewGamepadMarkerData returns a marker bound to id.
func NewGamepadMarkerData(id ebiten.GamepadID) GamepadMarkerData {
	return GamepadMarkerData{Gamepad: id, Bound: true}
}

// KeyboardMarkerData marks a view that listens to the keyboard.
type KeyboardMarkerData struct{}

var KeyboardMarker = donburi.NewComponentType[KeyboardMarkerData]()

// MouseMarkerData marks a view that listens to the mouse.
type MouseMarkerData struct{}

var MouseMarker = donburi.NewComponentType[MouseMarkerData]()
