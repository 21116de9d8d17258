package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GamepadSnapshot holds every standard button and axis value of one gamepad.
type GamepadSnapshot struct {
	Buttons [ebiten.StandardGamepadButtonMax + 1]float32
	Axes    [ebiten.StandardGamepadAxisMax + 1]float32
}

// GamepadPollData remembers the last polled values so pollers only emit
// events for changes. Flavors caches controller families by gamepad.
type GamepadPollData struct {
	Previous map[ebiten.GamepadID]GamepadSnapshot
	Flavors  map[ebiten.GamepadID]GamepadFlavor
	IDs      []ebiten.GamepadID // reused between ticks
}

var GamepadPoll = donburi.NewComponentType[GamepadPollData]()
