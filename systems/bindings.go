package systems

import (
	"github.com/automoto/padstate/components"
	"github.com/automoto/padstate/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BindGamepad binds marker to gamepad id. Moving a view to a different
// gamepad clears the gamepad receivers it collected from the old one, so a
// button held on the old device can't stay pressed forever.
func BindGamepad(view *components.InputViewData, marker *components.GamepadMarkerData, id ebiten.GamepadID) {
	if marker.Bound && marker.Gamepad == id {
		return
	}
	if marker.Bound {
		view.ResetSource(components.SourceGamepad)
	}
	marker.Gamepad = id
	marker.Bound = true
}

// UnbindGamepad releases the marker's gamepad and clears its receivers.
func UnbindGamepad(view *components.InputViewData, marker *components.GamepadMarkerData) {
	if !marker.Bound {
		return
	}
	view.ResetSource(components.SourceGamepad)
	marker.Bound = false
	marker.Flavor = components.FlavorUnknown
}

// UpdateGamepadBindings hands newly connected gamepads to the first view
// without one and clears the gamepad receivers of views whose gamepad went
// away. The binding itself survives a disconnect so the same gamepad
// comes back to the same player. Must run AFTER PollInput and BEFORE
// UpdateGamepadInput.
func UpdateGamepadBindings(ecs *ecs.ECS) {
	queue := getOrCreateInputEvents(ecs)
	if len(queue.Gamepad) == 0 {
		return
	}

	var flavors map[ebiten.GamepadID]components.GamepadFlavor
	if entry, ok := components.GamepadPoll.First(ecs.World); ok {
		flavors = components.GamepadPoll.Get(entry).Flavors
	}

	for _, ev := range queue.Gamepad {
		switch ev.Kind {
		case components.GamepadConnected:
			assignGamepad(ecs.World, ev.Gamepad, flavors[ev.Gamepad])
		case components.GamepadDisconnected:
			releaseGamepad(ecs.World, ev.Gamepad)
		}
	}
}

func assignGamepad(w donburi.World, id ebiten.GamepadID, flavor components.GamepadFlavor) {
	var free *donburi.Entry
	claimed := false
	gamepadViewQuery.Each(w, func(entry *donburi.Entry) {
		marker := components.GamepadMarker.Get(entry)
		if marker.Bound && marker.Gamepad == id {
			marker.Flavor = flavor
			claimed = true
		}
		if !marker.Bound && free == nil {
			free = entry
		}
	})
	if claimed || free == nil {
		return
	}

	view := components.InputView.Get(free)
	marker := components.GamepadMarker.Get(free)
	BindGamepad(view, marker, id)
	marker.Flavor = flavor
	logging.Log.Infow("gamepad bound", "gamepad", int(id), "player", view.PlayerIndex)
}

func releaseGamepad(w donburi.World, id ebiten.GamepadID) {
	gamepadViewQuery.Each(w, func(entry *donburi.Entry) {
		marker := components.GamepadMarker.Get(entry)
		if marker.Bound && marker.Gamepad == id {
			components.InputView.Get(entry).ResetSource(components.SourceGamepad)
		}
	})
}
