package systems

import (
	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/logging"
	"github.com/automoto/padstate/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var gamepadViewQuery = donburi.NewQuery(filter.Contains(components.InputView, components.GamepadMarker))

// Reusable slice to avoid allocations
var gamepadViews []GamepadView

// GamepadView pairs a view with the marker that binds it to a gamepad.
type GamepadView struct {
	Marker *components.GamepadMarkerData
	View   *components.InputViewData
}

// ClassifyDeadZone turns an analog magnitude into a press state.
// Magnitudes at or below threshold read as released.
func ClassifyDeadZone(value, threshold float32) state.PressState {
	if value < 0 {
		value = -value
	}
	if value <= threshold {
		return state.Released()
	}
	return state.Pressed()
}

// TranslateGamepadEvents applies gamepad events in arrival order to the
// view bound to each event's gamepad. When several views are bound to the
// same gamepad only the first one receives its events. Events for unbound
// gamepads and non-input events are skipped. It returns how many events
// changed a view.
func TranslateGamepadEvents(views []GamepadView, events []components.GamepadEvent, threshold float32) int {
	if len(events) == 0 {
		return 0
	}

	byGamepad := make(map[ebiten.GamepadID]*components.InputViewData, len(views))
	for _, gv := range views {
		if !gv.Marker.Bound {
			continue
		}
		if _, taken := byGamepad[gv.Marker.Gamepad]; taken {
			continue
		}
		byGamepad[gv.Marker.Gamepad] = gv.View
	}

	applied := 0
	for _, ev := range events {
		var r components.Receiver
		switch ev.Kind {
		case components.GamepadButtonChanged:
			r = components.GamepadButton(ev.Button)
		case components.GamepadAxisChanged:
			r = components.GamepadAxis(ev.Axis)
		default:
			continue
		}

		view, ok := byGamepad[ev.Gamepad]
		if !ok {
			logging.Log.Debugw("gamepad event for unbound gamepad dropped",
				"gamepad", int(ev.Gamepad), "kind", ev.Kind.String())
			continue
		}

		press := ClassifyDeadZone(ev.Value, threshold)
		view.LastInputSource = components.SourceGamepad
		view.SetAxisValue(r, ev.Value, press)
		applied++
	}
	return applied
}

// UpdateGamepadInput drains the gamepad queue into the bound views.
// Must run AFTER PollInput and UpdateGamepadBindings.
func UpdateGamepadInput(ecs *ecs.ECS) {
	queue := getOrCreateInputEvents(ecs)
	events := queue.DrainGamepad()
	if len(events) == 0 {
		return
	}

	gamepadViews = gamepadViews[:0]
	gamepadViewQuery.Each(ecs.World, func(entry *donburi.Entry) {
		gamepadViews = append(gamepadViews, GamepadView{
			Marker: components.GamepadMarker.Get(entry),
			View:   components.InputView.Get(entry),
		})
	})

	TranslateGamepadEvents(gamepadViews, events, cfg.Input.GamepadDeadZone)
}

// getOrCreateInputEvents returns the singleton event queue, creating if needed
func getOrCreateInputEvents(ecs *ecs.ECS) *components.InputEventsData {
	entry, ok := components.InputEvents.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.InputEvents, components.GamepadPoll))
		components.GamepadPoll.SetValue(entry, components.GamepadPollData{
			Previous: map[ebiten.GamepadID]components.GamepadSnapshot{},
			Flavors:  map[ebiten.GamepadID]components.GamepadFlavor{},
		})
	}
	return components.InputEvents.Get(entry)
}
