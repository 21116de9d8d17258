package systems

import (
	"slices"
	"strings"

	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/logging"
	"github.com/automoto/padstate/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for polled keys to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
	knownPads    []ebiten.GamepadID
)

// lastWheel lets the poller send one zero event after the wheel stops.
var lastWheel components.MouseWheelEvent

// PollInput reads ebiten's input state and queues raw events for this
// tick's translators. Must run BEFORE every Update*Input system.
func PollInput(ecs *ecs.ECS) {
	queue := getOrCreateInputEvents(ecs)
	entry, _ := components.GamepadPoll.First(ecs.World)
	poll := components.GamepadPoll.Get(entry)

	pollGamepads(queue, poll)
	pollKeyboard(queue)
	pollMouse(queue)
}

func pollGamepads(queue *components.InputEventsData, poll *components.GamepadPollData) {
	poll.IDs = inpututil.AppendJustConnectedGamepadIDs(poll.IDs[:0])
	for _, id := range poll.IDs {
		poll.Flavors[id] = detectFlavor(ebiten.GamepadName(id))
		poll.Previous[id] = components.GamepadSnapshot{}
		queue.Gamepad = append(queue.Gamepad, components.GamepadEvent{
			Gamepad: id,
			Kind:    components.GamepadConnected,
		})
		logging.Log.Infow("gamepad connected",
			"gamepad", int(id), "name", ebiten.GamepadName(id), "flavor", poll.Flavors[id].String())
	}

	// map order is random; keep events in a stable gamepad order
	knownPads = knownPads[:0]
	for id := range poll.Previous {
		knownPads = append(knownPads, id)
	}
	slices.Sort(knownPads)

	for _, id := range knownPads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(poll.Previous, id)
			queue.Gamepad = append(queue.Gamepad, components.GamepadEvent{
				Gamepad: id,
				Kind:    components.GamepadDisconnected,
			})
			logging.Log.Infow("gamepad disconnected", "gamepad", int(id))
			continue
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		cur := readGamepad(id)
		queue.Gamepad = DiffGamepadSnapshot(queue.Gamepad, id, poll.Previous[id], cur, cfg.Input.AxisEpsilon)
		poll.Previous[id] = cur
	}
}

func readGamepad(id ebiten.GamepadID) components.GamepadSnapshot {
	var snap components.GamepadSnapshot
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		snap.Buttons[b] = float32(ebiten.StandardGamepadButtonValue(id, b))
	}
	for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
		snap.Axes[a] = float32(ebiten.StandardGamepadAxisValue(id, a))
	}
	return snap
}

// DiffGamepadSnapshot appends a ButtonChanged or AxisChanged event to out for
// every value that moved by more than epsilon. Buttons come before axes,
// each in index order.
func DiffGamepadSnapshot(out []components.GamepadEvent, id ebiten.GamepadID, prev, cur components.GamepadSnapshot, epsilon float32) []components.GamepadEvent {
	for i := range cur.Buttons {
		if changed(prev.Buttons[i], cur.Buttons[i], epsilon) {
			out = append(out, components.GamepadEvent{
				Gamepad: id,
				Kind:    components.GamepadButtonChanged,
				Button:  ebiten.StandardGamepadButton(i),
				Value:   cur.Buttons[i],
			})
		}
	}
	for i := range cur.Axes {
		if changed(prev.Axes[i], cur.Axes[i], epsilon) {
			out = append(out, components.GamepadEvent{
				Gamepad: id,
				Kind:    components.GamepadAxisChanged,
				Axis:    ebiten.StandardGamepadAxis(i),
				Value:   cur.Axes[i],
			})
		}
	}
	return out
}

func changed(prev, cur, epsilon float32) bool {
	d := cur - prev
	if d < 0 {
		d = -d
	}
	return d > epsilon
}

// detectFlavor guesses the controller family from its name
func detectFlavor(gamepadName string) components.GamepadFlavor {
	name := strings.ToLower(gamepadName)
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		return components.FlavorPlayStation
	}
	// Default gamepad to Xbox-style
	return components.FlavorXbox
}

func pollKeyboard(queue *components.InputEventsData) {
	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, k := range pressedKeys {
		queue.Keyboard = append(queue.Keyboard, components.KeyboardEvent{Key: k, State: state.ButtonPressed})
	}
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, k := range releasedKeys {
		queue.Keyboard = append(queue.Keyboard, components.KeyboardEvent{Key: k, State: state.ButtonReleased})
	}
}

func pollMouse(queue *components.InputEventsData) {
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			queue.MouseButton = append(queue.MouseButton, components.MouseButtonEvent{Button: b, State: state.ButtonPressed})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			queue.MouseButton = append(queue.MouseButton, components.MouseButtonEvent{Button: b, State: state.ButtonReleased})
		}
	}

	x, y := ebiten.Wheel()
	wheel := components.MouseWheelEvent{X: float32(x), Y: float32(y)}
	if wheel != (components.MouseWheelEvent{}) || lastWheel != (components.MouseWheelEvent{}) {
		queue.MouseWheel = append(queue.MouseWheel, wheel)
	}
	lastWheel = wheel
}
