package factory

import (
	"github.com/automoto/padstate/archetypes"
	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player view that listens to its gamepad plus the
// keyboard and mouse. gamepad == nil leaves the marker unbound.
func CreatePlayer(ecs *ecs.ECS, index int, gamepad *ebiten.GamepadID) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initPlayer(player, index, gamepad)
	return player
}

// CreateGamepadPlayer spawns a player view that only listens to a gamepad.
func CreateGamepadPlayer(ecs *ecs.ECS, index int, gamepad *ebiten.GamepadID) *donburi.Entry {
	player := archetypes.GamepadPlayer.Spawn(ecs)
	initPlayer(player, index, gamepad)
	return player
}

func initPlayer(player *donburi.Entry, index int, gamepad *ebiten.GamepadID) {
	components.InputView.SetValue(player, components.NewInputViewData(
		index,
		components.BindingsFromConfig(cfg.Input.Bindings),
	))

	marker := components.GamepadMarkerData{}
	if gamepad != nil {
		marker = components.NewGamepadMarkerData(*gamepad)
	}
	components.GamepadMarker.SetValue(player, marker)
}

// CreateInputQueue spawns the singleton raw event queue.
func CreateInputQueue(ecs *ecs.ECS) *donburi.Entry {
	queue := archetypes.InputQueue.Spawn(ecs)
	components.GamepadPoll.SetValue(queue, components.GamepadPollData{
		Previous: map[ebiten.GamepadID]components.GamepadSnapshot{},
		Flavors:  map[ebiten.GamepadID]components.GamepadFlavor{},
	})
	return queue
}
