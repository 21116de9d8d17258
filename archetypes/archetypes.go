package archetypes

import (
	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// GamepadPlayer listens to one gamepad only.
	GamepadPlayer = newArchetype(
		tags.Player,
		components.InputView,
		components.GamepadMarker,
	)
	// Player listens to its gamepad plus the shared keyboard and mouse.
	Player = newArchetype(
		tags.Player,
		components.InputView,
		components.GamepadMarker,
		components.KeyboardMarker,
		components.MouseMarker,
	)
	InputQueue = newArchetype(
		tags.Events,
		components.InputEvents,
		components.GamepadPoll,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
