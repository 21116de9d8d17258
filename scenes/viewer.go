package scenes

import (
	"sync"

	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/systems"
	"github.com/automoto/padstate/systems/factory"
	"github.com/automoto/padstate/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene shows the live input state of every player view
type ViewerScene struct {
	ecs        *ecs.ECS
	settingsUI *ui.SettingsUI
	players    int
	once       sync.Once
}

// NewViewerScene creates a viewer with the given number of player views
func NewViewerScene(players int) *ViewerScene {
	return &ViewerScene{players: players}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
	vs.settingsUI.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Viewer.BackgroundColor)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
	vs.settingsUI.UI.Draw(screen)
}

func (vs *ViewerScene) configure() {
	vs.ecs = NewInputECS(vs.players)

	// Viewer systems read the views, so they run before the stamp pass
	vs.ecs.AddSystem(systems.UpdateViewerControls)
	vs.ecs.AddSystem(systems.UpdateViewerFlashes)
	vs.ecs.AddSystem(systems.UpdatePressStamps)

	vs.ecs.AddRenderer(cfg.Default, systems.DrawHeader)
	vs.ecs.AddRenderer(cfg.Default, systems.DrawInputViews)

	vs.settingsUI = ui.NewSettingsUI()
}

// NewInputECS builds a world with the event queue and player views and
// registers the input systems in order: poll, bind, translate. Callers
// add their readers next and systems.UpdatePressStamps last.
func NewInputECS(players int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.PollInput)
	e.AddSystem(systems.UpdateGamepadBindings) // Must run before UpdateGamepadInput
	e.AddSystem(systems.UpdateGamepadInput)
	e.AddSystem(systems.UpdateKeyboardInput)
	e.AddSystem(systems.UpdateMouseInput)

	factory.CreateInputQueue(e)

	// Player 1 starts on gamepad 0 and shares keyboard and mouse.
	// The others wait for a gamepad to connect.
	first := ebiten.GamepadID(0)
	factory.CreatePlayer(e, 0, &first)
	for i := 1; i < players; i++ {
		factory.CreateGamepadPlayer(e, i, nil)
	}
	return e
}
