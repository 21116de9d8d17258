package systems

import (
	"github.com/automoto/padstate/components"
	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const deadZoneStep = 0.05

// UpdateViewerControls lets the first player tune the viewer with the
// keyboard: '=' and '-' move the gamepad dead zone, F1 toggles the raw
// receiver list.
func UpdateViewerControls(ecs *ecs.ECS) {
	view := firstPlayerView(ecs)
	if view == nil {
		return
	}

	if view.State(components.KeyboardKey(ebiten.KeyEqual)).Press.JustPressed() {
		StepDeadZone(deadZoneStep)
	}
	if view.State(components.KeyboardKey(ebiten.KeyMinus)).Press.JustPressed() {
		StepDeadZone(-deadZoneStep)
	}
	if view.State(components.KeyboardKey(ebiten.KeyF1)).Press.JustPressed() {
		ToggleReceivers()
	}
}

// StepDeadZone moves the gamepad dead zone by delta, clamped to [0, 0.95],
// and saves the result.
func StepDeadZone(delta float32) {
	cfg.Input.GamepadDeadZone = min(max(cfg.Input.GamepadDeadZone+delta, 0), 0.95)
	settingsChanged()
}

// ToggleReceivers flips the raw receiver list and saves the result.
func ToggleReceivers() {
	cfg.Debug.ShowReceivers = !cfg.Debug.ShowReceivers
	settingsChanged()
}

func settingsChanged() {
	logging.Log.Infow("viewer settings changed",
		"deadZone", cfg.Input.GamepadDeadZone, "showReceivers", cfg.Debug.ShowReceivers)
	SaveCurrentSettings()
}

// UpdateViewerFlashes starts a fading highlight on every action that was
// just pressed and advances the running ones.
func UpdateViewerFlashes(ecs *ecs.ECS) {
	viewer := getOrCreateViewer(ecs)
	dt := float32(1) / float32(ebiten.TPS())

	components.InputView.Each(ecs.World, func(entry *donburi.Entry) {
		view := components.InputView.Get(entry)
		for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
			if view.Action(action).Press.JustPressed() {
				key := components.FlashKey{Player: view.PlayerIndex, Action: action}
				viewer.Tweens[key] = gween.New(1, 0, cfg.Viewer.FlashDuration, ease.OutQuad)
			}
		}
	})

	AdvanceFlashes(viewer, dt)
}

// AdvanceFlashes moves every running flash forward by dt seconds and drops
// the finished ones.
func AdvanceFlashes(viewer *components.ViewerData, dt float32) {
	for key, tw := range viewer.Tweens {
		alpha, done := tw.Update(dt)
		if done {
			delete(viewer.Tweens, key)
			delete(viewer.Flash, key)
			continue
		}
		viewer.Flash[key] = alpha
	}
}

func firstPlayerView(ecs *ecs.ECS) *components.InputViewData {
	var first *components.InputViewData
	components.InputView.Each(ecs.World, func(entry *donburi.Entry) {
		view := components.InputView.Get(entry)
		if first == nil || view.PlayerIndex < first.PlayerIndex {
			first = view
		}
	})
	return first
}

// getOrCreateViewer returns the singleton Viewer component, creating if needed
func getOrCreateViewer(ecs *ecs.ECS) *components.ViewerData {
	entry, ok := components.Viewer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Viewer))
		components.Viewer.SetValue(entry, components.ViewerData{
			Tweens: map[components.FlashKey]*gween.Tween{},
			Flash:  map[components.FlashKey]float32{},
		})
	}
	return components.Viewer.Get(entry)
}
