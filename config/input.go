package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionAttack
	ActionCrouch
	ActionBoomerang
	ActionPause
	ActionSteer
	ActionAccelerate
	ActionDash  // chord: every bound receiver must be held
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "None",
	ActionMoveLeft:   "MoveLeft",
	ActionMoveRight:  "MoveRight",
	ActionMoveUp:     "MoveUp",
	ActionJump:       "Jump",
	ActionAttack:     "Attack",
	ActionCrouch:     "Crouch",
	ActionBoomerang:  "Boomerang",
	ActionPause:      "Pause",
	ActionSteer:      "Steer",
	ActionAccelerate: "Accelerate",
	ActionDash:       "Dash",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputBinding represents the keys, buttons and axes bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	StandardGamepadAxes    []ebiten.StandardGamepadAxis
	MouseButtons           []ebiten.MouseButton
}

// InputConfig holds all input mappings and thresholds
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Magnitude at or below which a gamepad button or axis reads as released
	GamepadDeadZone float32
	// Smallest change in a polled gamepad value that produces an event
	AxisEpsilon float32
	// Upper bound on views spawned by the viewer
	MaxPlayers int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		GamepadDeadZone: 0.1,
		AxisEpsilon:     0.001,
		MaxPlayers:      4,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				// D-pad Left
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				// D-pad Right
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				// D-pad Up
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeyZ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// D-pad Down
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionBoomerang: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionSteer: {
				StandardGamepadAxes: []ebiten.StandardGamepadAxis{
					ebiten.StandardGamepadAxisLeftStickHorizontal,
				},
			},
			ActionAccelerate: {
				Keys: []ebiten.Key{ebiten.KeyShift},
				// Right trigger, analog
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShift, ebiten.KeyD},
			},
		},
	}
}
