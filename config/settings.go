package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk viewer configuration.
// Action bindings are not part of it; they always come from Input.Bindings.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Input   InputSettings   `yaml:"input"`
	Logging LoggingSettings `yaml:"logging"`
}

type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type InputSettings struct {
	GamepadDeadZone float32 `yaml:"gamepad_dead_zone"`
	Players         int     `yaml:"players"`
	ShowReceivers   bool    `yaml:"show_receivers"`
}

type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  C.Width,
			Height: C.Height,
		},
		Input: InputSettings{
			GamepadDeadZone: Input.GamepadDeadZone,
			Players:         2,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// Load reads a YAML settings file. Fields missing from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.Validate()
	return s, nil
}

// Validate clamps out of range values.
func (s *Settings) Validate() {
	if s.Input.GamepadDeadZone < 0 {
		s.Input.GamepadDeadZone = 0
	}
	if s.Input.GamepadDeadZone >= 1 {
		s.Input.GamepadDeadZone = 0.99
	}
	if s.Input.Players < 1 {
		s.Input.Players = 1
	}
	if s.Input.Players > Input.MaxPlayers {
		s.Input.Players = Input.MaxPlayers
	}
	if s.Window.Width <= 0 {
		s.Window.Width = C.Width
	}
	if s.Window.Height <= 0 {
		s.Window.Height = C.Height
	}
}

// Apply copies the settings into the global configuration.
func (s *Settings) Apply() {
	C.Width = s.Window.Width
	C.Height = s.Window.Height
	Input.GamepadDeadZone = s.Input.GamepadDeadZone
	Debug.ShowReceivers = s.Input.ShowReceivers
}
