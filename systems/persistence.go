package systems

import (
	"encoding/json"

	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the viewer state kept between sessions.
// Bindings are deliberately not part of it.
type SavedSettings struct {
	GamepadDeadZone float32 `json:"gamepadDeadZone"`
	ShowReceivers   bool    `json:"showReceivers"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "padstate",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logging.Log.Warnw("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		logging.Log.Warnw("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the global configuration values that the
// viewer lets the user change.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		GamepadDeadZone: cfg.Input.GamepadDeadZone,
		ShowReceivers:   cfg.Debug.ShowReceivers,
	}
}

// ApplySavedSettings copies saved values into the global configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.GamepadDeadZone >= 0 && saved.GamepadDeadZone < 1 {
		cfg.Input.GamepadDeadZone = saved.GamepadDeadZone
	}
	cfg.Debug.ShowReceivers = saved.ShowReceivers
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Log.Warnw("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}
