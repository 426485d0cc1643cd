package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	appName     = "kaboom"
	settingsKey = "settings"
)

// SavedSettings represents the sandbox settings stored on disk
type SavedSettings struct {
	SFXVolume            float64 `json:"sfxVolume"`
	Muted                bool    `json:"muted"`
	ExplodeAllInSameTick bool    `json:"explodeAllInSameTick"`
	ShowBlastRadius      bool    `json:"showBlastRadius"`
	Level                string  `json:"level"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for settings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when nothing was saved yet
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}
