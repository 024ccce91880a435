package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the engine and the bridge.
type Settings struct {
	Bridge struct {
		// Address is the address the websocket bridge listens on, ex: "127.0.0.1:8787".
		Address string
		Path    string
		// FrameRate is the amount of frames the headless host renders per second.
		FrameRate int
	}
	Render struct {
		// Embedded enables the frame submission handshake with the page hosting the engine.
		Embedded bool
		ShowPerf bool
	}
	Interaction struct {
		// TriggerSize is the edge length of the cubic trigger volume around each hand.
		TriggerSize float32
		// GrabButton is the controller button index that picks up on press and drops on release.
		GrabButton int
	}
	Log struct {
		Level string
	}
	Diagnostics struct {
		StatsView     bool
		StatsViewAddr string
		SentryDSN     string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Bridge.Address = "127.0.0.1:8787"
	s.Bridge.Path = "/webxr"
	s.Bridge.FrameRate = 90
	s.Render.Embedded = true
	s.Interaction.TriggerSize = 0.15
	s.Interaction.GrabButton = 1
	s.Log.Level = "info"
	s.Diagnostics.StatsViewAddr = "localhost:18066"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.Bridge.FrameRate <= 0 {
		return Settings{}, fmt.Errorf("invalid frame rate %d", s.Bridge.FrameRate)
	}
	return s, nil
}
