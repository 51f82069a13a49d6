package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/newtonian.json"

// Prefs holds display preferences persisted across runs. Simulation state is
// never persisted; this is window/overlay setup only.
type Prefs struct {
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	TargetFPS    int32  `json:"target_fps"`
	Renderer     string `json:"renderer,omitempty"`
	ShowFPS      bool   `json:"show_fps"`
	ShowBodies   bool   `json:"show_bodies"`
}

// Default returns the default preferences: a 640x640 window capped at 40
// frames per second, overlays off.
func Default() Prefs {
	return Prefs{
		WindowWidth:  640,
		WindowHeight: 640,
		TargetFPS:    40,
		Renderer:     "window",
	}
}

// Load reads preferences from config/newtonian.json. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() Prefs {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to config/newtonian.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
