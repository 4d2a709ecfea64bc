package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file location, relative to the process working directory.
const Path = "config/scene.json"

// Prefs holds viewer preferences (debug overlays, grid, camera feel). Persisted
// across runs. The scene layout itself lives in config/layout.yaml, not here.
type Prefs struct {
	ShowFPS          bool    `json:"show_fps"`
	ShowMemAlloc     bool    `json:"show_memalloc"`
	GridVisible      bool    `json:"grid_visible"`
	MouseSensitivity float32 `json:"mouse_sensitivity,omitempty"`
	MoveSpeed        float32 `json:"move_speed,omitempty"`
}

// Default returns default preferences: overlays and grid off, camera feel at
// the controller's built-in values (zero means "use the default").
func Default() Prefs {
	return Prefs{}
}

// Load reads preferences from config/scene.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/scene.json, creating the config directory
// if needed.
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
