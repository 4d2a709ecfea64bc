// Package layout describes what gets scattered around the scene: the prop
// categories, how many of each, their fixed height/scale/tilt, the spawn area,
// and the exclusion zones. The layout ships as a YAML file so the scene can be
// re-dressed without recompiling; a missing file falls back to the built-in
// holiday layout.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the layout file location, relative to the process working directory.
const Path = "config/layout.yaml"

// Prop category names used by the built-in layout and the prop renderer.
const (
	CandyCane   = "CandyCane"
	CottonCandy = "CottonCandy"
	Lollipop    = "Lollipop"
)

// Prop is one scatter category. Y, Scale, TiltX, and TiltZ are fixed per
// category; only the ground position and Y rotation vary per instance.
// Tilts are radians applied on top of the instance's random Y rotation.
type Prop struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"`
	Y     float32 `yaml:"y"`
	Scale float32 `yaml:"scale"`
	TiltX float32 `yaml:"tilt_x"`
	TiltZ float32 `yaml:"tilt_z"`
}

// Zone is an exclusion rectangle in the layout file (center + half extents).
type Zone struct {
	X     float32 `yaml:"x"`
	Z     float32 `yaml:"z"`
	HalfW float32 `yaml:"half_w"`
	HalfD float32 `yaml:"half_d"`
}

// Layout is the full scatter description. Seed 0 means a fresh layout per run.
type Layout struct {
	HalfExtent float32 `yaml:"half_extent"`
	Spacing    float32 `yaml:"spacing"`
	Seed       int64   `yaml:"seed"`
	Props      []Prop  `yaml:"props"`
	Zones      []Zone  `yaml:"zones"`
}

// Default returns the stock holiday layout: three candy categories of 20 each
// in a 100x100 area, keeping clear of the house and the wagon.
func Default() Layout {
	return Layout{
		HalfExtent: 50,
		Spacing:    3,
		Props: []Prop{
			{Name: CandyCane, Count: 20, Y: 0, Scale: 1},
			{Name: CottonCandy, Count: 20, Y: 0, Scale: 1.2},
			{Name: Lollipop, Count: 20, Y: 0, Scale: 1, TiltZ: 0.15},
		},
		Zones: []Zone{
			{X: 0, Z: 0, HalfW: 8, HalfD: 8},
			{X: 15, Z: 5, HalfW: 5, HalfD: 5},
		},
	}
}

// Total returns the summed instance count over all categories.
func (l Layout) Total() int {
	n := 0
	for _, p := range l.Props {
		n += p.Count
	}
	return n
}

// Load reads the layout from path. A missing file returns Default() with no
// error; a file that exists but does not parse is reported so a typo is not
// silently replaced by stock props. Zero-valued area fields are filled from
// defaults so a file may list only props.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if l.HalfExtent <= 0 {
		l.HalfExtent = Default().HalfExtent
	}
	if l.Spacing <= 0 {
		l.Spacing = Default().Spacing
	}
	if len(l.Props) == 0 {
		l.Props = Default().Props
	}
	if len(l.Zones) == 0 {
		// The house and wagon are always drawn, so their zones always apply.
		l.Zones = Default().Zones
	}
	return l, nil
}

// Save writes the layout to path (used by the scatter command to persist a
// layout the user liked).
func Save(path string, l Layout) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
