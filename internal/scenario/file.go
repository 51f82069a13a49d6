package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newtonian/internal/physics"
	"newtonian/internal/vmath"
)

// File is the YAML schema for a user-supplied scenario, e.g.:
//
//	name: binary
//	bodies:
//	  - mass: 500
//	    pos: [-60, 0, 0]
//	    vel: [0, 3, 0]
//	  - mass: 500
//	    pos: [60, 0, 0]
//	    vel: [0, -3, 0]
//	    color: [255, 120, 0]
type File struct {
	Name   string    `yaml:"name"`
	Bodies []BodyDef `yaml:"bodies"`
}

// BodyDef is one body entry in a scenario file. Color is optional; an
// all-zero color means "use the default white".
type BodyDef struct {
	Mass      float32    `yaml:"mass"`
	Pos       [3]float32 `yaml:"pos"`
	Vel       [3]float32 `yaml:"vel,omitempty"`
	Immovable bool       `yaml:"immovable,omitempty"`
	Color     [3]float32 `yaml:"color,omitempty"`
}

// LoadFile reads a scenario from a YAML file and returns its bodies in file
// order. A missing file, malformed YAML, an empty body list, or a
// non-positive mass is a configuration error.
func LoadFile(path string) ([]physics.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if len(f.Bodies) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no bodies", path)
	}

	bodies := make([]physics.Body, 0, len(f.Bodies))
	for i, def := range f.Bodies {
		if def.Mass <= 0 {
			return nil, fmt.Errorf("scenario file %s: body %d has non-positive mass %v", path, i, def.Mass)
		}
		color := physics.RGB{R: def.Color[0], G: def.Color[1], B: def.Color[2]}
		if color == (physics.RGB{}) {
			color = physics.DefaultColor
		}
		bodies = append(bodies, physics.NewBody(
			vmath.Vec3{X: def.Pos[0], Y: def.Pos[1], Z: def.Pos[2]},
			def.Mass,
			vmath.Vec3{X: def.Vel[0], Y: def.Vel[1], Z: def.Vel[2]},
			def.Immovable,
			color,
		))
	}
	return bodies, nil
}
