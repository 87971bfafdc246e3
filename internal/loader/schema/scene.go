// Package schema defines the scene manifest loaded from YAML.
package schema

import "math"

const (
	DefaultFixedDeltaTime = 0.02
	DefaultTicks          = 250
	DefaultSpeed          = 6.0
)

// Scene is one simulation setup: a fixed timestep, an optional boundary
// camera shared by its players, and the players themselves.
type Scene struct {
	// Source is the file the scene was loaded from; not part of the YAML.
	Source string `yaml:"-"`

	FixedDeltaTime float64  `yaml:"fixed_delta_time"`
	Ticks          int      `yaml:"ticks"`
	LogEvery       int      `yaml:"log_every"`
	Camera         *Camera  `yaml:"camera"`
	Players        []Player `yaml:"players"`
}

// DefaultScene returns a scene with every optional field at its default.
func DefaultScene() Scene {
	return Scene{
		FixedDeltaTime: DefaultFixedDeltaTime,
		Ticks:          DefaultTicks,
	}
}

// Camera is an orthographic boundary camera.
type Camera struct {
	OrthographicSize float64 `yaml:"orthographic_size"`
	Aspect           float64 `yaml:"aspect"`
}

type Player struct {
	Name   string        `yaml:"name"`
	Speed  float64       `yaml:"speed"`
	Start  Vec2          `yaml:"start"`
	Camera *Camera       `yaml:"camera"`
	Script []ScriptEvent `yaml:"script"`
}

// BoundaryCamera returns the player's own camera, falling back to the scene camera.
func (p *Player) BoundaryCamera(scene *Scene) *Camera {
	if p.Camera != nil {
		return p.Camera
	}
	return scene.Camera
}

// ScriptEvent latches Move as the player's input at the start of Tick.
type ScriptEvent struct {
	Tick int64 `yaml:"tick"`
	Move Vec2  `yaml:"move"`
}

// Vec2 is written as [x, y] or {x: .., y: ..}.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
