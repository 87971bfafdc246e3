package parser

import (
	"errors"
	"strings"
	"testing"

	"playermove/internal/loader/schema"
)

const fullScene = `
fixed_delta_time: 0.01
ticks: 400
log_every: 25
camera:
  orthographic_size: 5
  aspect: 1.7778
players:
  - name: alice
    speed: 4
    start: [1, -2]
    script:
      - {tick: 0, move: [1, 0]}
      - tick: 10
        move: {x: 0, y: -1}
  - name: bob
    camera: {orthographic_size: 3, aspect: 1}
`

func TestYamlParser_FullScene(t *testing.T) {
	scene, err := NewParser().Parse(strings.NewReader(fullScene))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scene.FixedDeltaTime != 0.01 || scene.Ticks != 400 || scene.LogEvery != 25 {
		t.Errorf("scene scalars not parsed: %+v", scene)
	}
	if scene.Camera == nil || scene.Camera.OrthographicSize != 5 || scene.Camera.Aspect != 1.7778 {
		t.Errorf("scene camera not parsed: %+v", scene.Camera)
	}
	if len(scene.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(scene.Players))
	}

	alice := scene.Players[0]
	if alice.Name != "alice" || alice.Speed != 4 || alice.Start != (schema.Vec2{X: 1, Y: -2}) {
		t.Errorf("alice parsed wrong: %+v", alice)
	}
	wantScript := []schema.ScriptEvent{
		{Tick: 0, Move: schema.Vec2{X: 1}},
		{Tick: 10, Move: schema.Vec2{Y: -1}},
	}
	if len(alice.Script) != len(wantScript) {
		t.Fatalf("expected %d script events, got %d", len(wantScript), len(alice.Script))
	}
	for i, ev := range wantScript {
		if alice.Script[i] != ev {
			t.Errorf("script[%d] = %+v, want %+v", i, alice.Script[i], ev)
		}
	}

	bob := scene.Players[1]
	if bob.Speed != schema.DefaultSpeed {
		t.Errorf("bob should default to speed %v, got %v", schema.DefaultSpeed, bob.Speed)
	}
	if bob.Camera == nil || bob.Camera.OrthographicSize != 3 {
		t.Errorf("bob camera override missing: %+v", bob.Camera)
	}
	if cam := bob.BoundaryCamera(&scene); cam != bob.Camera {
		t.Error("player camera should take precedence over scene camera")
	}
	if cam := alice.BoundaryCamera(&scene); cam != scene.Camera {
		t.Error("player without camera should use scene camera")
	}
}

func TestYamlParser_Defaults(t *testing.T) {
	scene, err := NewParser().Parse(strings.NewReader("players:\n  - name: solo\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.FixedDeltaTime != schema.DefaultFixedDeltaTime {
		t.Errorf("expected default dt, got %v", scene.FixedDeltaTime)
	}
	if scene.Ticks != schema.DefaultTicks {
		t.Errorf("expected default ticks, got %v", scene.Ticks)
	}
	if scene.Camera != nil {
		t.Errorf("expected no camera, got %+v", scene.Camera)
	}
	if scene.Players[0].Start != (schema.Vec2{}) {
		t.Errorf("expected origin start, got %+v", scene.Players[0].Start)
	}
}

func TestYamlParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		sentinel error
		contains string
	}{
		{
			name:     "empty",
			yaml:     "",
			sentinel: ErrInvalidYamlFormat,
			contains: "empty document",
		},
		{
			name:     "broken yaml",
			yaml:     "players: [",
			sentinel: ErrInvalidYamlFormat,
		},
		{
			name:     "root not mapping",
			yaml:     "- 1\n- 2\n",
			sentinel: ErrInvalidYamlFormat,
			contains: "must be a mapping",
		},
		{
			name:     "missing players",
			yaml:     "ticks: 3\n",
			sentinel: ErrRequiredField,
			contains: `"players"`,
		},
		{
			name:     "unknown scene field",
			yaml:     "players: []\ngravity: 9.8\n",
			sentinel: ErrUnknownField,
			contains: "line 2",
		},
		{
			name:     "unknown player field",
			yaml:     "players:\n  - name: a\n    mass: 3\n",
			sentinel: ErrUnknownField,
			contains: `player "a"`,
		},
		{
			name:     "missing player name",
			yaml:     "players:\n  - speed: 3\n",
			sentinel: ErrRequiredField,
			contains: `"name"`,
		},
		{
			name:     "camera missing aspect",
			yaml:     "camera: {orthographic_size: 5}\nplayers: []\n",
			sentinel: ErrRequiredField,
			contains: `"aspect"`,
		},
		{
			name:     "speed not a number",
			yaml:     "players:\n  - name: a\n    speed: fast\n",
			sentinel: ErrInvalidType,
			contains: "line 3",
		},
		{
			name:     "ticks not an integer",
			yaml:     "ticks: 2.5\nplayers: []\n",
			sentinel: ErrInvalidType,
		},
		{
			name:     "vector wrong length",
			yaml:     "players:\n  - name: a\n    start: [1, 2, 3]\n",
			sentinel: ErrInvalidType,
			contains: "3 elements",
		},
		{
			name:     "script not a list",
			yaml:     "players:\n  - name: a\n    script: {tick: 1}\n",
			sentinel: ErrInvalidType,
		},
		{
			name:     "duplicate names",
			yaml:     "players:\n  - name: a\n  - name: a\n",
			sentinel: ErrDuplicateName,
			contains: "line 3",
		},
		{
			name:     "duplicate key",
			yaml:     "players:\n  - name: a\n    speed: 1\n    speed: 2\n",
			sentinel: ErrInvalidYamlFormat,
			contains: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYamlParser().Parse(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(%v), got %v", tt.sentinel, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should contain %q", err, tt.contains)
			}
		})
	}
}

func TestYamlParser_Anchors(t *testing.T) {
	const doc = `
cam: &cam {orthographic_size: 2, aspect: 2}
players:
  - name: a
    camera: *cam
`
	_, err := NewYamlParser().Parse(strings.NewReader(doc))
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("top-level anchor holder is not a scene field, got %v", err)
	}

	const inline = `
camera: &cam {orthographic_size: 2, aspect: 2}
players:
  - name: a
    camera: *cam
`
	scene, err := NewYamlParser().Parse(strings.NewReader(inline))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Players[0].Camera == nil || scene.Players[0].Camera.Aspect != 2 {
		t.Errorf("alias not resolved: %+v", scene.Players[0].Camera)
	}
}
