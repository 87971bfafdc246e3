package validator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"playermove/internal/loader/schema"
)

func validScene() schema.Scene {
	s := schema.DefaultScene()
	s.Camera = &schema.Camera{OrthographicSize: 5, Aspect: 1.7778}
	s.Players = []schema.Player{
		{Name: "alice", Speed: 6, Script: []schema.ScriptEvent{{Tick: 0, Move: schema.Vec2{X: 1}}}},
		{Name: "bob", Speed: 0, Start: schema.Vec2{X: -3, Y: 2}},
	}
	return s
}

func TestValidateScene_Valid(t *testing.T) {
	s := validScene()
	if err := NewYamlValidator().ValidateScene(&s); err != nil {
		t.Fatalf("expected valid scene, got %v", err)
	}
}

func TestValidateScene_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *schema.Scene)
		field  string
	}{
		{"zero dt", func(s *schema.Scene) { s.FixedDeltaTime = 0 }, "fixed_delta_time"},
		{"nan dt", func(s *schema.Scene) { s.FixedDeltaTime = math.NaN() }, "fixed_delta_time"},
		{"negative ticks", func(s *schema.Scene) { s.Ticks = -1 }, "ticks"},
		{"negative log interval", func(s *schema.Scene) { s.LogEvery = -5 }, "log_every"},
		{"zero camera size", func(s *schema.Scene) { s.Camera.OrthographicSize = 0 }, "camera.orthographic_size"},
		{"negative aspect", func(s *schema.Scene) { s.Camera.Aspect = -1 }, "camera.aspect"},
		{"no players", func(s *schema.Scene) { s.Players = nil }, "players"},
		{"empty name", func(s *schema.Scene) { s.Players[1].Name = "" }, "players[].name"},
		{"duplicate name", func(s *schema.Scene) { s.Players[1].Name = "alice" }, "players[alice].name"},
		{"negative speed", func(s *schema.Scene) { s.Players[0].Speed = -2 }, "players[alice].speed"},
		{"infinite start", func(s *schema.Scene) { s.Players[1].Start.X = math.Inf(1) }, "players[bob].start"},
		{"player camera", func(s *schema.Scene) {
			s.Players[1].Camera = &schema.Camera{OrthographicSize: 1, Aspect: 0}
		}, "players[bob].camera.aspect"},
		{"negative script tick", func(s *schema.Scene) { s.Players[0].Script[0].Tick = -1 }, "players[alice].script[0].tick"},
		{"nan script move", func(s *schema.Scene) { s.Players[0].Script[0].Move.Y = math.NaN() }, "players[alice].script[0].move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScene()
			tt.mutate(&s)

			err := NewYamlValidator().ValidateScene(&s)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected a *FieldError in %v", err)
			}
			if !strings.Contains(err.Error(), tt.field+" ") {
				t.Errorf("error %q should name field %q", err, tt.field)
			}
		})
	}
}

func TestValidateScene_ReportsAll(t *testing.T) {
	s := validScene()
	s.FixedDeltaTime = -1
	s.Players[0].Speed = -1
	s.Camera.Aspect = 0

	err := NewYamlValidator().ValidateScene(&s)
	if err == nil {
		t.Fatal("expected errors")
	}
	if got := strings.Count(err.Error(), "\n") + 1; got != 3 {
		t.Errorf("expected 3 joined errors, got %d: %v", got, err)
	}
}
