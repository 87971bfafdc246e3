// Package validator checks the semantic constraints of a parsed scene.
package validator

import (
	"errors"
	"fmt"
	"math"

	"playermove/internal/loader/schema"
)

var ErrInvalidValue = errors.New("invalid value")

// FieldError names the offending field by its path in the scene, e.g.
// players[alice].camera.aspect.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidValue
}

type Validator interface {
	ValidateScene(s *schema.Scene) error
}

type YamlValidator struct {
}

func NewYamlValidator() *YamlValidator {
	return &YamlValidator{}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (y *YamlValidator) validateCamera(path string, c *schema.Camera) []error {
	if c == nil {
		return nil
	}
	var errs []error
	if !finite(c.OrthographicSize) || c.OrthographicSize <= 0 {
		errs = append(errs, &FieldError{Field: path + ".orthographic_size", Reason: "must be a positive number"})
	}
	if !finite(c.Aspect) || c.Aspect <= 0 {
		errs = append(errs, &FieldError{Field: path + ".aspect", Reason: "must be a positive number"})
	}
	return errs
}

func (y *YamlValidator) validatePlayer(p *schema.Player) []error {
	path := fmt.Sprintf("players[%s]", p.Name)
	var errs []error

	if p.Name == "" {
		errs = append(errs, &FieldError{Field: "players[].name", Reason: "cannot be empty"})
	}
	if !finite(p.Speed) || p.Speed < 0 {
		errs = append(errs, &FieldError{Field: path + ".speed", Reason: "must be a non-negative number"})
	}
	if !p.Start.IsFinite() {
		errs = append(errs, &FieldError{Field: path + ".start", Reason: "must be finite"})
	}
	errs = append(errs, y.validateCamera(path+".camera", p.Camera)...)

	for i, ev := range p.Script {
		if ev.Tick < 0 {
			errs = append(errs, &FieldError{Field: fmt.Sprintf("%s.script[%d].tick", path, i), Reason: "cannot be negative"})
		}
		if !ev.Move.IsFinite() {
			errs = append(errs, &FieldError{Field: fmt.Sprintf("%s.script[%d].move", path, i), Reason: "must be finite"})
		}
	}
	return errs
}

// ValidateScene reports every problem at once, joined with errors.Join.
func (y *YamlValidator) ValidateScene(s *schema.Scene) error {
	var errs []error

	if !finite(s.FixedDeltaTime) || s.FixedDeltaTime <= 0 {
		errs = append(errs, &FieldError{Field: "fixed_delta_time", Reason: "must be a positive number"})
	}
	if s.Ticks < 0 {
		errs = append(errs, &FieldError{Field: "ticks", Reason: "cannot be negative"})
	}
	if s.LogEvery < 0 {
		errs = append(errs, &FieldError{Field: "log_every", Reason: "cannot be negative"})
	}
	errs = append(errs, y.validateCamera("camera", s.Camera)...)

	if len(s.Players) == 0 {
		errs = append(errs, &FieldError{Field: "players", Reason: "must contain at least one player"})
	}
	seen := make(map[string]struct{}, len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		if _, dup := seen[p.Name]; dup && p.Name != "" {
			errs = append(errs, &FieldError{Field: fmt.Sprintf("players[%s].name", p.Name), Reason: "must be unique"})
		}
		seen[p.Name] = struct{}{}
		errs = append(errs, y.validatePlayer(p)...)
	}

	return errors.Join(errs...)
}
