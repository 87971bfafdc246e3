// Package motion integrates latched input into clamped body positions.
package motion

import (
	"errors"
	"fmt"
	"math"

	"playermove/internal/geom"
)

// DefaultExtents is used when no boundary camera is configured.
var DefaultExtents = geom.V(10, 10)

// Camera describes an orthographic camera. OrthographicSize is the vertical
// half-size of the view in world units; Aspect is width over height.
type Camera struct {
	OrthographicSize float64
	Aspect           float64
}

// ErrInvalidCamera marks a camera whose size or aspect is not a positive
// finite number.
var ErrInvalidCamera = errors.New("invalid camera")

func (c Camera) Validate() error {
	if !(c.OrthographicSize > 0) || math.IsInf(c.OrthographicSize, 0) {
		return fmt.Errorf("%w: orthographic size %v", ErrInvalidCamera, c.OrthographicSize)
	}
	if !(c.Aspect > 0) || math.IsInf(c.Aspect, 0) {
		return fmt.Errorf("%w: aspect %v", ErrInvalidCamera, c.Aspect)
	}
	return nil
}

// Extents returns the half-width and half-height of the area visible through
// cam, centered on the world origin. The camera position is not considered.
// A nil camera yields DefaultExtents. Extents are never negative.
func Extents(cam *Camera) geom.Vec2 {
	if cam == nil {
		return DefaultExtents
	}
	return geom.V(math.Abs(cam.OrthographicSize*cam.Aspect), math.Abs(cam.OrthographicSize))
}
