package motion

import "playermove/internal/geom"

// Body is the physics side of a player: its current position and a move
// primitive that the physics step resolves.
type Body interface {
	Position() geom.Vec2
	MovePosition(target geom.Vec2)
}

// Next returns pos advanced by input*speed*dt and clamped into extents.
func Next(pos, input geom.Vec2, speed, dt float64, extents geom.Vec2) geom.Vec2 {
	delta := input.Scale(speed * dt)
	return pos.Add(delta).ClampSymmetric(extents)
}

// Integrate runs one fixed tick for body and returns the committed target.
func Integrate(body Body, input geom.Vec2, speed, dt float64, extents geom.Vec2) geom.Vec2 {
	target := Next(body.Position(), input, speed, dt, extents)
	body.MovePosition(target)
	return target
}
