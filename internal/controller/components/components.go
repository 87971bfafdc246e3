// Package components defines the ECS components and resources of a movement world.
package components

import (
	"github.com/google/uuid"

	"playermove/internal/geom"
	"playermove/internal/input"
)

// Player identifies a controllable body.
type Player struct {
	ID   uuid.UUID
	Name string
}

// RigidBody is the physics side of a player. Movement never writes Pos
// directly: it requests a target with MovePosition and the physics step
// commits it.
type RigidBody struct {
	Pos     geom.Vec2
	Target  geom.Vec2
	Pending bool
	Moves   uint64
}

func (b *RigidBody) Position() geom.Vec2 {
	return b.Pos
}

// MovePosition requests a move to target; a later request in the same tick
// replaces an earlier one.
func (b *RigidBody) MovePosition(target geom.Vec2) {
	b.Target = target
	b.Pending = true
}

// Commit applies a pending move and reports whether there was one.
func (b *RigidBody) Commit() bool {
	if !b.Pending {
		return false
	}
	b.Pos = b.Target
	b.Pending = false
	b.Moves++
	return true
}

// Movement carries the configured speed and the input latch written by
// the host input source.
type Movement struct {
	Speed float64
	Input *input.Latch
}

// Boundary holds the half-extents computed once when the player spawns.
type Boundary struct {
	Extents    geom.Vec2
	FromCamera bool
}

type ScriptEvent struct {
	Tick int64
	Move geom.Vec2
}

// InputScript replays input events into the Movement latch. Events are
// sorted by tick; Next indexes the first event not yet applied.
type InputScript struct {
	Events []ScriptEvent
	Next   int
}

// Done reports whether every event has been applied.
func (s *InputScript) Done() bool {
	return s.Next >= len(s.Events)
}

// FixedStep is a world resource: the tick duration in seconds and the
// number of ticks completed so far.
type FixedStep struct {
	DT   float64
	Tick int64
}
