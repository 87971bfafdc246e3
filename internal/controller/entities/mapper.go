// Package entities creates players in an ark world and gives typed access to
// their components.
package entities

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
	"playermove/internal/geom"
	"playermove/internal/input"
	"playermove/internal/motion"
)

// PlayerSpec is everything needed to spawn one player.
type PlayerSpec struct {
	Name   string
	Speed  float64
	Start  geom.Vec2
	Camera *motion.Camera
	Script []components.ScriptEvent
}

type EntityManager struct {
	World    *ecs.World
	Player   *ecs.Map[components.Player]
	Body     *ecs.Map[components.RigidBody]
	Movement *ecs.Map[components.Movement]
	Boundary *ecs.Map[components.Boundary]
	Script   *ecs.Map[components.InputScript]

	spawn *ecs.Map4[components.Player, components.RigidBody, components.Movement, components.Boundary]
}

// NewEntityManager creates the component mappers for world.
func NewEntityManager(world *ecs.World) *EntityManager {
	return &EntityManager{
		World:    world,
		Player:   ecs.NewMap[components.Player](world),
		Body:     ecs.NewMap[components.RigidBody](world),
		Movement: ecs.NewMap[components.Movement](world),
		Boundary: ecs.NewMap[components.Boundary](world),
		Script:   ecs.NewMap[components.InputScript](world),
		spawn:    ecs.NewMap4[components.Player, components.RigidBody, components.Movement, components.Boundary](world),
	}
}

// SpawnPlayer creates a player entity. Boundary extents are derived from
// spec.Camera here and never recomputed. Must not be called while a query
// is iterating.
func (m *EntityManager) SpawnPlayer(spec PlayerSpec) ecs.Entity {
	player := components.Player{ID: uuid.New(), Name: spec.Name}
	body := components.RigidBody{Pos: spec.Start, Target: spec.Start}
	movement := components.Movement{Speed: spec.Speed, Input: input.NewLatch()}
	boundary := components.Boundary{
		Extents:    motion.Extents(spec.Camera),
		FromCamera: spec.Camera != nil,
	}

	e := m.spawn.NewEntity(&player, &body, &movement, &boundary)

	if len(spec.Script) > 0 {
		events := make([]components.ScriptEvent, len(spec.Script))
		copy(events, spec.Script)
		sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })
		m.Script.Add(e, &components.InputScript{Events: events})
	}
	return e
}

// Latch returns the input latch of a player entity.
func (m *EntityManager) Latch(e ecs.Entity) *input.Latch {
	return m.Movement.Get(e).Input
}
