package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
)

// PhysicsSystem is the physics step: it commits move requests made during
// the tick. Bodies without a request keep their position.
type PhysicsSystem struct {
	metrics *MetricsAggregator
	filter  *ecs.Filter1[components.RigidBody]
}

func NewPhysicsSystem(world *ecs.World, metrics *MetricsAggregator) *PhysicsSystem {
	return &PhysicsSystem{
		metrics: metrics,
		filter:  ecs.NewFilter1[components.RigidBody](world),
	}
}

func (s *PhysicsSystem) Initialize(_ *ecs.World) {
	s.filter.Register()
}

func (s *PhysicsSystem) Update(_ *ecs.World) {
	start := time.Now()
	moved := 0

	query := s.filter.Query()
	for query.Next() {
		if query.Get().Commit() {
			moved++
		}
	}

	s.metrics.RecordSystemUpdate("physics", time.Since(start), moved)
}

func (s *PhysicsSystem) Finalize(_ *ecs.World) {}
