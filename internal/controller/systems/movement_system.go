package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
	"playermove/internal/logger"
	"playermove/internal/motion"
)

// MovementSystem integrates latched input into a clamped move request for
// every player body, once per fixed tick.
type MovementSystem struct {
	logger  logger.Logger
	metrics *MetricsAggregator

	step   *components.FixedStep
	filter *ecs.Filter3[components.RigidBody, components.Movement, components.Boundary]

	// Clamped counts ticks where a body's unclamped target fell outside its boundary.
	Clamped uint64
}

func NewMovementSystem(world *ecs.World, log logger.Logger, metrics *MetricsAggregator) *MovementSystem {
	return &MovementSystem{
		logger:  log,
		metrics: metrics,
		filter:  ecs.NewFilter3[components.RigidBody, components.Movement, components.Boundary](world),
	}
}

func (s *MovementSystem) Initialize(w *ecs.World) {
	s.step = ecs.GetResource[components.FixedStep](w)
	s.filter.Register()
	s.logger.Debug("movement system initialized", logger.F("dt", s.step.DT))
}

func (s *MovementSystem) Update(_ *ecs.World) {
	start := time.Now()
	dt := s.step.DT
	count := 0

	query := s.filter.Query()
	for query.Next() {
		body, movement, boundary := query.Get()
		in := movement.Input.Load()

		free := body.Position().Add(in.Scale(movement.Speed * dt))
		target := motion.Integrate(body, in, movement.Speed, dt, boundary.Extents)
		if free != target {
			s.Clamped++
		}
		count++
	}

	s.metrics.RecordSystemUpdate("movement", time.Since(start), count)
}

func (s *MovementSystem) Finalize(_ *ecs.World) {
	s.logger.Debug("movement system finalized", logger.F("clamped", s.Clamped))
}
