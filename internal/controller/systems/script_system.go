package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
	"playermove/internal/logger"
)

// ScriptSystem replays scripted input. At the start of tick t it latches
// every event with Tick <= t that has not been applied yet, in order, so
// the last one for the tick wins.
type ScriptSystem struct {
	logger  logger.Logger
	metrics *MetricsAggregator

	step   *components.FixedStep
	filter *ecs.Filter2[components.Movement, components.InputScript]
}

func NewScriptSystem(world *ecs.World, log logger.Logger, metrics *MetricsAggregator) *ScriptSystem {
	return &ScriptSystem{
		logger:  log,
		metrics: metrics,
		filter:  ecs.NewFilter2[components.Movement, components.InputScript](world),
	}
}

func (s *ScriptSystem) Initialize(w *ecs.World) {
	s.step = ecs.GetResource[components.FixedStep](w)
	s.filter.Register()
}

func (s *ScriptSystem) Update(_ *ecs.World) {
	start := time.Now()
	tick := s.step.Tick
	applied := 0

	query := s.filter.Query()
	for query.Next() {
		movement, script := query.Get()
		for !script.Done() && script.Events[script.Next].Tick <= tick {
			movement.Input.Set(script.Events[script.Next].Move)
			script.Next++
			applied++
		}
	}

	if applied > 0 {
		s.logger.Debug("script input applied", logger.F("tick", tick), logger.F("events", applied))
	}
	s.metrics.RecordSystemUpdate("script", time.Since(start), applied)
}

func (s *ScriptSystem) Finalize(_ *ecs.World) {}
