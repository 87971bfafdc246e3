package systems

import (
	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
)

// ClockSystem advances the FixedStep tick counter. It must be added last.
type ClockSystem struct {
	step *components.FixedStep
}

func (s *ClockSystem) Initialize(w *ecs.World) {
	s.step = ecs.GetResource[components.FixedStep](w)
}

func (s *ClockSystem) Update(_ *ecs.World) {
	s.step.Tick++
}

func (s *ClockSystem) Finalize(_ *ecs.World) {}
