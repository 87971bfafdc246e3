package systems

import (
	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
	"playermove/internal/logger"
)

// SnapshotSystem logs every player's committed position every Every ticks.
// Every <= 0 disables it.
type SnapshotSystem struct {
	Every int

	logger logger.Logger
	step   *components.FixedStep
	filter *ecs.Filter3[components.Player, components.RigidBody, components.Boundary]
}

func NewSnapshotSystem(world *ecs.World, every int, log logger.Logger) *SnapshotSystem {
	return &SnapshotSystem{
		Every:  every,
		logger: log,
		filter: ecs.NewFilter3[components.Player, components.RigidBody, components.Boundary](world),
	}
}

func (s *SnapshotSystem) Initialize(w *ecs.World) {
	s.step = ecs.GetResource[components.FixedStep](w)
}

func (s *SnapshotSystem) Update(_ *ecs.World) {
	if s.Every <= 0 || s.step.Tick%int64(s.Every) != 0 {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		player, body, boundary := query.Get()
		s.logger.Info("position",
			logger.F("tick", s.step.Tick),
			logger.F("player", player.Name),
			logger.F("player_id", player.ID),
			logger.F("position", body.Pos),
			logger.F("extents", boundary.Extents),
		)
	}
}

func (s *SnapshotSystem) Finalize(_ *ecs.World) {}
