// Package controller assembles a movement world: it spawns players from a
// scene, wires the systems onto an ark-tools app and steps it tick by tick.
package controller

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"playermove/internal/controller/components"
	"playermove/internal/controller/entities"
	"playermove/internal/controller/systems"
	"playermove/internal/geom"
	"playermove/internal/input"
	"playermove/internal/loader/schema"
	"playermove/internal/logger"
	"playermove/internal/motion"
)

// PlayerState is a read-only view of one player after the last tick.
type PlayerState struct {
	ID       uuid.UUID
	Name     string
	Position geom.Vec2
	Extents  geom.Vec2
	Speed    float64
	Input    geom.Vec2
	Moves    uint64
}

// Simulation owns one ark world. Step and SpawnPlayer must be called from a
// single goroutine; latches returned by Latch may be written from any.
type Simulation struct {
	app    *app.App
	world  *ecs.World
	mapper *entities.EntityManager
	step   *components.FixedStep

	movement *systems.MovementSystem
	metrics  *systems.MetricsAggregator
	logger   logger.Logger

	players map[string]ecs.Entity
	closed  bool
}

// NewSimulation builds a world for scene and spawns its players.
// The scene is expected to have passed validation.
func NewSimulation(scene *schema.Scene, log logger.Logger) (*Simulation, error) {
	if scene.FixedDeltaTime <= 0 {
		return nil, fmt.Errorf("fixed delta time must be positive, got %v", scene.FixedDeltaTime)
	}
	if log == nil {
		log = logger.Nop()
	}

	tool := app.New(1024)
	// Ticks are driven explicitly through Step; no rate limit.
	tool.TPS = 0

	world := &tool.World
	step := &components.FixedStep{DT: scene.FixedDeltaTime}
	ecs.AddResource(world, step)

	metrics := systems.NewMetricsAggregator()
	movement := systems.NewMovementSystem(world, log.With(logger.F("system", "movement")), metrics)

	tool.AddSystem(systems.NewScriptSystem(world, log.With(logger.F("system", "script")), metrics))
	tool.AddSystem(movement)
	tool.AddSystem(systems.NewPhysicsSystem(world, metrics))
	tool.AddSystem(systems.NewSnapshotSystem(world, scene.LogEvery, log))
	tool.AddSystem(&systems.ClockSystem{})

	s := &Simulation{
		app:      tool,
		world:    world,
		mapper:   entities.NewEntityManager(world),
		step:     step,
		movement: movement,
		metrics:  metrics,
		logger:   log,
		players:  make(map[string]ecs.Entity, len(scene.Players)),
	}

	for i := range scene.Players {
		p := &scene.Players[i]
		if _, err := s.SpawnPlayer(specFromScene(scene, p)); err != nil {
			return nil, err
		}
	}

	tool.Initialize()
	log.Info("simulation initialized",
		logger.F("players", len(s.players)),
		logger.F("dt", step.DT),
	)
	return s, nil
}

func specFromScene(scene *schema.Scene, p *schema.Player) entities.PlayerSpec {
	spec := entities.PlayerSpec{
		Name:  p.Name,
		Speed: p.Speed,
		Start: geom.V(p.Start.X, p.Start.Y),
	}
	if cam := p.BoundaryCamera(scene); cam != nil {
		spec.Camera = &motion.Camera{OrthographicSize: cam.OrthographicSize, Aspect: cam.Aspect}
	}
	for _, ev := range p.Script {
		spec.Script = append(spec.Script, components.ScriptEvent{Tick: ev.Tick, Move: geom.V(ev.Move.X, ev.Move.Y)})
	}
	return spec
}

// SpawnPlayer adds a player to the world. Names must be unique and a
// camera, when given, must have a positive size and aspect.
func (s *Simulation) SpawnPlayer(spec entities.PlayerSpec) (*input.Latch, error) {
	if _, exists := s.players[spec.Name]; exists {
		return nil, fmt.Errorf("player %q already exists", spec.Name)
	}
	if spec.Camera != nil {
		if err := spec.Camera.Validate(); err != nil {
			return nil, fmt.Errorf("player %q: %w", spec.Name, err)
		}
	}
	e := s.mapper.SpawnPlayer(spec)
	s.players[spec.Name] = e

	p := s.mapper.Player.Get(e)
	b := s.mapper.Boundary.Get(e)
	s.logger.Debug("player spawned",
		logger.F("player", p.Name),
		logger.F("player_id", p.ID),
		logger.F("start", spec.Start),
		logger.F("extents", b.Extents),
		logger.F("camera", b.FromCamera),
	)
	return s.mapper.Latch(e), nil
}

// Step runs n fixed ticks.
func (s *Simulation) Step(n int) {
	for i := 0; i < n; i++ {
		s.app.Update()
	}
}

// Tick is the number of ticks completed.
func (s *Simulation) Tick() int64 {
	return s.step.Tick
}

// DT is the fixed tick duration in seconds.
func (s *Simulation) DT() float64 {
	return s.step.DT
}

// Latch returns the input latch of the named player.
func (s *Simulation) Latch(name string) (*input.Latch, bool) {
	e, ok := s.players[name]
	if !ok {
		return nil, false
	}
	return s.mapper.Latch(e), true
}

// Player returns the state of the named player.
func (s *Simulation) Player(name string) (PlayerState, bool) {
	e, ok := s.players[name]
	if !ok {
		return PlayerState{}, false
	}
	return s.state(e), true
}

// Players returns every player's state sorted by name.
func (s *Simulation) Players() []PlayerState {
	out := make([]PlayerState, 0, len(s.players))
	for _, e := range s.players {
		out = append(out, s.state(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Simulation) state(e ecs.Entity) PlayerState {
	p := s.mapper.Player.Get(e)
	b := s.mapper.Body.Get(e)
	m := s.mapper.Movement.Get(e)
	return PlayerState{
		ID:       p.ID,
		Name:     p.Name,
		Position: b.Pos,
		Extents:  s.mapper.Boundary.Get(e).Extents,
		Speed:    m.Speed,
		Input:    m.Input.Load(),
		Moves:    b.Moves,
	}
}

// Clamped counts player-ticks that hit a boundary.
func (s *Simulation) Clamped() uint64 {
	return s.movement.Clamped
}

func (s *Simulation) Metrics() []systems.SystemMetrics {
	return s.metrics.GetAllMetrics()
}

// Close finalizes the systems. It is safe to call more than once.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.app.Finalize()
}
