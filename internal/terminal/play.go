package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"playermove/internal/controller"
	"playermove/internal/input"
	"playermove/internal/logger"
)

// Session drives one simulation from keyboard input. Key presses are latched
// on the event goroutine; ticks and rendering run on the goroutine calling Run.
type Session struct {
	screen tcell.Screen
	sim    *controller.Simulation
	player string
	latch  *input.Latch
	logger logger.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSession binds player's latch to screen. The screen must already be
// initialized; the caller finalizes it.
func NewSession(screen tcell.Screen, sim *controller.Simulation, player string, log logger.Logger) (*Session, error) {
	latch, ok := sim.Latch(player)
	if !ok {
		return nil, fmt.Errorf("no player named %q", player)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		screen: screen,
		sim:    sim,
		player: player,
		latch:  latch,
		logger: log.With(logger.F("player", player)),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

// Run ticks at the simulation's fixed rate until ctx is done or a quit key
// is pressed. A cancelled context is not an error.
func (s *Session) Run(ctx context.Context) error {
	control := make(chan tcell.Event, 8)
	go s.pollEvents(control)
	defer s.stop()

	period := time.Duration(s.sim.DT() * float64(time.Second))
	if period <= 0 {
		return errors.New("simulation has no tick period")
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	s.render()
	s.logger.Info("play started", logger.F("period", period))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("play stopped", logger.F("tick", s.sim.Tick()))
			return nil
		case ev := <-control:
			switch ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
				s.render()
			case *tcell.EventKey:
				s.logger.Info("play quit", logger.F("tick", s.sim.Tick()))
				return nil
			}
		case <-ticker.C:
			s.sim.Step(1)
			s.render()
		}
	}
}

func (s *Session) render() {
	Draw(s.screen, s.sim.Players(), s.player, s.sim.Tick())
	s.screen.Show()
}

// pollEvents latches movement keys directly and forwards quit keys and
// resizes to control.
func (s *Session) pollEvents(control chan<- tcell.Event) {
	defer close(s.doneCh)
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			v, action := KeyVector(ev.Key(), ev.Rune())
			switch action {
			case ActionMove:
				s.latch.Set(v)
				s.logger.Debug("input latched", logger.F("input", v))
				continue
			case ActionNone:
				continue
			}
		case *tcell.EventResize:
		default:
			continue
		}

		select {
		case control <- ev:
		case <-s.stopCh:
			return
		}
	}
}

func (s *Session) stop() {
	close(s.stopCh)
	// Unblock PollEvent.
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-s.doneCh
}
