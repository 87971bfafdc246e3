// Package runner simulates scene files headlessly, several at a time, on an
// ants worker pool.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"playermove/internal/controller"
	"playermove/internal/controller/systems"
	"playermove/internal/loader/loader"
	"playermove/internal/loader/schema"
	"playermove/internal/logger"
)

// ErrPanicked marks a scene whose simulation panicked.
var ErrPanicked = errors.New("simulation panicked")

// stepChunk is how many ticks run between cancellation checks.
const stepChunk = 64

// Report is the outcome of one scene.
type Report struct {
	Scene    string
	Ticks    int64
	Players  []controller.PlayerState
	Clamped  uint64
	Duration time.Duration
	// Systems holds per-system update metrics, sorted by system name.
	Systems []systems.SystemMetrics
	Err     error
}

type Config struct {
	// Workers bounds how many scenes simulate at once. Zero means one per scene.
	Workers int
	// Ticks replaces every scene's tick count when OverrideTicks is set.
	// Zero is a valid override: the scene is built but never stepped.
	Ticks         int
	OverrideTicks bool
}

type Runner struct {
	cfg    Config
	logger logger.Logger
}

// New returns a Runner logging to log. A nil log means the logger carried
// by the context passed to Run or RunScene.
func New(cfg Config, log logger.Logger) *Runner {
	return &Runner{cfg: cfg, logger: log}
}

func (r *Runner) loggerFor(ctx context.Context) logger.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logger.FromContext(ctx)
}

// Run simulates every file and returns one report per file, in input order.
// The returned error joins the per-scene errors.
func (r *Runner) Run(ctx context.Context, files []string) ([]Report, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if r.cfg.OverrideTicks && r.cfg.Ticks < 0 {
		return nil, fmt.Errorf("tick override must not be negative, got %d", r.cfg.Ticks)
	}
	log := r.loggerFor(ctx)

	workers := r.cfg.Workers
	if workers <= 0 || workers > len(files) {
		workers = len(files)
	}

	pool, err := ants.NewPool(
		workers,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(p interface{}) {
			log.Error("scene worker panicked", logger.F("panic", fmt.Sprint(p)))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner pool: %w", err)
	}
	defer pool.Release()

	reports := make([]Report, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		// Overwritten on return; a panic leaves it in place.
		reports[i] = Report{Scene: file, Err: fmt.Errorf("%s: %w", file, ErrPanicked)}

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			reports[i] = r.runFile(ctx, file)
		}); err != nil {
			wg.Done()
			reports[i].Err = fmt.Errorf("%s: submit: %w", file, err)
		}
	}
	wg.Wait()

	var errs []error
	for _, rep := range reports {
		if rep.Err != nil {
			errs = append(errs, rep.Err)
		}
	}
	return reports, errors.Join(errs...)
}

func (r *Runner) runFile(ctx context.Context, file string) Report {
	scene, err := loader.LoadScene(file)
	if err != nil {
		return Report{Scene: file, Err: err}
	}
	rep := r.RunScene(ctx, &scene)
	rep.Scene = file
	return rep
}

// RunScene simulates an already loaded scene on the calling goroutine.
func (r *Runner) RunScene(ctx context.Context, scene *schema.Scene) Report {
	rep := Report{Scene: scene.Source}
	log := r.loggerFor(ctx).With(logger.F("scene", scene.Source))

	ticks := scene.Ticks
	if r.cfg.OverrideTicks {
		ticks = r.cfg.Ticks
	}

	start := time.Now()
	sim, err := controller.NewSimulation(scene, log)
	if err != nil {
		rep.Err = fmt.Errorf("%s: %w", scene.Source, err)
		return rep
	}
	defer sim.Close()

	for done := 0; done < ticks; {
		if err := ctx.Err(); err != nil {
			rep.Err = fmt.Errorf("%s: stopped at tick %d: %w", scene.Source, sim.Tick(), err)
			break
		}
		n := min(stepChunk, ticks-done)
		sim.Step(n)
		done += n
	}

	rep.Ticks = sim.Tick()
	rep.Players = sim.Players()
	rep.Clamped = sim.Clamped()
	rep.Systems = sim.Metrics()
	rep.Duration = time.Since(start)

	fields := []logger.Field{
		logger.F("ticks", rep.Ticks),
		logger.F("players", len(rep.Players)),
		logger.F("clamped", rep.Clamped),
		logger.F("duration", rep.Duration),
	}
	for _, m := range rep.Systems {
		fields = append(fields, logger.F(m.SystemName+"_avg", m.AvgUpdateDuration()))
	}
	log.Info("scene finished", fields...)
	return rep
}
