package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"playermove/internal/geom"
	"playermove/internal/loader/parser"
	"playermove/internal/loader/schema"
	"playermove/internal/logger"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const rightward = `
fixed_delta_time: 0.02
ticks: 10
players:
  - name: runner
    start: [9.5, 0]
    script:
      - {tick: 0, move: [1, 0]}
`

const upward = `
ticks: 5
camera: {orthographic_size: 1, aspect: 1}
players:
  - name: a
    speed: 10
    script:
      - {tick: 0, move: [0, 1]}
  - name: b
`

func TestRunner_RunsScenesInOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeScene(t, dir, "right.yaml", rightward),
		writeScene(t, dir, "up.yaml", upward),
	}

	core, recorded := observer.New(zapcore.InfoLevel)
	reports, err := New(Config{Workers: 2}, logger.NewFromCore(core)).Run(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	right := reports[0]
	if right.Scene != files[0] || right.Ticks != 10 {
		t.Errorf("unexpected report %+v", right)
	}
	if len(right.Players) != 1 || right.Players[0].Position != geom.V(10, 0) {
		t.Errorf("runner should be clamped at (10, 0): %+v", right.Players)
	}
	if right.Clamped == 0 {
		t.Error("expected clamped ticks to be counted")
	}

	up := reports[1]
	if up.Ticks != 5 || len(up.Players) != 2 {
		t.Fatalf("unexpected report %+v", up)
	}
	if a := up.Players[0]; a.Name != "a" || !a.Position.ApproxEqual(geom.V(0, 1), 1e-9) {
		t.Errorf("a should stop at the camera edge, got %+v", a)
	}
	if b := up.Players[1]; b.Position != geom.Zero || b.Moves != 5 {
		t.Errorf("b should hold the origin while still moving each tick, got %+v", b)
	}

	if n := recorded.FilterMessage("scene finished").Len(); n != 2 {
		t.Errorf("expected 2 summaries, got %d", n)
	}
}

func TestRunner_TicksOverride(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeScene(t, dir, "up.yaml", upward)}

	for _, ticks := range []int{2, 0} {
		reports, err := New(Config{Ticks: ticks, OverrideTicks: true}, nil).Run(context.Background(), files)
		if err != nil {
			t.Fatalf("ticks %d: unexpected error: %v", ticks, err)
		}
		if reports[0].Ticks != int64(ticks) {
			t.Errorf("expected %d ticks, got %d", ticks, reports[0].Ticks)
		}
	}

	reports, err := New(Config{Ticks: 0}, nil).Run(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].Ticks != 5 {
		t.Errorf("without the override flag the scene's 5 ticks apply, got %d", reports[0].Ticks)
	}

	if _, err := New(Config{Ticks: -1, OverrideTicks: true}, nil).Run(context.Background(), files); err == nil {
		t.Error("expected a negative override to be rejected")
	}
}

func TestRunner_ReportsSystemMetrics(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeScene(t, dir, "up.yaml", upward)}

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), logger.NewFromCore(core))

	// No logger on the runner: it logs through the context.
	reports, err := New(Config{}, nil).Run(ctx, files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byName := map[string]int64{}
	for _, m := range reports[0].Systems {
		byName[m.SystemName] = m.TotalUpdates
	}
	for _, name := range []string{"movement", "physics", "script"} {
		if byName[name] != 5 {
			t.Errorf("expected 5 %s updates, got %d", name, byName[name])
		}
	}

	finished := recorded.FilterMessage("scene finished").All()
	if len(finished) != 1 {
		t.Fatalf("expected 1 summary through the context logger, got %d", len(finished))
	}
	ctxMap := finished[0].ContextMap()
	if _, ok := ctxMap["movement_avg"]; !ok {
		t.Errorf("summary missing movement_avg: %v", ctxMap)
	}
	if _, ok := ctxMap["physics_avg"]; !ok {
		t.Errorf("summary missing physics_avg: %v", ctxMap)
	}
}

func TestRunner_CollectsErrors(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeScene(t, dir, "good.yaml", upward),
		writeScene(t, dir, "bad.yaml", "players:\n  - name: x\n    mass: 2\n"),
		filepath.Join(dir, "missing.yaml"),
	}

	reports, err := New(Config{Workers: 1}, nil).Run(context.Background(), files)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, parser.ErrUnknownField) {
		t.Errorf("expected unknown field error in %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error in %v", err)
	}
	if reports[0].Err != nil || reports[0].Ticks != 5 {
		t.Errorf("good scene should still run: %+v", reports[0])
	}
	if reports[1].Err == nil || reports[2].Err == nil {
		t.Error("bad scenes should carry their errors")
	}
}

func TestRunScene_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scene := schema.DefaultScene()
	scene.Source = "inline"
	scene.Players = []schema.Player{{Name: "p", Speed: schema.DefaultSpeed}}

	rep := New(Config{}, nil).RunScene(ctx, &scene)
	if !errors.Is(rep.Err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", rep.Err)
	}
	if rep.Ticks != 0 {
		t.Errorf("no ticks should run, got %d", rep.Ticks)
	}
}

func TestRunner_NoFiles(t *testing.T) {
	reports, err := New(Config{}, nil).Run(context.Background(), nil)
	if err != nil || reports != nil {
		t.Errorf("expected nothing, got %v, %v", reports, err)
	}
}
