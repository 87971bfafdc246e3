package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PLAYERMOVE_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRun_PrintsFinalPositions(t *testing.T) {
	out, err := execute(t, "run", "../scenes/edge.yaml", "../scenes/arena.yaml")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "../scenes/edge.yaml: 5 ticks") {
		t.Errorf("missing edge summary:\n%s", out)
	}
	if !strings.Contains(out, "(10.000, 0.000)") {
		t.Errorf("edge player should end clamped at (10, 0):\n%s", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("missing arena players:\n%s", out)
	}
}

func TestRun_TicksFlag(t *testing.T) {
	out, err := execute(t, "run", "--ticks", "3", "../scenes/edge.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "3 ticks") {
		t.Errorf("tick override not applied:\n%s", out)
	}
}

func TestRun_ZeroTicksFlag(t *testing.T) {
	out, err := execute(t, "run", "--ticks", "0", "../scenes/edge.yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "edge.yaml: 0 ticks") {
		t.Errorf("zero tick override not applied:\n%s", out)
	}
	if !strings.Contains(out, "(9.990, 0.000)") {
		t.Errorf("player should stay at its start:\n%s", out)
	}
}

func TestRun_ReportsBadScene(t *testing.T) {
	out, err := execute(t, "run", "../scenes/missing.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing scene")
	}
	if !strings.Contains(out, "missing.yaml: failed") {
		t.Errorf("failed scene not reported:\n%s", out)
	}
}

func TestRun_RequiresArgs(t *testing.T) {
	if _, err := execute(t, "run"); err == nil {
		t.Error("expected an argument error")
	}
}

func TestPlay_RejectsInvalidScene(t *testing.T) {
	if _, err := execute(t, "play", "../scenes/missing.yaml"); err == nil {
		t.Error("expected a load error")
	}
}
