package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/road-racer/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                          { return g.id }
func (g stubGame) Title() string                                       { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                            {}
func (g stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                                 {}
func (g stubGame) State() core.GameState                               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Expected stub_a to be registered")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Expected stub_b, got %q", g.ID())
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Expected ErrUnknownGame, got %v", err)
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_a" && info.Title != "Stub stub_a" {
			t.Errorf("Unexpected title %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}

type summaryGame struct{ stubGame }

func (summaryGame) Summary() string { return "2 cars" }

func TestListIncludesSummary(t *testing.T) {
	Register("stub_summary", func() Game { return summaryGame{stubGame{id: "stub_summary"}} })

	for _, info := range List() {
		switch info.ID {
		case "stub_summary":
			if info.Summary != "2 cars" {
				t.Errorf("Summary = %q, expected %q", info.Summary, "2 cars")
			}
		case "stub_a":
			if info.Summary != "" {
				t.Errorf("Games without Summary() should list empty, got %q", info.Summary)
			}
		}
	}
}
