package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintRun(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRun(storage.Run{
		GameID:     "racer",
		Seed:       42,
		Score:      310,
		HealthLeft: 1,
		Duration:   31 * time.Second,
		EndReason:  "off_road",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, id); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	for _, want := range []string{"Run " + id, "Track:    racer", "Score:    310", "End:      off_road", "Seed:     42"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Session:") {
		t.Error("Local runs should not print a session")
	}

	if err := printRun(&out, store, "missing"); err == nil || !strings.Contains(err.Error(), `no run with ID "missing"`) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestClearScoresCommand(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{10, 20} {
		if _, err := store.SaveRun(storage.Run{GameID: "racer", Score: score, EndReason: "crashed"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(storage.Run{GameID: "racer_traffic", Score: 5, EndReason: "quit"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var out bytes.Buffer
	if err := clearScores(&out, store, "racer"); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if got := out.String(); got != "Cleared 2 runs of racer.\n" {
		t.Errorf("Unexpected output %q", got)
	}

	out.Reset()
	if err := printScores(&out, store, "racer", false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No races recorded yet.") {
		t.Errorf("Expected empty listing after clear:\n%s", out.String())
	}

	out.Reset()
	if err := printScores(&out, store, "racer_traffic", false); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Best: 5  Races: 1") {
		t.Errorf("Other tracks should keep their runs:\n%s", out.String())
	}
}

func TestPrintListStats(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{70, 140} {
		if _, err := store.SaveRun(storage.Run{GameID: "racer", Score: score, EndReason: "crashed"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	games := []registry.GameInfo{
		{ID: "racer", Title: "Road Racer", Summary: "cars"},
		{ID: "racer_potholes", Title: "Pothole Alley", Summary: "potholes"},
	}
	var out bytes.Buffer
	printList(&out, games, stats)

	lines := strings.Split(out.String(), "\n")
	var racerLine, potholeLine string
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "racer":
			racerLine = l
		case "racer_potholes":
			potholeLine = l
		}
	}
	if f := strings.Fields(racerLine); len(f) < 2 || f[len(f)-2] != "2" || f[len(f)-1] != "140" {
		t.Errorf("Expected 2 races and best 140, got %q", racerLine)
	}
	if f := strings.Fields(potholeLine); len(f) < 2 || f[len(f)-2] != "0" || f[len(f)-1] != "0" {
		t.Errorf("Expected zero stats for a track without runs, got %q", potholeLine)
	}

	out.Reset()
	printList(&out, games, nil)
	if !strings.Contains(out.String(), "Races") {
		t.Error("Expected header without stats")
	}
}
