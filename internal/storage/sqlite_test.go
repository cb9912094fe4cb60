package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(level string, steps int) Run {
	return Run{
		LevelID:      level,
		Pattern:      "domino",
		Seed:         42,
		Palette:      5,
		Steps:        steps,
		ClearedRows:  max(steps-1, 0),
		Score:        steps,
		SwapsGranted: max(steps-1, 0),
		Digest:       "abc123",
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	run := sampleRun("cascade", 3)
	run.Seed = 1<<63 + 5 // does not fit a signed column
	run.Prediction = "0,1;0,2"
	run.Swaps = "0,0:1,0"
	run.Extraneous = 1
	run.FurtherMatches = true

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}

	if got.Seed != run.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, run.Seed)
	}
	if got.Prediction != run.Prediction || got.Swaps != run.Swaps {
		t.Errorf("inputs = %q %q", got.Prediction, got.Swaps)
	}
	if got.Steps != 3 || got.ClearedRows != 2 || got.Extraneous != 1 || got.SwapsGranted != 2 {
		t.Errorf("outcome = %+v", got)
	}
	if !got.FurtherMatches {
		t.Error("further matches flag lost")
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}
}

func TestStoreRunByIDPrefix(t *testing.T) {
	store := openTestStore(t)

	run := sampleRun("cascade", 1)
	run.ID = "aaaa1111-0000-0000-0000-000000000000"
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	run.ID = "aaaa2222-0000-0000-0000-000000000000"
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID("aaaa1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.ID != "aaaa1111-0000-0000-0000-000000000000" {
		t.Errorf("prefix lookup returned %+v", got)
	}

	if _, err := store.RunByID("aaaa"); err == nil {
		t.Error("expected error for ambiguous prefix")
	}

	missing, err := store.RunByID("ffff")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 25; i++ {
		if _, err := store.SaveRun(sampleRun("cascade", i)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs with default limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Steps != 25 {
		t.Errorf("Expected newest run first, got steps=%d", runs[0].Steps)
	}
}

func TestStoreRunsForLevel(t *testing.T) {
	store := openTestStore(t)

	for _, level := range []string{"a", "b", "a"} {
		if _, err := store.SaveRun(sampleRun(level, 2)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RunsForLevel("a", 10)
	if err != nil {
		t.Fatalf("RunsForLevel() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs for level a, got %d", len(runs))
	}
	for _, r := range runs {
		if r.LevelID != "a" {
			t.Errorf("unexpected level %s", r.LevelID)
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, level := range []string{"a", "b", "b"} {
		if _, err := store.SaveRun(sampleRun(level, 1)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	n, err := store.ClearRuns("b")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 deleted runs, got %d", n)
	}

	n, err = store.ClearRuns("")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 deleted run, got %d", n)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("none")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	perfect := sampleRun("lvl", 4)
	perfect.Prediction = "0,0;1,0"
	wrong := sampleRun("lvl", 2)
	wrong.Prediction = "0,0"
	wrong.Extraneous = 1
	for _, r := range []Run{perfect, wrong, sampleRun("lvl", 0)} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.LevelStats("lvl")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.RunsCount != 3 || stats.MaxSteps != 4 || stats.BestScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgSteps != 2 {
		t.Errorf("Expected avg steps 2, got %f", stats.AvgSteps)
	}
	if stats.PerfectRuns != 1 {
		t.Errorf("Expected 1 perfect run, got %d", stats.PerfectRuns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
