package schedule

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCycle(t *testing.T) {
	c := DefaultCycle()

	if len(c.Weeks) != 4 {
		t.Fatalf("got %d weeks, want 4", len(c.Weeks))
	}
	if got := c.WeekFor(1)["Mon"].Title; got != "Drawing / Art" {
		t.Errorf("week 1 Monday = %q, want %q", got, "Drawing / Art")
	}
	if got := c.WeekFor(2)["Sun"].Title; got != c.FullDayMarker {
		t.Errorf("week 2 Sunday = %q, want the full-day marker %q", got, c.FullDayMarker)
	}
	if c.ReferenceMonday != "2025-01-06" {
		t.Errorf("reference Monday = %q, want 2025-01-06", c.ReferenceMonday)
	}
}

func TestLoadCycleMissingFile(t *testing.T) {
	c, err := LoadCycle(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadCycle: %v", err)
	}
	if len(c.Weeks) != 4 {
		t.Fatalf("missing file should yield defaults, got %d weeks", len(c.Weeks))
	}
}

func TestLoadCycleOverride(t *testing.T) {
	// Partial override: new titles for week 1, string shorthand and explicit
	// times both in play. Everything unspecified backfills from defaults.
	src := `
weeks:
  - Mon: Piano Practice
    Fri:
      title: Band Night
      start: "19:00:00"
      end: "22:00:00"
  - Tue: Pottery
  - {}
  - {}
`
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCycle(path)
	if err != nil {
		t.Fatalf("LoadCycle: %v", err)
	}

	if got := c.WeekFor(1)["Mon"].Title; got != "Piano Practice" {
		t.Errorf("week 1 Monday = %q, want %q", got, "Piano Practice")
	}
	fri := c.WeekFor(1)["Fri"]
	if fri.Title != "Band Night" || fri.Start != "19:00:00" || fri.End != "22:00:00" {
		t.Errorf("week 1 Friday = %+v, want Band Night 19:00:00-22:00:00", fri)
	}
	if c.ReferenceMonday != "2025-01-06" {
		t.Errorf("reference Monday not backfilled: %q", c.ReferenceMonday)
	}
	if c.FullDayTitle != "Magic Stack Project Work" {
		t.Errorf("full-day title not backfilled: %q", c.FullDayTitle)
	}
}

func TestLoadCycleBadWeekCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	if err := os.WriteFile(path, []byte("weeks:\n  - Mon: X\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCycle(path); err == nil {
		t.Fatal("expected error for a 1-week cycle")
	}
}

func TestNormalizeRejectsNonMondayReference(t *testing.T) {
	c := defaults()
	c.ReferenceMonday = "2025-01-07" // a Tuesday
	if err := c.Normalize(); err == nil {
		t.Fatal("expected error for non-Monday reference")
	}
}
