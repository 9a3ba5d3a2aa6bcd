package insights

import (
	"strings"
	"testing"
	"time"
)

func TestSampleWeek(t *testing.T) {
	entries := SampleWeek()

	if len(entries) != 7 {
		t.Fatalf("SampleWeek() returned %d entries, want 7", len(entries))
	}

	for i, e := range entries {
		if e.Score < 1 || e.Score > 10 {
			t.Errorf("entry %d score %d out of range", i, e.Score)
		}
		if e.Label == "" {
			t.Errorf("entry %d has no label", i)
		}
		if i > 0 && !entries[i-1].Date.Before(e.Date) {
			t.Errorf("entries not in ascending date order at %d", i)
		}
	}

	last := entries[len(entries)-1]
	if time.Since(last.Date) > 48*time.Hour {
		t.Errorf("series not anchored to the current day: last = %v", last.Date)
	}
}

func TestAverage(t *testing.T) {
	entries := []MoodEntry{{Score: 4}, {Score: 6}, {Score: 8}}

	if got := Average(entries); got != 6.0 {
		t.Errorf("Average() = %v, want 6.0", got)
	}

	if got := Average(nil); got != 0 {
		t.Errorf("Average(nil) = %v, want 0", got)
	}
}

func TestBest(t *testing.T) {
	entries := []MoodEntry{{Score: 4, Label: "low"}, {Score: 9, Label: "great"}, {Score: 6, Label: "steady"}}

	best, ok := Best(entries)
	if !ok {
		t.Fatal("Best() returned ok=false for non-empty series")
	}
	if best.Score != 9 {
		t.Errorf("Best() score = %d, want 9", best.Score)
	}

	if _, ok := Best(nil); ok {
		t.Error("Best(nil) returned ok=true")
	}
}

func TestExercises(t *testing.T) {
	exercises := Exercises()

	if len(exercises) == 0 {
		t.Fatal("Exercises() returned empty list")
	}

	for i, ex := range exercises {
		if ex.Name == "" || ex.Description == "" || ex.Duration == "" {
			t.Errorf("exercise %d has empty fields: %+v", i, ex)
		}
	}
}

func TestDashboardView(t *testing.T) {
	d := NewDashboard(SampleWeek())
	d.SetWidth(80)

	out := d.View()

	if !strings.Contains(out, "Mood - Last 7 Days") {
		t.Error("view missing title")
	}
	if !strings.Contains(out, "Weekly average:") {
		t.Error("view missing summary")
	}
	if !strings.Contains(out, "Exercises") {
		t.Error("view missing exercises section")
	}
	if !strings.Contains(out, "4-7-8 Breathing") {
		t.Error("view missing exercise entries")
	}
}

func TestDashboardView_Empty(t *testing.T) {
	d := NewDashboard(nil)

	out := d.View()
	if !strings.Contains(out, "No mood data available") {
		t.Error("empty dashboard missing placeholder")
	}
}

func TestRenderBar_Bounds(t *testing.T) {
	// Out-of-range values must clamp rather than panic.
	for _, v := range []int{-5, 0, 10, 25} {
		out := renderBar(v, 20, "10")
		if out == "" {
			t.Errorf("renderBar(%d) returned empty string", v)
		}
	}
}
