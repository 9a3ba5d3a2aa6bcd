// Package insights provides the mood dashboard shown in the insights view.
// All data is a fixed in-memory sample; nothing is tracked or persisted.
package insights

import "time"

// MoodEntry is one day of the mood series.
type MoodEntry struct {
	Date  time.Time
	Score int // 1..10
	Label string
}

// maxScore is the top of the mood scale.
const maxScore = 10

// SampleWeek returns the mocked seven-day mood series, oldest first.
// Dates are anchored to the current day so the chart always reads as the
// past week.
func SampleWeek() []MoodEntry {
	today := time.Now().Truncate(24 * time.Hour)

	scores := []struct {
		score int
		label string
	}{
		{4, "low"},
		{5, "flat"},
		{7, "steady"},
		{6, "steady"},
		{8, "good"},
		{7, "steady"},
		{9, "great"},
	}

	entries := make([]MoodEntry, len(scores))
	for i, s := range scores {
		entries[i] = MoodEntry{
			Date:  today.AddDate(0, 0, i-len(scores)+1),
			Score: s.score,
			Label: s.label,
		}
	}
	return entries
}

// Average returns the mean score of the series, or 0 for an empty series.
func Average(entries []MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}

	total := 0
	for _, e := range entries {
		total += e.Score
	}
	return float64(total) / float64(len(entries))
}

// Best returns the entry with the highest score. The second return is
// false for an empty series.
func Best(entries []MoodEntry) (MoodEntry, bool) {
	if len(entries) == 0 {
		return MoodEntry{}, false
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, true
}

// Exercise is a static wellness exercise suggestion. Purely declarative;
// there is no logic behind these entries.
type Exercise struct {
	Name        string
	Description string
	Duration    string
}

// Exercises returns the fixed exercise list for the insights view.
func Exercises() []Exercise {
	return []Exercise{
		{
			Name:        "4-7-8 Breathing",
			Description: "Inhale for 4 counts, hold for 7, exhale for 8",
			Duration:    "2 min",
		},
		{
			Name:        "5-4-3-2-1 Grounding",
			Description: "Name 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you taste",
			Duration:    "3 min",
		},
		{
			Name:        "Gratitude note",
			Description: "Write down one thing that went well today",
			Duration:    "1 min",
		},
	}
}
