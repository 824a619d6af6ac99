package domain

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

func TestNewScoreEntry(t *testing.T) {
	sub := &Submission{Name: "  Ann  ", Score: 500, Level: 3}
	entry := NewScoreEntry(sub, testNow)

	if entry.Name != "Ann" {
		t.Errorf("expected trimmed name %q, got %q", "Ann", entry.Name)
	}
	if entry.Score != 500 || entry.Level != 3 {
		t.Errorf("unexpected score/level: %+v", entry)
	}
	if entry.Date != "2026-08-30" {
		t.Errorf("expected date 2026-08-30, got %q", entry.Date)
	}
}

func TestAddSortsDescending(t *testing.T) {
	board := Leaderboard{Scores: []ScoreEntry{
		{Name: "low", Score: 10},
		{Name: "high", Score: 900},
	}}

	board.Add(ScoreEntry{Name: "mid", Score: 500}, testNow)

	if len(board.Scores) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board.Scores))
	}
	for i := 1; i < len(board.Scores); i++ {
		if board.Scores[i-1].Score < board.Scores[i].Score {
			t.Errorf("not sorted descending at %d: %+v", i, board.Scores)
		}
	}
	if board.Scores[1].Name != "mid" {
		t.Errorf("expected mid at rank 2, got %+v", board.Scores)
	}
	if board.LastUpdated != "2026-08-30T15:04:05Z" {
		t.Errorf("unexpected lastUpdated %q", board.LastUpdated)
	}
}

func TestAddKeepsTieOrderStable(t *testing.T) {
	board := Leaderboard{Scores: []ScoreEntry{
		{Name: "first", Score: 100},
		{Name: "second", Score: 100},
	}}

	board.Add(ScoreEntry{Name: "third", Score: 100}, testNow)

	got := []string{board.Scores[0].Name, board.Scores[1].Name, board.Scores[2].Name}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order changed: got %v, want %v", got, want)
		}
	}
}

func fullBoard() Leaderboard {
	var board Leaderboard
	for i := 0; i < MaxEntries; i++ {
		board.Scores = append(board.Scores, ScoreEntry{
			Name:  fmt.Sprintf("player%d", i),
			Score: 1000 - i, // 1000 down to 901
		})
	}
	return board
}

func TestAddTruncatesLowestWhenFull(t *testing.T) {
	board := fullBoard()

	board.Add(ScoreEntry{Name: "newcomer", Score: 950}, testNow)

	if len(board.Scores) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(board.Scores))
	}
	// Previous lowest (901) falls off, the newcomer stays.
	if board.Scores[len(board.Scores)-1].Score != 902 {
		t.Errorf("expected new lowest score 902, got %d", board.Scores[len(board.Scores)-1].Score)
	}
	found := false
	for _, e := range board.Scores {
		if e.Name == "newcomer" {
			found = true
		}
	}
	if !found {
		t.Error("newcomer missing from full board")
	}
}

func TestAddEvictsNewEntryBelowCutoff(t *testing.T) {
	board := fullBoard()

	board.Add(ScoreEntry{Name: "straggler", Score: 1}, testNow)

	if len(board.Scores) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(board.Scores))
	}
	for _, e := range board.Scores {
		if e.Name == "straggler" {
			t.Fatal("entry below the cutoff should have been truncated out")
		}
	}
	// The original lowest is still there.
	if board.Scores[len(board.Scores)-1].Score != 901 {
		t.Errorf("expected lowest score 901, got %d", board.Scores[len(board.Scores)-1].Score)
	}
}

func TestTop(t *testing.T) {
	board := Leaderboard{Scores: []ScoreEntry{
		{Name: "a", Score: 3},
		{Name: "b", Score: 2},
		{Name: "c", Score: 1},
	}}

	if got := board.Top(2); len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("Top(2) = %+v", got)
	}
	if got := board.Top(10); len(got) != 3 {
		t.Errorf("Top past the end should clamp, got %d entries", len(got))
	}

	// Top returns a copy, not a view.
	top := board.Top(1)
	top[0].Name = "mutated"
	if board.Scores[0].Name != "a" {
		t.Error("Top leaked a mutable view of the board")
	}
}
