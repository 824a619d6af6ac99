package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	// MaxEntries caps the leaderboard table; entries past the cap are
	// dropped after every insert.
	MaxEntries = 100

	// TopCount is how many standings a successful submission returns.
	TopCount = 10

	// MaxNameLength is the submission name limit in characters.
	MaxNameLength = 50

	MinScore = 0
	MaxScore = 999999
	MinLevel = 1
	MaxLevel = 50
)

// DateFormat is the calendar-date layout stamped on stored entries.
const DateFormat = "2006-01-02"

// Submission is one player's validated score submission. It exists only for
// the duration of a request.
type Submission struct {
	Name  string
	Score int
	Level int
}

// ScoreEntry is one recorded result as persisted in the leaderboard file.
// Entries are immutable once created.
type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Date  string `json:"date"`
}

// Leaderboard is the single persisted document holding all score entries.
type Leaderboard struct {
	Scores      []ScoreEntry `json:"scores"`
	LastUpdated string       `json:"lastUpdated"`
}

// NewScoreEntry builds the persisted entry for a submission, trimming the
// name and stamping the current UTC calendar date.
func NewScoreEntry(sub *Submission, now time.Time) ScoreEntry {
	return ScoreEntry{
		Name:  strings.TrimSpace(sub.Name),
		Score: sub.Score,
		Level: sub.Level,
		Date:  now.UTC().Format(DateFormat),
	}
}

// Add appends entry, re-sorts descending by score and caps the table at
// MaxEntries. The sort is stable, so equal scores keep their relative order
// and a new entry sorts after existing entries with the same score.
func (l *Leaderboard) Add(entry ScoreEntry, now time.Time) {
	l.Scores = append(l.Scores, entry)
	sort.SliceStable(l.Scores, func(i, j int) bool {
		return l.Scores[i].Score > l.Scores[j].Score
	})
	if len(l.Scores) > MaxEntries {
		l.Scores = l.Scores[:MaxEntries]
	}
	l.LastUpdated = now.UTC().Format(time.RFC3339)
}

// Top returns a copy of the first n entries.
func (l *Leaderboard) Top(n int) []ScoreEntry {
	if n > len(l.Scores) {
		n = len(l.Scores)
	}
	top := make([]ScoreEntry, n)
	copy(top, l.Scores[:n])
	return top
}
