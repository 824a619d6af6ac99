package domain

import (
	"encoding/json"
	"errors"
	"math"
	"unicode/utf8"
)

// rawSubmission keeps the fields undecoded so that missing, wrong-type and
// out-of-range violations stay distinguishable per field.
type rawSubmission struct {
	Name  json.RawMessage `json:"name"`
	Score json.RawMessage `json:"score"`
	Level json.RawMessage `json:"level"`
}

var errNotInteger = errors.New("not an integer")

// ParseSubmission validates a raw request body and returns the submission.
// Each constraint maps to its own sentinel error and the first failing check
// wins. A body that is not a JSON object counts as missing fields.
func ParseSubmission(body []byte) (*Submission, error) {
	var raw rawSubmission
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrMissingFields
	}
	if isAbsent(raw.Name) || isAbsent(raw.Score) || isAbsent(raw.Level) {
		return nil, ErrMissingFields
	}

	var name string
	if err := json.Unmarshal(raw.Name, &name); err != nil {
		return nil, ErrInvalidName
	}
	if name == "" {
		return nil, ErrMissingFields
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}

	score, err := parseInteger(raw.Score)
	if err != nil || score < MinScore || score > MaxScore {
		return nil, ErrInvalidScore
	}

	level, err := parseInteger(raw.Level)
	if err != nil || level < MinLevel || level > MaxLevel {
		return nil, ErrInvalidLevel
	}

	return &Submission{Name: name, Score: score, Level: level}, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// parseInteger accepts any JSON number with an integral value: 5.0 passes,
// 5.5 and "5" do not.
func parseInteger(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, errNotInteger
	}
	return int(f), nil
}
