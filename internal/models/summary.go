package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Summary is the flat record kept for a finished quiz. Score is the
// number of correct answers; Timestamp is unix milliseconds.
type Summary struct {
	QuizID     string `json:"quizId"`
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
	Timestamp  int64  `json:"timestamp"`
}

// NewSummary builds a summary stamped at t.
func NewSummary(quizID string, score, percentage int, t time.Time) Summary {
	return Summary{QuizID: quizID, Score: score, Percentage: percentage, Timestamp: t.UnixMilli()}
}

// RecordedAt returns Timestamp as a time.
func (s Summary) RecordedAt() time.Time {
	return time.UnixMilli(s.Timestamp).UTC()
}

// Beats reports whether s should replace other as the best result.
func (s Summary) Beats(other Summary) bool {
	if s.Percentage != other.Percentage {
		return s.Percentage > other.Percentage
	}
	return s.Score > other.Score
}

// Encode returns the stored JSON form.
func (s Summary) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSummary reads a stored summary. Missing keys keep their zero value
// and unknown keys are ignored.
func DecodeSummary(data []byte) (Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, fmt.Errorf("decode summary: %w", err)
	}
	return s, nil
}

// SummaryRecord is a row of the summary history.
type SummaryRecord struct {
	ID int64 `json:"id"`
	Summary
}

// SummaryFilter selects history rows. Zero values mean no filter; Limit
// defaults to 50.
type SummaryFilter struct {
	QuizID string
	Since  time.Time
	Limit  int
}
