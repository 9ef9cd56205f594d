package quiz

import (
	"strings"

	apperrors "github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/tiers"
)

// Points configures the weighted score.
type Points struct {
	Base   int
	Easy   int
	Medium int
	Hard   int
}

// DefaultPoints awards 10 per correct answer plus a difficulty bonus.
var DefaultPoints = Points{Base: 10, Easy: 0, Medium: 5, Hard: 10}

// For returns the points a correct answer to a question of difficulty d is worth.
func (p Points) For(d Difficulty) int {
	switch d {
	case Easy:
		return p.Base + p.Easy
	case Medium:
		return p.Base + p.Medium
	case Hard:
		return p.Base + p.Hard
	default:
		return p.Base
	}
}

// Display texts used in reviews.
const (
	displayTrue       = "Verdadero"
	displayFalse      = "Falso"
	displayUnanswered = "Sin responder"
)

// ReviewItem describes one question of a finished session.
type ReviewItem struct {
	QuestionID           string `json:"questionId"`
	Prompt               string `json:"prompt"`
	WasCorrect           bool   `json:"wasCorrect"`
	UserAnswer           Answer `json:"userAnswer"`
	UserAnswerDisplay    string `json:"userAnswerDisplay"`
	CorrectAnswerDisplay string `json:"correctAnswerDisplay"`
	Explanation          string `json:"explanation,omitempty"`
}

// Results is the report of a completed session.
type Results struct {
	CorrectCount     int          `json:"correctCount"`
	TotalCount       int          `json:"totalCount"`
	Percentage       int          `json:"percentage"`
	WeightedScore    int          `json:"weightedScore"`
	MaxWeightedScore int          `json:"maxWeightedScore"`
	Tier             tiers.Tier   `json:"tier"`
	TierName         string       `json:"tierName"`
	Review           []ReviewItem `json:"review"`
}

// Summarizer turns completed sessions into Results.
type Summarizer struct {
	Points Points
	Scale  tiers.Scale
}

// DefaultSummarizer uses DefaultPoints and tiers.ResultScale.
var DefaultSummarizer = Summarizer{Points: DefaultPoints, Scale: tiers.ResultScale}

// Summarize reports on s with the default summarizer.
func Summarize(s *Session) (Results, error) {
	return DefaultSummarizer.Summarize(s)
}

// Summarize reports on a completed session without modifying it.
func (z Summarizer) Summarize(s *Session) (Results, error) {
	if !s.IsComplete() {
		return Results{}, apperrors.NewInvalidStateError("summarize", s.State())
	}

	res := Results{
		TotalCount: len(s.questions),
		Review:     make([]ReviewItem, 0, len(s.questions)),
	}
	for i, q := range s.questions {
		answer := s.AnswerAt(i)
		correct := IsCorrect(q, answer)
		worth := z.Points.For(q.Difficulty)
		res.MaxWeightedScore += worth
		if correct {
			res.CorrectCount++
			res.WeightedScore += worth
		}
		res.Review = append(res.Review, ReviewItem{
			QuestionID:           q.ID,
			Prompt:               q.Prompt,
			WasCorrect:           correct,
			UserAnswer:           answer,
			UserAnswerDisplay:    DisplayAnswer(q, answer),
			CorrectAnswerDisplay: DisplayAnswer(q, q.CorrectAnswer),
			Explanation:          q.Explanation,
		})
	}
	res.Percentage = Percentage(res.CorrectCount, res.TotalCount)
	res.Tier = z.Scale.Classify(res.Percentage)
	res.TierName = res.Tier.DisplayName()
	return res, nil
}

// Percentage returns correct/total*100 rounded half up. A zero total yields 0.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*200 + total) / (2 * total)
}

// DisplayAnswer renders a for q in the site's language.
func DisplayAnswer(q Question, a Answer) string {
	switch a.kind {
	case kindIndex:
		return optionText(q, a.index)
	case kindIndices:
		parts := make([]string, 0, len(a.indices))
		for _, i := range a.indices {
			parts = append(parts, optionText(q, i))
		}
		return strings.Join(parts, ", ")
	case kindBool:
		if a.boolean {
			return displayTrue
		}
		return displayFalse
	default:
		return displayUnanswered
	}
}

func optionText(q Question, i int) string {
	if i >= 0 && i < len(q.Options) {
		return q.Options[i]
	}
	return displayUnanswered
}
