// Package quiz implements the quiz engine shared by every game on the
// site: question validation, answer checking, the session state machine
// and result summaries.
package quiz

import (
	"fmt"
	"strings"

	apperrors "github.com/vytor/cyberquest/internal/errors"
)

// Type is the kind of a question.
type Type string

const (
	SingleChoice Type = "single-choice"
	MultiSelect  Type = "multi-select"
	TrueFalse    Type = "true-false"
)

// Difficulty weights a question in the weighted score. Empty means unset.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Question is authored content and is never mutated by the engine.
type Question struct {
	ID            string     `json:"id" yaml:"id"`
	Type          Type       `json:"type" yaml:"type"`
	Prompt        string     `json:"prompt" yaml:"prompt"`
	Options       []string   `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer Answer     `json:"correctAnswer" yaml:"correct"`
	Difficulty    Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Explanation   string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Validate checks that the question is internally consistent.
func (q Question) Validate() error {
	var problems []string
	if strings.TrimSpace(q.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		problems = append(problems, "prompt is required")
	}
	switch q.Difficulty {
	case "", Easy, Medium, Hard:
	default:
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}

	switch q.Type {
	case SingleChoice:
		if len(q.Options) < 2 {
			problems = append(problems, "single-choice needs at least two options")
		}
		if i, ok := q.CorrectAnswer.Index(); !ok {
			problems = append(problems, "single-choice correct answer must be an option index")
		} else if !q.validIndex(i) {
			problems = append(problems, fmt.Sprintf("correct answer %d is not a valid option index", i))
		}
	case MultiSelect:
		if len(q.Options) < 2 {
			problems = append(problems, "multi-select needs at least two options")
		}
		if is, ok := q.CorrectAnswer.Indices(); !ok {
			problems = append(problems, "multi-select correct answer must be a list of option indices")
		} else {
			if len(is) == 0 {
				problems = append(problems, "multi-select correct answer must not be empty")
			}
			for _, i := range is {
				if !q.validIndex(i) {
					problems = append(problems, fmt.Sprintf("correct answer %d is not a valid option index", i))
				}
			}
		}
	case TrueFalse:
		if len(q.Options) > 0 {
			problems = append(problems, "true-false must not declare options")
		}
		if _, ok := q.CorrectAnswer.Boolean(); !ok {
			problems = append(problems, "true-false correct answer must be a boolean")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown type %q", q.Type))
	}

	if len(problems) > 0 {
		return apperrors.NewInvalidConfigurationError(
			fmt.Sprintf("question %q: %s", q.ID, strings.Join(problems, "; ")))
	}
	return nil
}

// CheckAnswer reports whether a has the shape q expects. The unanswered
// sentinel always fits.
func (q Question) CheckAnswer(a Answer) error {
	if !a.IsAnswered() {
		return nil
	}
	switch q.Type {
	case SingleChoice:
		i, ok := a.Index()
		if !ok {
			return apperrors.NewInvalidAnswerError(fmt.Sprintf("question %q expects an option index, got %s", q.ID, a.kind))
		}
		if !q.validIndex(i) {
			return apperrors.NewInvalidAnswerError(fmt.Sprintf("question %q has no option %d", q.ID, i))
		}
	case MultiSelect:
		is, ok := a.Indices()
		if !ok {
			return apperrors.NewInvalidAnswerError(fmt.Sprintf("question %q expects a list of option indices, got %s", q.ID, a.kind))
		}
		for _, i := range is {
			if !q.validIndex(i) {
				return apperrors.NewInvalidAnswerError(fmt.Sprintf("question %q has no option %d", q.ID, i))
			}
		}
	case TrueFalse:
		if _, ok := a.Boolean(); !ok {
			return apperrors.NewInvalidAnswerError(fmt.Sprintf("question %q expects a boolean, got %s", q.ID, a.kind))
		}
	}
	return nil
}

// Public returns a copy of q without the correct answer and explanation,
// for display while the question is open.
func (q Question) Public() Question {
	return Question{
		ID:         q.ID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Options:    append([]string(nil), q.Options...),
		Difficulty: q.Difficulty,
	}
}

func (q Question) validIndex(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// ValidateQuestions checks a question list as a whole: it must be
// non-empty, every question must be valid and ids must be unique.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return apperrors.NewInvalidConfigurationError("a quiz needs at least one question")
	}
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
		if prev, ok := seen[q.ID]; ok {
			return apperrors.NewInvalidConfigurationError(
				fmt.Sprintf("question id %q is used at positions %d and %d", q.ID, prev, i))
		}
		seen[q.ID] = i
	}
	return nil
}
