package quiz

import (
	"fmt"
	"time"

	apperrors "github.com/vytor/cyberquest/internal/errors"
)

// State is a session's position in its lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name written by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{NotStarted, InProgress, Completed} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", text)
}

// Session is one playthrough of a quiz:
//
//	NotStarted --Start--> InProgress --Advance (last)--> Completed
//
// SubmitAnswer, GoBack and non-final Advance calls keep it InProgress.
// Operations invoked in a state that forbids them return an InvalidState
// error and leave the session untouched.
//
// A Session is owned by exactly one caller and is not safe for concurrent
// use.
type Session struct {
	questions   []Question
	state       State
	current     int
	answers     map[int]Answer
	startedAt   time.Time
	completedAt time.Time
	now         func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the time source used for StartedAt and CompletedAt.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession returns a session in the NotStarted state.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the questions and begins the session at the first one.
func (s *Session) Start(questions []Question) error {
	if s.state != NotStarted {
		return apperrors.NewInvalidStateError("start", s.state)
	}
	if err := ValidateQuestions(questions); err != nil {
		return err
	}
	s.questions = append([]Question(nil), questions...)
	s.current = 0
	s.answers = make(map[int]Answer, len(questions))
	s.startedAt = s.now()
	s.state = InProgress
	return nil
}

// SubmitAnswer records value for the current question, replacing any
// earlier answer at that position. It does not advance.
func (s *Session) SubmitAnswer(value Answer) error {
	if s.state != InProgress {
		return apperrors.NewInvalidStateError("submitAnswer", s.state)
	}
	if err := s.questions[s.current].CheckAnswer(value); err != nil {
		return err
	}
	if value.IsAnswered() {
		s.answers[s.current] = value
	} else {
		delete(s.answers, s.current)
	}
	return nil
}

// Advance moves to the next question, completing the session after the
// last one.
func (s *Session) Advance() error {
	if s.state != InProgress {
		return apperrors.NewInvalidStateError("advance", s.state)
	}
	s.current++
	if s.current == len(s.questions) {
		s.state = Completed
		s.completedAt = s.now()
	}
	return nil
}

// GoBack returns to the previous question. Its recorded answer, if any,
// stays available through AnswerAt.
func (s *Session) GoBack() error {
	if s.state != InProgress || s.current == 0 {
		return apperrors.NewInvalidStateError("goBack", s.state)
	}
	s.current--
	return nil
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() (Question, error) {
	if s.state != InProgress {
		return Question{}, apperrors.NewOutOfRangeError("no current question in state " + s.state.String())
	}
	return s.questions[s.current], nil
}

// IsComplete reports whether the session reached Completed.
func (s *Session) IsComplete() bool { return s.state == Completed }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// CurrentIndex returns the current position; it equals Len once completed.
func (s *Session) CurrentIndex() int { return s.current }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Question returns the question at position i.
func (s *Session) Question(i int) (Question, error) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, apperrors.NewOutOfRangeError("no question at that position")
	}
	return s.questions[i], nil
}

// AnswerAt returns the answer recorded at position i, or Unanswered.
func (s *Session) AnswerAt(i int) Answer {
	return s.answers[i]
}

// Score is the number of correct answers recorded so far. It is final only
// once the session is complete.
func (s *Session) Score() int {
	score := 0
	for i, a := range s.answers {
		if IsCorrect(s.questions[i], a) {
			score++
		}
	}
	return score
}

// StartedAt returns when Start succeeded.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CompletedAt returns when the final Advance happened, or the zero time.
func (s *Session) CompletedAt() time.Time { return s.completedAt }
