package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/quiz"
)

type SessionSuite struct {
	suite.Suite
	session *quiz.Session
}

func (s *SessionSuite) SetupTest() {
	s.session = quiz.NewSession(quiz.WithClock(stepClock()))
}

func (s *SessionSuite) start() {
	s.Require().NoError(s.session.Start(threeQuestions()))
}

func (s *SessionSuite) TestNewSessionIsNotStarted() {
	s.Equal(quiz.NotStarted, s.session.State())
	s.False(s.session.IsComplete())

	_, err := s.session.CurrentQuestion()
	s.ErrorIs(err, apperrors.ErrOutOfRange)
}

func (s *SessionSuite) TestStartInitializes() {
	s.start()

	s.Equal(quiz.InProgress, s.session.State())
	s.Equal(0, s.session.CurrentIndex())
	s.Equal(3, s.session.Len())
	s.Equal(0, s.session.Score())
	s.Equal(fixedStart, s.session.StartedAt())
	s.True(s.session.CompletedAt().IsZero())

	q, err := s.session.CurrentQuestion()
	s.Require().NoError(err)
	s.Equal("q1", q.ID)
}

func (s *SessionSuite) TestStartWithNoQuestions() {
	err := s.session.Start(nil)

	s.ErrorIs(err, apperrors.ErrInvalidConfiguration)
	s.Equal(quiz.NotStarted, s.session.State())
}

func (s *SessionSuite) TestStartWithInvalidQuestion() {
	bad := singleChoice("q1", 7)

	err := s.session.Start([]quiz.Question{bad})

	s.ErrorIs(err, apperrors.ErrInvalidConfiguration)
	s.Equal(quiz.NotStarted, s.session.State())
}

func (s *SessionSuite) TestStartTwice() {
	s.start()

	err := s.session.Start(threeQuestions())
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *SessionSuite) TestOperationsBeforeStart() {
	s.ErrorIs(s.session.Advance(), apperrors.ErrInvalidState)
	s.ErrorIs(s.session.SubmitAnswer(quiz.Choice(0)), apperrors.ErrInvalidState)
	s.ErrorIs(s.session.GoBack(), apperrors.ErrInvalidState)
	s.Equal(quiz.NotStarted, s.session.State())
}

func (s *SessionSuite) TestSubmitDoesNotAdvance() {
	s.start()

	s.Require().NoError(s.session.SubmitAnswer(quiz.Choice(1)))

	s.Equal(0, s.session.CurrentIndex())
	s.True(s.session.AnswerAt(0).Equal(quiz.Choice(1)))
	s.Equal(1, s.session.Score())
}

func (s *SessionSuite) TestResubmitOverwrites() {
	s.start()

	s.Require().NoError(s.session.SubmitAnswer(quiz.Choice(1)))
	s.Require().NoError(s.session.SubmitAnswer(quiz.Choice(2)))

	s.True(s.session.AnswerAt(0).Equal(quiz.Choice(2)))
	s.Equal(0, s.session.Score())
}

func (s *SessionSuite) TestSubmitUnansweredClears() {
	s.start()
	s.Require().NoError(s.session.SubmitAnswer(quiz.Choice(1)))

	s.Require().NoError(s.session.SubmitAnswer(quiz.Unanswered()))

	s.False(s.session.AnswerAt(0).IsAnswered())
}

func (s *SessionSuite) TestSubmitRejectsWrongShape() {
	s.start()

	err := s.session.SubmitAnswer(quiz.Bool(true))
	s.ErrorIs(err, apperrors.ErrInvalidAnswer)

	err = s.session.SubmitAnswer(quiz.Choice(9))
	s.ErrorIs(err, apperrors.ErrInvalidAnswer)

	s.False(s.session.AnswerAt(0).IsAnswered())
}

func (s *SessionSuite) TestAdvanceThroughCompletes() {
	s.start()

	for i := 0; i < 3; i++ {
		s.False(s.session.IsComplete())
		s.Require().NoError(s.session.Advance())
	}

	s.True(s.session.IsComplete())
	s.Equal(3, s.session.CurrentIndex())
	s.False(s.session.CompletedAt().IsZero())
}

func (s *SessionSuite) TestOperationsAfterCompletion() {
	s.start()
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.session.Advance())
	}

	s.ErrorIs(s.session.Advance(), apperrors.ErrInvalidState)
	s.ErrorIs(s.session.SubmitAnswer(quiz.Choice(0)), apperrors.ErrInvalidState)
	s.ErrorIs(s.session.GoBack(), apperrors.ErrInvalidState)
	s.Equal(3, s.session.CurrentIndex())

	_, err := s.session.CurrentQuestion()
	s.ErrorIs(err, apperrors.ErrOutOfRange)
}

func (s *SessionSuite) TestGoBackKeepsAnswer() {
	s.start()
	s.Require().NoError(s.session.SubmitAnswer(quiz.Choice(1)))
	s.Require().NoError(s.session.Advance())

	s.Require().NoError(s.session.GoBack())

	s.Equal(0, s.session.CurrentIndex())
	s.True(s.session.AnswerAt(0).Equal(quiz.Choice(1)))
}

func (s *SessionSuite) TestGoBackAtFirstQuestion() {
	s.start()

	s.ErrorIs(s.session.GoBack(), apperrors.ErrInvalidState)
	s.Equal(0, s.session.CurrentIndex())
}

func (s *SessionSuite) TestQuestionLookup() {
	s.start()

	q, err := s.session.Question(2)
	s.Require().NoError(err)
	s.Equal("q3", q.ID)

	_, err = s.session.Question(3)
	s.ErrorIs(err, apperrors.ErrOutOfRange)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestSession_StartCopiesQuestions(t *testing.T) {
	questions := threeQuestions()
	session := quiz.NewSession()
	require.NoError(t, session.Start(questions))

	questions[0] = trueFalse("replaced", true)

	q, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
}

func TestSession_DuplicateIDs(t *testing.T) {
	session := quiz.NewSession()

	err := session.Start([]quiz.Question{singleChoice("dup", 0), trueFalse("dup", true)})

	assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "dup")
}

func TestState_TextRoundTrip(t *testing.T) {
	for _, st := range []quiz.State{quiz.NotStarted, quiz.InProgress, quiz.Completed} {
		text, err := st.MarshalText()
		require.NoError(t, err)

		var got quiz.State
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, st, got)
	}

	var bad quiz.State
	assert.Error(t, bad.UnmarshalText([]byte("Paused")))
}
