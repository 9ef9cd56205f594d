package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vytor/cyberquest/internal/autoadvance"
	"github.com/vytor/cyberquest/internal/catalog"
	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/jobs"
	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/models"
	"github.com/vytor/cyberquest/internal/quiz"
)

// QuizSource looks quizzes up by id.
type QuizSource interface {
	Get(id string) (catalog.Quiz, error)
}

// SessionView is the client-facing state of a play session. The current
// question never carries its correct answer.
type SessionView struct {
	ID                 string         `json:"id"`
	QuizID             string         `json:"quizId"`
	Title              string         `json:"title"`
	State              quiz.State     `json:"state"`
	Index              int            `json:"index"`
	Total              int            `json:"total"`
	Question           *quiz.Question `json:"question,omitempty"`
	Answer             quiz.Answer    `json:"answer"`
	AutoAdvancePending bool           `json:"autoAdvancePending"`
	StartedAt          time.Time      `json:"startedAt"`
}

// PlayConfig tunes a PlayService. Zero AutoAdvance disables auto-advance.
type PlayConfig struct {
	AutoAdvance time.Duration
	TTL         time.Duration
	Summarizer  quiz.Summarizer
	Clock       func() time.Time
}

// PlayService owns the live quiz sessions.
type PlayService interface {
	Start(ctx context.Context, quizID string) (*SessionView, error)
	Get(ctx context.Context, sessionID string) (*SessionView, error)
	Answer(ctx context.Context, sessionID string, answer quiz.Answer) (*SessionView, error)
	Advance(ctx context.Context, sessionID string) (*SessionView, error)
	Back(ctx context.Context, sessionID string) (*SessionView, error)
	Results(ctx context.Context, sessionID string) (*quiz.Results, error)
	Close(ctx context.Context, sessionID string) error
	// Sweep drops sessions idle for longer than the TTL and returns how
	// many were removed.
	Sweep(ctx context.Context, now time.Time) int
	// Shutdown drops every session and cancels pending auto-advances.
	Shutdown(ctx context.Context)
	Active() int
}

type liveSession struct {
	mu       sync.Mutex
	id       string
	quiz     catalog.Quiz
	session  *quiz.Session
	timer    *autoadvance.Timer
	lastSeen time.Time
	// moves counts player actions; a pending auto-advance only runs if
	// none happened since it was scheduled.
	moves    uint64
	recorded bool
	closed   bool
}

type playService struct {
	quizzes QuizSource
	queue   jobs.JobQueue
	cfg     PlayConfig
	bg      context.Context

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// NewPlayService creates a new PlayService
func NewPlayService(quizzes QuizSource, queue jobs.JobQueue, cfg PlayConfig) PlayService {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Summarizer.Scale.Top == "" {
		cfg.Summarizer = quiz.DefaultSummarizer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &playService{
		quizzes:  quizzes,
		queue:    queue,
		cfg:      cfg,
		bg:       logger.NewContext(context.Background(), logger.Default().WithPrefix("play")),
		sessions: make(map[string]*liveSession),
	}
}

func (s *playService) Start(ctx context.Context, quizID string) (*SessionView, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting session: quiz_id=%s", quizID)

	q, err := s.quizzes.Get(quizID)
	if err != nil {
		return nil, err
	}

	ls := &liveSession{
		id:       uuid.NewString(),
		quiz:     q,
		session:  quiz.NewSession(quiz.WithClock(s.cfg.Clock)),
		timer:    autoadvance.New(),
		lastSeen: s.cfg.Clock(),
	}
	if err := ls.session.Start(q.Questions); err != nil {
		log.Error("quiz %s cannot be played: %v", quizID, err)
		return nil, err
	}

	s.mu.Lock()
	s.sessions[ls.id] = ls
	s.mu.Unlock()

	log.Info("session started: session_id=%s quiz_id=%s questions=%d", ls.id, quizID, ls.session.Len())
	return s.view(ls), nil
}

func (s *playService) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	var view *SessionView
	err := s.with(ctx, sessionID, func(ls *liveSession) error {
		view = s.view(ls)
		return nil
	})
	return view, err
}

func (s *playService) Answer(ctx context.Context, sessionID string, answer quiz.Answer) (*SessionView, error) {
	var view *SessionView
	err := s.with(ctx, sessionID, func(ls *liveSession) error {
		if err := ls.session.SubmitAnswer(answer); err != nil {
			return err
		}
		ls.moves++
		ls.timer.Cancel()
		if answer.IsAnswered() && s.cfg.AutoAdvance > 0 {
			s.scheduleAdvance(ls)
		}
		view = s.view(ls)
		return nil
	})
	return view, err
}

func (s *playService) Advance(ctx context.Context, sessionID string) (*SessionView, error) {
	var view *SessionView
	err := s.with(ctx, sessionID, func(ls *liveSession) error {
		ls.moves++
		ls.timer.Cancel()
		if err := ls.session.Advance(); err != nil {
			return err
		}
		s.recordIfComplete(ctx, ls)
		view = s.view(ls)
		return nil
	})
	return view, err
}

func (s *playService) Back(ctx context.Context, sessionID string) (*SessionView, error) {
	var view *SessionView
	err := s.with(ctx, sessionID, func(ls *liveSession) error {
		ls.moves++
		ls.timer.Cancel()
		if err := ls.session.GoBack(); err != nil {
			return err
		}
		view = s.view(ls)
		return nil
	})
	return view, err
}

func (s *playService) Results(ctx context.Context, sessionID string) (*quiz.Results, error) {
	var res quiz.Results
	err := s.with(ctx, sessionID, func(ls *liveSession) error {
		var err error
		res, err = s.cfg.Summarizer.Summarize(ls.session)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *playService) Close(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	ls, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return errors.NewNotFoundError("session", sessionID)
	}

	s.dispose(ls)
	log.Info("session closed: session_id=%s", sessionID)
	return nil
}

func (s *playService) Sweep(ctx context.Context, now time.Time) int {
	log := logger.FromContext(ctx)

	var expired []*liveSession
	s.mu.Lock()
	for id, ls := range s.sessions {
		ls.mu.Lock()
		idle := now.Sub(ls.lastSeen)
		ls.mu.Unlock()
		if idle > s.cfg.TTL {
			expired = append(expired, ls)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, ls := range expired {
		s.dispose(ls)
	}
	if len(expired) > 0 {
		log.Info("expired %d idle sessions", len(expired))
	}
	return len(expired)
}

func (s *playService) Shutdown(ctx context.Context) {
	s.mu.Lock()
	all := make([]*liveSession, 0, len(s.sessions))
	for id, ls := range s.sessions {
		all = append(all, ls)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, ls := range all {
		s.dispose(ls)
	}
	logger.FromContext(ctx).Info("dropped %d sessions on shutdown", len(all))
}

func (s *playService) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// with runs fn with the session locked and refreshes its idle clock.
func (s *playService) with(ctx context.Context, sessionID string, fn func(*liveSession) error) error {
	s.mu.RLock()
	ls, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return errors.NewNotFoundError("session", sessionID)
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.closed {
		return errors.NewNotFoundError("session", sessionID)
	}
	ls.lastSeen = s.cfg.Clock()
	if err := fn(ls); err != nil {
		logger.FromContext(ctx).Debug("session %s: %v", sessionID, err)
		return err
	}
	return nil
}

// scheduleAdvance moves to the next question after the configured delay
// unless the player acted in the meantime. Called with ls.mu held.
func (s *playService) scheduleAdvance(ls *liveSession) {
	moves := ls.moves
	ls.timer.Schedule(s.cfg.AutoAdvance, func() {
		ls.mu.Lock()
		defer ls.mu.Unlock()
		if ls.closed || ls.moves != moves || ls.session.State() != quiz.InProgress {
			return
		}
		if err := ls.session.Advance(); err != nil {
			logger.FromContext(s.bg).Error("auto-advance failed for session %s: %v", ls.id, err)
			return
		}
		logger.FromContext(s.bg).Debug("auto-advanced session %s to %d", ls.id, ls.session.CurrentIndex())
		s.recordIfComplete(s.bg, ls)
	})
}

// recordIfComplete enqueues the summary the first time the session
// completes. Called with ls.mu held.
func (s *playService) recordIfComplete(ctx context.Context, ls *liveSession) {
	if !ls.session.IsComplete() || ls.recorded {
		return
	}
	ls.recorded = true
	log := logger.FromContext(ctx)

	res, err := s.cfg.Summarizer.Summarize(ls.session)
	if err != nil {
		log.Error("failed to summarize session %s: %v", ls.id, err)
		return
	}
	summary := models.NewSummary(ls.quiz.ID, res.CorrectCount, res.Percentage, ls.session.CompletedAt())
	if err := s.queue.EnqueueSummary(summary); err != nil {
		log.Warn("summary for session %s not saved: %v", ls.id, err)
		return
	}
	log.Info("session completed: session_id=%s quiz_id=%s percentage=%d", ls.id, ls.quiz.ID, res.Percentage)
}

func (s *playService) dispose(ls *liveSession) {
	ls.timer.Stop()
	ls.mu.Lock()
	ls.closed = true
	ls.mu.Unlock()
}

// view is called with ls.mu held.
func (s *playService) view(ls *liveSession) *SessionView {
	v := &SessionView{
		ID:                 ls.id,
		QuizID:             ls.quiz.ID,
		Title:              ls.quiz.Title,
		State:              ls.session.State(),
		Index:              ls.session.CurrentIndex(),
		Total:              ls.session.Len(),
		AutoAdvancePending: ls.timer.Pending(),
		StartedAt:          ls.session.StartedAt(),
	}
	if q, err := ls.session.CurrentQuestion(); err == nil {
		pub := q.Public()
		v.Question = &pub
		v.Answer = ls.session.AnswerAt(v.Index)
	}
	return v
}
