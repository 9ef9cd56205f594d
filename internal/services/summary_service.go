package services

import (
	"context"
	"fmt"

	"github.com/vytor/cyberquest/internal/errors"
	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/models"
	"github.com/vytor/cyberquest/internal/repository"
)

// SummaryOverview is what the site shows next to a quiz.
type SummaryOverview struct {
	QuizID   string          `json:"quizId"`
	Latest   *models.Summary `json:"latest"`
	Best     *models.Summary `json:"best"`
	Attempts int             `json:"attempts"`
}

// SummaryService keeps the last and best result per quiz plus a history.
type SummaryService interface {
	Record(ctx context.Context, summary models.Summary) error
	Latest(ctx context.Context, quizID string) (*models.Summary, error)
	Best(ctx context.Context, quizID string) (*models.Summary, error)
	Overview(ctx context.Context, quizID string) (*SummaryOverview, error)
	History(ctx context.Context, filter models.SummaryFilter) ([]models.SummaryRecord, error)
}

type summaryService struct {
	kvRepo      repository.KVRepository
	summaryRepo repository.SummaryRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(kvRepo repository.KVRepository, summaryRepo repository.SummaryRepository) SummaryService {
	return &summaryService{kvRepo: kvRepo, summaryRepo: summaryRepo}
}

// LastKey is the key holding the most recent summary of a quiz.
func LastKey(quizID string) string { return fmt.Sprintf("quiz:%s:last", quizID) }

// BestKey is the key holding the best summary of a quiz.
func BestKey(quizID string) string { return fmt.Sprintf("quiz:%s:best", quizID) }

func (s *summaryService) Record(ctx context.Context, summary models.Summary) error {
	log := logger.FromContext(ctx)
	log.Debug("recording summary: quiz_id=%s score=%d percentage=%d", summary.QuizID, summary.Score, summary.Percentage)

	if summary.QuizID == "" {
		return errors.NewValidationError("quizId", "cannot be empty")
	}
	if summary.Percentage < 0 || summary.Percentage > 100 {
		return errors.NewValidationError("percentage", "must be between 0 and 100")
	}
	if summary.Score < 0 {
		return errors.NewValidationError("score", "cannot be negative")
	}

	encoded, err := summary.Encode()
	if err != nil {
		return errors.NewInternalError(err)
	}

	if err := s.kvRepo.Put(ctx, LastKey(summary.QuizID), encoded); err != nil {
		log.Error("failed to store last summary: %v", err)
		return errors.NewInternalError(err)
	}

	improved, err := s.kvRepo.Update(ctx, BestKey(summary.QuizID), func(current []byte, found bool) ([]byte, bool, error) {
		if !found {
			return encoded, true, nil
		}
		best, err := models.DecodeSummary(current)
		if err != nil {
			log.Warn("replacing unreadable best summary for %s: %v", summary.QuizID, err)
			return encoded, true, nil
		}
		return encoded, summary.Beats(best), nil
	})
	if err != nil {
		log.Error("failed to update best summary: %v", err)
		return errors.NewInternalError(err)
	}

	if _, err := s.summaryRepo.Insert(ctx, summary); err != nil {
		log.Error("failed to insert summary history: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("summary recorded: quiz_id=%s percentage=%d new_best=%t", summary.QuizID, summary.Percentage, improved)
	return nil
}

func (s *summaryService) Latest(ctx context.Context, quizID string) (*models.Summary, error) {
	return s.read(ctx, LastKey(quizID))
}

func (s *summaryService) Best(ctx context.Context, quizID string) (*models.Summary, error) {
	return s.read(ctx, BestKey(quizID))
}

// read returns nil when the key is missing or holds something unreadable.
func (s *summaryService) read(ctx context.Context, key string) (*models.Summary, error) {
	log := logger.FromContext(ctx)
	log.Debug("reading summary: key=%s", key)

	raw, found, err := s.kvRepo.Get(ctx, key)
	if err != nil {
		log.Error("failed to read %s: %v", key, err)
		return nil, errors.NewInternalError(err)
	}
	if !found {
		return nil, nil
	}
	summary, err := models.DecodeSummary(raw)
	if err != nil {
		log.Warn("ignoring unreadable summary at %s: %v", key, err)
		return nil, nil
	}
	return &summary, nil
}

func (s *summaryService) Overview(ctx context.Context, quizID string) (*SummaryOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("building summary overview: quiz_id=%s", quizID)

	latest, err := s.Latest(ctx, quizID)
	if err != nil {
		return nil, err
	}
	best, err := s.Best(ctx, quizID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.summaryRepo.Count(ctx, quizID)
	if err != nil {
		log.Error("failed to count summaries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &SummaryOverview{QuizID: quizID, Latest: latest, Best: best, Attempts: attempts}, nil
}

func (s *summaryService) History(ctx context.Context, filter models.SummaryFilter) ([]models.SummaryRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing summary history: quiz_id=%s limit=%d", filter.QuizID, filter.Limit)

	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit", "cannot be negative")
	}
	records, err := s.summaryRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list summaries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if records == nil {
		records = []models.SummaryRecord{}
	}
	return records, nil
}
