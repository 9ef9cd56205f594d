package worker

import (
	"context"
	"fmt"

	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/models"
)

// RecordSummaryJob stores the summary of one finished session.
type RecordSummaryJob struct {
	Recorder SummaryRecorder
	Summary  models.Summary
}

func (j *RecordSummaryJob) Name() string { return "record_summary" }

func (j *RecordSummaryJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("quiz_id", j.Summary.QuizID)
	log.Debug("recording summary: score=%d percentage=%d", j.Summary.Score, j.Summary.Percentage)

	if err := j.Recorder.Record(ctx, j.Summary); err != nil {
		return fmt.Errorf("record summary for %s: %w", j.Summary.QuizID, err)
	}
	return nil
}
