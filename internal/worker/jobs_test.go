package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vytor/cyberquest/internal/models"
	"github.com/vytor/cyberquest/internal/worker"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, s models.Summary) error {
	return m.Called(ctx, s).Error(0)
}

func TestRecordSummaryJob(t *testing.T) {
	summary := models.Summary{QuizID: "phishing", Score: 3, Percentage: 60, Timestamp: 1}
	rec := new(mockRecorder)
	rec.On("Record", mock.Anything, summary).Return(nil).Once()

	job := &worker.RecordSummaryJob{Recorder: rec, Summary: summary}

	assert.Equal(t, "record_summary", job.Name())
	assert.NoError(t, job.Run(context.Background()))
	rec.AssertExpectations(t)
}

func TestRecordSummaryJob_WrapsError(t *testing.T) {
	boom := errors.New("disk full")
	rec := new(mockRecorder)
	rec.On("Record", mock.Anything, mock.Anything).Return(boom)

	job := &worker.RecordSummaryJob{Recorder: rec, Summary: models.Summary{QuizID: "phishing"}}
	err := job.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "phishing")
}
