package jobs

import (
	"github.com/vytor/cyberquest/internal/models"
	"github.com/vytor/cyberquest/internal/worker"
)

// WorkerQueue implements JobQueue using worker pools
type WorkerQueue struct {
	summaryPool *worker.Pool
	recorder    worker.SummaryRecorder
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(summaryPool *worker.Pool, recorder worker.SummaryRecorder) JobQueue {
	return &WorkerQueue{
		summaryPool: summaryPool,
		recorder:    recorder,
	}
}

func (q *WorkerQueue) EnqueueSummary(summary models.Summary) error {
	return q.summaryPool.Submit(&worker.RecordSummaryJob{
		Recorder: q.recorder,
		Summary:  summary,
	})
}
