package jobs

import "github.com/vytor/cyberquest/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueSummary(summary models.Summary) error
}
