package worker

import (
	"context"

	"github.com/vytor/cyberquest/internal/models"
)

// SummaryRecorder persists a finished quiz summary.
// This avoids import cycles by not importing the services package
type SummaryRecorder interface {
	Record(ctx context.Context, summary models.Summary) error
}
