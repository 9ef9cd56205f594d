package repository

import (
	"context"

	"github.com/vytor/cyberquest/internal/models"
)

// UpdateFunc receives the stored value (found is false when the key is
// absent) and returns the value to write. Returning write=false leaves the
// key untouched.
type UpdateFunc func(current []byte, found bool) (next []byte, write bool, err error)

// KVRepository is a small string-keyed store for client-style state.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	// Update runs fn and the write in one transaction and reports whether
	// a write happened.
	Update(ctx context.Context, key string, fn UpdateFunc) (bool, error)
	Delete(ctx context.Context, key string) error
}

// SummaryRepository handles the history of finished quizzes
type SummaryRepository interface {
	Insert(ctx context.Context, summary models.Summary) (int64, error)
	List(ctx context.Context, filter models.SummaryFilter) ([]models.SummaryRecord, error)
	Count(ctx context.Context, quizID string) (int, error)
}
