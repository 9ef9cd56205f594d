package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/cyberquest/internal/models"
)

// MockSummaryRepository is a mock implementation of repository.SummaryRepository
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) Insert(ctx context.Context, summary models.Summary) (int64, error) {
	args := m.Called(ctx, summary)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSummaryRepository) List(ctx context.Context, filter models.SummaryFilter) ([]models.SummaryRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SummaryRecord), args.Error(1)
}

func (m *MockSummaryRepository) Count(ctx context.Context, quizID string) (int, error) {
	args := m.Called(ctx, quizID)
	return args.Int(0), args.Error(1)
}
