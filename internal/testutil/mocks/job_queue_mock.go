package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/cyberquest/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueSummary(summary models.Summary) error {
	args := m.Called(summary)
	return args.Error(0)
}
