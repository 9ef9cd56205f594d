package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/cyberquest/internal/repository"
)

// MockKVRepository is a mock implementation of repository.KVRepository.
// Update runs the caller's function so its decision logic is exercised;
// values it chose to write are kept in Updated.
type MockKVRepository struct {
	mock.Mock
	Updated map[string][]byte
}

func (m *MockKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockKVRepository) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Update expects Return(current []byte, found bool, err error). When err is
// nil the function runs against current and its result is reported.
func (m *MockKVRepository) Update(ctx context.Context, key string, fn repository.UpdateFunc) (bool, error) {
	args := m.Called(ctx, key, fn)
	if err := args.Error(2); err != nil {
		return false, err
	}
	var current []byte
	if v := args.Get(0); v != nil {
		current = v.([]byte)
	}
	next, write, err := fn(current, args.Bool(1))
	if err != nil || !write {
		return false, err
	}
	if m.Updated == nil {
		m.Updated = map[string][]byte{}
	}
	m.Updated[key] = next
	return true, nil
}

func (m *MockKVRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
