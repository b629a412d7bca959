package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) Read(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockWorkspaceRepository) Write(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Backup(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
