package mocks

import (
	"context"

	"unitracker/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) Load(ctx context.Context) (model.Workspace, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) Save(ctx context.Context, ws model.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkspaceService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
