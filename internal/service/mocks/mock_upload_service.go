package mocks

import (
	"context"
	"io"

	"unitracker/internal/model"
	"unitracker/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) List(ctx context.Context) ([]model.UploadedDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadedDoc), args.Error(1)
}

func (m *MockUploadService) Upload(ctx context.Context, r io.Reader, in service.UploadInput) (model.UploadedDoc, error) {
	args := m.Called(ctx, r, in)
	return args.Get(0).(model.UploadedDoc), args.Error(1)
}

func (m *MockUploadService) Update(ctx context.Context, id string, p service.UploadPatch) (model.UploadedDoc, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(model.UploadedDoc), args.Error(1)
}

func (m *MockUploadService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadService) Open(ctx context.Context, id string) (model.UploadedDoc, io.ReadCloser, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if v := args.Get(1); v != nil {
		rc = v.(io.ReadCloser)
	}
	return args.Get(0).(model.UploadedDoc), rc, args.Error(2)
}
