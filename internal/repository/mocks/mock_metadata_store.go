package mocks

import (
	"context"

	"github.com/cloudsid/upload-logger/internal/entity"
	"github.com/stretchr/testify/mock"
)

type MockMetadataStore struct {
	mock.Mock
}

func (m *MockMetadataStore) Put(ctx context.Context, meta entity.FileMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}
