package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of storage.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, args.Error(1)
}

func (m *MockStore) Type() string { return "mock" }
