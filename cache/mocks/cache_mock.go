package mocks

import (
	"context"
	"time"

	"github.com/oliverisaac/jotter/cache"
	"github.com/stretchr/testify/mock"
)

type MockAuthorCache struct {
	mock.Mock
}

var _ cache.AuthorCache = (*MockAuthorCache)(nil)

func (m *MockAuthorCache) GetAuthorLabels(ctx context.Context, userIDs []string) (map[string]string, error) {
	args := m.Called(ctx, userIDs)
	labels, _ := args.Get(0).(map[string]string)
	return labels, args.Error(1)
}

func (m *MockAuthorCache) SetAuthorLabels(ctx context.Context, labels map[string]string, ttl time.Duration) error {
	args := m.Called(ctx, labels, ttl)
	return args.Error(0)
}
