package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// EntityStore is a mock implementation of reconcile.EntityStore
type EntityStore[F any, M any] struct {
	mock.Mock
}

func (m *EntityStore[F, M]) Create(ctx context.Context, fields F) (*M, error) {
	args := m.Called(ctx, fields)
	entity, _ := args.Get(0).(*M)
	return entity, args.Error(1)
}

func (m *EntityStore[F, M]) Update(ctx context.Context, id string, fields F) (*M, error) {
	args := m.Called(ctx, id, fields)
	entity, _ := args.Get(0).(*M)
	return entity, args.Error(1)
}
