package service

import (
	"context"

	"github.com/pkg/errors"

	"exusiai.dev/snippets/internal/pkg/kvstore"
)

var ErrStoreNotReachable = errors.New("store not reachable")

type Health struct {
	Store kvstore.Resource
}

func NewHealth(store kvstore.Resource) *Health {
	return &Health{
		Store: store,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.Store.Ping(ctx); err != nil {
		return errors.Wrap(ErrStoreNotReachable, err.Error())
	}

	return nil
}
