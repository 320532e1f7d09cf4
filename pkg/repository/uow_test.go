package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ ID int }

func (widget) TableName() string { return "widgets" }

type widgetRepo struct{ Repository[widget, int] }

type stubUoW struct {
	repos map[string]any
	calls []string
}

func (s *stubUoW) Repository(entity string) (any, error) {
	s.calls = append(s.calls, entity)
	repo, ok := s.repos[entity]
	if !ok {
		return nil, ErrUnsupportedEntity
	}
	return repo, nil
}

func (s *stubUoW) SaveChanges(context.Context) error { return nil }
func (s *stubUoW) Close() error                      { return nil }

func TestGetRepository(t *testing.T) {
	repo := &widgetRepo{}
	uow := &stubUoW{repos: map[string]any{"widgets": repo}}

	got, err := GetRepository[widget, int](uow)
	require.NoError(t, err)
	assert.Same(t, repo, got)
	assert.Equal(t, []string{"widgets"}, uow.calls)
}

func TestGetRepository_Unregistered(t *testing.T) {
	uow := &stubUoW{repos: map[string]any{}}

	_, err := GetRepository[widget, int](uow)
	assert.True(t, errors.Is(err, ErrUnsupportedEntity))
}

func TestGetRepository_WrongType(t *testing.T) {
	uow := &stubUoW{repos: map[string]any{"widgets": "not a repository"}}

	_, err := GetRepository[widget, int](uow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedEntity))
}
