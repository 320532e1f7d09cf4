package mocks

import (
	"context"

	"github.com/amirasaad/banking/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of repository.Repository[T, K].
type MockRepository[T any, K repository.Key] struct {
	mock.Mock
}

// NewMockRepository creates a mock whose expectations are asserted when the
// test ends.
func NewMockRepository[T any, K repository.Key](t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository[T, K] {
	m := &MockRepository[T, K]{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockRepository_Expecter[T any, K repository.Key] struct {
	mock *mock.Mock
}

func (_m *MockRepository[T, K]) EXPECT() *MockRepository_Expecter[T, K] {
	return &MockRepository_Expecter[T, K]{mock: &_m.Mock}
}

// Get provides a mock function.
func (_m *MockRepository[T, K]) Get(ctx context.Context, id K) (*T, error) {
	ret := _m.Called(ctx, id)
	if rf, ok := ret.Get(0).(func(context.Context, K) (*T, error)); ok {
		return rf(ctx, id)
	}
	var entity *T
	if v := ret.Get(0); v != nil {
		entity = v.(*T)
	}
	return entity, ret.Error(1)
}

type MockRepository_Get_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) Get(ctx interface{}, id interface{}) *MockRepository_Get_Call[T, K] {
	return &MockRepository_Get_Call[T, K]{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockRepository_Get_Call[T, K]) Return(entity *T, err error) *MockRepository_Get_Call[T, K] {
	_c.Call.Return(entity, err)
	return _c
}

func (_c *MockRepository_Get_Call[T, K]) RunAndReturn(run func(context.Context, K) (*T, error)) *MockRepository_Get_Call[T, K] {
	_c.Call.Return(run)
	return _c
}

// Find provides a mock function. The options are recorded as one argument.
func (_m *MockRepository[T, K]) Find(ctx context.Context, opts ...repository.QueryOption) ([]*T, error) {
	ret := _m.Called(ctx, opts)
	if rf, ok := ret.Get(0).(func(context.Context, ...repository.QueryOption) ([]*T, error)); ok {
		return rf(ctx, opts...)
	}
	var entities []*T
	if v := ret.Get(0); v != nil {
		entities = v.([]*T)
	}
	return entities, ret.Error(1)
}

type MockRepository_Find_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) Find(ctx interface{}, opts interface{}) *MockRepository_Find_Call[T, K] {
	return &MockRepository_Find_Call[T, K]{Call: _e.mock.On("Find", ctx, opts)}
}

func (_c *MockRepository_Find_Call[T, K]) Return(entities []*T, err error) *MockRepository_Find_Call[T, K] {
	_c.Call.Return(entities, err)
	return _c
}

func (_c *MockRepository_Find_Call[T, K]) RunAndReturn(run func(context.Context, ...repository.QueryOption) ([]*T, error)) *MockRepository_Find_Call[T, K] {
	_c.Call.Return(run)
	return _c
}

// Insert provides a mock function.
func (_m *MockRepository[T, K]) Insert(entity *T) (*T, error) {
	ret := _m.Called(entity)
	if rf, ok := ret.Get(0).(func(*T) (*T, error)); ok {
		return rf(entity)
	}
	var out *T
	if v := ret.Get(0); v != nil {
		out = v.(*T)
	}
	return out, ret.Error(1)
}

type MockRepository_Insert_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) Insert(entity interface{}) *MockRepository_Insert_Call[T, K] {
	return &MockRepository_Insert_Call[T, K]{Call: _e.mock.On("Insert", entity)}
}

func (_c *MockRepository_Insert_Call[T, K]) Return(entity *T, err error) *MockRepository_Insert_Call[T, K] {
	_c.Call.Return(entity, err)
	return _c
}

func (_c *MockRepository_Insert_Call[T, K]) RunAndReturn(run func(*T) (*T, error)) *MockRepository_Insert_Call[T, K] {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function.
func (_m *MockRepository[T, K]) Update(entity *T) error {
	ret := _m.Called(entity)
	if rf, ok := ret.Get(0).(func(*T) error); ok {
		return rf(entity)
	}
	return ret.Error(0)
}

type MockRepository_Update_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) Update(entity interface{}) *MockRepository_Update_Call[T, K] {
	return &MockRepository_Update_Call[T, K]{Call: _e.mock.On("Update", entity)}
}

func (_c *MockRepository_Update_Call[T, K]) Return(err error) *MockRepository_Update_Call[T, K] {
	_c.Call.Return(err)
	return _c
}

// Delete provides a mock function.
func (_m *MockRepository[T, K]) Delete(entity *T) error {
	ret := _m.Called(entity)
	return ret.Error(0)
}

type MockRepository_Delete_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) Delete(entity interface{}) *MockRepository_Delete_Call[T, K] {
	return &MockRepository_Delete_Call[T, K]{Call: _e.mock.On("Delete", entity)}
}

func (_c *MockRepository_Delete_Call[T, K]) Return(err error) *MockRepository_Delete_Call[T, K] {
	_c.Call.Return(err)
	return _c
}

// DeleteRange provides a mock function.
func (_m *MockRepository[T, K]) DeleteRange(entities []*T) error {
	ret := _m.Called(entities)
	return ret.Error(0)
}

type MockRepository_DeleteRange_Call[T any, K repository.Key] struct {
	*mock.Call
}

func (_e *MockRepository_Expecter[T, K]) DeleteRange(entities interface{}) *MockRepository_DeleteRange_Call[T, K] {
	return &MockRepository_DeleteRange_Call[T, K]{Call: _e.mock.On("DeleteRange", entities)}
}

func (_c *MockRepository_DeleteRange_Call[T, K]) Return(err error) *MockRepository_DeleteRange_Call[T, K] {
	_c.Call.Return(err)
	return _c
}
