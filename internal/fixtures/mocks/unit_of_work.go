package mocks

import (
	"context"

	"github.com/amirasaad/banking/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock of repository.UnitOfWork with a typed
// expecter.
type MockUnitOfWork struct {
	mock.Mock
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)

// NewMockUnitOfWork creates a mock whose expectations are asserted when the
// test ends.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Repository provides a mock function.
func (_m *MockUnitOfWork) Repository(entity string) (any, error) {
	ret := _m.Called(entity)
	if rf, ok := ret.Get(0).(func(string) (any, error)); ok {
		return rf(entity)
	}
	return ret.Get(0), ret.Error(1)
}

type MockUnitOfWork_Repository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Repository(entity interface{}) *MockUnitOfWork_Repository_Call {
	return &MockUnitOfWork_Repository_Call{Call: _e.mock.On("Repository", entity)}
}

func (_c *MockUnitOfWork_Repository_Call) Return(repo any, err error) *MockUnitOfWork_Repository_Call {
	_c.Call.Return(repo, err)
	return _c
}

func (_c *MockUnitOfWork_Repository_Call) RunAndReturn(run func(string) (any, error)) *MockUnitOfWork_Repository_Call {
	_c.Call.Return(run)
	return _c
}

// SaveChanges provides a mock function.
func (_m *MockUnitOfWork) SaveChanges(ctx context.Context) error {
	ret := _m.Called(ctx)
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}
	return ret.Error(0)
}

type MockUnitOfWork_SaveChanges_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) SaveChanges(ctx interface{}) *MockUnitOfWork_SaveChanges_Call {
	return &MockUnitOfWork_SaveChanges_Call{Call: _e.mock.On("SaveChanges", ctx)}
}

func (_c *MockUnitOfWork_SaveChanges_Call) Return(err error) *MockUnitOfWork_SaveChanges_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockUnitOfWork_SaveChanges_Call) RunAndReturn(run func(context.Context) error) *MockUnitOfWork_SaveChanges_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function.
func (_m *MockUnitOfWork) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

type MockUnitOfWork_Close_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Close() *MockUnitOfWork_Close_Call {
	return &MockUnitOfWork_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockUnitOfWork_Close_Call) Return(err error) *MockUnitOfWork_Close_Call {
	_c.Call.Return(err)
	return _c
}
