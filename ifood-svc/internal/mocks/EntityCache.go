package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// EntityCache is a mock type for the EntityCache type
type EntityCache struct {
	mock.Mock
}

// Generation provides a mock function with given fields: ctx, entity
func (_m *EntityCache) Generation(ctx context.Context, entity string) (int64, error) {
	ret := _m.Called(ctx, entity)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, entity)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, entity, generation, id, dst
func (_m *EntityCache) Get(ctx context.Context, entity string, generation int64, id int64, dst any) (bool, error) {
	ret := _m.Called(ctx, entity, generation, id, dst)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string, int64, int64, any) bool); ok {
		r0 = rf(ctx, entity, generation, id, dst)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0, ret.Error(1)
}

// Invalidate provides a mock function with given fields: ctx, entity
func (_m *EntityCache) Invalidate(ctx context.Context, entity string) error {
	ret := _m.Called(ctx, entity)
	return ret.Error(0)
}

// Set provides a mock function with given fields: ctx, entity, generation, id, value
func (_m *EntityCache) Set(ctx context.Context, entity string, generation int64, id int64, value any) error {
	ret := _m.Called(ctx, entity, generation, id, value)
	return ret.Error(0)
}

// NewEntityCache creates a new instance of EntityCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEntityCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *EntityCache {
	m := &EntityCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
