package mocks

import (
	context "context"

	domain "ifood/audit-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

// IncrementDaily provides a mock function with given fields: ctx, event
func (_m *StoreInterface) IncrementDaily(ctx context.Context, event domain.EntityEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// RecordEvent provides a mock function with given fields: ctx, event
func (_m *StoreInterface) RecordEvent(ctx context.Context, event domain.EntityEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
