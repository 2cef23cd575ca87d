package mocks

import (
	context "context"

	domain "ifood/ifood-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// EventPublisher is a mock type for the EventPublisher type
type EventPublisher struct {
	mock.Mock
}

// PublishEntityEvent provides a mock function with given fields: ctx, event
func (_m *EventPublisher) PublishEntityEvent(ctx context.Context, event domain.EntityEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// NewEventPublisher creates a new instance of EventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
