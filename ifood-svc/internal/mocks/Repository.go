package mocks

import (
	context "context"
	iter "iter"

	domain "ifood/ifood-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository[E any] struct {
	mock.Mock
}

// Count provides a mock function with given fields: ctx
func (_m *Repository[E]) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *Repository[E]) DeleteByID(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// ExistsByID provides a mock function with given fields: ctx, id
func (_m *Repository[E]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0, ret.Error(1)
}

// FindAll provides a mock function with given fields: ctx, page
func (_m *Repository[E]) FindAll(ctx context.Context, page domain.PageRequest) ([]*E, error) {
	ret := _m.Called(ctx, page)

	var r0 []*E
	if rf, ok := ret.Get(0).(func(context.Context, domain.PageRequest) []*E); ok {
		r0 = rf(ctx, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*E)
	}

	return r0, ret.Error(1)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *Repository[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	ret := _m.Called(ctx, id)

	var r0 *E
	if rf, ok := ret.Get(0).(func(context.Context, int64) *E); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*E)
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, entity
func (_m *Repository[E]) Save(ctx context.Context, entity *E) (*E, error) {
	ret := _m.Called(ctx, entity)

	var r0 *E
	if rf, ok := ret.Get(0).(func(context.Context, *E) *E); ok {
		r0 = rf(ctx, entity)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*E)
	}

	return r0, ret.Error(1)
}

// Stream provides a mock function with given fields: ctx, page
func (_m *Repository[E]) Stream(ctx context.Context, page domain.PageRequest) iter.Seq2[*E, error] {
	ret := _m.Called(ctx, page)

	var r0 iter.Seq2[*E, error]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(iter.Seq2[*E, error])
	}

	return r0
}

// NewRepository creates a new instance of Repository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRepository[E any](t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository[E] {
	m := &Repository[E]{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
