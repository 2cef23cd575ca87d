package mocks

import (
	context "context"
	time "time"

	domain "ifood/audit-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StatsStoreInterface is a mock type for the StatsStoreInterface type
type StatsStoreInterface struct {
	mock.Mock
}

// DailyCounts provides a mock function with given fields: ctx, day
func (_m *StatsStoreInterface) DailyCounts(ctx context.Context, day time.Time) (map[string]int64, error) {
	ret := _m.Called(ctx, day)

	var r0 map[string]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}

	return r0, ret.Error(1)
}

// History provides a mock function with given fields: ctx, entity, entityID, limit
func (_m *StatsStoreInterface) History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error) {
	ret := _m.Called(ctx, entity, entityID, limit)

	var r0 []domain.AuditRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.AuditRecord)
	}

	return r0, ret.Error(1)
}

// NewStatsStoreInterface creates a new instance of StatsStoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStatsStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsStoreInterface {
	m := &StatsStoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
