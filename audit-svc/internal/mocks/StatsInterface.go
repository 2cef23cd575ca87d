package mocks

import (
	context "context"
	time "time"

	domain "ifood/audit-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// StatsInterface is a mock type for the StatsInterface type
type StatsInterface struct {
	mock.Mock
}

// Daily provides a mock function with given fields: ctx, day
func (_m *StatsInterface) Daily(ctx context.Context, day time.Time) (domain.DailyStats, error) {
	ret := _m.Called(ctx, day)

	var r0 domain.DailyStats
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) domain.DailyStats); ok {
		r0 = rf(ctx, day)
	} else {
		r0 = ret.Get(0).(domain.DailyStats)
	}

	return r0, ret.Error(1)
}

// History provides a mock function with given fields: ctx, entity, entityID, limit
func (_m *StatsInterface) History(ctx context.Context, entity string, entityID int64, limit int) ([]domain.AuditRecord, error) {
	ret := _m.Called(ctx, entity, entityID, limit)

	var r0 []domain.AuditRecord
	if rf, ok := ret.Get(0).(func(context.Context, string, int64, int) []domain.AuditRecord); ok {
		r0 = rf(ctx, entity, entityID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.AuditRecord)
	}

	return r0, ret.Error(1)
}

// NewStatsInterface creates a new instance of StatsInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStatsInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsInterface {
	m := &StatsInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
