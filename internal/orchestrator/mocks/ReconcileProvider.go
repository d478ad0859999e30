package mocks

import (
	"context"

	"github.com/desertwitch/structcheck/internal/reconcile"
	"github.com/desertwitch/structcheck/internal/structure"
	"github.com/stretchr/testify/mock"
)

// ReconcileProvider is a mock type for the reconcileProvider type.
type ReconcileProvider struct {
	mock.Mock
}

// Reconcile provides a mock function with given fields: ctx, doc.
func (_m *ReconcileProvider) Reconcile(ctx context.Context, doc *structure.Document) (*reconcile.Report, error) {
	ret := _m.Called(ctx, doc)

	if len(ret) == 0 {
		panic("no return value specified for Reconcile")
	}

	var r0 *reconcile.Report
	if rf, ok := ret.Get(0).(func(context.Context, *structure.Document) *reconcile.Report); ok {
		r0 = rf(ctx, doc)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*reconcile.Report) //nolint:forcetypeassert
	}

	return r0, ret.Error(1)
}

// NewReconcileProvider creates a new instance of ReconcileProvider. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewReconcileProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *ReconcileProvider {
	m := &ReconcileProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
