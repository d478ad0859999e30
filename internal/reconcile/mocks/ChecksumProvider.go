package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ChecksumProvider is a mock type for the checksumProvider type.
type ChecksumProvider struct {
	mock.Mock
}

// SumFor provides a mock function with given fields: ctx, path, declared.
func (_m *ChecksumProvider) SumFor(ctx context.Context, path string, declared string) (string, bool) {
	ret := _m.Called(ctx, path, declared)

	if len(ret) == 0 {
		panic("no return value specified for SumFor")
	}

	return ret.String(0), ret.Bool(1)
}

// NewChecksumProvider creates a new instance of ChecksumProvider. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewChecksumProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *ChecksumProvider {
	m := &ChecksumProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
