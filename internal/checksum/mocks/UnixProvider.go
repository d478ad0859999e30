package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// UnixProvider is a mock type for the unixProvider type.
type UnixProvider struct {
	mock.Mock
}

// AdviseSequential provides a mock function with given fields: f.
func (_m *UnixProvider) AdviseSequential(f *os.File) error {
	ret := _m.Called(f)

	if len(ret) == 0 {
		panic("no return value specified for AdviseSequential")
	}

	return ret.Error(0)
}

// NewUnixProvider creates a new instance of UnixProvider. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewUnixProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *UnixProvider {
	m := &UnixProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
