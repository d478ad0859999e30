package mocks

import (
	"github.com/stretchr/testify/mock"
)

// OsProvider is a mock type for the osProvider type.
type OsProvider struct {
	mock.Mock
}

// ReadFile provides a mock function with given fields: name.
func (_m *OsProvider) ReadFile(name string) ([]byte, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for ReadFile")
	}

	var r0 []byte
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte) //nolint:forcetypeassert
	}

	return r0, ret.Error(1)
}

// NewOsProvider creates a new instance of OsProvider. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewOsProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *OsProvider {
	m := &OsProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
