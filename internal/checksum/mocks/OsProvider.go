package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// OsProvider is a mock type for the osProvider type.
type OsProvider struct {
	mock.Mock
}

// Open provides a mock function with given fields: name.
func (_m *OsProvider) Open(name string) (*os.File, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for Open")
	}

	var r0 *os.File
	if rf, ok := ret.Get(0).(func(string) *os.File); ok {
		r0 = rf(name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*os.File) //nolint:forcetypeassert
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
