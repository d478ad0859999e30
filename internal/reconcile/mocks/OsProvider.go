package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// OsProvider is a mock type for the osProvider type.
type OsProvider struct {
	mock.Mock
}

// Stat provides a mock function with given fields: name.
func (_m *OsProvider) Stat(name string) (os.FileInfo, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for Stat")
	}

	var r0 os.FileInfo
	if rf, ok := ret.Get(0).(func(string) os.FileInfo); ok {
		r0 = rf(name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo) //nolint:forcetypeassert
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
