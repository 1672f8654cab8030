package mocks

import (
	binder "github.com/stackb/symbind/pkg/binder"
	mock "github.com/stretchr/testify/mock"
)

// SymbolCreator is a mock type for the SymbolCreator type
type SymbolCreator struct {
	mock.Mock
}

// CreateSymbols provides a mock function with given fields: b
func (_m *SymbolCreator) CreateSymbols(b *binder.Binder) error {
	ret := _m.Called(b)

	var r0 error
	if rf, ok := ret.Get(0).(func(*binder.Binder) error); ok {
		r0 = rf(b)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewSymbolCreator creates a new instance of SymbolCreator. It also registers
// a testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewSymbolCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *SymbolCreator {
	m := &SymbolCreator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
