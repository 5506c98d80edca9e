// Package mocks provides centralized mock implementations for testing.
//
// The mocks are built on testify's mock.Mock so tests set expectations with
// On(...).Return(...) and verify them with AssertExpectations. Store mocks
// return themselves from WithTx, so code running inside a transaction talks
// to the same mock.
//
// Usage:
//
//	planets := &mocks.ResourceStore[domain.Planet]{}
//	planets.On("Exists", mock.Anything, int64(1)).Return(true, nil)
//
// When adding a new mock to this package, name the file after the
// interface being mocked and assert the interface with a var declaration.
package mocks
