package cryptography

import "github.com/stretchr/testify/mock"

// MockKeyMaker is a testify mock of the KeyMaker contract, used to exercise
// key-derivation failure paths.
type MockKeyMaker struct {
	mock.Mock
}

// KeyLength mocks the preferred key length.
func (m *MockKeyMaker) KeyLength() int {
	args := m.Called()
	return args.Int(0)
}

// MakeKey mocks key derivation.
func (m *MockKeyMaker) MakeKey(length int) ([]byte, error) {
	args := m.Called(length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
