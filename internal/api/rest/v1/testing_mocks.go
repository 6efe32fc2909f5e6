package v1

import (
	"context"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of textbook.KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

// GenerateKeys mocks the GenerateKeys method
func (m *MockKeyGenerationService) GenerateKeys(ctx context.Context) (*textbook.KeyStrings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbook.KeyStrings), args.Error(1)
}

// MockCipherService is a mock implementation of textbook.CipherService
type MockCipherService struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method
func (m *MockCipherService) Encrypt(ctx context.Context, plaintext, key string) (string, error) {
	args := m.Called(ctx, plaintext, key)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method
func (m *MockCipherService) Decrypt(ctx context.Context, ciphertext, key string) (string, error) {
	args := m.Called(ctx, ciphertext, key)
	return args.String(0), args.Error(1)
}

// Parameters mocks the Parameters method
func (m *MockCipherService) Parameters() textbook.Parameters {
	args := m.Called()
	return args.Get(0).(textbook.Parameters)
}
