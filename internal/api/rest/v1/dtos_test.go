//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request EncryptRequest
		wantErr bool
	}{
		{"valid", EncryptRequest{Plaintext: "Hello", Key: "1ekh 2ht"}, false},
		{"empty plaintext is allowed", EncryptRequest{Key: "1ekh 2ht"}, false},
		{"missing key", EncryptRequest{Plaintext: "Hello"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request DecryptRequest
		wantErr bool
	}{
		{"valid", DecryptRequest{Ciphertext: "1a2b", Key: "2h 2ht"}, false},
		{"missing ciphertext", DecryptRequest{Key: "2h 2ht"}, true},
		{"signed ciphertext", DecryptRequest{Ciphertext: "-1a", Key: "2h 2ht"}, true},
		{"missing key", DecryptRequest{Ciphertext: "1a2b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
