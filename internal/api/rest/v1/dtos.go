package v1

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EncryptRequest is the body of POST /encrypt
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key" validate:"required"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptRequest is the body of POST /decrypt
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,alphanum"`
	Key        string `json:"key" validate:"required"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// KeysResponse carries a freshly generated key pair
type KeysResponse struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// EncryptResponse carries a base-36 ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse carries a recovered plaintext
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// InfoResponse describes the sizes enforced by the server
type InfoResponse struct {
	KeySizeBits      int `json:"keySizeBits"`
	MaxSourceSize    int `json:"maxSourceSize"`
	MaxKeyStringSize int `json:"maxKeyStringSize"`
	PublicExponent   int `json:"publicExponent"`
}

// ErrorResponse represents an error body
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
