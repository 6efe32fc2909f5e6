package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
)

// KeySizeValidation validates an RSA modulus size in bits (validator tag "keysize").
func KeySizeValidation(fl validator.FieldLevel) bool {
	if !fl.Field().CanInt() {
		return false
	}
	return textbook.ValidateKeySize(int(fl.Field().Int())) == nil
}
