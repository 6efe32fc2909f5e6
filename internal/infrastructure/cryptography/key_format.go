package cryptography

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
)

// keyFormat implements textbook.KeyFormat: "<exponent> <modulus>" in base 36
type keyFormat struct{}

// NewKeyFormat creates the canonical space separated key format
func NewKeyFormat() textbook.KeyFormat {
	return &keyFormat{}
}

// Render returns the exponent and the modulus in lower case base 36, separated by one space.
func (f *keyFormat) Render(key textbook.Key) string {
	return key.Exponent.Text(textbook.KeyNumberBase) + " " + key.Modulus.Text(textbook.KeyNumberBase)
}

// Parse reads a key from exactly two whitespace separated base-36 tokens.
func (f *keyFormat) Parse(text string) (textbook.Key, error) {
	tokens := strings.Fields(text)
	if len(tokens) != 2 {
		return textbook.Key{}, fmt.Errorf("%w: expected 2 tokens, got %d", textbook.ErrMalformedKey, len(tokens))
	}

	exponent, ok := parseNumber(tokens[0])
	if !ok {
		return textbook.Key{}, fmt.Errorf("%w: exponent is not a base-36 number", textbook.ErrMalformedKey)
	}
	modulus, ok := parseNumber(tokens[1])
	if !ok {
		return textbook.Key{}, fmt.Errorf("%w: modulus is not a base-36 number", textbook.ErrMalformedKey)
	}

	key := textbook.Key{Exponent: exponent, Modulus: modulus}
	if err := key.Validate(); err != nil {
		return textbook.Key{}, err
	}
	return key, nil
}

// parseNumber accepts only the digits 0-9 and letters a-z in either case.
// big.Int.SetString alone would also take a sign prefix.
func parseNumber(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if !isBase36Digit(s[i]) {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, textbook.KeyNumberBase)
}

func isBase36Digit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
