// Package textbook defines the contracts and models of raw (unpadded) RSA:
// probable-prime and key-pair generation, the block codec, the modular-exponentiation
// cipher and the text format of keys.
//
// Nothing in this package is secure. There is no padding, encryption is deterministic
// and malleable, and key generation uses whatever random source the caller supplies.
package textbook
