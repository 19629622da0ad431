package ciphersuite

import "github.com/cryptobuks1/qrypted/internal/pkg/secmem"

// KeyMaker produces key material from a configured password or secret source.
// The suite never stores derived keys; it requests them per operation and the
// engine wipes them before returning.
type KeyMaker interface {
	// KeyLength returns the preferred key length in bytes. The engine runs it
	// through the suite's key-length validation before requesting material.
	KeyLength() int

	// MakeKey derives length bytes of key material. It returns an error when
	// the secret source is unavailable or the parameters are invalid.
	MakeKey(length int) ([]byte, error)
}

// EnvelopeProcessor performs the password-based authenticated-encryption
// envelope transform for a configured suite.
type EnvelopeProcessor interface {
	// Encrypt encrypts the plaintext buffer and returns the ciphertext. It
	// writes a fresh IV and the authentication value into the suite for the
	// caller to persist alongside the ciphertext, and wipes the plaintext
	// buffer before returning, success or failure.
	Encrypt(suite *Suite, plain *secmem.Buffer, keyMaker KeyMaker) ([]byte, error)

	// Decrypt verifies authenticity using the suite's configured IV and
	// authentication value, then decrypts the ciphertext into a wipeable
	// buffer. On any failure no plaintext is returned.
	Decrypt(suite *Suite, crypt []byte, keyMaker KeyMaker) (*secmem.Buffer, error)
}
