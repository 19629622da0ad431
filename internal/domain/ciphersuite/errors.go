package ciphersuite

import "errors"

// Error classes returned by envelope processors. Callers classify failures
// with errors.Is.
var (
	// ErrConfiguration indicates the algorithm or operation was unresolved at
	// the time of a cryptographic call.
	ErrConfiguration = errors.New("ciphersuite: algorithm or operation not resolved")

	// ErrKeyDerivation indicates the KeyMaker collaborator failed to produce
	// key material.
	ErrKeyDerivation = errors.New("ciphersuite: key derivation failed")

	// ErrAuthentication indicates MAC or AEAD tag verification failed during
	// decryption. No plaintext is produced.
	ErrAuthentication = errors.New("ciphersuite: authentication failed")

	// ErrEncrypt indicates an underlying primitive failure during encryption
	// not otherwise classified.
	ErrEncrypt = errors.New("ciphersuite: encryption failed")

	// ErrDecrypt indicates an underlying primitive failure during decryption
	// not otherwise classified, e.g. a malformed ciphertext length for a block
	// mode.
	ErrDecrypt = errors.New("ciphersuite: decryption failed")
)
