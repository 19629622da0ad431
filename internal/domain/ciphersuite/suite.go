package ciphersuite

import (
	"encoding/hex"
	"strings"
)

// Suite is a configurable cipher suite: a selected algorithm and operation
// plus the per-message initialization vector and authentication value. The
// IV and authentication value are outputs of encryption; the caller persists
// them next to the ciphertext and restores them before decryption.
//
// A Suite instance must not be shared across concurrent encrypt/decrypt calls
// without external synchronization; instances are cheap, use one per
// operation.
type Suite struct {
	algorithm      Algorithm
	operation      Operation
	initialVector  []byte
	authentication []byte
}

// New returns a suite with the default AES/GCM configuration.
func New() *Suite {
	return NewSuite(AES, GCM)
}

// NewSuite returns a suite configured with the given algorithm and operation.
func NewSuite(algorithm Algorithm, operation Operation) *Suite {
	return &Suite{algorithm: algorithm, operation: operation}
}

// Algorithm returns the selected algorithm, or UnknownAlgorithm while the
// suite is unresolved.
func (s *Suite) Algorithm() Algorithm {
	if s.algorithm < 0 || s.algorithm >= UnknownAlgorithm {
		return UnknownAlgorithm
	}
	return s.algorithm
}

// SetAlgorithm selects an algorithm by enum value.
func (s *Suite) SetAlgorithm(algorithm Algorithm) {
	s.algorithm = algorithm
}

// AlgorithmName returns the canonical algorithm name, or the empty string
// while unresolved.
func (s *Suite) AlgorithmName() string {
	return s.Algorithm().String()
}

// SetAlgorithmName selects an algorithm by name. Unrecognized names clear the
// selection to unresolved instead of returning an error; the unresolved state
// only surfaces as ErrConfiguration when a cryptographic call is attempted.
func (s *Suite) SetAlgorithmName(name string) {
	s.algorithm = ParseAlgorithm(name)
}

// Operation returns the selected operation, or UnknownOperation while the
// suite is unresolved.
func (s *Suite) Operation() Operation {
	if s.operation < 0 || s.operation >= UnknownOperation {
		return UnknownOperation
	}
	return s.operation
}

// SetOperation selects an operation by enum value.
func (s *Suite) SetOperation(operation Operation) {
	s.operation = operation
}

// OperationCode returns the canonical operation code, or the empty string
// while unresolved.
func (s *Suite) OperationCode() string {
	return s.Operation().String()
}

// SetOperationCode selects an operation by code, with the same soft
// validation as SetAlgorithmName.
func (s *Suite) SetOperationCode(code string) {
	s.operation = ParseOperation(code)
}

// FullName returns the canonical "Algorithm/Mode" identifier, e.g. "AES/GCM".
// This is the only persisted configuration format the suite defines.
func (s *Suite) FullName() string {
	return s.AlgorithmName() + "/" + s.OperationCode()
}

// SetFullName configures the suite from an "Algorithm/Mode" string. The name
// must split into exactly two segments; each half goes through the same soft
// validation as the individual setters, so a malformed or unrecognized name
// leaves the suite unresolved.
func (s *Suite) SetFullName(fullName string) {
	s.algorithm = UnknownAlgorithm
	s.operation = UnknownOperation

	parts := strings.Split(fullName, "/")
	if len(parts) != 2 {
		return
	}
	s.SetAlgorithmName(parts[0])
	s.SetOperationCode(parts[1])
}

// InitialVector returns the current IV. It is regenerated on every
// encryption and must never be reused with the same key.
func (s *Suite) InitialVector() []byte {
	return s.initialVector
}

// SetInitialVector sets the IV, typically loaded from storage before
// decryption.
func (s *Suite) SetInitialVector(iv []byte) {
	s.initialVector = iv
}

// InitialVectorHex returns the IV hex-encoded.
func (s *Suite) InitialVectorHex() string {
	return hex.EncodeToString(s.initialVector)
}

// SetInitialVectorHex decodes a hex string into the IV. Odd-length or
// non-hex input clears the IV instead of failing.
func (s *Suite) SetInitialVectorHex(ivHex string) {
	s.initialVector = decodeHex(ivHex)
}

// Authentication returns the authentication value: the AEAD tag for
// authenticated operations, or the HMAC for the others.
func (s *Suite) Authentication() []byte {
	return s.authentication
}

// SetAuthentication sets the authentication value, typically loaded from
// storage before decryption. Encryption always overwrites it.
func (s *Suite) SetAuthentication(authentication []byte) {
	s.authentication = authentication
}

// AuthenticationHex returns the authentication value hex-encoded.
func (s *Suite) AuthenticationHex() string {
	return hex.EncodeToString(s.authentication)
}

// SetAuthenticationHex decodes a hex string into the authentication value.
// Odd-length or non-hex input clears the value instead of failing.
func (s *Suite) SetAuthenticationHex(authenticationHex string) {
	s.authentication = decodeHex(authenticationHex)
}

// ValidateKeyLength returns the key length in bytes nearest to the requested
// one that the selected algorithm accepts. Pure; callable independently of
// encrypt/decrypt for introspection.
func (s *Suite) ValidateKeyLength(requested int) int {
	return s.Algorithm().ValidateKeyLength(requested)
}

func decodeHex(in string) []byte {
	out, err := hex.DecodeString(in)
	if err != nil {
		return nil
	}
	return out
}
