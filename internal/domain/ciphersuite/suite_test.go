//go:build unit
// +build unit

package ciphersuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuiteDefaults(t *testing.T) {
	suite := New()
	assert.Equal(t, AES, suite.Algorithm())
	assert.Equal(t, GCM, suite.Operation())
	assert.Equal(t, "AES/GCM", suite.FullName())
	assert.Empty(t, suite.InitialVector())
	assert.Empty(t, suite.Authentication())
}

func TestSuiteFullNameRoundTrip(t *testing.T) {
	for algorithm := AES; algorithm < UnknownAlgorithm; algorithm++ {
		for operation := CBC; operation < UnknownOperation; operation++ {
			suite := NewSuite(algorithm, operation)
			restored := New()
			restored.SetFullName(suite.FullName())
			assert.Equal(t, algorithm, restored.Algorithm())
			assert.Equal(t, operation, restored.Operation())
		}
	}
}

func TestSuiteSetFullName(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		suite := New()
		suite.SetFullName("twofish/cbc")
		assert.Equal(t, Twofish, suite.Algorithm())
		assert.Equal(t, CBC, suite.Operation())
		assert.Equal(t, "Twofish/CBC", suite.FullName())
	})

	t.Run("WrongShapeClearsBoth", func(t *testing.T) {
		for _, fullName := range []string{"AES", "AES/GCM/CBC", "", "AESGCM"} {
			suite := New()
			suite.SetFullName(fullName)
			assert.Equal(t, UnknownAlgorithm, suite.Algorithm(), "full name %q", fullName)
			assert.Equal(t, UnknownOperation, suite.Operation(), "full name %q", fullName)
		}
	})

	t.Run("UnrecognizedHalfClears", func(t *testing.T) {
		suite := New()
		suite.SetFullName("not-a-cipher/GCM")
		assert.Equal(t, UnknownAlgorithm, suite.Algorithm())
		assert.Equal(t, GCM, suite.Operation())
		assert.Equal(t, "/GCM", suite.FullName())
	})
}

func TestSuiteSoftValidation(t *testing.T) {
	suite := New()
	suite.SetAlgorithmName("not-a-cipher")
	assert.Equal(t, "", suite.AlgorithmName())
	assert.Equal(t, UnknownAlgorithm, suite.Algorithm())

	suite.SetOperationCode("XTS")
	assert.Equal(t, "", suite.OperationCode())
	assert.Equal(t, UnknownOperation, suite.Operation())

	// Re-resolving by enum recovers
	suite.SetAlgorithm(Camellia)
	suite.SetOperation(EAX)
	assert.Equal(t, "Camellia/EAX", suite.FullName())
}

func TestSuiteHexAccessors(t *testing.T) {
	t.Run("ValidHex", func(t *testing.T) {
		suite := New()
		suite.SetInitialVectorHex("00ff10")
		assert.Equal(t, []byte{0x00, 0xff, 0x10}, suite.InitialVector())
		assert.Equal(t, "00ff10", suite.InitialVectorHex())

		suite.SetAuthenticationHex("DEADBEEF")
		assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, suite.Authentication())
		assert.Equal(t, "deadbeef", suite.AuthenticationHex())
	})

	t.Run("OddLengthYieldsEmpty", func(t *testing.T) {
		suite := New()
		suite.SetInitialVector([]byte{1, 2, 3})
		suite.SetInitialVectorHex("abc")
		assert.Empty(t, suite.InitialVector())
	})

	t.Run("NonHexYieldsEmpty", func(t *testing.T) {
		suite := New()
		suite.SetAuthentication([]byte{1, 2, 3})
		suite.SetAuthenticationHex("zz")
		assert.Empty(t, suite.Authentication())
	})
}

func TestSuiteValidateKeyLength(t *testing.T) {
	suite := NewSuite(DESEDE3, CBC)
	assert.Equal(t, 24, suite.ValidateKeyLength(10))

	suite.SetAlgorithmName("not-a-cipher")
	assert.Equal(t, 0, suite.ValidateKeyLength(32))
}
