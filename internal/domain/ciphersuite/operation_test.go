//go:build unit
// +build unit

package ciphersuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperation(t *testing.T) {
	t.Run("CanonicalCodes", func(t *testing.T) {
		for i, code := range OperationCodes {
			assert.Equal(t, Operation(i), ParseOperation(code))
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, GCM, ParseOperation("gcm"))
		assert.Equal(t, EAX, ParseOperation("Eax"))
	})

	t.Run("Unrecognized", func(t *testing.T) {
		assert.Equal(t, UnknownOperation, ParseOperation("XTS"))
		assert.Equal(t, UnknownOperation, ParseOperation(""))
		assert.Equal(t, "", UnknownOperation.String())
	})
}

func TestOperationClasses(t *testing.T) {
	authenticated := map[Operation]bool{EAX: true, GCM: true}
	for operation := CBC; operation < UnknownOperation; operation++ {
		assert.Equal(t, authenticated[operation], operation.Authenticated(), "operation %s", operation)
	}
}

func TestIVSize(t *testing.T) {
	assert.Equal(t, 0, ECB.IVSize(16))
	assert.Equal(t, 12, GCM.IVSize(16))
	assert.Equal(t, 16, CBC.IVSize(16))
	assert.Equal(t, 8, CBC.IVSize(8))
	assert.Equal(t, 8, EAX.IVSize(8))
	assert.Equal(t, 16, CTR.IVSize(16))
	assert.Equal(t, 0, UnknownOperation.IVSize(16))
}
