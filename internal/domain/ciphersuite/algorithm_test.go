//go:build unit
// +build unit

package ciphersuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlgorithm(t *testing.T) {
	t.Run("CanonicalNames", func(t *testing.T) {
		for i, name := range AlgorithmNames {
			assert.Equal(t, Algorithm(i), ParseAlgorithm(name))
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, AES, ParseAlgorithm("aes"))
		assert.Equal(t, DESEDE3, ParseAlgorithm("des-ede3"))
		assert.Equal(t, CAST128, ParseAlgorithm("cast-128"))
		assert.Equal(t, Twofish, ParseAlgorithm("TWOFISH"))
	})

	t.Run("NoPartialMatches", func(t *testing.T) {
		assert.Equal(t, UnknownAlgorithm, ParseAlgorithm("AE"))
		assert.Equal(t, UnknownAlgorithm, ParseAlgorithm("AES-256"))
		assert.Equal(t, UnknownAlgorithm, ParseAlgorithm(""))
		assert.Equal(t, UnknownAlgorithm, ParseAlgorithm("not-a-cipher"))
	})

	t.Run("UnknownHasNoName", func(t *testing.T) {
		assert.Equal(t, "", UnknownAlgorithm.String())
	})
}

func TestValidateKeyLength(t *testing.T) {
	t.Run("FixedLengthIgnoresRequest", func(t *testing.T) {
		assert.Equal(t, 24, DESEDE3.ValidateKeyLength(10))
		assert.Equal(t, 24, DESEDE3.ValidateKeyLength(64))
		assert.Equal(t, 16, IDEA.ValidateKeyLength(1))
		assert.Equal(t, 16, SEED.ValidateKeyLength(100))
		assert.Equal(t, 16, CAST128.ValidateKeyLength(5))
	})

	t.Run("DiscreteSetNearestTiesLarger", func(t *testing.T) {
		assert.Equal(t, 16, AES.ValidateKeyLength(16))
		assert.Equal(t, 16, AES.ValidateKeyLength(17))
		// 20 is equidistant from 16 and 24
		assert.Equal(t, 24, AES.ValidateKeyLength(20))
		assert.Equal(t, 32, AES.ValidateKeyLength(28))
		assert.Equal(t, 32, AES.ValidateKeyLength(1000))
		assert.Equal(t, 16, Serpent.ValidateKeyLength(0))
	})

	t.Run("RangeClamps", func(t *testing.T) {
		assert.Equal(t, 4, Blowfish.ValidateKeyLength(1))
		assert.Equal(t, 30, Blowfish.ValidateKeyLength(30))
		assert.Equal(t, 56, Blowfish.ValidateKeyLength(200))
	})

	t.Run("Idempotent", func(t *testing.T) {
		for algorithm := AES; algorithm < UnknownAlgorithm; algorithm++ {
			for requested := 0; requested <= 72; requested++ {
				once := algorithm.ValidateKeyLength(requested)
				assert.Equal(t, once, algorithm.ValidateKeyLength(once),
					"algorithm %s requested %d", algorithm, requested)
			}
		}
	})

	t.Run("UnknownYieldsZero", func(t *testing.T) {
		assert.Equal(t, 0, UnknownAlgorithm.ValidateKeyLength(32))
	})
}

func TestBlockSize(t *testing.T) {
	assert.Equal(t, 16, AES.BlockSize())
	assert.Equal(t, 16, Camellia.BlockSize())
	assert.Equal(t, 16, SEED.BlockSize())
	assert.Equal(t, 16, Serpent.BlockSize())
	assert.Equal(t, 16, Twofish.BlockSize())
	assert.Equal(t, 8, Blowfish.BlockSize())
	assert.Equal(t, 8, CAST128.BlockSize())
	assert.Equal(t, 8, DESEDE3.BlockSize())
	assert.Equal(t, 8, IDEA.BlockSize())
	assert.Equal(t, 0, UnknownAlgorithm.BlockSize())
}
