//go:build unit
// +build unit

package keymaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptobuks1/qrypted/internal/pkg/config"
)

var (
	testPassword = []byte("correct horse battery staple")
	testSalt     = []byte("0123456789abcdef")
)

func TestArgon2KeyMaker(t *testing.T) {
	keyMaker := NewArgon2(testPassword, testSalt)
	assert.Equal(t, DefaultKeyLength, keyMaker.KeyLength())

	t.Run("DerivesRequestedLength", func(t *testing.T) {
		for _, length := range []int{16, 24, 32, 56} {
			key, err := keyMaker.MakeKey(length)
			require.NoError(t, err)
			assert.Len(t, key, length)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := keyMaker.MakeKey(32)
		require.NoError(t, err)
		second, err := keyMaker.MakeKey(32)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("SaltChangesKey", func(t *testing.T) {
		other := NewArgon2(testPassword, []byte("a different salt"))
		first, err := keyMaker.MakeKey(32)
		require.NoError(t, err)
		second, err := other.MakeKey(32)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("RejectsEmptySalt", func(t *testing.T) {
		empty := NewArgon2(testPassword, nil)
		_, err := empty.MakeKey(32)
		assert.Error(t, err)
	})

	t.Run("RejectsNonPositiveLength", func(t *testing.T) {
		_, err := keyMaker.MakeKey(0)
		assert.Error(t, err)
	})
}

func TestScryptKeyMaker(t *testing.T) {
	keyMaker := NewScrypt(testPassword, testSalt)

	key, err := keyMaker.MakeKey(24)
	require.NoError(t, err)
	assert.Len(t, key, 24)

	t.Run("InvalidCostParameter", func(t *testing.T) {
		broken := NewScrypt(testPassword, testSalt)
		broken.n = 3 // not a power of two
		_, err := broken.MakeKey(32)
		assert.Error(t, err)
	})
}

func TestPBKDF2KeyMaker(t *testing.T) {
	keyMaker := NewPBKDF2(testPassword, testSalt)
	keyMaker.iterations = 1000 // keep the unit test fast

	key, err := keyMaker.MakeKey(32)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	other := NewPBKDF2([]byte("another password"), testSalt)
	other.iterations = 1000
	otherKey, err := other.MakeKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, key, otherKey)
}

func TestFromSettings(t *testing.T) {
	t.Run("BuildsEachKDF", func(t *testing.T) {
		for _, kdf := range []string{config.KDFArgon2, config.KDFScrypt, config.KDFPBKDF2} {
			keyMaker, err := FromSettings(&config.KeyMakerSettings{
				KDF:       kdf,
				KeyLength: 32,
			}, testPassword, testSalt)
			require.NoError(t, err, kdf)
			assert.Equal(t, 32, keyMaker.KeyLength())
		}
	})

	t.Run("AppliesOverrides", func(t *testing.T) {
		keyMaker, err := FromSettings(&config.KeyMakerSettings{
			KDF:        config.KDFPBKDF2,
			KeyLength:  16,
			Iterations: 2000,
		}, testPassword, testSalt)
		require.NoError(t, err)

		key, err := keyMaker.MakeKey(keyMaker.KeyLength())
		require.NoError(t, err)
		assert.Len(t, key, 16)
	})

	t.Run("RejectsInvalidSettings", func(t *testing.T) {
		_, err := FromSettings(&config.KeyMakerSettings{
			KDF:       "bcrypt",
			KeyLength: 32,
		}, testPassword, testSalt)
		assert.Error(t, err)

		_, err = FromSettings(&config.KeyMakerSettings{
			KDF:       config.KDFScrypt,
			KeyLength: 32,
			// power-of-two check
			Iterations: 1000,
		}, testPassword, testSalt)
		assert.Error(t, err)
	})
}
