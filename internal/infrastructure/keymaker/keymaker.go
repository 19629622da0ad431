// Package keymaker provides the password-based key-derivation collaborators
// consumed by the envelope engine. Each KeyMaker wraps an audited KDF from
// golang.org/x/crypto; none of them implement stretching themselves.
package keymaker

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/cryptobuks1/qrypted/internal/domain/ciphersuite"
	"github.com/cryptobuks1/qrypted/internal/pkg/config"
)

// DefaultKeyLength is the preferred key length in bytes when the caller does
// not configure one.
const DefaultKeyLength = 32

// Argon2 derives key material with Argon2id.
type Argon2 struct {
	password []byte
	salt     []byte
	time     uint32
	memory   uint32
	threads  uint8
	length   int
}

// NewArgon2 returns an Argon2id KeyMaker with t=3, m=64MiB, p=4.
func NewArgon2(password, salt []byte) *Argon2 {
	return &Argon2{
		password: password,
		salt:     salt,
		time:     3,
		memory:   64 * 1024,
		threads:  4,
		length:   DefaultKeyLength,
	}
}

// KeyLength returns the preferred key length in bytes.
func (k *Argon2) KeyLength() int {
	return k.length
}

// MakeKey derives length bytes of key material from the password and salt.
func (k *Argon2) MakeKey(length int) ([]byte, error) {
	if err := checkParams(length, k.salt); err != nil {
		return nil, err
	}
	return argon2.IDKey(k.password, k.salt, k.time, k.memory, k.threads, uint32(length)), nil
}

// Scrypt derives key material with scrypt.
type Scrypt struct {
	password []byte
	salt     []byte
	n, r, p  int
	length   int
}

// NewScrypt returns a scrypt KeyMaker with N=32768, r=8, p=1.
func NewScrypt(password, salt []byte) *Scrypt {
	return &Scrypt{
		password: password,
		salt:     salt,
		n:        32768,
		r:        8,
		p:        1,
		length:   DefaultKeyLength,
	}
}

// KeyLength returns the preferred key length in bytes.
func (k *Scrypt) KeyLength() int {
	return k.length
}

// MakeKey derives length bytes of key material from the password and salt.
func (k *Scrypt) MakeKey(length int) ([]byte, error) {
	if err := checkParams(length, k.salt); err != nil {
		return nil, err
	}
	key, err := scrypt.Key(k.password, k.salt, k.n, k.r, k.p, length)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

// PBKDF2 derives key material with PBKDF2-HMAC-SHA256.
type PBKDF2 struct {
	password   []byte
	salt       []byte
	iterations int
	length     int
}

// NewPBKDF2 returns a PBKDF2 KeyMaker with 600000 iterations.
func NewPBKDF2(password, salt []byte) *PBKDF2 {
	return &PBKDF2{
		password:   password,
		salt:       salt,
		iterations: 600000,
		length:     DefaultKeyLength,
	}
}

// KeyLength returns the preferred key length in bytes.
func (k *PBKDF2) KeyLength() int {
	return k.length
}

// MakeKey derives length bytes of key material from the password and salt.
func (k *PBKDF2) MakeKey(length int) ([]byte, error) {
	if err := checkParams(length, k.salt); err != nil {
		return nil, err
	}
	return pbkdf2.Key(k.password, k.salt, k.iterations, length, sha256.New), nil
}

// FromSettings builds a KeyMaker from validated settings. Zero-valued cost
// parameters fall back to each KDF's defaults.
func FromSettings(settings *config.KeyMakerSettings, password, salt []byte) (ciphersuite.KeyMaker, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate settings: %w", err)
	}

	switch settings.KDF {
	case config.KDFArgon2:
		keyMaker := NewArgon2(password, salt)
		keyMaker.length = settings.KeyLength
		if settings.Iterations > 0 {
			keyMaker.time = uint32(settings.Iterations)
		}
		if settings.Memory > 0 {
			keyMaker.memory = uint32(settings.Memory)
		}
		if settings.Parallelism > 0 {
			keyMaker.threads = uint8(settings.Parallelism)
		}
		return keyMaker, nil
	case config.KDFScrypt:
		keyMaker := NewScrypt(password, salt)
		keyMaker.length = settings.KeyLength
		if settings.Iterations > 0 {
			keyMaker.n = settings.Iterations
		}
		if settings.Parallelism > 0 {
			keyMaker.p = settings.Parallelism
		}
		return keyMaker, nil
	case config.KDFPBKDF2:
		keyMaker := NewPBKDF2(password, salt)
		keyMaker.length = settings.KeyLength
		if settings.Iterations > 0 {
			keyMaker.iterations = settings.Iterations
		}
		return keyMaker, nil
	default:
		return nil, fmt.Errorf("unsupported KDF: %s", settings.KDF)
	}
}

func checkParams(length int, salt []byte) error {
	if length <= 0 {
		return fmt.Errorf("key length must be positive, got %d", length)
	}
	if len(salt) == 0 {
		return fmt.Errorf("salt must not be empty")
	}
	return nil
}
