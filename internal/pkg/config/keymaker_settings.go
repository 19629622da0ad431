package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Key derivation function constants
const (
	KDFArgon2 = "argon2"
	KDFScrypt = "scrypt"
	KDFPBKDF2 = "pbkdf2"
)

// KeyMakerSettings holds configuration settings for deriving key material from
// a password: the selected KDF, its cost parameters and the preferred key
// length in bytes.
type KeyMakerSettings struct {
	KDF         string `mapstructure:"kdf" validate:"required,oneof=argon2 scrypt pbkdf2"`
	KeyLength   int    `mapstructure:"key_length" validate:"required,min=4,max=64"`
	Iterations  int    `mapstructure:"iterations"`
	Memory      int    `mapstructure:"memory"`
	Parallelism int    `mapstructure:"parallelism"`
}

// Validate checks that all fields in KeyMakerSettings are valid
func (s *KeyMakerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyMakerSettings: %w", err)
	}

	// Additional validation per KDF
	switch s.KDF {
	case KDFArgon2:
		if s.Memory != 0 && (s.Memory < 8*1024 || s.Memory > 1024*1024) {
			return fmt.Errorf("argon2 memory must be between 8192 and 1048576 KiB")
		}
		if s.Parallelism < 0 || s.Parallelism > 64 {
			return fmt.Errorf("argon2 parallelism must be between 0 and 64")
		}
	case KDFScrypt:
		if s.Iterations != 0 && (s.Iterations&(s.Iterations-1)) != 0 {
			return fmt.Errorf("scrypt cost parameter N must be a power of two")
		}
	case KDFPBKDF2:
		if s.Iterations != 0 && s.Iterations < 1000 {
			return fmt.Errorf("pbkdf2 iteration count below 1000 is too low to make sense")
		}
	}

	return nil
}
