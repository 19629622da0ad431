package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"

	"github.com/aead/camellia"
	"github.com/aead/serpent"
	idea "github.com/dgryski/go-idea"
	"github.com/geeksbaek/seed"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/twofish"

	"github.com/cryptobuks1/qrypted/internal/domain/ciphersuite"
)

// newBlockCipher constructs the block primitive for the selected algorithm.
// The key must already have a length the algorithm accepts; the constructors
// reject anything else.
func newBlockCipher(algorithm ciphersuite.Algorithm, key []byte) (cipher.Block, error) {
	switch algorithm {
	case ciphersuite.AES:
		return aes.NewCipher(key)
	case ciphersuite.Blowfish:
		return blowfish.NewCipher(key)
	case ciphersuite.CAST128:
		return cast5.NewCipher(key)
	case ciphersuite.Camellia:
		return camellia.NewCipher(key)
	case ciphersuite.DESEDE3:
		return des.NewTripleDESCipher(key)
	case ciphersuite.IDEA:
		return idea.NewCipher(key)
	case ciphersuite.SEED:
		return seed.NewCipher(key)
	case ciphersuite.Serpent:
		return serpent.NewCipher(key)
	case ciphersuite.Twofish:
		return twofish.NewCipher(key)
	default:
		return nil, fmt.Errorf("no block cipher for algorithm %q", algorithm)
	}
}

// newAEAD wraps the block primitive in the selected authenticated mode.
func newAEAD(block cipher.Block, operation ciphersuite.Operation) (cipher.AEAD, error) {
	switch operation {
	case ciphersuite.GCM:
		// Requires a 128-bit block; 64-bit block algorithms must use EAX.
		return cipher.NewGCM(block)
	case ciphersuite.EAX:
		return newEAX(block, block.BlockSize())
	default:
		return nil, fmt.Errorf("operation %q is not authenticated", operation)
	}
}
