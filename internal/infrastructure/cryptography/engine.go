package cryptography

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/cryptobuks1/qrypted/internal/domain/ciphersuite"
	"github.com/cryptobuks1/qrypted/internal/pkg/logger"
	"github.com/cryptobuks1/qrypted/internal/pkg/secmem"
)

// macKeyInfo separates the HMAC key from the encryption key. The MAC key for
// non-authenticated operations is derived from the encryption key with
// HKDF-SHA256 and this info string, so the two keys are never equal.
const macKeyInfo = "qrypted/mac/v1"

// macLen is the HMAC-SHA256 output length in bytes.
const macLen = 32

// envelopeProcessor implements the PBES2 encrypt/decrypt contract for every
// supported algorithm and operation pair.
type envelopeProcessor struct {
	logger logger.Logger
}

// NewEnvelopeProcessor creates and returns a new envelope processor.
func NewEnvelopeProcessor(logger logger.Logger) (ciphersuite.EnvelopeProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &envelopeProcessor{logger: logger}, nil
}

// Encrypt encrypts the plaintext buffer under a key derived by the KeyMaker,
// writing a fresh IV and the authentication value into the suite. The
// plaintext buffer is wiped before returning on every path.
func (p *envelopeProcessor) Encrypt(suite *ciphersuite.Suite, plain *secmem.Buffer, keyMaker ciphersuite.KeyMaker) ([]byte, error) {
	defer plain.Wipe()

	algorithm := suite.Algorithm()
	operation := suite.Operation()
	if algorithm == ciphersuite.UnknownAlgorithm || operation == ciphersuite.UnknownOperation {
		return nil, fmt.Errorf("%w: full name %q", ciphersuite.ErrConfiguration, suite.FullName())
	}

	key, block, err := p.deriveKeyAndCipher(suite, keyMaker)
	if err != nil {
		return nil, err
	}
	defer secmem.Zero(key)

	iv := make([]byte, operation.IVSize(algorithm.BlockSize()))
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("%w: IV generation: %v", ciphersuite.ErrEncrypt, err)
	}
	suite.SetInitialVector(iv)

	if operation.Authenticated() {
		aead, err := newAEAD(block, operation)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ciphersuite.ErrEncrypt, err)
		}
		sealed := aead.Seal(nil, iv, plain.Bytes(), nil)
		split := len(sealed) - aead.Overhead()
		suite.SetAuthentication(sealed[split:])
		p.logger.Info("encrypted ", plain.Len(), " bytes with ", suite.FullName())
		return sealed[:split:split], nil
	}

	crypt, err := runOperation(block, operation, iv, plain.Bytes(), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ciphersuite.ErrEncrypt, err)
	}
	mac, err := computeMAC(key, iv, crypt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ciphersuite.ErrEncrypt, err)
	}
	suite.SetAuthentication(mac)
	p.logger.Info("encrypted ", plain.Len(), " bytes with ", suite.FullName())
	return crypt, nil
}

// Decrypt verifies the suite's authentication value against the ciphertext
// and, only on success, decrypts it. Authenticated operations verify the tag
// inside the primitive; the others verify the HMAC in constant time before
// any decryption happens.
func (p *envelopeProcessor) Decrypt(suite *ciphersuite.Suite, crypt []byte, keyMaker ciphersuite.KeyMaker) (*secmem.Buffer, error) {
	algorithm := suite.Algorithm()
	operation := suite.Operation()
	if algorithm == ciphersuite.UnknownAlgorithm || operation == ciphersuite.UnknownOperation {
		return nil, fmt.Errorf("%w: full name %q", ciphersuite.ErrConfiguration, suite.FullName())
	}

	key, block, err := p.deriveKeyAndCipher(suite, keyMaker)
	if err != nil {
		return nil, err
	}
	defer secmem.Zero(key)

	iv := suite.InitialVector()
	if expected := operation.IVSize(algorithm.BlockSize()); len(iv) != expected {
		return nil, fmt.Errorf("%w: initialization vector length %d, want %d", ciphersuite.ErrDecrypt, len(iv), expected)
	}

	if operation.Authenticated() {
		aead, err := newAEAD(block, operation)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ciphersuite.ErrDecrypt, err)
		}
		tag := suite.Authentication()
		if len(tag) != aead.Overhead() {
			return nil, fmt.Errorf("%w: authentication tag length %d, want %d", ciphersuite.ErrAuthentication, len(tag), aead.Overhead())
		}
		sealed := make([]byte, 0, len(crypt)+len(tag))
		sealed = append(sealed, crypt...)
		sealed = append(sealed, tag...)
		plain, err := aead.Open(nil, iv, sealed, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ciphersuite.ErrAuthentication, err)
		}
		p.logger.Info("decrypted ", len(crypt), " bytes with ", suite.FullName())
		return secmem.NewBuffer(plain), nil
	}

	mac, err := computeMAC(key, iv, crypt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ciphersuite.ErrDecrypt, err)
	}
	if !hmac.Equal(mac, suite.Authentication()) {
		return nil, fmt.Errorf("%w: HMAC mismatch", ciphersuite.ErrAuthentication)
	}
	plain, err := runOperation(block, operation, iv, crypt, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ciphersuite.ErrDecrypt, err)
	}
	p.logger.Info("decrypted ", len(crypt), " bytes with ", suite.FullName())
	return secmem.NewBuffer(plain), nil
}

// deriveKeyAndCipher validates the KeyMaker's preferred key length for the
// suite's algorithm, derives that many bytes of key material and constructs
// the block primitive from it.
func (p *envelopeProcessor) deriveKeyAndCipher(suite *ciphersuite.Suite, keyMaker ciphersuite.KeyMaker) ([]byte, cipher.Block, error) {
	keyLength := suite.ValidateKeyLength(keyMaker.KeyLength())
	key, err := keyMaker.MakeKey(keyLength)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ciphersuite.ErrKeyDerivation, err)
	}
	block, err := newBlockCipher(suite.Algorithm(), key)
	if err != nil {
		secmem.Zero(key)
		return nil, nil, fmt.Errorf("%w: %v", ciphersuite.ErrEncrypt, err)
	}
	return key, block, nil
}

// runOperation applies a non-authenticated mode in the given direction. CBC
// and ECB carry PKCS#7 padding; CFB, OFB and CTR are length-preserving.
func runOperation(block cipher.Block, operation ciphersuite.Operation, iv, input []byte, encrypt bool) ([]byte, error) {
	blockSize := block.BlockSize()
	switch operation {
	case ciphersuite.CBC:
		if encrypt {
			padded := pkcs7Pad(input, blockSize)
			out := make([]byte, len(padded))
			cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
			return out, nil
		}
		if len(input) == 0 || len(input)%blockSize != 0 {
			return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size %d", len(input), blockSize)
		}
		out := make([]byte, len(input))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, input)
		return pkcs7Unpad(out, blockSize)
	case ciphersuite.ECB:
		if encrypt {
			padded := pkcs7Pad(input, blockSize)
			out := make([]byte, len(padded))
			for i := 0; i < len(padded); i += blockSize {
				block.Encrypt(out[i:i+blockSize], padded[i:i+blockSize])
			}
			return out, nil
		}
		if len(input) == 0 || len(input)%blockSize != 0 {
			return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size %d", len(input), blockSize)
		}
		out := make([]byte, len(input))
		for i := 0; i < len(input); i += blockSize {
			block.Decrypt(out[i:i+blockSize], input[i:i+blockSize])
		}
		return pkcs7Unpad(out, blockSize)
	case ciphersuite.CFB:
		out := make([]byte, len(input))
		if encrypt {
			cipher.NewCFBEncrypter(block, iv).XORKeyStream(out, input)
		} else {
			cipher.NewCFBDecrypter(block, iv).XORKeyStream(out, input)
		}
		return out, nil
	case ciphersuite.OFB:
		out := make([]byte, len(input))
		cipher.NewOFB(block, iv).XORKeyStream(out, input)
		return out, nil
	case ciphersuite.CTR:
		out := make([]byte, len(input))
		cipher.NewCTR(block, iv).XORKeyStream(out, input)
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported operation %q", operation)
	}
}

// computeMAC authenticates iv||ciphertext with HMAC-SHA256 under a MAC key
// derived from the encryption key.
func computeMAC(key, iv, crypt []byte) ([]byte, error) {
	macKey := make([]byte, macLen)
	reader := hkdf.New(sha256.New, key, nil, []byte(macKeyInfo))
	if _, err := io.ReadFull(reader, macKey); err != nil {
		return nil, fmt.Errorf("MAC key derivation failed: %w", err)
	}
	defer secmem.Zero(macKey)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(crypt)
	return mac.Sum(nil), nil
}
