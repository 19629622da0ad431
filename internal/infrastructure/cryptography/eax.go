package cryptography

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"fmt"
)

// eaxAEAD exposes the EAX mode of operation behind the cipher.AEAD interface,
// so the engine drives it exactly like GCM. EAX composes the underlying block
// cipher in CTR mode with OMAC1 (CMAC) and works with any block size, which
// GCM does not; the tag is one full block.
type eaxAEAD struct {
	block     cipher.Block
	nonceSize int
}

var _ cipher.AEAD = (*eaxAEAD)(nil)

var errEAXOpen = errors.New("eax: message authentication failed")

func newEAX(block cipher.Block, nonceSize int) (cipher.AEAD, error) {
	if nonceSize <= 0 {
		return nil, fmt.Errorf("eax: invalid nonce size %d", nonceSize)
	}
	return &eaxAEAD{block: block, nonceSize: nonceSize}, nil
}

func (e *eaxAEAD) NonceSize() int {
	return e.nonceSize
}

func (e *eaxAEAD) Overhead() int {
	return e.block.BlockSize()
}

// Seal encrypts plaintext and appends ciphertext plus the full-block tag to dst.
func (e *eaxAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != e.nonceSize {
		panic("eax: incorrect nonce length given to Seal")
	}
	n := e.omac(0, nonce)
	h := e.omac(1, additionalData)

	c := make([]byte, len(plaintext))
	cipher.NewCTR(e.block, n).XORKeyStream(c, plaintext)

	t := e.omac(2, c)
	tag := make([]byte, e.block.BlockSize())
	for i := range tag {
		tag[i] = n[i] ^ t[i] ^ h[i]
	}

	out := append(dst, c...)
	return append(out, tag...)
}

// Open verifies the trailing tag and, only on success, decrypts and appends
// the plaintext to dst.
func (e *eaxAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	blockSize := e.block.BlockSize()
	if len(nonce) != e.nonceSize {
		return nil, fmt.Errorf("eax: incorrect nonce length %d", len(nonce))
	}
	if len(ciphertext) < blockSize {
		return nil, errEAXOpen
	}
	c, tag := ciphertext[:len(ciphertext)-blockSize], ciphertext[len(ciphertext)-blockSize:]

	n := e.omac(0, nonce)
	h := e.omac(1, additionalData)
	t := e.omac(2, c)
	expected := make([]byte, blockSize)
	for i := range expected {
		expected[i] = n[i] ^ t[i] ^ h[i]
	}
	if subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, errEAXOpen
	}

	plain := make([]byte, len(c))
	cipher.NewCTR(e.block, n).XORKeyStream(plain, c)
	return append(dst, plain...), nil
}

// omac computes OMAC1 over the message domain-separated by the tweak, as
// required by the EAX composition.
func (e *eaxAEAD) omac(tweak byte, message []byte) []byte {
	blockSize := e.block.BlockSize()
	prefixed := make([]byte, blockSize, blockSize+len(message))
	prefixed[blockSize-1] = tweak
	return e.cmac(append(prefixed, message...))
}

// cmac is OMAC1 (NIST SP 800-38B) over the engine's block cipher.
func (e *eaxAEAD) cmac(message []byte) []byte {
	blockSize := e.block.BlockSize()
	k1, k2 := e.subkeys()

	fullFinal := len(message) > 0 && len(message)%blockSize == 0
	numBlocks := len(message)/blockSize + 1
	if fullFinal {
		numBlocks = len(message) / blockSize
	}

	mac := make([]byte, blockSize)
	for i := 0; i < numBlocks-1; i++ {
		xorInto(mac, message[i*blockSize:(i+1)*blockSize])
		e.block.Encrypt(mac, mac)
	}

	final := make([]byte, blockSize)
	rest := message[(numBlocks-1)*blockSize:]
	copy(final, rest)
	if fullFinal {
		xorInto(final, k1)
	} else {
		final[len(rest)] = 0x80
		xorInto(final, k2)
	}
	xorInto(mac, final)
	e.block.Encrypt(mac, mac)
	return mac
}

func (e *eaxAEAD) subkeys() (k1, k2 []byte) {
	l := make([]byte, e.block.BlockSize())
	e.block.Encrypt(l, l)
	k1 = gfDouble(l)
	k2 = gfDouble(k1)
	return k1, k2
}

// gfDouble doubles a value in GF(2^64) or GF(2^128) depending on block size.
func gfDouble(v []byte) []byte {
	out := make([]byte, len(v))
	var carry byte
	for i := len(v) - 1; i >= 0; i-- {
		out[i] = v[i]<<1 | carry
		carry = v[i] >> 7
	}
	if carry != 0 {
		if len(v) == 8 {
			out[len(out)-1] ^= 0x1b
		} else {
			out[len(out)-1] ^= 0x87
		}
	}
	return out
}

func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}
