//go:build unit
// +build unit

package secmem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	Zero(data)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
}

func TestZeroAll(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3, 4, 5}
	ZeroAll(a, b)
	assert.Equal(t, []byte{0, 0}, a)
	assert.Equal(t, []byte{0, 0, 0}, b)
}

func TestBufferWipe(t *testing.T) {
	backing := []byte("sensitive material")
	buffer := NewBuffer(backing)
	assert.Equal(t, len(backing), buffer.Len())
	assert.Equal(t, "sensitive material", string(buffer.Bytes()))

	buffer.Wipe()
	assert.Equal(t, 0, buffer.Len())
	assert.Equal(t, bytes.Repeat([]byte{0}, 18), backing)
}
