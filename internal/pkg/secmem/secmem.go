// Package secmem provides wipeable containers for key material and plaintext.
package secmem

import "runtime"

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
// Uses runtime.KeepAlive to keep the write from being optimized away.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroAll zeros multiple byte slices.
func ZeroAll(slices ...[]byte) {
	for _, s := range slices {
		Zero(s)
	}
}

// Buffer is a byte container that can be wiped in place once its contents are
// no longer needed.
type Buffer struct {
	data []byte
}

// NewBuffer wraps data in a Buffer. The buffer takes ownership; the caller
// must not retain the slice.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes held.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Wipe zeros the backing memory. The buffer remains usable but empty.
func (b *Buffer) Wipe() {
	Zero(b.data)
	b.data = b.data[:0]
}
