// Package cryptography implements the envelope processor: it dispatches the
// configured cipher suite to the underlying block primitives and modes, and
// unifies authenticated and MAC-protected operations behind one
// encrypt/decrypt contract.
package cryptography
