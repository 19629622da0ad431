// Package ciphersuite defines the symmetric cipher suite entity of the PBES2
// envelope (RFC 2898 section 6.2): the algorithm and operation registries, the
// configurable Suite with its initialization vector and authentication value,
// the key-length validation policy and the contracts the encryption engine and
// key-derivation collaborators implement.
package ciphersuite
