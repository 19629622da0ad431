package ciphersuite

import "strings"

// Operation identifies a block-cipher mode of operation.
type Operation int

// Supported operations. EAX and GCM are authenticated modes; the rest require
// an externally computed MAC. UnknownOperation sorts last and is never a valid
// target for cryptographic operations.
const (
	CBC Operation = iota
	CFB
	CTR
	EAX
	ECB
	GCM
	OFB
	UnknownOperation
)

// OperationCodes holds the canonical operation codes, indexed by Operation.
var OperationCodes = [...]string{
	"CBC",
	"CFB",
	"CTR",
	"EAX",
	"ECB",
	"GCM",
	"OFB",
}

// String returns the canonical code, or the empty string for UnknownOperation.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(OperationCodes) {
		return ""
	}
	return OperationCodes[op]
}

// ParseOperation resolves a code against the canonical list, case-insensitively
// and without aliasing. Unrecognized codes resolve to UnknownOperation.
func ParseOperation(code string) Operation {
	for i, canonical := range OperationCodes {
		if strings.EqualFold(canonical, code) {
			return Operation(i)
		}
	}
	return UnknownOperation
}

// Authenticated reports whether the operation produces an integral
// authentication tag as part of the transform.
func (op Operation) Authenticated() bool {
	return op == EAX || op == GCM
}

// IVSize returns the initialization vector length in bytes for a cipher with
// the given block size. ECB takes no IV and GCM uses the standard 96-bit nonce;
// every other operation uses a full block.
func (op Operation) IVSize(blockSize int) int {
	switch op {
	case ECB:
		return 0
	case GCM:
		return 12
	case CBC, CFB, CTR, EAX, OFB:
		return blockSize
	default:
		return 0
	}
}
