package ciphersuite

import "strings"

// Algorithm identifies a supported symmetric cipher algorithm.
type Algorithm int

// Supported algorithms. UnknownAlgorithm sorts last and is never a valid
// target for cryptographic operations.
const (
	AES Algorithm = iota
	Blowfish
	CAST128
	Camellia
	DESEDE3
	IDEA
	SEED
	Serpent
	Twofish
	UnknownAlgorithm
)

// AlgorithmNames holds the canonical algorithm names, indexed by Algorithm.
var AlgorithmNames = [...]string{
	"AES",
	"Blowfish",
	"CAST-128",
	"Camellia",
	"DES-EDE3",
	"IDEA",
	"SEED",
	"Serpent",
	"Twofish",
}

// String returns the canonical name, or the empty string for UnknownAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(AlgorithmNames) {
		return ""
	}
	return AlgorithmNames[a]
}

// ParseAlgorithm resolves a name against the canonical list, case-insensitively
// and without aliasing. Unrecognized names resolve to UnknownAlgorithm.
func ParseAlgorithm(name string) Algorithm {
	for i, canonical := range AlgorithmNames {
		if strings.EqualFold(canonical, name) {
			return Algorithm(i)
		}
	}
	return UnknownAlgorithm
}

// keyLengthRule describes the valid key lengths of one algorithm: either a
// discrete ascending set of sizes, or a continuous [min, max] range.
type keyLengthRule struct {
	sizes    []int
	min, max int
}

var keyLengthRules = map[Algorithm]keyLengthRule{
	AES:      {sizes: []int{16, 24, 32}},
	Blowfish: {min: 4, max: 56},
	CAST128:  {sizes: []int{16}},
	Camellia: {sizes: []int{16, 24, 32}},
	DESEDE3:  {sizes: []int{24}},
	IDEA:     {sizes: []int{16}},
	SEED:     {sizes: []int{16}},
	Serpent:  {sizes: []int{16, 24, 32}},
	Twofish:  {sizes: []int{16, 24, 32}},
}

// ValidateKeyLength returns the valid key length in bytes nearest to the
// requested one. Fixed-length algorithms ignore the request, discrete sets pick
// the closest size with ties broken toward the larger one, and ranged
// algorithms clamp the request into range. UnknownAlgorithm yields 0.
func (a Algorithm) ValidateKeyLength(requested int) int {
	rule, ok := keyLengthRules[a]
	if !ok {
		return 0
	}
	if rule.sizes == nil {
		if requested < rule.min {
			return rule.min
		}
		if requested > rule.max {
			return rule.max
		}
		return requested
	}
	best := rule.sizes[0]
	for _, size := range rule.sizes[1:] {
		if distance(size, requested) <= distance(best, requested) {
			best = size
		}
	}
	return best
}

// BlockSize returns the cipher block size in bytes, or 0 for UnknownAlgorithm.
func (a Algorithm) BlockSize() int {
	switch a {
	case Blowfish, CAST128, DESEDE3, IDEA:
		return 8
	case AES, Camellia, SEED, Serpent, Twofish:
		return 16
	default:
		return 0
	}
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
