package checksum

import (
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Algorithm is a content digest algorithm.
type Algorithm string

const (
	AlgorithmMD5    Algorithm = "md5"
	AlgorithmBLAKE3 Algorithm = "blake3"
	AlgorithmXXH64  Algorithm = "xxh64"
	AlgorithmSHA256 Algorithm = "sha256"

	// DefaultAlgorithm is used for declared checksums without a prefix.
	DefaultAlgorithm = AlgorithmMD5

	prefixSeparator = ":"
)

// ParseAlgorithm returns the [Algorithm] for a (case-insensitive) name.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, err := algo.newHash(); err != nil {
		return "", err
	}

	return algo, nil
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case AlgorithmMD5:
		return md5.New(), nil //nolint:gosec
	case AlgorithmBLAKE3:
		return blake3.New(), nil
	case AlgorithmXXH64:
		return xxhash.New(), nil
	case AlgorithmSHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// splitDeclared separates an "<algorithm>:" prefix from a declared checksum.
// Values without a known prefix are returned with an empty [Algorithm].
func splitDeclared(declared string) (Algorithm, bool) {
	prefix, _, found := strings.Cut(declared, prefixSeparator)
	if !found {
		return "", false
	}

	algo := Algorithm(prefix)
	if _, err := algo.newHash(); err != nil {
		return "", false
	}

	return algo, true
}
