package rsa

import (
	"crypto"
	"crypto/sha256"
	"crypto/sha512"
)

// Hash identifies the digest used for envelope signatures.
type Hash int

const (
	SHA224 Hash = iota + 1
	SHA256
	SHA384
	SHA512
)

// DefaultHash is used when the configuration names no hash, or one that is
// not supported.
const DefaultHash = SHA512

var hashNames = map[string]Hash{
	"sha224": SHA224,
	"sha256": SHA256,
	"sha384": SHA384,
	"sha512": SHA512,
}

// ParseHash looks up a hash by its configuration name (sha224, sha256,
// sha384 or sha512). Matching is exact.
func ParseHash(name string) (Hash, bool) {
	h, ok := hashNames[name]
	return h, ok
}

// Hashes returns the configuration names of all supported hashes.
func Hashes() []string {
	return []string{"sha224", "sha256", "sha384", "sha512"}
}

// String returns the configuration name of the hash.
func (h Hash) String() string {
	switch h {
	case SHA224:
		return "sha224"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// CryptoHash returns the crypto.Hash identifier used by crypto/rsa.
func (h Hash) CryptoHash() crypto.Hash {
	switch h {
	case SHA224:
		return crypto.SHA224
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	default:
		return 0
	}
}

// sum returns the digest of message.
func (h Hash) sum(message []byte) []byte {
	switch h {
	case SHA224:
		d := sha256.Sum224(message)
		return d[:]
	case SHA256:
		d := sha256.Sum256(message)
		return d[:]
	case SHA384:
		d := sha512.Sum384(message)
		return d[:]
	default:
		d := sha512.Sum512(message)
		return d[:]
	}
}

// resolveHash maps a configured name to a Hash. Empty and unknown names
// fall back to DefaultHash; the second result reports an unknown name.
func resolveHash(name string) (Hash, bool) {
	if h, ok := ParseHash(name); ok {
		return h, false
	}
	return DefaultHash, name != ""
}
