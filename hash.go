package hmacdrbg

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha3"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// A KeyedHash computes fixed-length keyed digests of messages. The generator
// uses it purely as a pseudo-random function, never for authentication.
//
// Implementations must be stateless: every MAC call is one complete,
// independent computation with no state retained between calls.
type KeyedHash interface {
	// Size returns the digest length in bytes.
	Size() int

	// MAC appends the keyed digest of the concatenated message parts to dst
	// and returns the resulting slice. dst must not alias key or message.
	MAC(dst, key []byte, message ...[]byte) []byte
}

// NewHMAC returns a KeyedHash which computes HMAC digests using the given
// hash algorithm.
func NewHMAC(alg func() hash.Hash) KeyedHash {
	return &hmacHash{alg: alg, size: alg().Size()}
}

type hmacHash struct {
	alg  func() hash.Hash
	size int
}

func (h *hmacHash) Size() int {
	return h.size
}

func (h *hmacHash) MAC(dst, key []byte, message ...[]byte) []byte {
	mac := hmac.New(h.alg, key)
	for _, m := range message {
		_, _ = mac.Write(m)
	}
	return mac.Sum(dst)
}

var _ KeyedHash = (*hmacHash)(nil)

// A Hash identifies a keyed-hash variant with a known digest length and
// default minimum entropy.
type Hash int

const (
	// SHA256 selects HMAC-SHA-256, the standard variant.
	SHA256 Hash = 1 + iota
	// SHA384 selects HMAC-SHA-384.
	SHA384
	// SHA512 selects HMAC-SHA-512.
	SHA512
	// SHA3_256 selects HMAC-SHA3-256.
	SHA3_256
	// BLAKE2b256 selects HMAC-BLAKE2b-256.
	BLAKE2b256
)

type hashInfo struct {
	name       string
	alg        func() hash.Hash
	minEntropy int
}

// The default minimum entropy is 3/4 of the digest length, matching the
// 24-byte floor of the standard HMAC-SHA-256 variant.
var hashes = map[Hash]hashInfo{
	SHA256:     {"HMAC-SHA-256", sha256.New, 24},
	SHA384:     {"HMAC-SHA-384", sha512.New384, 36},
	SHA512:     {"HMAC-SHA-512", sha512.New, 48},
	SHA3_256:   {"HMAC-SHA3-256", func() hash.Hash { return sha3.New256() }, 24},
	BLAKE2b256: {"HMAC-BLAKE2b-256", newBLAKE2b256, 24},
}

func newBLAKE2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the name of the hash variant.
func (h Hash) String() string {
	if v, ok := hashes[h]; ok {
		return v.name
	}
	return fmt.Sprintf("Hash(%d)", int(h))
}

// ParseHash returns the Hash with the given name (e.g. "sha256", "sha3-256",
// "blake2b-256"), or ErrUnsupportedHash if the name is unknown.
func ParseHash(s string) (Hash, error) {
	switch s {
	case "sha256":
		return SHA256, nil
	case "sha384":
		return SHA384, nil
	case "sha512":
		return SHA512, nil
	case "sha3-256":
		return SHA3_256, nil
	case "blake2b-256":
		return BLAKE2b256, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedHash, s)
	}
}
