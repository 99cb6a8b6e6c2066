// Package hmacdrbg implements the HMAC_DRBG deterministic random bit generator from [NIST SP 800-90A], Rev. 1,
// Section 10.1.2.
//
// A Generator expands caller-supplied seed material (entropy, a nonce, and an optional personalization string) into a
// reproducible pseudo-random byte stream. It is intended for use cases like deterministic per-message signature nonces,
// where the caller needs high-quality randomness which is a pure function of secret inputs. It does not collect
// entropy; the unpredictability of its output is bounded by the unpredictability of its seed material.
//
// A Generator is a sequential state machine and is not safe for concurrent use.
//
// [NIST SP 800-90A]: https://csrc.nist.gov/pubs/sp/800/90/a/r1/final
package hmacdrbg

import (
	"errors"
	"io"

	"github.com/codahale/hmacdrbg/internal/mem"
)

// ReseedInterval is the default number of Generate calls permitted before a Generator requires fresh entropy via
// Reseed.
const ReseedInterval = 1 << 48

var (
	// ErrUnsupportedHash is returned when a Generator is constructed with an unknown hash variant, or with a custom
	// KeyedHash and no minimum entropy.
	ErrUnsupportedHash = errors.New("hmacdrbg: unsupported hash")

	// ErrReseedRequired is returned by Generate once the reseed interval is exhausted. The generator's state is
	// unchanged; supply fresh entropy via Reseed and retry.
	ErrReseedRequired = errors.New("hmacdrbg: reseed required")

	// ErrInsufficientEntropy is returned by Reseed when the supplied entropy is shorter than the generator's minimum.
	// The generator's state is unchanged.
	ErrInsufficientEntropy = errors.New("hmacdrbg: insufficient entropy")
)

// A Generator is an instantiated HMAC_DRBG. It holds secret key material; use Wipe to discard it.
type Generator struct {
	mac            KeyedHash
	k, v           []byte
	minEntropy     int
	reseedInterval uint64
	reseedCounter  uint64 // remaining Generate calls
}

// Options are the optional parameters of NewWithOptions. The zero value of each field selects the default.
type Options struct {
	// KeyedHash is a caller-supplied keyed-hash provider, overriding the Hash variant. A custom provider has no known
	// minimum entropy; MinEntropy must be set alongside it.
	KeyedHash KeyedHash

	// MinEntropy overrides the variant's default minimum entropy length, in bytes, enforced by Reseed.
	MinEntropy int

	// ReseedInterval overrides the default reseed interval.
	ReseedInterval uint64
}

// New returns a Generator using the given hash variant, instantiated with the given entropy, nonce, and optional
// personalization string.
//
// The entropy length is not checked here; unlike Reseed, instantiation accepts arbitrarily short entropy, per the
// source construction. Callers are responsible for seeding with at least the variant's minimum entropy.
func New(h Hash, entropy, nonce, personalization []byte) (*Generator, error) {
	return NewWithOptions(h, entropy, nonce, personalization, Options{})
}

// NewFromSigningKey returns a Generator for deriving a deterministic per-message signature nonce: the private key is
// the entropy input and the message digest is the instantiation nonce, as in RFC 6979. The derived stream is a pure
// function of (key, digest), so a signer using it never reuses a nonce across distinct messages.
func NewFromSigningKey(h Hash, key, digest []byte) (*Generator, error) {
	return New(h, key, digest, nil)
}

// NewWithOptions is New with explicit optional parameters.
func NewWithOptions(h Hash, entropy, nonce, personalization []byte, opts Options) (*Generator, error) {
	mac, minEntropy := opts.KeyedHash, opts.MinEntropy
	if mac == nil {
		v, ok := hashes[h]
		if !ok {
			return nil, ErrUnsupportedHash
		}
		mac = NewHMAC(v.alg)
		if minEntropy == 0 {
			minEntropy = v.minEntropy
		}
	} else if minEntropy == 0 {
		return nil, ErrUnsupportedHash
	}

	interval := opts.ReseedInterval
	if interval == 0 {
		interval = ReseedInterval
	}

	g := &Generator{
		mac:            mac,
		k:              make([]byte, mac.Size()),
		v:              make([]byte, mac.Size()),
		minEntropy:     minEntropy,
		reseedInterval: interval,
		reseedCounter:  interval,
	}
	for i := range g.v {
		g.v[i] = 0x01
	}

	// The seed is always a present input, even if every component is empty.
	seed := make([]byte, 0, len(entropy)+len(nonce)+len(personalization))
	seed = append(seed, entropy...)
	seed = append(seed, nonce...)
	seed = append(seed, personalization...)
	g.update(seed)
	mem.Wipe(seed)

	return g, nil
}

// Size returns the digest length of the generator's keyed hash, in bytes.
func (g *Generator) Size() int {
	return g.mac.Size()
}

// Generate appends n bytes of output to dst and returns the resulting slice, mixing in the optional additional data.
// A nil additional slice is an absent input; a non-nil empty slice is mixed in as a present, zero-length input and
// produces a different stream.
//
// Returns ErrReseedRequired, leaving the state unchanged, once the reseed interval is exhausted.
func (g *Generator) Generate(dst []byte, n int, additional []byte) ([]byte, error) {
	if g.reseedCounter == 0 {
		return nil, ErrReseedRequired
	}

	if additional != nil {
		g.update(additional)
	}

	ret, out := mem.SliceForAppend(dst, n)
	for len(out) > 0 {
		v := g.mac.MAC(nil, g.k, g.v)
		mem.Wipe(g.v)
		g.v = v
		out = out[copy(out, v):]
	}

	g.update(additional)
	g.reseedCounter--
	return ret, nil
}

// Reseed mixes fresh entropy and optional additional data into the generator and resets the reseed interval.
//
// Returns ErrInsufficientEntropy, leaving the state unchanged, if the entropy is shorter than the generator's minimum.
func (g *Generator) Reseed(entropy, additional []byte) error {
	if len(entropy) < g.minEntropy {
		return ErrInsufficientEntropy
	}

	// Once the entropy check has passed, the counter is reset on every exit path.
	defer func() { g.reseedCounter = g.reseedInterval }()

	seed := make([]byte, 0, len(entropy)+len(additional))
	seed = append(seed, entropy...)
	seed = append(seed, additional...)
	g.update(seed)
	mem.Wipe(seed)

	return nil
}

// Read fills p with generated output. It implements io.Reader over Generate with no additional data, and fails with
// ErrReseedRequired once the reseed interval is exhausted.
func (g *Generator) Read(p []byte) (int, error) {
	if _, err := g.Generate(p[:0], len(p), nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Wipe overwrites the generator's key material with zeros and exhausts its reseed interval. The generator is unusable
// afterward.
func (g *Generator) Wipe() {
	mem.Wipe(g.k)
	mem.Wipe(g.v)
	g.reseedCounter = 0
}

// update is the HMAC_DRBG update function (SP 800-90A, 10.1.2.2). A nil providedData is an absent input and runs only
// the first K/V round; a non-nil empty slice is a present input and runs both rounds. The two produce different
// states, and collapsing them breaks compatibility with the standard.
func (g *Generator) update(providedData []byte) {
	k := g.mac.MAC(nil, g.k, g.v, []byte{0x00}, providedData)
	v := g.mac.MAC(nil, k, g.v)
	g.setState(k, v)

	if providedData == nil {
		return
	}

	k = g.mac.MAC(nil, g.k, g.v, []byte{0x01}, providedData)
	v = g.mac.MAC(nil, k, g.v)
	g.setState(k, v)
}

func (g *Generator) setState(k, v []byte) {
	mem.Wipe(g.k)
	mem.Wipe(g.v)
	g.k, g.v = k, v
}

var _ io.Reader = (*Generator)(nil)
