// Package hasher provides digest preprocessors for identicon generation.
//
// A Hasher turns an arbitrary input string (typically an email or IP
// literal) into a reproducible lowercase hex digest. The hash function is
// injected data, not a subtype: NewMD5 and NewSHA1 differ only in the
// constructor they pass to New. Each hasher declares its entropy — the
// digest bit-length — once at construction, for the orchestrator's entropy
// gate to compare against generator requirements.
package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Hasher hashes input strings into hex digests. Immutable after
// construction; safe for concurrent use as long as the injected hash
// constructor returns a fresh hash.Hash per call (the crypto package
// constructors all do).
type Hasher struct {
	newHash func() hash.Hash
	enc     encoding.Encoding // nil means raw UTF-8 bytes
	encName string
	encErr  error
	entropy int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithEncoding sets the text encoding, by IANA name, used to turn input
// strings into bytes before hashing. The default is "utf-8". Unknown names
// are reported by Process, not here.
func WithEncoding(name string) Option {
	return func(h *Hasher) { h.encName = name }
}

// New creates a Hasher around the given hash constructor. The declared
// entropy is derived from a probe digest: hex digest length times 4 bits
// per hex character.
func New(newHash func() hash.Hash, opts ...Option) *Hasher {
	h := &Hasher{
		newHash: newHash,
		encName: "utf-8",
	}
	for _, opt := range opts {
		opt(h)
	}

	probe := newHash()
	probe.Write([]byte("test"))
	h.entropy = len(hex.EncodeToString(probe.Sum(nil))) * 4

	switch h.encName {
	case "utf-8", "utf8", "":
		// Go strings are UTF-8 already.
	default:
		enc, err := ianaindex.IANA.Encoding(h.encName)
		if err != nil || enc == nil {
			h.encErr = fmt.Errorf("unknown text encoding %q", h.encName)
			break
		}
		h.enc = enc
	}

	return h
}

// NewMD5 creates an MD5 hasher (entropy 128).
func NewMD5(opts ...Option) *Hasher {
	return New(md5.New, opts...)
}

// NewSHA1 creates a SHA-1 hasher (entropy 160).
func NewSHA1(opts ...Option) *Hasher {
	return New(sha1.New, opts...)
}

// Entropy returns the digest bit-length this hasher supplies.
func (h *Hasher) Entropy() int { return h.entropy }

// Process encodes data with the configured text encoding, hashes it and
// returns the lowercase hex digest. Encoding failures — an unresolvable
// encoding name, or input the target charset cannot represent — are
// returned unchanged in meaning, never masked.
func (h *Hasher) Process(data string) (string, error) {
	if h.encErr != nil {
		return "", h.encErr
	}

	b := []byte(data)
	if h.enc != nil {
		var err error
		b, err = h.enc.NewEncoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("encode input as %s: %w", h.encName, err)
		}
	}

	sum := h.newHash()
	sum.Write(b)
	return hex.EncodeToString(sum.Sum(nil)), nil
}
