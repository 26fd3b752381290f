package rsa

import (
	"crypto/rsa"
	"crypto/sha1"
	"fmt"

	"github.com/kochabx/cipherkit/log"
)

// Engine seals and opens envelopes with a validated RSA key pair.
//
// An Engine is immutable once New returns and is safe for concurrent use by
// multiple goroutines.
type Engine struct {
	privateKey   *rsa.PrivateKey
	publicKey    *rsa.PublicKey
	publicKeyPEM string
	hash         Hash
	logger       *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by the engine. Defaults to log.G.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New validates cfg and returns a ready Engine.
//
// The checks run in a fixed order and the first failure is returned:
//  1. password is exactly PasswordLength bytes (ErrPasswordLength)
//  2. public key is set (ErrPublicKeyMissing)
//  3. public key parses (ErrPublicKeyFormat) and re-encodes as PKIX (ErrPublicKeyInvalid)
//  4. private key is set (ErrPrivateKeyMissing)
//  5. private key decrypts (ErrPrivateKeyFormat) and its public half re-encodes (ErrPrivateKeyInvalid)
//  6. both public keys are identical (ErrKeyMismatch)
//
// An unsupported cfg.Hash is not an error: the engine falls back to
// DefaultHash.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: log.G,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.load(cfg); err != nil {
		e.logger.Error().Err(err).Msg("rsa: invalid key material")
		return nil, err
	}

	e.logger.Info().
		Int("bits", e.publicKey.N.BitLen()).
		Str("hash", e.hash.String()).
		Msg("rsa: engine ready")

	return e, nil
}

// load runs the key material checks and fills in e.
func (e *Engine) load(cfg Config) error {
	if len(cfg.Password) != PasswordLength {
		return ErrPasswordLength
	}

	if cfg.Public == "" {
		return ErrPublicKeyMissing
	}
	publicKey, err := parsePublicKey(cfg.Public)
	if err != nil {
		return ErrPublicKeyFormat.WithCause(err)
	}
	publicPEM, err := marshalPublicKeyPEM(publicKey)
	if err != nil {
		return ErrPublicKeyInvalid.WithCause(err)
	}

	if cfg.Private == "" {
		return ErrPrivateKeyMissing
	}
	privateKey, err := parsePrivateKey(cfg.Private, cfg.Password)
	if err != nil {
		return ErrPrivateKeyFormat.WithCause(err)
	}
	if err := privateKey.Validate(); err != nil {
		return ErrPrivateKeyFormat.WithCause(err)
	}
	privatePublicPEM, err := marshalPublicKeyPEM(&privateKey.PublicKey)
	if err != nil {
		return ErrPrivateKeyInvalid.WithCause(err)
	}

	if publicPEM != privatePublicPEM {
		return ErrKeyMismatch
	}

	hash, unknown := resolveHash(cfg.Hash)
	if unknown {
		e.logger.Debug().
			Str("hash", cfg.Hash).
			Str("fallback", hash.String()).
			Msg("rsa: unsupported hash, using default")
	}

	privateKey.Precompute()

	e.privateKey = privateKey
	e.publicKey = publicKey
	e.publicKeyPEM = publicPEM
	e.hash = hash
	return nil
}

// Hash returns the signature hash in use.
func (e *Engine) Hash() Hash {
	return e.hash
}

// PublicKeyPEM returns the PKIX PEM text of the engine's public key.
func (e *Engine) PublicKeyPEM() string {
	return e.publicKeyPEM
}

// MaxMessageSize returns the largest message Encode accepts, which is the
// modulus size minus the OAEP overhead.
func (e *Engine) MaxMessageSize() int {
	return e.publicKey.Size() - 2*sha1.Size - 2
}

// String implements fmt.Stringer without exposing key material.
func (e *Engine) String() string {
	return fmt.Sprintf("rsa.Engine{bits: %d, hash: %s}", e.publicKey.N.BitLen(), e.hash)
}
