package rsa

import (
	"github.com/kochabx/cipherkit/errors"
)

// Configuration errors. They are returned by New, in the order the checks
// run, and stop the engine from being created. The underlying parse error,
// if any, is attached as the cause.
var (
	// ErrPasswordLength indicates a missing password or one that is not
	// exactly PasswordLength bytes long
	ErrPasswordLength = errors.Internal("rsa: key is not set or length is different than %d", PasswordLength)

	// ErrPublicKeyMissing indicates that no public key was configured
	ErrPublicKeyMissing = errors.Internal("rsa: public key is not set")

	// ErrPublicKeyFormat indicates that the public key is not PEM encoded RSA public key material
	ErrPublicKeyFormat = errors.Internal("rsa: public key is incorrectly formatted")

	// ErrPublicKeyInvalid indicates that the public key does not re-encode to a PKIX public key
	ErrPublicKeyInvalid = errors.Internal("rsa: public key is not valid")

	// ErrPrivateKeyMissing indicates that no private key was configured
	ErrPrivateKeyMissing = errors.Internal("rsa: private key is not set")

	// ErrPrivateKeyFormat indicates that the private key could not be decrypted or parsed
	ErrPrivateKeyFormat = errors.Internal("rsa: private key is incorrectly formatted")

	// ErrPrivateKeyInvalid indicates that the public half of the private key is not a valid public key
	ErrPrivateKeyInvalid = errors.Internal("rsa: private key is not valid")

	// ErrKeyMismatch indicates that the public key does not belong to the private key
	ErrKeyMismatch = errors.Internal("rsa: public and private key don't match")
)

// Operation errors. Decode and Sign return these values without a cause so
// that callers cannot tell apart the reason of a failure.
var (
	// ErrEncodeFailed indicates that a message could not be sealed
	ErrEncodeFailed = errors.Internal("rsa: encode failed")

	// ErrDecodeFailed indicates a malformed, forged or undecryptable envelope
	ErrDecodeFailed = errors.BadRequest("rsa: decode failed")

	// ErrSignFailed indicates that a signature could not be produced
	ErrSignFailed = errors.Internal("rsa: sign failed")
)

// Key file errors
var (
	// ErrInvalidKeySize indicates a modulus size below MinKeyBits
	ErrInvalidKeySize = errors.BadRequest("rsa: key size must be at least %d bits", MinKeyBits)

	// ErrKeyFileRead indicates a failure to read or write a key file
	ErrKeyFileRead = errors.Internal("rsa: failed to access key file")
)

var configErrors = []error{
	ErrPasswordLength,
	ErrPublicKeyMissing,
	ErrPublicKeyFormat,
	ErrPublicKeyInvalid,
	ErrPrivateKeyMissing,
	ErrPrivateKeyFormat,
	ErrPrivateKeyInvalid,
	ErrKeyMismatch,
}

// IsConfigError reports whether err was produced by one of the
// construction-time key material checks.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
