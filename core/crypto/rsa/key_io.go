package rsa

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/kochabx/cipherkit/core/tag"
)

// KeyOption contains options for key generation and file I/O.
type KeyOption struct {
	Dirpath            string `json:"dirpath" default:"."`
	PrivateKeyFilename string `json:"private_key_filename" default:"private.pem"`
	PublicKeyFilename  string `json:"public_key_filename" default:"public.pem"`
	Bits               int    `json:"bits" default:"2048"`
	Hash               string `json:"hash" default:"sha512"`
}

// WithDirpath sets the directory path for key file operations.
func WithDirpath(dirpath string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Dirpath = dirpath
	}
}

// WithPrivateKeyFilename sets the filename for the private key.
func WithPrivateKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PrivateKeyFilename = filename
	}
}

// WithPublicKeyFilename sets the filename for the public key.
func WithPublicKeyFilename(filename string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.PublicKeyFilename = filename
	}
}

// WithBits sets the modulus size of generated keys.
func WithBits(bits int) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Bits = bits
	}
}

// WithHash sets the hash recorded in generated or loaded configs.
func WithHash(hash string) func(*KeyOption) {
	return func(o *KeyOption) {
		o.Hash = hash
	}
}

func newKeyOption(opts []func(*KeyOption)) (*KeyOption, error) {
	option := &KeyOption{}
	if err := tag.ApplyDefaults(option); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	for _, opt := range opts {
		opt(option)
	}
	return option, nil
}

// GenerateConfig creates a fresh key pair protected by a random password and
// returns it as a Config that New accepts.
//
// The private key is stored as an encrypted PKCS#8 block, the public key as
// a PKIX block.
func GenerateConfig(opts ...func(*KeyOption)) (Config, error) {
	option, err := newKeyOption(opts)
	if err != nil {
		return Config{}, err
	}
	if option.Bits < MinKeyBits {
		return Config{}, ErrInvalidKeySize
	}

	password, err := randomPassword(PasswordLength)
	if err != nil {
		return Config{}, fmt.Errorf("failed to generate password: %w", err)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, option.Bits)
	if err != nil {
		return Config{}, fmt.Errorf("failed to generate key: %w", err)
	}

	privatePEM, err := marshalPrivateKeyPEM(privateKey, password)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal private key: %w", err)
	}

	publicPEM, err := marshalPublicKeyPEM(&privateKey.PublicKey)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal public key: %w", err)
	}

	return Config{
		Password: password,
		Public:   publicPEM,
		Private:  privatePEM,
		Hash:     option.Hash,
	}, nil
}

// SaveConfig writes the key pair of cfg to the configured directory. The
// password is not written; store it separately.
func SaveConfig(cfg Config, opts ...func(*KeyOption)) error {
	option, err := newKeyOption(opts)
	if err != nil {
		return err
	}
	if cfg.Public == "" {
		return ErrPublicKeyMissing
	}
	if cfg.Private == "" {
		return ErrPrivateKeyMissing
	}

	if err := os.MkdirAll(option.Dirpath, 0o700); err != nil {
		return ErrKeyFileRead.WithCause(err)
	}

	privateKeyPath := filepath.Join(option.Dirpath, option.PrivateKeyFilename)
	if err := os.WriteFile(privateKeyPath, []byte(cfg.Private), 0o600); err != nil {
		return ErrKeyFileRead.WithCause(err)
	}

	publicKeyPath := filepath.Join(option.Dirpath, option.PublicKeyFilename)
	if err := os.WriteFile(publicKeyPath, []byte(cfg.Public), 0o644); err != nil {
		return ErrKeyFileRead.WithCause(err)
	}

	return nil
}

// LoadKeyFiles reads a key pair written by SaveConfig and combines it with
// password into a Config. The hash is taken from WithHash.
func LoadKeyFiles(password string, opts ...func(*KeyOption)) (Config, error) {
	option, err := newKeyOption(opts)
	if err != nil {
		return Config{}, err
	}

	privatePEM, err := os.ReadFile(filepath.Join(option.Dirpath, option.PrivateKeyFilename))
	if err != nil {
		return Config{}, ErrKeyFileRead.WithCause(err)
	}

	publicPEM, err := os.ReadFile(filepath.Join(option.Dirpath, option.PublicKeyFilename))
	if err != nil {
		return Config{}, ErrKeyFileRead.WithCause(err)
	}

	return Config{
		Password: password,
		Public:   string(publicPEM),
		Private:  string(privatePEM),
		Hash:     option.Hash,
	}, nil
}

// randomPassword returns n characters drawn uniformly from passwordAlphabet.
func randomPassword(n int) (string, error) {
	limit := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
