package rsa

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/ssh"

	"github.com/kochabx/cipherkit/errors"
)

// parsePublicKey decodes the first PEM block of data as an RSA public key.
// Both PKIX ("PUBLIC KEY") and PKCS#1 ("RSA PUBLIC KEY") blocks are accepted.
func parsePublicKey(data string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	switch block.Type {
	case pemTypePublicKey:
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("not an RSA public key: %T", pub)
		}
		return rsaPub, nil
	case pemTypeRSAPublicKey:
		return x509.ParsePKCS1PublicKey(block.Bytes)
	default:
		return nil, fmt.Errorf("unsupported PEM block type %q", block.Type)
	}
}

// parsePrivateKey decodes and decrypts the first PEM block of data as an RSA
// private key.
//
// Supported blocks:
//   - ENCRYPTED PRIVATE KEY: PKCS#8 with PBES2, decrypted with password
//   - PRIVATE KEY: unencrypted PKCS#8
//   - RSA PRIVATE KEY: PKCS#1, plain or OpenSSL-encrypted (DEK-Info)
//   - OPENSSH PRIVATE KEY: plain or passphrase protected
//
// A password given for an unencrypted key is ignored, as openssl does.
func parsePrivateKey(data, password string) (*rsa.PrivateKey, error) {
	raw := []byte(data)
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	switch block.Type {
	case pemTypeEncryptedPrivateKey:
		return pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(password))
	case pemTypePrivateKey:
		return pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes)
	case pemTypeRSAPrivateKey, pemTypeOpenSSHPrivateKey:
		key, err := ssh.ParseRawPrivateKey(raw)
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			key, err = ssh.ParseRawPrivateKeyWithPassphrase(raw, []byte(password))
		}
		if err != nil {
			return nil, err
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("not an RSA private key: %T", key)
		}
		return rsaKey, nil
	default:
		return nil, fmt.Errorf("unsupported PEM block type %q", block.Type)
	}
}

// marshalPublicKeyPEM returns the canonical PKIX PEM text of pub. Two keys
// are the same key exactly when their canonical texts are equal.
func marshalPublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	text := string(pem.EncodeToMemory(&pem.Block{
		Type:  pemTypePublicKey,
		Bytes: der,
	}))
	if !strings.Contains(text, publicKeyMarker) {
		return "", fmt.Errorf("public key PEM lacks %q", publicKeyMarker)
	}
	return text, nil
}

// privateKeyOpts protects generated private keys with PBES2:
// PBKDF2-HMAC-SHA256 and AES-256-CBC.
var privateKeyOpts = &pkcs8.Opts{
	Cipher: pkcs8.AES256CBC,
	KDFOpts: pkcs8.PBKDF2Opts{
		SaltSize:       16,
		IterationCount: 10000,
		HMACHash:       crypto.SHA256,
	},
}

// marshalPrivateKeyPEM encrypts key with password as PKCS#8 and returns its
// PEM text.
func marshalPrivateKeyPEM(key *rsa.PrivateKey, password string) (string, error) {
	der, err := pkcs8.MarshalPrivateKey(key, []byte(password), privateKeyOpts)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  pemTypeEncryptedPrivateKey,
		Bytes: der,
	})), nil
}
