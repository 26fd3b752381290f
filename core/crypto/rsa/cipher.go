package rsa

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
)

// Encode encrypts message with the public key and returns the sealed
// envelope.
//
// The message is encrypted with RSA-OAEP (SHA-1, empty label), so it may be
// at most MaxMessageSize bytes long; Encode neither chunks nor truncates.
// Any failure yields ErrEncodeFailed and no envelope.
func (e *Engine) Encode(message []byte) (string, error) {
	ciphertext, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, e.publicKey, message, nil)
	if err != nil {
		e.logger.Debug().Int("size", len(message)).Msg("rsa: encode rejected")
		return "", ErrEncodeFailed.WithCause(err)
	}

	value := base64.StdEncoding.EncodeToString(ciphertext)

	// The signature covers the base64 text, not the ciphertext bytes.
	sgn, err := e.Sign([]byte(value))
	if err != nil {
		return "", ErrEncodeFailed.WithCause(err)
	}

	envelope := Envelope{Value: value, Sgn: sgn}
	sealed, err := envelope.Marshal()
	if err != nil {
		return "", ErrEncodeFailed.WithCause(err)
	}
	return sealed, nil
}

// Decode opens an envelope produced by Encode and returns the message.
//
// The signature is verified before anything is decrypted. Malformed input,
// a bad signature and a decryption failure all return ErrDecodeFailed.
func (e *Engine) Decode(sealed string) ([]byte, error) {
	envelope, err := ParseEnvelope(sealed)
	if err != nil {
		return nil, e.decodeFailed()
	}

	if !e.Verify([]byte(envelope.Value), envelope.Sgn) {
		return nil, e.decodeFailed()
	}

	ciphertext, err := encoding.DecodeString(envelope.Value)
	if err != nil {
		return nil, e.decodeFailed()
	}

	message, err := rsa.DecryptOAEP(sha1.New(), nil, e.privateKey, ciphertext, nil)
	if err != nil {
		return nil, e.decodeFailed()
	}
	return message, nil
}

func (e *Engine) decodeFailed() error {
	e.logger.Debug().Msg("rsa: decode rejected")
	return ErrDecodeFailed
}

// Sign signs message with the private key using RSASSA-PKCS1-v1_5 and the
// configured hash, and returns the base64 text of the signature.
func (e *Engine) Sign(message []byte) (string, error) {
	signature, err := rsa.SignPKCS1v15(rand.Reader, e.privateKey, e.hash.CryptoHash(), e.hash.sum(message))
	if err != nil {
		e.logger.Debug().Msg("rsa: sign failed")
		return "", ErrSignFailed
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify reports whether signature is a valid base64 encoded signature of
// message under the public key and the configured hash. Malformed input is
// reported as an invalid signature.
func (e *Engine) Verify(message []byte, signature string) bool {
	raw, err := encoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return rsa.VerifyPKCS1v15(e.publicKey, e.hash.CryptoHash(), e.hash.sum(message), raw) == nil
}
