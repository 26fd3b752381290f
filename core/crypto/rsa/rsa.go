// Package rsa implements an authenticated RSA envelope.
//
// An Engine owns a password-protected RSA private key, the matching public
// key and a signature hash. It seals short messages into an envelope that
// carries both the RSA-OAEP ciphertext and an RSA signature over it:
//
//	value = base64(RSA-OAEP(public, message))
//	sgn   = base64(RSA-PKCS1v15-Sign(private, hash, value))
//	envelope = base64(json({"value": value, "sgn": sgn}))
//
// The signature covers the base64 text of the ciphertext, not the raw
// ciphertext bytes. The layout is byte-compatible with envelopes produced by
// PHP's openssl_public_encrypt/openssl_sign pair, so previously issued
// envelopes keep decoding.
//
// Decode always verifies the signature before the ciphertext reaches the
// private key, and reports every failure as ErrDecodeFailed.
//
// Example usage:
//
//	engine, err := rsa.New(rsa.Config{
//	    Password: os.Getenv("RSA_KEY_PASSWORD"),
//	    Public:   publicPEM,
//	    Private:  privatePEM,
//	    Hash:     "sha512",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sealed, err := engine.Encode([]byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	message, err := engine.Decode(sealed)
//
// Key material can be produced and stored with GenerateConfig, SaveConfig
// and LoadKeyFiles, or read from a configuration file with LoadConfig.
package rsa
