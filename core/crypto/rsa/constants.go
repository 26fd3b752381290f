package rsa

// Key material parameters
const (
	// PasswordLength is the exact length in bytes of the private key password.
	// Key pairs issued by the generator always carry a 32 byte random
	// password, so any other length means the configuration is wrong.
	PasswordLength = 32

	// DefaultKeyBits is the RSA modulus size used by GenerateConfig when
	// no size is given.
	DefaultKeyBits = 2048

	// MinKeyBits is the smallest modulus GenerateConfig accepts.
	MinKeyBits = 2048
)

// PEM block types
const (
	pemTypePublicKey           = "PUBLIC KEY"
	pemTypeRSAPublicKey        = "RSA PUBLIC KEY"
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemTypeOpenSSHPrivateKey   = "OPENSSH PRIVATE KEY"

	// publicKeyMarker must appear in the canonical PEM of every accepted key.
	publicKeyMarker = "-----BEGIN PUBLIC KEY-----"
)

// passwordAlphabet is the character set of generated passwords.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
