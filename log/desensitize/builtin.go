package desensitize

var (
	// PrivateKeyPEMRule masks PEM private key blocks, encrypted or not,
	// wherever they appear. Newlines inside a JSON log line are escaped,
	// so the block is matched lazily up to its END line.
	PrivateKeyPEMRule = MustNewContentRule(
		"pem_private_key",
		`-----BEGIN ([A-Z0-9 ]*)PRIVATE KEY-----[\s\S]*?-----END [A-Z0-9 ]*PRIVATE KEY-----`,
		"-----BEGIN ${1}PRIVATE KEY-----"+Mask+"-----END ${1}PRIVATE KEY-----",
	)

	PasswordRule = MustNewFieldRule("password", "password")
	KeyRule      = MustNewFieldRule("key", "key")
	PrivateRule  = MustNewFieldRule("private", "private")
	SecretRule   = MustNewFieldRule("secret", "secret")
	TokenRule    = MustNewFieldRule("token", "token")
)

// BuiltinRules returns the rules protecting key material and credentials
func BuiltinRules() []Rule {
	return []Rule{
		PrivateKeyPEMRule,
		PasswordRule,
		KeyRule,
		PrivateRule,
		SecretRule,
		TokenRule,
	}
}
