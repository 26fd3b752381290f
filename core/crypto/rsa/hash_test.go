package rsa

import (
	"crypto"
	"testing"
)

func TestParseHash(t *testing.T) {
	want := map[string]crypto.Hash{
		"sha224": crypto.SHA224,
		"sha256": crypto.SHA256,
		"sha384": crypto.SHA384,
		"sha512": crypto.SHA512,
	}
	for _, name := range Hashes() {
		h, ok := ParseHash(name)
		if !ok {
			t.Fatalf("ParseHash(%q) not found", name)
		}
		if h.String() != name {
			t.Errorf("String() = %q, want %q", h.String(), name)
		}
		if h.CryptoHash() != want[name] {
			t.Errorf("%s: CryptoHash() = %v", name, h.CryptoHash())
		}
		if len(h.sum([]byte("hello"))) != h.CryptoHash().Size() {
			t.Errorf("%s: digest size mismatch", name)
		}
	}

	for _, name := range []string{"", "md5", "sha1", "SHA512", "sha512 "} {
		if _, ok := ParseHash(name); ok {
			t.Errorf("ParseHash(%q) should fail", name)
		}
	}
	if Hash(0).String() != "unknown" || Hash(0).CryptoHash() != 0 {
		t.Error("zero Hash should be unknown")
	}
}
