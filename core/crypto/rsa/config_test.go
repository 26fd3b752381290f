package rsa

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/kochabx/cipherkit/errors"
)

// indent prefixes every line of a PEM block for a YAML block scalar.
func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return prefix + strings.Join(lines, "\n"+prefix) + "\n"
}

func writeConfigFile(t *testing.T, dir, name, passwordKey, password, hash string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("encryption:\n  rsa:\n")
	b.WriteString("    " + passwordKey + ": " + password + "\n")
	if hash != "" {
		b.WriteString("    hash: " + hash + "\n")
	}
	b.WriteString("    public: |\n")
	b.WriteString(indent(readFixture(t, "public.pem"), "      "))
	b.WriteString("    private: |\n")
	b.WriteString(indent(readFixture(t, "private_pkcs8.pem"), "      "))

	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// TestLoadConfig tests loading key material from a configuration file
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "encryption.yaml", "password", testPassword, "sha384")

	cfg, err := LoadConfig("encryption.yaml", dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Password != testPassword {
		t.Errorf("Password = %q", cfg.Password)
	}
	if cfg.Public != readFixture(t, "public.pem") {
		t.Errorf("Public differs:\n%s", cfg.Public)
	}
	if cfg.Hash != "sha384" {
		t.Errorf("Hash = %q, want sha384", cfg.Hash)
	}

	engine := newTestEngine(t, cfg)
	if engine.Hash() != SHA384 {
		t.Errorf("Hash() = %v, want sha384", engine.Hash())
	}
}

// TestLoadConfigKeyAlias tests the historical "key" name of the password
// and the default hash
func TestLoadConfigKeyAlias(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "encryption.yaml", "key", testPassword, "")

	cfg, err := LoadConfig("encryption.yaml", dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Password != testPassword {
		t.Errorf("Password = %q", cfg.Password)
	}
	if cfg.Hash != "sha512" {
		t.Errorf("Hash = %q, want default sha512", cfg.Hash)
	}
	newTestEngine(t, cfg)
}

// TestLoadConfigEnv tests overriding the password from the environment
func TestLoadConfigEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "encryption.yaml", "password", "placeholder", "")
	t.Setenv("ENCRYPTION_RSA_PASSWORD", testPassword)

	cfg, err := LoadConfig("encryption.yaml", dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Password != testPassword {
		t.Errorf("Password = %q, want the environment value", cfg.Password)
	}
}

// TestLoadConfigErrors tests missing files and sections
func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig("missing.yaml", dir)
	if kerrors.Code(err) != 404 {
		t.Errorf("missing file: got %v, want code 404", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte("encryption:\n  rsa:\n    hash: sha256\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	_, err = LoadConfig("empty.yaml", dir)
	if kerrors.Code(err) != 400 {
		t.Errorf("empty section: got %v, want code 400", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "garbage.yaml"), []byte("encryption:\n  rsa:\n    key: x\n    public: abc\n    private: def\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	_, err = LoadConfig("garbage.yaml", dir)
	if kerrors.Code(err) != 400 {
		t.Errorf("non PEM keys: got %v, want code 400", err)
	}
	if errors.Is(err, ErrPublicKeyFormat) {
		t.Error("loader errors are not engine errors")
	}
}

// TestLoadConfigShortPassword tests that the password length is left to New
func TestLoadConfigShortPassword(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "encryption.yaml", "key", "short", "")

	cfg, err := LoadConfig("encryption.yaml", dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if _, err := New(cfg); !errors.Is(err, ErrPasswordLength) {
		t.Errorf("got %v, want ErrPasswordLength", err)
	}
}
