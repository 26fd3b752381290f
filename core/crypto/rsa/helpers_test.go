package rsa

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kochabx/cipherkit/log"
)

// testPassword protects the private keys under testdata.
var testPassword = strings.Repeat("p", PasswordLength)

func readFixture(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return string(data)
}

// fixtureConfig returns the OpenSSL generated key pair under testdata.
func fixtureConfig(t testing.TB) Config {
	return Config{
		Password: testPassword,
		Public:   readFixture(t, "public.pem"),
		Private:  readFixture(t, "private_pkcs8.pem"),
	}
}

func newTestEngine(t testing.TB, cfg Config, opts ...Option) *Engine {
	t.Helper()
	engine, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

// quietLogger discards everything.
var quietLogger = log.New(log.WithWriter(io.Discard))

// capture returns a debug level logger writing JSON lines into a buffer.
func capture() (*log.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return log.New(log.WithWriter(buf), log.WithLevel(zerolog.DebugLevel)), buf
}

var (
	generatedOnce sync.Once
	generatedCfg  Config
	generatedErr  error
)

// generatedConfig returns a key pair made by GenerateConfig, shared by all
// tests of the package run.
func generatedConfig(t testing.TB) Config {
	t.Helper()
	generatedOnce.Do(func() {
		generatedCfg, generatedErr = GenerateConfig()
	})
	if generatedErr != nil {
		t.Fatalf("Failed to generate config: %v", generatedErr)
	}
	return generatedCfg
}
