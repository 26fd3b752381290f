package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/cipherkit/errors"
)

type server struct {
	Host string `json:"host" default:"localhost"`
	Port int    `json:"port" default:"80"`
}

type mock struct {
	Name   string  `json:"name" validate:"required"`
	Number float64 `json:"number" default:"1.23"`
	Server server  `json:"server"`
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// TestConfig tests loading a file with defaults filled in for missing keys
func TestConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "name: demo\nserver:\n  port: 9000\n")

	cfg := new(mock)
	c := New(cfg, WithFile("app.yaml", dir), WithWatch(false))
	require.NoError(t, c.Load())

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 1.23, cfg.Number)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestConfigValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "server:\n  host: example.com\n")

	c := New(new(mock), WithFile("app.yaml", dir))
	err := c.Load()
	require.Error(t, err)

	e := errors.FromError(err)
	assert.Equal(t, 400, e.GetCode())
}

func TestConfigMissingFile(t *testing.T) {
	c := New(new(mock), WithFile("absent.yaml", t.TempDir()))
	err := c.Load()
	require.Error(t, err)
	assert.Equal(t, 404, errors.FromError(err).GetCode())
}

// TestEnvOverride tests that viper's AutomaticEnv overrides keys present in the file
func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "name: demo\nserver:\n  host: localhost\n  port: 80\n")

	t.Setenv("SERVER_HOST", "example.com")
	t.Setenv("SERVER_PORT", "9090")

	cfg := new(mock)
	require.NoError(t, New(cfg, WithFile("app.yaml", dir)).Load())

	assert.Equal(t, "example.com", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "name: first\n")

	cfg := new(mock)
	c := New(cfg, WithFile("app.yaml", dir), WithWatch(false))
	require.NoError(t, c.Load())
	assert.Equal(t, "first", cfg.Name)

	writeFile(t, dir, "app.yaml", "name: second\n")
	require.NoError(t, c.Reload())
	assert.Equal(t, "second", cfg.Name)

	// watching disabled
	assert.NoError(t, c.Watch())
}

type stubLoader struct {
	loads int
}

func (s *stubLoader) Load(target any) error {
	s.loads++
	target.(*mock).Name = "stub"
	return nil
}

func (s *stubLoader) Watch(callback func()) error {
	callback()
	return nil
}

func TestWithLoader(t *testing.T) {
	loader := &stubLoader{}
	cfg := new(mock)
	c := New(cfg, WithLoader(loader))

	require.NoError(t, c.Load())
	require.NoError(t, c.Watch())

	assert.Equal(t, "stub", cfg.Name)
	assert.Equal(t, 2, loader.loads)
}
