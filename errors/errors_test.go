package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(400, "bad key size %d", 1024)
	if err.GetCode() != 400 {
		t.Errorf("expected code 400, got %d", err.GetCode())
	}
	if err.GetMessage() != "bad key size 1024" {
		t.Errorf("unexpected message %q", err.GetMessage())
	}

	if got := New(500, "load failed").GetMessage(); got != "load failed" {
		t.Errorf("unexpected message %q", got)
	}

	// A lone format string is not interpreted. Called through a function
	// value so vet does not treat the literal as a format.
	newError := New
	if got := newError(500, "100%").GetMessage(); got != "100%" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrorString(t *testing.T) {
	err := Internal("load failed").
		WithMetadata(map[string]string{"path": "/etc", "file": "a.yaml"}).
		WithCause(errors.New("permission denied"))

	want := "code=500, message=load failed, metadata={file=a.yaml, path=/etc}, cause=permission denied"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestWithCauseKeepsSentinel(t *testing.T) {
	sentinel := Internal("rsa: private key is incorrectly formatted")
	cause := errors.New("pkcs8: incorrect password")

	err := sentinel.WithCause(cause)
	if err == sentinel {
		t.Fatal("WithCause must return a copy")
	}
	if sentinel.GetCause() != nil {
		t.Fatal("sentinel was modified")
	}
	if !errors.Is(err, sentinel) {
		t.Error("copy should match sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable")
	}
	if sentinel.WithCause(nil) != sentinel {
		t.Error("nil cause should return the same instance")
	}
}

func TestWithMetadata(t *testing.T) {
	err := New(401, "unauthorized")
	if err.WithMetadata(nil) != err {
		t.Error("empty metadata should return the same instance")
	}

	err2 := err.WithMetadata(map[string]string{"user": "john"})
	err3 := err2.WithMetadata(map[string]string{"action": "login"})
	if len(err2.GetMetadata()) != 1 {
		t.Errorf("err2 was modified: %v", err2.GetMetadata())
	}
	md := err3.GetMetadata()
	if md["user"] != "john" || md["action"] != "login" {
		t.Errorf("metadata not merged: %v", md)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same", BadRequest("x"), BadRequest("x"), true},
		{"different code", BadRequest("x"), Internal("x"), false},
		{"different message", BadRequest("x"), BadRequest("y"), false},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("x")), NotFound("x"), true},
		{"foreign", errors.New("x"), BadRequest("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil) != nil {
		t.Error("nil should stay nil")
	}

	e := Forbidden("denied")
	if FromError(fmt.Errorf("wrapped: %w", e)) != e {
		t.Error("should find *Error in chain")
	}

	got := FromError(errors.New("boom"))
	if got.Code != UnknownCode || got.Message != "boom" {
		t.Errorf("unexpected conversion: %v", got)
	}
}

func TestWrapAndCode(t *testing.T) {
	if Wrap(nil, 500, "x") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	err := Wrap(errors.New("io"), 404, "file %s", "a.pem")
	if err.Message != "file a.pem" || Code(err) != 404 {
		t.Errorf("unexpected %v", err)
	}
	if Code(nil) != 0 {
		t.Error("Code(nil) should be 0")
	}
	if Code(errors.New("x")) != UnknownCode {
		t.Error("foreign error should have UnknownCode")
	}
}
