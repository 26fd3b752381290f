package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kochabx/cipherkit/log/desensitize"
)

type options struct {
	level      zerolog.Level
	caller     bool
	callerSkip int
	hook       *desensitize.Hook
	writer     io.Writer
}

// Option configures a Logger
type Option func(*options)

// WithLevel sets the minimum level
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithCaller adds the caller file and line
func WithCaller() Option {
	return func(o *options) {
		o.caller = true
	}
}

// WithCallerSkip adds the caller skipping skip extra frames
func WithCallerSkip(skip int) Option {
	return func(o *options) {
		o.caller = true
		o.callerSkip = skip
	}
}

// WithDesensitize masks output with hook
func WithDesensitize(hook *desensitize.Hook) Option {
	return func(o *options) {
		o.hook = hook
	}
}

// WithWriter replaces the console output of New with w, which receives
// JSON lines
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithDesensitizeBuiltin masks output with desensitize.BuiltinRules
func WithDesensitizeBuiltin() Option {
	return WithDesensitize(desensitize.NewBuiltinHook())
}
