// Package log provides zerolog based loggers and a global instance.
package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/cipherkit/core/tag"
	"github.com/kochabx/cipherkit/log/desensitize"
	"github.com/kochabx/cipherkit/log/writer"
)

// Logger wraps zerolog.Logger with the resources it owns
type Logger struct {
	zerolog.Logger
	hook   *desensitize.Hook
	closer io.Closer
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Hook returns the desensitize hook, or nil
func (l *Logger) Hook() *desensitize.Hook {
	return l.hook
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func build(w io.Writer, opts []Option) *Logger {
	o := &options{level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(o)
	}
	if o.writer != nil {
		w = o.writer
	}
	if o.hook != nil {
		w = desensitize.NewWriter(w, o.hook)
	}

	ctx := zerolog.New(w).Level(o.level).With().Timestamp()
	if o.caller {
		ctx = ctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + o.callerSkip)
	}
	return &Logger{Logger: ctx.Logger(), hook: o.hook}
}

// New creates a console logger
func New(opts ...Option) *Logger {
	return build(writer.Console(), opts)
}

// NewFile creates a logger writing JSON lines to a rotated file
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := openFile(&c)
	if err != nil {
		return nil, err
	}
	logger := build(fw, opts)
	logger.closer = fw
	return logger, nil
}

// NewMulti creates a logger writing to a rotated file and the console
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := openFile(&c)
	if err != nil {
		return nil, err
	}
	logger := build(zerolog.MultiLevelWriter(fw, writer.Console()), opts)
	logger.closer = fw
	return logger, nil
}

func openFile(c *FileConfig) (io.WriteCloser, error) {
	if err := tag.ApplyDefaults(c); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	fw, err := writer.File(c.rotateConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}
	return fw, nil
}
