package desensitize

import (
	"io"

	"github.com/kochabx/cipherkit/log/internal"
)

// Writer applies a Hook to everything written through it
type Writer struct {
	writer io.Writer
	hook   *Hook
}

// NewWriter wraps w
func NewWriter(w io.Writer, hook *Hook) *Writer {
	return &Writer{writer: w, hook: hook}
}

// Write writes the desensitized p. It reports len(p) on success so that
// callers do not treat a shorter masked line as a short write.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	text := string(p)
	masked := w.hook.Desensitize(text)
	if masked == text {
		return w.writer.Write(p)
	}

	buf := internal.GetBuffer()
	defer internal.PutBuffer(buf)

	buf.WriteString(masked)
	if _, err := w.writer.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
