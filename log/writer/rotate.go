package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateMode selects how log files are rotated
type RotateMode int

const (
	// RotateModeTime starts a new file every RotationTime hours
	RotateModeTime RotateMode = iota
	// RotateModeSize starts a new file every MaxSize megabytes
	RotateModeSize
)

func (m RotateMode) String() string {
	switch m {
	case RotateModeTime:
		return "time"
	case RotateModeSize:
		return "size"
	default:
		return "unknown"
	}
}

// RotateConfig describes a rotated log file
type RotateConfig struct {
	Mode     RotateMode
	Filepath string
	Filename string
	FileExt  string

	// time rotation, in hours
	MaxAgeHours  int
	RotationTime int

	// size rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// File returns a rotating file writer. The writer also implements
// io.Closer.
func File(c RotateConfig) (io.WriteCloser, error) {
	switch c.Mode {
	case RotateModeTime:
		w, err := rotatelogs.New(
			c.path("%Y%m%d%H%M"),
			rotatelogs.WithLinkName(c.path("")),
			rotatelogs.WithMaxAge(time.Duration(c.MaxAgeHours)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(c.RotationTime)*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create time rotate writer: %w", err)
		}
		return w, nil
	case RotateModeSize:
		return &lumberjack.Logger{
			Filename:   c.path(""),
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Compress:   c.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", c.Mode)
	}
}

// path returns <Filepath>/<Filename>[.<suffix>].<FileExt>
func (c *RotateConfig) path(suffix string) string {
	name := c.Filename
	if suffix != "" {
		name += "." + suffix
	}
	return filepath.Join(c.Filepath, name+"."+c.FileExt)
}
