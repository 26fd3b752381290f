package log

import (
	"github.com/kochabx/cipherkit/log/writer"
)

// FileConfig configures a file logger
type FileConfig struct {
	Filepath         string            `json:"filepath" default:"log"`
	Filename         string            `json:"filename" default:"app"`
	FileExt          string            `json:"file_ext" default:"log"`
	RotateMode       writer.RotateMode `json:"rotate_mode"`
	RotatelogsConfig RotatelogsConfig  `json:"rotatelogs_config"`
	LumberjackConfig LumberjackConfig  `json:"lumberjack_config"`
}

// RotatelogsConfig configures rotation by time
type RotatelogsConfig struct {
	MaxAge       int `json:"max_age" default:"24"`
	RotationTime int `json:"rotation_time" default:"1"`
}

// LumberjackConfig configures rotation by size
type LumberjackConfig struct {
	MaxSize    int  `json:"max_size" default:"100"`
	MaxBackups int  `json:"max_backups" default:"5"`
	MaxAge     int  `json:"max_age" default:"30"`
	Compress   bool `json:"compress" default:"false"`
}

func (c *FileConfig) rotateConfig() writer.RotateConfig {
	return writer.RotateConfig{
		Mode:         c.RotateMode,
		Filepath:     c.Filepath,
		Filename:     c.Filename,
		FileExt:      c.FileExt,
		MaxAgeHours:  c.RotatelogsConfig.MaxAge,
		RotationTime: c.RotatelogsConfig.RotationTime,
		MaxSizeMB:    c.LumberjackConfig.MaxSize,
		MaxBackups:   c.LumberjackConfig.MaxBackups,
		MaxAgeDays:   c.LumberjackConfig.MaxAge,
		Compress:     c.LumberjackConfig.Compress,
	}
}
