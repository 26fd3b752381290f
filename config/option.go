package config

import (
	"github.com/spf13/viper"

	"github.com/kochabx/cipherkit/core/validator"
)

// Option is a function that configures a Config
type Option func(*Config)

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets a custom validator
func WithValidator(v validator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader sets the configuration loader
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// WithFile sets the configuration file name and the directories searched
// for it. Ignored when WithLoader is also given.
func WithFile(name string, paths ...string) Option {
	return func(c *Config) {
		if len(paths) == 0 {
			paths = []string{"."}
		}
		c.file = &fileSource{name: name, paths: paths}
	}
}

// WithWatch enables or disables configuration watching
func WithWatch(enable bool) Option {
	return func(c *Config) {
		c.watch = enable
	}
}
