package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/cipherkit/core/validator"
	"github.com/kochabx/cipherkit/log"
)

// Config loads a configuration file into a target struct
type Config struct {
	mu       sync.RWMutex        // protects concurrent access to target
	viper    *viper.Viper        // viper instance for configuration management
	validate validator.Validator // validator for configuration validation
	target   any                 // target is the destination where the configuration will be unmarshalled
	loader   Loader              // loader is responsible for loading configuration
	watch    bool                // whether Watch is allowed to reload on change
	file     *fileSource         // file set by WithFile, turned into a FileLoader by New
}

// fileSource names a configuration file and the directories searched for it
type fileSource struct {
	name  string
	paths []string
}

// New creates a new Config instance with the given options
// If no loader is provided, a FileLoader is created for the file set by
// WithFile, or for "config.yaml" in the working directory.
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:    viper.New(),
		validate: validator.Validate,
		target:   target,
		watch:    true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		file := c.file
		if file == nil {
			file = &fileSource{name: "config.yaml", paths: []string{"."}}
		}
		c.loader = NewFileLoader(file.name, file.paths, c.viper, c.validate)
	}

	return c
}

// Load reads the configuration using the configured loader
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Reload reloads the configuration from the loader
func (c *Config) Reload() error {
	return c.Load()
}

// Watch reloads the configuration whenever the loader reports a change.
// It does nothing when watching was disabled with WithWatch(false).
func (c *Config) Watch() error {
	if !c.watch {
		return nil
	}

	return c.loader.Watch(func() {
		log.Info().Msg("config change detected")

		if err := c.Reload(); err != nil {
			log.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		log.Info().Msg("config reloaded successfully")
	})
}

// Viper returns the underlying viper instance
func (c *Config) Viper() *viper.Viper {
	return c.viper
}
