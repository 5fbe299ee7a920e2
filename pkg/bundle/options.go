package bundle

import (
	"os"

	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/rs/zerolog"
)

// Option customizes a Bundler at construction.
type Option func(*Bundler)

// WithFS replaces the OS filesystem.
func WithFS(fs filesystem.FS) Option {
	return func(b *Bundler) {
		b.fs = fs
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bundler) {
		b.logger = logger
	}
}

// WithMissingPolicy overrides the policy taken from the config.
func WithMissingPolicy(policy config.MissingPolicy) Option {
	return func(b *Bundler) {
		b.policy = policy
	}
}

// WithFileMode sets the permission bits used when Save creates the output.
func WithFileMode(mode os.FileMode) Option {
	return func(b *Bundler) {
		b.mode = mode
	}
}
