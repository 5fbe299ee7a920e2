package bundle

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/rs/zerolog"
)

const (
	separator   = "\n"
	defaultMode = os.FileMode(0644)
)

// Bundler concatenates a fixed list of source files into one output.
type Bundler struct {
	files     []string
	sourceDir string
	output    string

	policy config.MissingPolicy
	mode   os.FileMode
	fs     filesystem.FS
	logger zerolog.Logger

	// result is only meaningful when built is true
	result string
	built  bool
}

// New creates a Bundler for fileNames, resolved against cfg.SourceDir.
// A nil cfg uses the process-wide default from config.Default.
func New(fileNames []string, cfg *config.Config, opts ...Option) (*Bundler, error) {
	if cfg == nil {
		def, err := config.Default()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
		}
		cfg = def
	}
	if cfg.SourceDir == "" {
		return nil, errors.New(errors.ErrConfigValid, "no source directory configured").
			WithDetail("key", "source_dir")
	}

	b := &Bundler{
		files:     slices.Clone(fileNames),
		sourceDir: cfg.SourceDir,
		policy:    cfg.MissingSources,
		mode:      cfg.FileMode.Perm(),
		fs:        filesystem.NewOS(),
		logger:    logging.GetLogger("bundle"),
	}
	for _, opt := range opts {
		opt(b)
	}

	if !b.policy.Valid() {
		b.policy = config.MissingFail
	}
	if b.mode == 0 {
		b.mode = defaultMode
	}
	if b.files == nil {
		b.files = []string{}
	}

	return b, nil
}

// SetOutput sets the output path. Later calls replace it.
func (b *Bundler) SetOutput(path string) *Bundler {
	b.output = path
	return b
}

// NeedsRebuild reports whether the output is missing or older than any
// source. It never fails: a source that cannot be stat'ed marks the bundle
// stale under the fail policy and is ignored under the skip policy.
func (b *Bundler) NeedsRebuild() bool {
	if b.output == "" {
		b.logger.Debug().Msg("No output path set")
		return true
	}

	outInfo, err := b.fs.Stat(b.output)
	if err != nil {
		b.logger.Debug().Str("output", b.output).Msg("Output does not exist")
		return true
	}
	outTime := outInfo.ModTime()

	for _, name := range b.files {
		path := b.sourcePath(name)
		info, err := b.fs.Stat(path)
		if err != nil {
			if b.policy == config.MissingSkip {
				b.logger.Warn().Err(err).Str("source", path).Msg("Skipping unreadable source")
				continue
			}
			b.logger.Warn().Err(err).Str("source", path).Msg("Unreadable source, treating output as stale")
			return true
		}
		if info.ModTime().After(outTime) {
			b.logger.Debug().
				Str("source", path).
				Time("sourceTime", info.ModTime()).
				Time("outputTime", outTime).
				Msg("Source is newer than output")
			return true
		}
	}

	return false
}

// Rebuild reads every source in order and joins them with a newline.
// Under the fail policy an unreadable source aborts the rebuild and the
// previous result, if any, is kept.
func (b *Bundler) Rebuild() (*Bundler, error) {
	done := logging.LogOperationStart(b.logger, "rebuild")
	defer done()

	parts := make([]string, 0, len(b.files))
	for _, name := range b.files {
		path := b.sourcePath(name)
		data, err := b.fs.ReadFile(path)
		if err != nil {
			if b.policy == config.MissingSkip {
				b.logger.Warn().Err(err).Str("source", path).Msg("Skipping unreadable source")
				continue
			}
			return b, errors.Wrapf(err, errors.ErrSourceRead, "cannot read source %s", name).
				WithDetail("file", name).
				WithDetail("path", path)
		}
		parts = append(parts, string(data))
	}

	b.result = strings.Join(parts, separator)
	b.built = true

	b.logger.Debug().
		Int("sources", len(parts)).
		Int("bytes", len(b.result)).
		Msg("Bundle rebuilt")

	return b, nil
}

// RebuildIfNeeded rebuilds only when NeedsRebuild reports true.
func (b *Bundler) RebuildIfNeeded() (*Bundler, error) {
	if b.NeedsRebuild() {
		b.logger.Info().Str("output", b.output).Msg("needs rebuild")
		return b.Rebuild()
	}
	return b, nil
}

// ModifyResult replaces the result with fn(result). Without a result it
// does nothing and fn is not called.
func (b *Bundler) ModifyResult(fn func(string) string) *Bundler {
	if !b.built {
		return b
	}
	b.result = fn(b.result)
	return b
}

// Save writes the current result to the output, creating or truncating
// it. Without a result it returns false and touches nothing. A false
// return with an error means the write failed.
func (b *Bundler) Save() (bool, error) {
	if !b.built {
		b.logger.Debug().Msg("Nothing to save")
		return false, nil
	}
	if b.output == "" {
		return false, errors.New(errors.ErrOutputWrite, "output path not set")
	}

	if err := b.fs.WriteFile(b.output, []byte(b.result), b.mode); err != nil {
		return false, errors.Wrapf(err, errors.ErrOutputWrite, "cannot write output %s", b.output).
			WithDetail("path", b.output)
	}

	b.logger.Info().
		Str("output", b.output).
		Int("bytes", len(b.result)).
		Msg("Bundle saved")

	return true, nil
}

// ContainsFile reports whether name is in the file list, compared exactly.
func (b *Bundler) ContainsFile(name string) bool {
	return slices.Contains(b.files, name)
}

// Files returns a copy of the source file list.
func (b *Bundler) Files() []string {
	return slices.Clone(b.files)
}

// SourceDir returns the directory sources are read from.
func (b *Bundler) SourceDir() string {
	return b.sourceDir
}

// Output returns the output path, empty until SetOutput is called.
func (b *Bundler) Output() string {
	return b.output
}

// Result returns the built content and whether a rebuild has produced one.
func (b *Bundler) Result() (string, bool) {
	return b.result, b.built
}

// Built reports whether a result is present.
func (b *Bundler) Built() bool {
	return b.built
}

// sourcePath appends name to the source dir without cleaning, so ".."
// entries are resolved by the OS after any symlink in the source dir.
func (b *Bundler) sourcePath(name string) string {
	return b.sourceDir + string(filepath.Separator) + name
}
