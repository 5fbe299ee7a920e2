package initialize

import (
	"path/filepath"

	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/arthur-debert/assetunion/pkg/logging"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	// Dir is where the project file is written.
	Dir string
	// Format is "toml" (default) or "yaml".
	Format string
	// FS replaces the OS filesystem.
	FS filesystem.FS
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	Path string
}

// Init writes a starter project config. It refuses to replace any existing
// project file, whatever its format.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "Init").Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	format := opts.Format
	if format == "" {
		format = config.FormatTOML
	}

	for _, name := range config.ProjectFileNames {
		existing := filepath.Join(dir, name)
		if _, err := fs.Stat(existing); err == nil {
			return nil, errors.Newf(errors.ErrAlreadyExists, "a project config already exists at %s", existing).
				WithDetail("path", existing)
		}
	}

	content, err := config.Generate(format)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, config.ProjectFileName(format))
	if err := fs.WriteFile(path, content, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	log.Info().Str("command", "Init").Str("path", path).Msg("Command finished")
	return &InitResult{Path: path}, nil
}
