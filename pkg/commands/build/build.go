package build

import (
	"github.com/arthur-debert/assetunion/pkg/bundle"
	"github.com/arthur-debert/assetunion/pkg/commands/selection"
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/arthur-debert/assetunion/pkg/transform"
	"github.com/arthur-debert/assetunion/pkg/types"
)

// BuildOptions defines the options for the Build command.
type BuildOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// Bundles names the bundles to build. Empty means all configured bundles.
	Bundles []string
	// AdHoc builds this bundle instead of any configured one.
	AdHoc *selection.Named
	// Force rebuilds even when the output is up to date.
	Force bool
	// Transform overrides every bundle's own transform when set.
	Transform string
	// FS replaces the OS filesystem.
	FS filesystem.FS
}

// Build rebuilds the selected bundles that are stale (or all of them with
// Force), applies each bundle's transform and saves the output. A bundle
// failing does not stop the others; failures are reported per bundle.
func Build(opts BuildOptions) (*types.BundlesResult, error) {
	log := logging.GetLogger("commands.build")
	log.Debug().Str("command", "Build").Msg("Executing command")

	targets, err := selection.Select(opts.Config, opts.Bundles, opts.AdHoc)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.BundlesResult{}
	for _, target := range targets {
		r := buildOne(opts, fs, target)
		if r.Err != nil {
			log.Error().Err(r.Err).Str("bundle", r.Name).Msg("Bundle failed")
		}
		result.Bundles = append(result.Bundles, r)
	}

	log.Info().
		Str("command", "Build").
		Int("built", result.Count(types.StatusBuilt)).
		Int("failed", result.Count(types.StatusFailed)).
		Msg("Command finished")
	return result, nil
}

func buildOne(opts BuildOptions, fs filesystem.FS, target selection.Named) types.BundleResult {
	r := types.BundleResult{Name: target.Name, Output: target.Bundle.Output}
	fail := func(err error) types.BundleResult {
		r.Status = types.StatusFailed
		r.Err = err
		return r
	}

	name := target.Bundle.Transform
	if opts.Transform != "" {
		name = opts.Transform
	}
	fn, err := transform.Lookup(name)
	if err != nil {
		return fail(err)
	}

	b, err := bundle.New(target.Bundle.Files, opts.Config.ForBundle(target.Bundle),
		bundle.WithFS(fs),
		bundle.WithLogger(logging.GetLogger("bundle").With().Str("bundle", target.Name).Logger()),
	)
	if err != nil {
		return fail(err)
	}
	b.SetOutput(target.Bundle.Output)

	if opts.Force {
		_, err = b.Rebuild()
	} else {
		_, err = b.RebuildIfNeeded()
	}
	if err != nil {
		return fail(err)
	}
	if !b.Built() {
		r.Status = types.StatusUpToDate
		return r
	}

	saved, err := b.ModifyResult(fn).Save()
	if err != nil {
		return fail(err)
	}
	if !saved {
		r.Status = types.StatusSkipped
		return r
	}

	content, _ := b.Result()
	r.Status = types.StatusBuilt
	r.Bytes = len(content)
	return r
}
