package check

import (
	"github.com/arthur-debert/assetunion/pkg/bundle"
	"github.com/arthur-debert/assetunion/pkg/commands/selection"
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/arthur-debert/assetunion/pkg/types"
)

// CheckOptions defines the options for the Check command.
type CheckOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
	// Bundles names the bundles to check. Empty means all configured bundles.
	Bundles []string
	// FS replaces the OS filesystem.
	FS filesystem.FS
}

// Check reports, without building anything, which bundles need a rebuild.
func Check(opts CheckOptions) (*types.BundlesResult, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("command", "Check").Msg("Executing command")

	targets, err := selection.Select(opts.Config, opts.Bundles, nil)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.BundlesResult{}
	for _, target := range targets {
		r := types.BundleResult{Name: target.Name, Output: target.Bundle.Output}

		b, err := bundle.New(target.Bundle.Files, opts.Config.ForBundle(target.Bundle), bundle.WithFS(fs))
		if err != nil {
			r.Status = types.StatusFailed
			r.Err = err
			result.Bundles = append(result.Bundles, r)
			continue
		}

		if b.SetOutput(target.Bundle.Output).NeedsRebuild() {
			r.Status = types.StatusStale
		} else {
			r.Status = types.StatusUpToDate
		}
		result.Bundles = append(result.Bundles, r)
	}

	log.Info().
		Str("command", "Check").
		Int("stale", result.Count(types.StatusStale)).
		Msg("Command finished")
	return result, nil
}
