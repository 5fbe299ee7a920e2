package list

import (
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/arthur-debert/assetunion/pkg/types"
)

// ListBundlesOptions defines the options for the ListBundles command.
type ListBundlesOptions struct {
	// Config is the loaded configuration.
	Config *config.Config
}

// ListBundles returns the configured bundles sorted by name.
func ListBundles(opts ListBundlesOptions) (*types.ListBundlesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListBundles").Msg("Executing command")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration loaded")
	}

	names := opts.Config.BundleNames()
	result := &types.ListBundlesResult{
		Bundles: make([]types.BundleInfo, len(names)),
	}

	for i, name := range names {
		b := opts.Config.Bundles[name]
		result.Bundles[i] = types.BundleInfo{
			Name:      name,
			SourceDir: opts.Config.ForBundle(b).SourceDir,
			Files:     append([]string(nil), b.Files...),
			Output:    b.Output,
			Transform: b.Transform,
		}
	}

	log.Info().Str("command", "ListBundles").Int("bundleCount", len(result.Bundles)).Msg("Command finished")
	return result, nil
}
