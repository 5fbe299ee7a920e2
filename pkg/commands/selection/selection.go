// Package selection resolves which bundles a command operates on.
package selection

import (
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
)

// Named pairs a bundle with the name it is reported under.
type Named struct {
	Name   string
	Bundle config.BundleConfig
}

// Select returns adHoc alone when it is set, otherwise the named bundles
// in the given order, or every configured bundle sorted by name when
// names is empty. An unknown name fails before anything is built.
func Select(cfg *config.Config, names []string, adHoc *Named) ([]Named, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration loaded")
	}
	if adHoc != nil {
		if len(adHoc.Bundle.Files) == 0 || adHoc.Bundle.Output == "" {
			return nil, errors.New(errors.ErrInvalidInput, "an ad-hoc bundle needs both files and an output")
		}
		return []Named{*adHoc}, nil
	}

	if len(names) == 0 {
		names = cfg.BundleNames()
	}

	targets := make([]Named, 0, len(names))
	for _, name := range names {
		b, err := cfg.Bundle(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, Named{Name: name, Bundle: b})
	}
	return targets, nil
}
