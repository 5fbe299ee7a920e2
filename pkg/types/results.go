package types

// Status is the outcome recorded for one bundle.
type Status string

const (
	StatusBuilt    Status = "built"
	StatusUpToDate Status = "up to date"
	StatusStale    Status = "stale"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// BundleResult describes what happened to one bundle during build or check.
type BundleResult struct {
	Name   string `json:"name" yaml:"name"`
	Output string `json:"output" yaml:"output"`
	Status Status `json:"status" yaml:"status"`
	// Bytes is the size written, set for built bundles
	Bytes int   `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Err   error `json:"-" yaml:"-"`
}

// BundlesResult holds the per-bundle results of a build or check run,
// in the order the bundles were processed.
type BundlesResult struct {
	Bundles []BundleResult `json:"bundles" yaml:"bundles"`
}

// Count returns how many bundles ended in status.
func (r *BundlesResult) Count(status Status) int {
	n := 0
	for _, b := range r.Bundles {
		if b.Status == status {
			n++
		}
	}
	return n
}

// FirstError returns the error of the first failed bundle, if any.
func (r *BundlesResult) FirstError() error {
	for _, b := range r.Bundles {
		if b.Err != nil {
			return b.Err
		}
	}
	return nil
}

// BundleInfo contains summary information about a configured bundle.
type BundleInfo struct {
	Name      string   `json:"name" yaml:"name"`
	SourceDir string   `json:"source_dir" yaml:"source_dir"`
	Files     []string `json:"files" yaml:"files"`
	Output    string   `json:"output" yaml:"output"`
	Transform string   `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// ListBundlesResult holds the result of the 'list' command.
type ListBundlesResult struct {
	Bundles []BundleInfo `json:"bundles" yaml:"bundles"`
}
