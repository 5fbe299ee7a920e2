// Package transform holds the named post-processing steps a bundle can
// select. A build applies at most one of them, through a single
// Bundler.ModifyResult call.
package transform

import (
	"sort"
	"strings"

	"github.com/arthur-debert/assetunion/pkg/errors"
)

// Func rewrites a built bundle.
type Func func(string) string

// Banner is the comment the banner transform prepends.
const Banner = "/* generated by assetunion, do not edit */"

var registry = map[string]Func{
	"identity":          Identity,
	"trim":              Trim,
	"strip-blank-lines": StripBlankLines,
	"banner":            AddBanner,
}

// Names returns the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the transform registered under name. An empty name
// resolves to Identity.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Identity, nil
	}
	fn, ok := registry[name]
	if !ok {
		return nil, errors.Newf(errors.ErrTransformNotFound, "unknown transform %q", name).
			WithDetail("transform", name).
			WithDetail("available", Names())
	}
	return fn, nil
}

// Identity returns s unchanged.
func Identity(s string) string {
	return s
}

// Trim removes trailing whitespace from every line and drops trailing
// blank lines.
func Trim(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// StripBlankLines removes lines that hold only whitespace.
func StripBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// AddBanner prepends the Banner comment on its own line.
func AddBanner(s string) string {
	return Banner + "\n" + s
}
