// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate project layouts for bundler and command tests

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// Past is a fixed time sources are stamped with unless a test says otherwise.
var Past = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestEnvironment is a project with a source and an output directory
type TestEnvironment struct {
	Root      string
	SourceDir string
	OutputDir string

	// FS is what the code under test should be given
	FS   filesystem.FS
	Type EnvType

	t   *testing.T
	afs afero.Fs
}

// NewTestEnvironment creates the project directories and returns the environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.afs = afero.NewOsFs()
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/project"
		env.afs = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.afs)
	}
	env.SourceDir = filepath.Join(env.Root, "assets")
	env.OutputDir = filepath.Join(env.Root, "public")

	require.NoError(t, env.afs.MkdirAll(env.SourceDir, 0755))
	require.NoError(t, env.afs.MkdirAll(env.OutputDir, 0755))
	return env
}

// Config returns a fail-policy config rooted at SourceDir with the given bundles
func (env *TestEnvironment) Config(bundles map[string]config.BundleConfig) *config.Config {
	return &config.Config{
		SourceDir:      env.SourceDir,
		MissingSources: config.MissingFail,
		FileMode:       config.FileMode(0644),
		Bundles:        bundles,
	}
}

// Source writes name under SourceDir with the given mtime and returns its path
func (env *TestEnvironment) Source(name, content string, mtime time.Time) string {
	env.t.Helper()
	path := filepath.Join(env.SourceDir, name)
	env.WriteFile(path, content, mtime)
	return path
}

// Output returns the path of name under OutputDir
func (env *TestEnvironment) Output(name string) string {
	return filepath.Join(env.OutputDir, name)
}

// WriteFile writes an absolute path, creating parents, and stamps its mtime
func (env *TestEnvironment) WriteFile(path, content string, mtime time.Time) {
	env.t.Helper()
	require.NoError(env.t, env.afs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, afero.WriteFile(env.afs, path, []byte(content), 0644))
	env.Touch(path, mtime)
}

// Touch sets both access and modification time of path
func (env *TestEnvironment) Touch(path string, mtime time.Time) {
	env.t.Helper()
	require.NoError(env.t, env.afs.Chtimes(path, mtime, mtime))
}

// Read returns the content of path, failing the test if it is unreadable
func (env *TestEnvironment) Read(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.afs, path)
	require.NoError(env.t, err)
	return string(data)
}

// Exists reports whether path exists
func (env *TestEnvironment) Exists(path string) bool {
	env.t.Helper()
	ok, err := afero.Exists(env.afs, path)
	require.NoError(env.t, err)
	return ok
}

// Remove deletes path
func (env *TestEnvironment) Remove(path string) {
	env.t.Helper()
	require.NoError(env.t, env.afs.Remove(path))
}
