// pkg/bundle/bundle_os_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Run the rebuild/save cycle against the OS filesystem

package bundle_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/assetunion/pkg/bundle"
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundler_OSFilesystem(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(assets, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "a.css"), []byte("body{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "b.css"), []byte(".x{}"), 0644))

	past := time.Now().Add(-time.Hour)
	for _, name := range []string{"a.css", "b.css"} {
		require.NoError(t, os.Chtimes(filepath.Join(assets, name), past, past))
	}

	cfg := &config.Config{SourceDir: assets, MissingSources: config.MissingFail}
	output := filepath.Join(root, "site.css")

	b, err := bundle.New([]string{"a.css", "b.css"}, cfg, bundle.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	b.SetOutput(output)

	require.True(t, b.NeedsRebuild())
	_, err = b.RebuildIfNeeded()
	require.NoError(t, err)
	saved, err := b.Save()
	require.NoError(t, err)
	require.True(t, saved)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "body{}\n.x{}", string(data))
	assert.False(t, b.NeedsRebuild())

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(assets, "b.css"), future, future))
	assert.True(t, b.NeedsRebuild())
}

func TestBundler_SymlinkedSourceDir(t *testing.T) {
	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(filepath.Join(realDir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "x.css"), []byte("real"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.css"), []byte("lexical"), 0644))

	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(realDir, "sub"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	cfg := &config.Config{SourceDir: link, MissingSources: config.MissingFail}
	b, err := bundle.New([]string{"../x.css"}, cfg, bundle.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = b.Rebuild()
	require.NoError(t, err)
	result, ok := b.Result()
	require.True(t, ok)
	assert.Equal(t, "real", result)

	// staleness looks at the same file the rebuild read
	output := filepath.Join(root, "out.css")
	b.SetOutput(output)
	_, err = b.Save()
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(output, past, past))
	require.NoError(t, os.Chtimes(filepath.Join(realDir, "x.css"), past.Add(-time.Hour), past.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(root, "x.css"), future, future))
	assert.False(t, b.NeedsRebuild())

	require.NoError(t, os.Chtimes(filepath.Join(realDir, "x.css"), future, future))
	assert.True(t, b.NeedsRebuild())
}
