package testutil

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		path := env.Source("a.css", "body{}", Past)
		assert.True(t, env.Exists(path))
		assert.Equal(t, "body{}", env.Read(path))

		info, err := env.FS.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(Past))

		later := Past.Add(time.Hour)
		env.Touch(path, later)
		info, err = env.FS.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(later))

		env.Remove(path)
		assert.False(t, env.Exists(path))

		cfg := env.Config(nil)
		assert.Equal(t, env.SourceDir, cfg.SourceDir)
	}
}

func TestErrorFS(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	path := env.Source("a.css", "x", Past)

	efs := NewErrorFS(env.FS).Fail(OpRead, path, fs.ErrPermission)

	_, err := efs.Stat(path)
	require.NoError(t, err)

	_, err = efs.ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)

	err = efs.WriteFile(env.Output("x.css"), []byte("x"), 0644)
	require.NoError(t, err)

	assert.Equal(t, 1, efs.Calls(OpStat))
	assert.Equal(t, 1, efs.Calls(OpRead))
	assert.Equal(t, 1, efs.Calls(OpWrite))
}
