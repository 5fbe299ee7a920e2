// pkg/bundle/bundle_errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil.ErrorFS
// PURPOSE: Test behaviour when the filesystem fails part way

package bundle_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/arthur-debert/assetunion/pkg/bundle"
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/arthur-debert/assetunion/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuild_UnreadableSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Source("a.css", "a", testutil.Past)
	locked := env.Source("b.css", "b", testutil.Past)
	efs := testutil.NewErrorFS(env.FS).Fail(testutil.OpRead, locked, fs.ErrPermission)

	t.Run("fail_policy", func(t *testing.T) {
		b, err := bundle.New([]string{"a.css", "b.css"}, env.Config(nil),
			bundle.WithFS(efs), bundle.WithLogger(zerolog.Nop()))
		require.NoError(t, err)

		_, err = b.Rebuild()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.False(t, b.Built())
	})

	t.Run("skip_policy", func(t *testing.T) {
		b, err := bundle.New([]string{"a.css", "b.css", "a.css"}, env.Config(nil),
			bundle.WithFS(efs), bundle.WithLogger(zerolog.Nop()),
			bundle.WithMissingPolicy(config.MissingSkip))
		require.NoError(t, err)

		_, err = b.Rebuild()
		require.NoError(t, err)
		result, ok := b.Result()
		assert.True(t, ok)
		assert.Equal(t, "a\na", result)
	})
}

func TestNeedsRebuild_UnstatableSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Source("a.css", "a", testutil.Past)
	locked := env.Source("b.css", "b", testutil.Past)
	output := env.Output("site.css")
	env.WriteFile(output, "old", testutil.Past.Add(time.Hour))

	efs := testutil.NewErrorFS(env.FS).Fail(testutil.OpStat, locked, fs.ErrPermission)

	newBundler := func(policy config.MissingPolicy) *bundle.Bundler {
		b, err := bundle.New([]string{"a.css", "b.css"}, env.Config(nil),
			bundle.WithFS(efs), bundle.WithLogger(zerolog.Nop()), bundle.WithMissingPolicy(policy))
		require.NoError(t, err)
		return b.SetOutput(output)
	}

	assert.True(t, newBundler(config.MissingFail).NeedsRebuild())
	assert.False(t, newBundler(config.MissingSkip).NeedsRebuild())
}

func TestSave_WriteFailureKeepsResult(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Source("a.css", "a", testutil.Past)
	output := env.Output("site.css")
	efs := testutil.NewErrorFS(env.FS).Fail(testutil.OpWrite, output, fs.ErrPermission)

	b, err := bundle.New([]string{"a.css"}, env.Config(nil), bundle.WithFS(efs), bundle.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	_, err = b.SetOutput(output).Rebuild()
	require.NoError(t, err)

	saved, err := b.Save()
	require.Error(t, err)
	assert.False(t, saved)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputWrite))
	assert.Equal(t, output, errors.GetErrorDetails(err)["path"])

	result, ok := b.Result()
	assert.True(t, ok)
	assert.Equal(t, "a", result)
	assert.Equal(t, 1, efs.Calls(testutil.OpWrite))
}
