package selection

import (
	"testing"

	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	cfg := &config.Config{Bundles: map[string]config.BundleConfig{
		"b": {Files: []string{"b.css"}, Output: "b.out"},
		"a": {Files: []string{"a.css"}, Output: "a.out"},
	}}

	t.Run("all_sorted", func(t *testing.T) {
		got, err := Select(cfg, nil, nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Name)
		assert.Equal(t, "b", got[1].Name)
	})

	t.Run("named_keep_order", func(t *testing.T) {
		got, err := Select(cfg, []string{"b", "a"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "b", got[0].Name)
		assert.Equal(t, "a", got[1].Name)
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := Select(cfg, []string{"a", "zzz"}, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBundleNotFound))
	})

	t.Run("ad_hoc_wins", func(t *testing.T) {
		adHoc := &Named{Name: "x", Bundle: config.BundleConfig{Files: []string{"x.css"}, Output: "x.out"}}
		got, err := Select(cfg, []string{"a"}, adHoc)
		require.NoError(t, err)
		assert.Equal(t, []Named{*adHoc}, got)
	})

	t.Run("ad_hoc_needs_output", func(t *testing.T) {
		_, err := Select(cfg, nil, &Named{Name: "x", Bundle: config.BundleConfig{Files: []string{"x.css"}}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("nil_config", func(t *testing.T) {
		_, err := Select(nil, nil, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})
}
