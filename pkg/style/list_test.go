package style

import (
	"testing"

	"github.com/arthur-debert/assetunion/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderBundleList(t *testing.T) {
	Plain()

	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, RenderBundleList(nil), "No bundles configured.")
	})

	t.Run("bundles_with_files", func(t *testing.T) {
		got := RenderBundleList([]types.BundleInfo{
			{Name: "site", Output: "public/site.css", Files: []string{"a.css", "b.css"}, Transform: "banner"},
			{Name: "app", Output: "public/app.js", Files: []string{"main.js"}},
		})

		assert.Contains(t, got, "site -> public/site.css [banner]")
		assert.Contains(t, got, "app -> public/app.js\n")
		assert.Contains(t, got, "      a.css\n      b.css\n")
		assert.NotContains(t, got, "No bundles configured.")
	})
}
