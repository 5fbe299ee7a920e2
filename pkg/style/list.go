package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/assetunion/pkg/types"
)

// RenderBundleList renders configured bundles, one block per bundle
func RenderBundleList(bundles []types.BundleInfo) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Render("Bundles:") + "\n")
	if len(bundles) == 0 {
		result.WriteString(MutedStyle.Render("  No bundles configured.") + "\n")
		return result.String()
	}

	for _, b := range bundles {
		line := fmt.Sprintf("  %s -> %s", NameStyle.Render(b.Name), PathStyle.Render(b.Output))
		if b.Transform != "" {
			line += " " + MutedStyle.Render("["+b.Transform+"]")
		}
		result.WriteString(line + "\n")
		for _, f := range b.Files {
			result.WriteString(MutedStyle.Render("      "+f) + "\n")
		}
	}
	return result.String()
}
