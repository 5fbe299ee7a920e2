package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/assetunion/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

var statusIcons = map[types.Status]string{
	types.StatusBuilt:    "✓",
	types.StatusUpToDate: "•",
	types.StatusStale:    "!",
	types.StatusSkipped:  "-",
	types.StatusFailed:   "✗",
}

// StatusStyle returns the style used for a status label
func StatusStyle(status types.Status) lipgloss.Style {
	switch status {
	case types.StatusBuilt:
		return SuccessStyle
	case types.StatusStale:
		return WarningStyle
	case types.StatusFailed:
		return ErrorStyle
	default:
		return MutedStyle
	}
}

// BundleStatus is one line of a build or check report
type BundleStatus struct {
	Name   string
	Status types.Status
	Output string
	Detail string
}

// RenderBundleStatus renders a single report line
func RenderBundleStatus(bs BundleStatus) string {
	st := StatusStyle(bs.Status)
	line := fmt.Sprintf("  %s %s %s",
		st.Render(statusIcons[bs.Status]),
		NameStyle.Render(fmt.Sprintf("%-12s", bs.Name)),
		st.Render(fmt.Sprintf("%-10s", string(bs.Status))),
	)
	if bs.Output != "" {
		line += " " + PathStyle.Render(bs.Output)
	}
	if bs.Detail != "" {
		line += " " + MutedStyle.Render("("+bs.Detail+")")
	}
	return strings.TrimRight(line, " ")
}

// RenderReport renders a titled list of bundle statuses
func RenderReport(title string, statuses []BundleStatus) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Render(title) + "\n")
	if len(statuses) == 0 {
		result.WriteString(MutedStyle.Render("  No bundles configured.") + "\n")
		return result.String()
	}
	for _, bs := range statuses {
		result.WriteString(RenderBundleStatus(bs) + "\n")
	}
	return result.String()
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}
