package assetunion

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/assetunion/internal/version"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var noConfig = map[string]string{annotationNoConfig: "true"}

// stdoutFile returns the *os.File behind the command's output, falling back
// to os.Stdout when output was redirected to a buffer.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return os.Stdout
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: noConfig,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionLine, version.Version)
			fmt.Fprintf(out, MsgCommitLine, version.Commit)
			fmt.Fprintf(out, MsgBuiltAtLine, version.Date)
			fmt.Fprintf(out, MsgLogFileLine, logging.LogFilePath())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations:           noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell to w.
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell: %s", shell)
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "man",
		Short:       MsgManShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenMan(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// GenMan writes the man page for root to w.
func GenMan(root *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "ASSETUNION",
		Section: "1",
		Source:  "assetunion " + version.Version,
		Manual:  "assetunion manual",
	}
	return doc.GenMan(root, header, w)
}
