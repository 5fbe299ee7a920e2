package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetunion/cmd/assetunion"
	"github.com/arthur-debert/assetunion/pkg/style"
)

func main() {
	rootCmd := assetunion.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
