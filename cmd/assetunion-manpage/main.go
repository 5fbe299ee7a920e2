package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetunion/cmd/assetunion"
)

func main() {
	if err := assetunion.GenMan(assetunion.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
