// Package types defines the result types shared by the command
// implementations in pkg/commands and the CLI that renders them.
package types
