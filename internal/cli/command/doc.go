// Package command provides the memod-cli command tree.
//
// It uses urfave/cli/v2. Global flags fall back to ~/.memod/cli.yaml, and
// every command writes to the app's Writer so output can be captured.
package command
