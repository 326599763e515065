// Package config holds the memod-cli local settings (~/.memod/cli.yaml).
//
// The file only supplies defaults. Flags and MEMOD_* environment variables
// given on the command line always win.
package config
