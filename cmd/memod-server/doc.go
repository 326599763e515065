// Package main provides the entry point for memod-server.
//
// memod-server keeps memos in memory and serves them over HTTP. Settings
// come from defaults, an optional YAML file (-config), MEMOD_* environment
// variables and finally command-line flags. Changing log.level in the
// config file takes effect without a restart.
package main
