// Package main provides the entry point for memod-cli.
//
// memod-cli talks to a memod-server over its HTTP API:
//
//	memod-cli memo create --title groceries --contents "milk, eggs"
//	memod-cli memo list
//	memod-cli -o json memo get 1
package main
