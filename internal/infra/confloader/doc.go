// Package confloader fills config structs from layered sources using koanf.
//
// Layers, lowest priority first: values already in the target struct, a YAML
// file, MEMOD_* environment variables ("__" separates levels), and explicit
// overrides from command-line flags.
//
// Watcher tells callers when a config file was saved so they can re-apply
// settings that are safe to change while running.
package confloader
