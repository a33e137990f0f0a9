// Package data provides embedded sample encounters and utilities for loading them.
package data

import "embed"

// dataFS embeds all YAML files from the data directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing encounter data.
func FS() embed.FS {
	return dataFS
}
