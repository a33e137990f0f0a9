package gamedata

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes a YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// Decode reads a YAML document from r. Unknown fields are rejected so that
// typos in hand-written catalogs surface at load time.
func Decode[T any](r io.Reader) (T, error) {
	var result T

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode YAML: %w", err)
	}

	return result, nil
}

// MustLoad reads and decodes a YAML file, panicking on error.
// Use this for data that must be present for the tracker to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
