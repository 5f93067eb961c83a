// Package yaml provides a YAML override parser for the config package.
//
// This package uses github.com/goccy/go-yaml for parsing with native
// PathString support for path navigation, so one YAML file can carry
// several override sections (for example per-experiment blocks) and a
// run selects one by path. Colon-separated paths (e.g. "train:large")
// are converted to YAML path format (e.g. "$.train.large") internally.
//
// Decoded values must be scalars; they are rendered back to strings
// because the configuration resolver owns the typed parsing and the
// loud failure on a value of the wrong type.
//
// Usage:
//
//	parser := yaml.NewParser()
//	overrides, err := parser.Parse(data, "train")
package yaml
