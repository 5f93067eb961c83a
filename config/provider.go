package config

import "fmt"

// Parser decodes raw override data into a flat key/value override
// set.
//
// The path parameter specifies a navigation path within the data
// using colon (:) as the separator for nested keys. For example,
// "train:overrides" navigates to data["train"]["overrides"]; the
// empty path decodes the entire document. Parser implementations are
// responsible for path navigation internally. See config/parser/yaml
// for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, path string) (map[string]string, error)
}

// Fetcher reads raw override data from some source.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that fetches override data, decodes it,
// and resolves it into a Config. The returned shape is DI-friendly:
// hand it to the container and let it supply the Parser and Fetcher.
func Provider(path string) func(Parser, Fetcher) (*Config, error) {
	return func(parser Parser, fetcher Fetcher) (*Config, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		overrides, err := parser.Parse(data, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		return Resolve(overrides)
	}
}
