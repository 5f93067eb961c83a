package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotScalar is returned when an override value is a mapping or sequence.
var ErrNotScalar = errors.New("override value must be a scalar")

// Parser implements config.Parser for YAML override files.
// It uses goccy/go-yaml PathString for efficient path navigation.
type Parser struct{}

// NewParser creates a new YAML override parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a flat override set. The path
// parameter selects a sub-document using colon (:) as separator;
// empty path decodes the entire document. Every value under the
// selected mapping must be a scalar and is rendered to its string
// form for the resolver to re-parse.
func (p *Parser) Parse(data []byte, path string) (map[string]string, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var raw map[string]any

	if path == "" {
		err := yaml.Unmarshal(data, &raw)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		err := readPath(data, path, &raw)
		if err != nil {
			return nil, err
		}
	}

	overrides := make(map[string]string, len(raw))

	for key, value := range raw {
		rendered, err := renderScalar(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		overrides[key] = rendered
	}

	return overrides, nil
}

func readPath(data []byte, path string, target *map[string]any) error {
	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// renderScalar renders a decoded YAML scalar back to the string form
// the configuration resolver parses.
func renderScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w, got %T", ErrNotScalar, value)
	}
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "train:overrides" -> "$.train.overrides"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
