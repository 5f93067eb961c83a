package props

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrMalformedLine is returned when a non-comment line has no separator.
var ErrMalformedLine = errors.New("malformed line")

// ErrPathUnsupported is returned when a navigation path is given; the
// properties format is flat and has no sections.
var ErrPathUnsupported = errors.New("properties format does not support paths")

// Parser implements config.Parser for properties-style override
// files: one "key = value" pair per line, with # and ! comments.
type Parser struct{}

// NewParser creates a new properties override parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes properties data into a flat override set. Keys are
// trimmed; values keep interior whitespace but lose surrounding
// whitespace. A later line with the same key replaces the earlier one.
func (p *Parser) Parse(data []byte, path string) (map[string]string, error) {
	if path != "" {
		return nil, fmt.Errorf("%w: %q", ErrPathUnsupported, path)
	}

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	overrides := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, lineNo, line)
		}

		overrides[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scanning properties: %w", err)
	}

	return overrides, nil
}
