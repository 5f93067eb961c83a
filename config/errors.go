package config

import "fmt"

// ParseError reports an override value that does not parse as the
// declared type of its key.
type ParseError struct {
	Key   string
	Value string
	Want  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config key %q: cannot parse %q as %s", e.Key, e.Value, e.Want)
}

// StrategyError reports an escaper override whose name did not
// resolve to a registered strategy.
type StrategyError struct {
	Name string
	err  error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("config key %q: %v", keyEscaper, e.err)
}

func (e *StrategyError) Unwrap() error {
	return e.err
}
