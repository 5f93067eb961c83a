package escape

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownEscaper is returned when Load is given a name that no
// registered factory matches.
var ErrUnknownEscaper = errors.New("unknown escaper")

// TaggedWord is a single token paired with its part-of-speech tag.
type TaggedWord struct {
	Word string
	Tag  string
}

// Escaper transforms a tagged token sequence before parsing, for
// example to normalize raw-text characters into their treebank forms.
type Escaper interface {
	Escape(words []TaggedWord) []TaggedWord
}

// Factory constructs a new Escaper instance.
type Factory func() Escaper

//nolint:gochecknoglobals // process-wide escaper registry.
var registry = struct {
	sync.RWMutex
	factories map[string]Factory
}{
	factories: make(map[string]Factory),
}

// Register makes an escaper available to Load under the given
// qualified name. Registering the same name twice replaces the
// earlier factory.
func Register(name string, factory Factory) {
	registry.Lock()
	defer registry.Unlock()

	registry.factories[name] = factory
}

// Load instantiates the escaper registered under name. Returns
// ErrUnknownEscaper if no factory is registered for it.
func Load(name string) (Escaper, error) {
	registry.RLock()
	factory, ok := registry.factories[name]
	registry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEscaper, name)
	}

	return factory(), nil
}

// Names returns the registered escaper names in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
