// Package escape provides pluggable word-escaping strategies for raw
// sentence input, resolved by qualified name at configuration time.
//
// An Escaper maps a tagged token sequence to a tagged token sequence.
// Strategies are registered under a name with Register and
// instantiated with Load; configuration refers to them by name only,
// so new strategies can be added without touching the resolver.
//
// The stock Penn Treebank bracket escaper is pre-registered under
// PTBName.
package escape
