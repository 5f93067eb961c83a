// Package lang defines the closed set of supported treebank languages
// and the language pack registry that maps each language to its
// language-specific settings.
//
// Language selection is case-insensitive: Parse("english") and
// Parse("ENGLISH") both resolve to English. An unmatched name is an
// error, never a silent fallback.
//
// A Pack is always derived from a Language through PackFor; the two
// cannot drift out of sync because no caller stores a Pack
// independently of the Language it came from.
package lang
