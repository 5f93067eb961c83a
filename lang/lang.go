package lang

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned when a language name matches no supported language.
var ErrUnknownLanguage = errors.New("unknown language")

// Language identifies one of the supported treebank languages.
type Language int

// The closed set of supported languages.
const (
	Arabic Language = iota
	Chinese
	English
	French
	German
	Hebrew
	Spanish
)

//nolint:gochecknoglobals // fixed table over the closed language set.
var languageNames = [...]string{
	Arabic:  "Arabic",
	Chinese: "Chinese",
	English: "English",
	French:  "French",
	German:  "German",
	Hebrew:  "Hebrew",
	Spanish: "Spanish",
}

// String returns the canonical name of the language.
func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return fmt.Sprintf("Language(%d)", int(l))
	}

	return languageNames[l]
}

// Parse matches name case-insensitively against the supported languages.
// Returns ErrUnknownLanguage if no language matches.
func Parse(name string) (Language, error) {
	for lang, canonical := range languageNames {
		if strings.EqualFold(canonical, name) {
			return Language(lang), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// Languages returns all supported languages in declaration order.
func Languages() []Language {
	all := make([]Language, 0, len(languageNames))
	for lang := range languageNames {
		all = append(all, Language(lang))
	}

	return all
}
