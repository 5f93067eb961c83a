package lang

// Pack bundles the language-specific treebank settings needed for
// training and evaluation: which tags mark punctuation and which
// tokens end a sentence.
type Pack struct {
	// Treebank is the name of the treebank the settings come from.
	Treebank string

	// PunctuationTags are part-of-speech tags assigned to punctuation.
	PunctuationTags []string

	// SentenceFinalWords are tokens that terminate a sentence when
	// splitting raw text automatically.
	SentenceFinalWords []string
}

//nolint:gochecknoglobals // fixed table over the closed language set.
var packs = map[Language]Pack{
	Arabic: {
		Treebank:           "Penn Arabic Treebank",
		PunctuationTags:    []string{"PUNC"},
		SentenceFinalWords: []string{".", "!", "?"},
	},
	Chinese: {
		Treebank:           "Penn Chinese Treebank",
		PunctuationTags:    []string{"PU"},
		SentenceFinalWords: []string{"。", "！", "？"},
	},
	English: {
		Treebank:           "Penn Treebank",
		PunctuationTags:    []string{"''", "``", "-LRB-", "-RRB-", ",", ".", ":", "#", "$"},
		SentenceFinalWords: []string{".", "!", "?"},
	},
	French: {
		Treebank:           "French Treebank",
		PunctuationTags:    []string{"PUNC"},
		SentenceFinalWords: []string{".", "!", "?"},
	},
	German: {
		Treebank:           "Negra Treebank",
		PunctuationTags:    []string{"$.", "$,", "$("},
		SentenceFinalWords: []string{".", "!", "?"},
	},
	Hebrew: {
		Treebank:           "Hebrew Treebank",
		PunctuationTags:    []string{"PUNC"},
		SentenceFinalWords: []string{".", "!", "?"},
	},
	Spanish: {
		Treebank:           "AnCora Treebank",
		PunctuationTags:    []string{"f0", "faa", "fat", "fc", "fd", "fe", "fg", "fh", "fia", "fit", "fp", "fpa", "fpt", "fs", "ft", "fx", "fz"},
		SentenceFinalWords: []string{".", "!", "?"},
	},
}

// PackFor returns the language pack for the given language. It is
// total over the supported language set; an out-of-range value yields
// the English pack.
func PackFor(language Language) Pack {
	pack, ok := packs[language]
	if !ok {
		return packs[English]
	}

	return pack
}
