package escape

// PTBName is the registry name of the stock Penn Treebank escaper.
const PTBName = "escape.PTBEscaper"

//nolint:gochecknoinits // stock escaper ships pre-registered.
func init() {
	Register(PTBName, func() Escaper { return PTBEscaper{} })
}

//nolint:gochecknoglobals // fixed Penn Treebank escape table.
var ptbEscapes = map[string]string{
	"(": "-LRB-",
	")": "-RRB-",
	"[": "-LSB-",
	"]": "-RSB-",
	"{": "-LCB-",
	"}": "-RCB-",
}

// PTBEscaper rewrites raw bracket characters into their Penn Treebank
// token forms (for example "(" becomes "-LRB-"). Tags are preserved.
type PTBEscaper struct{}

// Escape returns a new sequence with bracket words replaced by their
// treebank forms. The input sequence is not modified.
func (PTBEscaper) Escape(words []TaggedWord) []TaggedWord {
	escaped := make([]TaggedWord, len(words))

	for i, word := range words {
		escaped[i] = word
		if replacement, ok := ptbEscapes[word.Word]; ok {
			escaped[i].Word = replacement
		}
	}

	return escaped
}
