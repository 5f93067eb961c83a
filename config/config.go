package config

import (
	"github.com/treegram/nndep/escape"
	"github.com/treegram/nndep/lang"
)

// Out-of-vocabulary token string.
const Unknown = "-UNKNOWN-"

// Root token string.
const Root = "-ROOT-"

// Null is the non-existent token string.
const Null = "-NULL-"

// NonExist represents a non-existent token index.
const NonExist = -1

// Separator is used when printing run banners.
const Separator = "###################"

// NumTokens is the total number of tokens provided as input to the
// classifier, each in word embedding form. Downstream tensor shapes
// depend on it, so it is a constant rather than a configurable field.
const NumTokens = 48

// DefaultTaggerModel is the bundled part-of-speech tagger model path.
const DefaultTaggerModel = "models/english-left3words-distsim.tagger"

// Config is a fully resolved training and parsing configuration. It
// is built once by Resolve and read-only afterward; all access goes
// through the getter methods, so a Config handed to the pipeline is
// safe for concurrent reads.
type Config struct {
	language lang.Language
	pack     lang.Pack

	trainingThreads       int
	wordCutOff            int
	initRange             float64
	maxIter               int
	batchSize             int
	adaEps                float64
	adaAlpha              float64
	regParameter          float64
	dropProb              float64
	hiddenSize            int
	embeddingSize         int
	numPreComputed        int
	evalPerIter           int
	clearGradientsPerIter int
	saveIntermediate      bool

	sentenceDelimiter string
	escaper           escape.Escaper
	taggerModel       string
}

func defaults() Config {
	return Config{
		language:              lang.English,
		pack:                  lang.Pack{},
		trainingThreads:       1,
		wordCutOff:            1,
		initRange:             0.01,
		maxIter:               20000,
		batchSize:             10000,
		adaEps:                1e-6,
		adaAlpha:              0.01,
		regParameter:          1e-8,
		dropProb:              0.5,
		hiddenSize:            200,
		embeddingSize:         50,
		numPreComputed:        100000,
		evalPerIter:           100,
		clearGradientsPerIter: 0,
		saveIntermediate:      true,
		sentenceDelimiter:     "",
		escaper:               nil,
		taggerModel:           DefaultTaggerModel,
	}
}

// Language returns the language being parsed.
func (c *Config) Language() lang.Language { return c.language }

// Pack returns the language pack derived from Language.
func (c *Config) Pack() lang.Pack { return c.pack }

// TrainingThreads returns the number of threads to use during
// training. It also indirectly controls how mini-batches are
// partitioned (more threads means smaller partitions).
func (c *Config) TrainingThreads() int { return c.trainingThreads }

// WordCutOff returns the minimum corpus frequency below which words
// are excluded from training.
func (c *Config) WordCutOff() int { return c.wordCutOff }

// InitRange returns the half-width of the uniform range model weights
// are initialized from.
func (c *Config) InitRange() float64 { return c.initRange }

// MaxIter returns the maximum number of training iterations.
func (c *Config) MaxIter() int { return c.maxIter }

// BatchSize returns the number of training examples sampled per
// iteration.
func (c *Config) BatchSize() int { return c.batchSize }

// AdaEps returns the epsilon added to the AdaGrad denominator for
// numerical stability.
func (c *Config) AdaEps() float64 { return c.adaEps }

// AdaAlpha returns the initial global learning rate for AdaGrad.
func (c *Config) AdaAlpha() float64 { return c.adaAlpha }

// RegParameter returns the regularization parameter applied to all
// weight updates.
func (c *Config) RegParameter() float64 { return c.regParameter }

// DropProb returns the dropout probability.
func (c *Config) DropProb() float64 { return c.dropProb }

// HiddenSize returns the size of the hidden layer.
func (c *Config) HiddenSize() int { return c.hiddenSize }

// EmbeddingSize returns the dimensionality of the word embeddings.
func (c *Config) EmbeddingSize() int { return c.embeddingSize }

// NumPreComputed returns the number of input tokens to precompute
// hidden-layer activations for. Zero skips the precomputation step.
func (c *Config) NumPreComputed() int { return c.numPreComputed }

// EvalPerIter returns the iteration interval between full evaluations
// during training.
func (c *Config) EvalPerIter() int { return c.evalPerIter }

// ClearGradientsPerIter returns the iteration interval between
// AdaGrad gradient-history clears. Zero means never clear.
func (c *Config) ClearGradientsPerIter() int { return c.clearGradientsPerIter }

// SaveIntermediate reports whether an intermediate model is saved
// whenever evaluation improves.
func (c *Config) SaveIntermediate() bool { return c.saveIntermediate }

// SentenceDelimiter returns the delimiter separating pre-split
// sentences in raw text. Empty means sentences are split
// automatically.
func (c *Config) SentenceDelimiter() string { return c.sentenceDelimiter }

// Escaper returns the word-escaping strategy to apply when parsing
// raw sentences, or nil if none was configured.
func (c *Config) Escaper() escape.Escaper { return c.escaper }

// TaggerModel returns the path to the part-of-speech tagger model.
func (c *Config) TaggerModel() string { return c.taggerModel }
