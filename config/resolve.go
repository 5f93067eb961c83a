package config

import (
	"fmt"
	"strconv"

	"github.com/treegram/nndep/escape"
	"github.com/treegram/nndep/lang"
)

// Keys resolved outside the typed field table.
const (
	keyLanguage = "language"
	keyEscaper  = "escaper"
)

type fieldSpec struct {
	key  string
	want string
	set  func(raw string) error
}

func intField(key string, dst *int) fieldSpec {
	return fieldSpec{
		key:  key,
		want: "int",
		set: func(raw string) error {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}

			*dst = value

			return nil
		},
	}
}

func floatField(key string, dst *float64) fieldSpec {
	return fieldSpec{
		key:  key,
		want: "float",
		set: func(raw string) error {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return err
			}

			*dst = value

			return nil
		},
	}
}

func boolField(key string, dst *bool) fieldSpec {
	return fieldSpec{
		key:  key,
		want: "bool",
		set: func(raw string) error {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				return err
			}

			*dst = value

			return nil
		},
	}
}

func stringField(key string, dst *string) fieldSpec {
	return fieldSpec{
		key:  key,
		want: "string",
		set: func(raw string) error {
			*dst = raw

			return nil
		},
	}
}

// Resolve builds a Config from compiled-in defaults plus the given
// overrides. Each recognized key is parsed according to its declared
// type; a value that does not parse is a *ParseError. Unrecognized
// keys are ignored. The language pack is always re-derived from the
// resolved language, and an escaper override is instantiated through
// the escape registry. Resolution is all-or-nothing: on any failure
// the returned Config is nil.
func Resolve(overrides map[string]string) (*Config, error) {
	cfg := defaults()

	fields := []fieldSpec{
		intField("trainingThreads", &cfg.trainingThreads),
		intField("wordCutOff", &cfg.wordCutOff),
		floatField("initRange", &cfg.initRange),
		intField("maxIter", &cfg.maxIter),
		intField("batchSize", &cfg.batchSize),
		floatField("adaEps", &cfg.adaEps),
		floatField("adaAlpha", &cfg.adaAlpha),
		floatField("regParameter", &cfg.regParameter),
		floatField("dropProb", &cfg.dropProb),
		intField("hiddenSize", &cfg.hiddenSize),
		intField("embeddingSize", &cfg.embeddingSize),
		intField("numPreComputed", &cfg.numPreComputed),
		intField("evalPerIter", &cfg.evalPerIter),
		intField("clearGradientsPerIter", &cfg.clearGradientsPerIter),
		boolField("saveIntermediate", &cfg.saveIntermediate),
		stringField("sentenceDelimiter", &cfg.sentenceDelimiter),
		stringField("tagger.model", &cfg.taggerModel),
	}

	for _, spec := range fields {
		raw, ok := overrides[spec.key]
		if !ok {
			continue
		}

		err := spec.set(raw)
		if err != nil {
			return nil, &ParseError{Key: spec.key, Value: raw, Want: spec.want}
		}
	}

	// Language must be resolved before the pack is derived from it.
	raw, ok := overrides[keyLanguage]
	if ok {
		language, err := lang.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("config key %q: %w", keyLanguage, err)
		}

		cfg.language = language
	}

	cfg.pack = lang.PackFor(cfg.language)

	name, ok := overrides[keyEscaper]
	if ok {
		escaper, err := escape.Load(name)
		if err != nil {
			return nil, &StrategyError{Name: name, err: err}
		}

		cfg.escaper = escaper
	}

	return &cfg, nil
}
