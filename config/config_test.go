package config_test

import (
	"testing"

	"github.com/treegram/nndep/config"
	"github.com/treegram/nndep/escape"
	"github.com/treegram/nndep/lang"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmptyOverridesYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, lang.English, cfg.Language())
	assert.Equal(t, lang.PackFor(lang.English), cfg.Pack())
	assert.Equal(t, 1, cfg.TrainingThreads())
	assert.Equal(t, 1, cfg.WordCutOff())
	assert.InEpsilon(t, 0.01, cfg.InitRange(), 1e-12)
	assert.Equal(t, 20000, cfg.MaxIter())
	assert.Equal(t, 10000, cfg.BatchSize())
	assert.InEpsilon(t, 1e-6, cfg.AdaEps(), 1e-12)
	assert.InEpsilon(t, 0.01, cfg.AdaAlpha(), 1e-12)
	assert.InEpsilon(t, 1e-8, cfg.RegParameter(), 1e-12)
	assert.InEpsilon(t, 0.5, cfg.DropProb(), 1e-12)
	assert.Equal(t, 200, cfg.HiddenSize())
	assert.Equal(t, 50, cfg.EmbeddingSize())
	assert.Equal(t, 100000, cfg.NumPreComputed())
	assert.Equal(t, 100, cfg.EvalPerIter())
	assert.Equal(t, 0, cfg.ClearGradientsPerIter())
	assert.True(t, cfg.SaveIntermediate())
	assert.Empty(t, cfg.SentenceDelimiter())
	assert.Nil(t, cfg.Escaper())
	assert.Equal(t, config.DefaultTaggerModel, cfg.TaggerModel())
}

func TestResolve_SingleOverrideIsIsolated(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		key     string
		value   string
		inspect func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "trainingThreads",
			key:   "trainingThreads",
			value: "8",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 8, cfg.TrainingThreads())
			},
		},
		{
			name:  "wordCutOff",
			key:   "wordCutOff",
			value: "3",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 3, cfg.WordCutOff())
			},
		},
		{
			name:  "initRange",
			key:   "initRange",
			value: "0.05",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.InEpsilon(t, 0.05, cfg.InitRange(), 1e-12)
			},
		},
		{
			name:  "maxIter",
			key:   "maxIter",
			value: "500",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 500, cfg.MaxIter())
			},
		},
		{
			name:  "batchSize",
			key:   "batchSize",
			value: "256",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 256, cfg.BatchSize())
			},
		},
		{
			name:  "adaEps",
			key:   "adaEps",
			value: "1e-8",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.InEpsilon(t, 1e-8, cfg.AdaEps(), 1e-12)
			},
		},
		{
			name:  "adaAlpha",
			key:   "adaAlpha",
			value: "0.02",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.InEpsilon(t, 0.02, cfg.AdaAlpha(), 1e-12)
			},
		},
		{
			name:  "regParameter",
			key:   "regParameter",
			value: "1e-4",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.InEpsilon(t, 1e-4, cfg.RegParameter(), 1e-12)
			},
		},
		{
			name:  "dropProb",
			key:   "dropProb",
			value: "0.25",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.InEpsilon(t, 0.25, cfg.DropProb(), 1e-12)
			},
		},
		{
			name:  "hiddenSize",
			key:   "hiddenSize",
			value: "400",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 400, cfg.HiddenSize())
			},
		},
		{
			name:  "embeddingSize",
			key:   "embeddingSize",
			value: "100",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 100, cfg.EmbeddingSize())
			},
		},
		{
			name:  "numPreComputed zero disables precomputation",
			key:   "numPreComputed",
			value: "0",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 0, cfg.NumPreComputed())
			},
		},
		{
			name:  "evalPerIter",
			key:   "evalPerIter",
			value: "50",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 50, cfg.EvalPerIter())
			},
		},
		{
			name:  "clearGradientsPerIter",
			key:   "clearGradientsPerIter",
			value: "1000",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, 1000, cfg.ClearGradientsPerIter())
			},
		},
		{
			name:  "saveIntermediate",
			key:   "saveIntermediate",
			value: "false",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.False(t, cfg.SaveIntermediate())
			},
		},
		{
			name:  "sentenceDelimiter",
			key:   "sentenceDelimiter",
			value: "\n",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "\n", cfg.SentenceDelimiter())
			},
		},
		{
			name:  "tagger.model",
			key:   "tagger.model",
			value: "models/custom.tagger",
			inspect: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "models/custom.tagger", cfg.TaggerModel())
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Resolve(map[string]string{testCase.key: testCase.value})
			require.NoError(t, err)

			testCase.inspect(t, cfg)
		})
	}
}

func TestResolve_OverrideIsolation(t *testing.T) {
	t.Parallel()

	defaultCfg, err := config.Resolve(nil)
	require.NoError(t, err)

	cfg, err := config.Resolve(map[string]string{"maxIter": "500"})
	require.NoError(t, err)

	// Only the overridden field moves; everything else keeps its default.
	assert.Equal(t, 500, cfg.MaxIter())
	assert.Equal(t, defaultCfg.Language(), cfg.Language())
	assert.Equal(t, defaultCfg.Pack(), cfg.Pack())
	assert.Equal(t, defaultCfg.TrainingThreads(), cfg.TrainingThreads())
	assert.Equal(t, defaultCfg.WordCutOff(), cfg.WordCutOff())
	assert.InEpsilon(t, defaultCfg.InitRange(), cfg.InitRange(), 1e-12)
	assert.Equal(t, defaultCfg.BatchSize(), cfg.BatchSize())
	assert.InEpsilon(t, defaultCfg.AdaEps(), cfg.AdaEps(), 1e-12)
	assert.InEpsilon(t, defaultCfg.AdaAlpha(), cfg.AdaAlpha(), 1e-12)
	assert.InEpsilon(t, defaultCfg.RegParameter(), cfg.RegParameter(), 1e-12)
	assert.InEpsilon(t, defaultCfg.DropProb(), cfg.DropProb(), 1e-12)
	assert.Equal(t, defaultCfg.HiddenSize(), cfg.HiddenSize())
	assert.Equal(t, defaultCfg.EmbeddingSize(), cfg.EmbeddingSize())
	assert.Equal(t, defaultCfg.NumPreComputed(), cfg.NumPreComputed())
	assert.Equal(t, defaultCfg.EvalPerIter(), cfg.EvalPerIter())
	assert.Equal(t, defaultCfg.ClearGradientsPerIter(), cfg.ClearGradientsPerIter())
	assert.Equal(t, defaultCfg.SaveIntermediate(), cfg.SaveIntermediate())
	assert.Equal(t, defaultCfg.SentenceDelimiter(), cfg.SentenceDelimiter())
	assert.Equal(t, defaultCfg.TaggerModel(), cfg.TaggerModel())
}

func TestResolve_UnrecognizedKeysAreIgnored(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(map[string]string{
		"noSuchOption":  "whatever",
		"another.thing": "42",
	})
	require.NoError(t, err)

	defaultCfg, err := config.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultCfg, cfg)
}

func TestResolve_UnparseableValueFails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"int field with text", "maxIter", "abc", "int"},
		{"int field with float", "hiddenSize", "1.5", "int"},
		{"float field with text", "dropProb", "half", "float"},
		{"bool field with text", "saveIntermediate", "yes please", "bool"},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Resolve(map[string]string{testCase.key: testCase.value})

			require.Error(t, err)
			assert.Nil(t, cfg)

			var parseErr *config.ParseError

			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, testCase.key, parseErr.Key)
			assert.Equal(t, testCase.value, parseErr.Value)
			assert.Equal(t, testCase.want, parseErr.Want)
		})
	}
}

func TestResolve_LanguageCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, err := config.Resolve(map[string]string{"language": "GERMAN"})
	require.NoError(t, err)

	lower, err := config.Resolve(map[string]string{"language": "german"})
	require.NoError(t, err)

	assert.Equal(t, lang.German, upper.Language())
	assert.Equal(t, upper.Language(), lower.Language())
	assert.Equal(t, upper.Pack(), lower.Pack())
}

func TestResolve_LanguageDerivesPack(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(map[string]string{"language": "Chinese"})
	require.NoError(t, err)

	assert.Equal(t, lang.Chinese, cfg.Language())
	assert.Equal(t, lang.PackFor(lang.Chinese), cfg.Pack())
}

func TestResolve_UnknownLanguageFails(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(map[string]string{"language": "Klingon"})

	require.Error(t, err)
	require.ErrorIs(t, err, lang.ErrUnknownLanguage)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "language")
}

func TestResolve_EscaperByName(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(map[string]string{"escaper": escape.PTBName})
	require.NoError(t, err)
	require.NotNil(t, cfg.Escaper())

	escaped := cfg.Escaper().Escape([]escape.TaggedWord{{Word: "(", Tag: "-LRB-"}})
	assert.Equal(t, "-LRB-", escaped[0].Word)
}

func TestResolve_UnknownEscaperFails(t *testing.T) {
	t.Parallel()

	cfg, err := config.Resolve(map[string]string{"escaper": "no.such.Escaper"})

	require.Error(t, err)
	require.ErrorIs(t, err, escape.ErrUnknownEscaper)
	assert.Nil(t, cfg)

	var strategyErr *config.StrategyError

	require.ErrorAs(t, err, &strategyErr)
	assert.Equal(t, "no.such.Escaper", strategyErr.Name)
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	overrides := map[string]string{
		"language":   "french",
		"maxIter":    "1234",
		"dropProb":   "0.1",
		"escaper":    escape.PTBName,
		"extraneous": "ignored",
	}

	first, err := config.Resolve(overrides)
	require.NoError(t, err)

	second, err := config.Resolve(overrides)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNumTokens_IsNotOverridable(t *testing.T) {
	t.Parallel()

	// numTokens is a structural constant; an override of that name is
	// just another unrecognized key.
	cfg, err := config.Resolve(map[string]string{"numTokens": "96"})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 48, config.NumTokens)
}
