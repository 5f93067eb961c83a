// Package config resolves the training and parsing configuration for
// the neural-network dependency parser.
//
// A Config starts from compiled-in defaults and is overridden
// field-by-field from a flat string-keyed override set, the natural
// shape of command-line -key value pairs or a properties file.
// Recognized keys are exactly the configurable field names
// (trainingThreads, wordCutOff, initRange, maxIter, batchSize,
// adaEps, adaAlpha, regParameter, dropProb, hiddenSize,
// embeddingSize, numPreComputed, evalPerIter, clearGradientsPerIter,
// saveIntermediate, sentenceDelimiter, tagger.model, escaper,
// language). Unrecognized keys are ignored.
//
// Resolution fails loudly: a value that does not parse as its
// declared type, a language outside the supported set, and an escaper
// name with no registered strategy are all errors, never silent
// fallbacks. No partial Config is ever returned.
//
// Override data can come from anywhere through the Parser and Fetcher
// interfaces; config/parser/yaml, config/parser/props and
// config/fetcher/file provide the stock implementations, and Provider
// ties the three steps together in a DI-friendly constructor shape.
package config
