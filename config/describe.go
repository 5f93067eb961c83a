package config

import (
	"fmt"
	"io"
)

// Describe renders the configuration as one formatted line per field,
// in a fixed order. The order and the field set are stable because
// operator tooling scrapes these lines from run logs.
func (c *Config) Describe() []string {
	return []string{
		fmt.Sprintf("language = %s", c.language),
		fmt.Sprintf("trainingThreads = %d", c.trainingThreads),
		fmt.Sprintf("wordCutOff = %d", c.wordCutOff),
		fmt.Sprintf("initRange = %.2g", c.initRange),
		fmt.Sprintf("maxIter = %d", c.maxIter),
		fmt.Sprintf("batchSize = %d", c.batchSize),
		fmt.Sprintf("adaEps = %.2g", c.adaEps),
		fmt.Sprintf("adaAlpha = %.2g", c.adaAlpha),
		fmt.Sprintf("regParameter = %.2g", c.regParameter),
		fmt.Sprintf("dropProb = %.2g", c.dropProb),
		fmt.Sprintf("hiddenSize = %d", c.hiddenSize),
		fmt.Sprintf("embeddingSize = %d", c.embeddingSize),
		fmt.Sprintf("numPreComputed = %d", c.numPreComputed),
		fmt.Sprintf("evalPerIter = %d", c.evalPerIter),
		fmt.Sprintf("clearGradientsPerIter = %d", c.clearGradientsPerIter),
		fmt.Sprintf("saveIntermediate = %t", c.saveIntermediate),
	}
}

// Print writes the Describe lines to w, one per line. Errors from w
// are ignored; the dump is operator-facing diagnostics only.
func (c *Config) Print(w io.Writer) {
	for _, line := range c.Describe() {
		fmt.Fprintln(w, line)
	}
}
