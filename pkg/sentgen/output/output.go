package output

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Options controls how a candidate sequence is turned into output lines.
type Options struct {
	// CreateSentenceIndices prefixes each line with its zero-based
	// position in the original candidate sequence and a tab.
	CreateSentenceIndices bool

	// MaxSentences caps the number of output lines via random subset
	// selection. Zero means no cap.
	MaxSentences int
}

// Format converts candidate sentences into output lines. Indices, when
// enabled, reflect each sentence's position in the input sequence and are
// assigned before any sampling. Sentence text is written verbatim:
// embedded tabs or newlines are NOT escaped, matching the file format
// downstream consumers already parse.
func Format(candidates []string, opts Options) []string {
	lines := make([]string, len(candidates))
	for i, s := range candidates {
		if opts.CreateSentenceIndices {
			lines[i] = fmt.Sprintf("%d\t%s", i, s)
		} else {
			lines[i] = s
		}
	}
	return lines
}

// Sample shuffles lines uniformly and keeps the first k. With k >= len(lines)
// the result is a permutation of the full input; otherwise it is a uniformly
// random k-subset in random order. The input slice is not modified.
func Sample(lines []string, k int, rng *rand.Rand) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if k >= 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// WriteLines persists lines to path, one record per line, overwriting any
// prior content in full. An empty slice produces an empty file.
func WriteLines(lines []string, path string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

// Writer finishes a producer's job: format, optionally sample, persist.
type Writer struct {
	Path    string
	Options Options

	// Rand is the randomness source used for sampling. Callers that need
	// reproducible output inject a seeded source; when nil, a time-seeded
	// source is created per call.
	Rand *rand.Rand
}

// Write formats the candidate sequence, applies the sampling cap when one
// is configured, and overwrites the output file. Empty input is valid and
// yields an empty file.
func (w *Writer) Write(candidates []string) error {
	lines := Format(candidates, w.Options)
	if w.Options.MaxSentences > 0 {
		rng := w.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		lines = Sample(lines, w.Options.MaxSentences, rng)
	}
	return WriteLines(lines, w.Path)
}
