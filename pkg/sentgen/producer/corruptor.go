package producer

import (
	"context"
	"fmt"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/corrupt"
)

// Corruptor reads source sentences and damages each one to produce
// negative examples. Sentences no operation can damage (for instance a
// single word with drop/swap only) are silently skipped.
type Corruptor struct {
	cfg  config.Stage
	deps Deps
	ops  []corrupt.Op
}

func newCorruptor(cfg config.Stage, deps Deps) (*Corruptor, error) {
	ops, err := corrupt.ParseOps(cfg.Corruptions)
	if err != nil {
		return nil, err
	}
	return &Corruptor{cfg: cfg, deps: deps, ops: ops}, nil
}

// Sentences implements Producer.
func (c *Corruptor) Sentences(ctx context.Context) ([]string, error) {
	lines, err := readLines(c.cfg.Source)
	if err != nil {
		return nil, err
	}

	var vocab []string
	if c.cfg.Vocabulary != "" {
		wl, err := config.LoadWordList(c.cfg.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary %s: %w", c.cfg.Vocabulary, err)
		}
		vocab = wl.Terms
	}

	return corruptAll(lines, c.ops, vocab, c.deps), nil
}

// CorpusCorruptor is Corruptor with its replacement vocabulary drawn
// from a corpus store instead of a static word list, so replacements are
// words the model has actually seen.
type CorpusCorruptor struct {
	cfg  config.Stage
	deps Deps
	ops  []corrupt.Op
}

func newCorpusCorruptor(cfg config.Stage, deps Deps) (*CorpusCorruptor, error) {
	ops, err := corrupt.ParseOps(cfg.Corruptions)
	if err != nil {
		return nil, err
	}
	return &CorpusCorruptor{cfg: cfg, deps: deps, ops: ops}, nil
}

// Sentences implements Producer.
func (c *CorpusCorruptor) Sentences(ctx context.Context) ([]string, error) {
	lines, err := readLines(c.cfg.Source)
	if err != nil {
		return nil, err
	}

	st, err := c.deps.openStore(ctx, c.cfg.CorpusDB)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", c.cfg.CorpusDB, err)
	}
	defer st.Close()

	vocab, err := st.Vocabulary(ctx, 0)
	if err != nil {
		return nil, err
	}

	return corruptAll(lines, c.ops, vocab, c.deps), nil
}

func corruptAll(lines []string, ops []corrupt.Op, vocab []string, deps Deps) []string {
	corruptor := corrupt.New(ops, vocab, deps.rng())

	var out []string
	for _, line := range lines {
		if damaged, ok := corruptor.Corrupt(line); ok {
			out = append(out, damaged)
		}
	}
	return out
}
