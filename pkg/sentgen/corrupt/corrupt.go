package corrupt

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cognicore/sentgen/pkg/sentgen/internalerr"
	"github.com/cognicore/sentgen/pkg/sentgen/text"
)

// Op is one corruption operation applied to a sentence's words.
type Op string

const (
	// OpDrop removes one random word.
	OpDrop Op = "drop"
	// OpSwap exchanges two adjacent words.
	OpSwap Op = "swap"
	// OpReplace substitutes one word with a random vocabulary word.
	OpReplace Op = "replace"
	// OpDuplicate repeats one word in place.
	OpDuplicate Op = "duplicate"
)

// ParseOps converts configuration strings into operations, rejecting
// unknown names.
func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for _, name := range names {
		op := Op(strings.ToLower(strings.TrimSpace(name)))
		switch op {
		case OpDrop, OpSwap, OpReplace, OpDuplicate:
			ops = append(ops, op)
		default:
			return nil, fmt.Errorf("%w: unknown corruption %q", internalerr.ErrInvalidConfig, name)
		}
	}
	return ops, nil
}

// Corruptor damages sentences at the word level to produce negative
// training examples.
type Corruptor struct {
	rng   *rand.Rand
	vocab []string
	ops   []Op
}

// New creates a corruptor. The randomness source is injected so callers
// can seed it for reproducible negatives.
func New(ops []Op, vocab []string, rng *rand.Rand) *Corruptor {
	if len(ops) == 0 {
		ops = []Op{OpDrop, OpSwap, OpReplace}
	}
	return &Corruptor{rng: rng, vocab: vocab, ops: ops}
}

// Corrupt applies one randomly chosen applicable operation to the
// sentence. It returns false when no configured operation can change the
// sentence (too few words, or no vocabulary for replacement).
func (c *Corruptor) Corrupt(sentence string) (string, bool) {
	words := text.Words(sentence)

	applicable := c.applicableOps(words)
	if len(applicable) == 0 {
		return "", false
	}

	op := applicable[c.rng.Intn(len(applicable))]
	switch op {
	case OpDrop:
		i := c.rng.Intn(len(words))
		words = append(words[:i], words[i+1:]...)
	case OpSwap:
		i := c.rng.Intn(len(words) - 1)
		words[i], words[i+1] = words[i+1], words[i]
	case OpReplace:
		i := c.rng.Intn(len(words))
		words[i] = c.vocab[c.rng.Intn(len(c.vocab))]
	case OpDuplicate:
		i := c.rng.Intn(len(words))
		dup := make([]string, 0, len(words)+1)
		dup = append(dup, words[:i+1]...)
		dup = append(dup, words[i:]...)
		words = dup
	}

	return strings.Join(words, " "), true
}

func (c *Corruptor) applicableOps(words []string) []Op {
	var out []Op
	for _, op := range c.ops {
		switch op {
		case OpDrop, OpSwap:
			if len(words) >= 2 {
				out = append(out, op)
			}
		case OpReplace:
			if len(words) >= 1 && len(c.vocab) > 0 {
				out = append(out, op)
			}
		case OpDuplicate:
			if len(words) >= 1 {
				out = append(out, op)
			}
		}
	}
	return out
}
