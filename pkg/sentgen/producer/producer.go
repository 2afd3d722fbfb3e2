// Package producer holds the sentence-producing strategies and the
// factory that selects one from configuration. A Producer only computes
// an ordered candidate sequence; formatting, sampling and persistence
// live in the output package so the two capabilities compose freely.
package producer

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
	"github.com/cognicore/sentgen/pkg/sentgen/corpus/sqlite"
	"github.com/cognicore/sentgen/pkg/sentgen/internalerr"
)

// Producer computes an ordered sequence of candidate sentences. The
// order is the producer's own generation order and stays meaningful
// until the output contract samples it.
type Producer interface {
	Sentences(ctx context.Context) ([]string, error)
}

// Deps carries the injectable dependencies shared by producers.
type Deps struct {
	// OpenStore opens a corpus store by path. Defaults to the SQLite
	// store; tests inject an in-memory one.
	OpenStore func(ctx context.Context, path string) (corpus.Store, error)

	// Rand is the randomness source for corruption. When nil, a
	// time-seeded source is created per producer.
	Rand *rand.Rand
}

func (d Deps) openStore(ctx context.Context, path string) (corpus.Store, error) {
	if d.OpenStore != nil {
		return d.OpenStore(ctx, path)
	}
	return sqlite.Open(ctx, path)
}

func (d Deps) rng() *rand.Rand {
	if d.Rand != nil {
		return d.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// New constructs the producer selected by cfg.Producer. Adding a variant
// means adding one case here; the output contract is untouched.
// Configuration problems (unknown kind, malformed variant fields) fail
// now, at stage-construction time.
func New(cfg config.Stage, deps Deps) (Producer, error) {
	switch cfg.Producer {
	case config.KindSelector:
		return newSelector(cfg, deps), nil
	case config.KindCorruptor:
		return newCorruptor(cfg, deps)
	case config.KindCorpusCorruptor:
		return newCorpusCorruptor(cfg, deps)
	case config.KindQuestionInterpreter:
		return newQuestionInterpreter(cfg), nil
	case config.KindManual:
		return &Manual{Filename: cfg.Filename}, nil
	default:
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnknownProducer, string(cfg.Producer))
	}
}

// readLines loads a line-oriented text file, dropping blank lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
