package producer

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
	"github.com/cognicore/sentgen/pkg/sentgen/text"
)

// Selector pulls sentences out of a corpus store. With a query, the
// query is tokenized and sentences sharing at least one token are
// returned in corpus order; without one, the whole corpus is returned.
type Selector struct {
	cfg  config.Stage
	deps Deps
}

func newSelector(cfg config.Stage, deps Deps) *Selector {
	return &Selector{cfg: cfg, deps: deps}
}

// Sentences implements Producer.
func (s *Selector) Sentences(ctx context.Context) ([]string, error) {
	st, err := s.deps.openStore(ctx, s.cfg.CorpusDB)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", s.cfg.CorpusDB, err)
	}
	defer st.Close()

	var stops []string
	if s.cfg.Stopwords != "" {
		wl, err := config.LoadWordList(s.cfg.Stopwords)
		if err != nil {
			return nil, fmt.Errorf("load stopwords %s: %w", s.cfg.Stopwords, err)
		}
		stops = wl.Terms
	}

	var matches []corpus.Sentence
	if strings.TrimSpace(s.cfg.Query) == "" {
		matches, err = st.AllSentences(ctx, s.cfg.Limit)
	} else {
		tokens := text.NewTokenizer(stops).Tokenize(s.cfg.Query)
		if len(tokens) == 0 {
			return nil, nil
		}
		matches, err = st.SentencesByTokens(ctx, tokens, s.cfg.Limit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out, nil
}
