package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
)

// Store is an in-memory implementation of corpus.Store for tests.
type Store struct {
	mu        sync.RWMutex
	nextID    int64
	order     []int64
	sentences map[int64]corpus.Sentence
	keyIndex  map[string]int64
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		nextID:    1,
		sentences: make(map[int64]corpus.Sentence),
		keyIndex:  make(map[string]int64),
	}
}

// Close implements corpus.Store.
func (s *Store) Close() error { return nil }

// AddSentence inserts or updates a sentence, keyed by (source, text).
func (s *Store) AddSentence(ctx context.Context, sent corpus.Sentence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sent.Source + "\x00" + sent.Text
	id, ok := s.keyIndex[key]
	if !ok {
		id = s.nextID
		s.nextID++
		s.keyIndex[key] = id
		s.order = append(s.order, id)
	}
	sent.ID = id
	s.sentences[id] = copySentence(sent)
	return nil
}

// SentencesByTokens returns sentences containing any of the tokens, in
// insertion order.
func (s *Store) SentencesByTokens(ctx context.Context, tokens []string, limit int) ([]corpus.Sentence, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	want := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		want[tok] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []corpus.Sentence
	for _, id := range s.order {
		sent := s.sentences[id]
		if !matchesAny(sent.Tokens, want) {
			continue
		}
		out = append(out, copySentence(sent))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// AllSentences returns sentences in insertion order.
func (s *Store) AllSentences(ctx context.Context, limit int) ([]corpus.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []corpus.Sentence
	for _, id := range s.order {
		out = append(out, copySentence(s.sentences[id]))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Vocabulary returns distinct tokens across the corpus, alphabetically.
func (s *Store) Vocabulary(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]struct{})
	for _, sent := range s.sentences {
		for _, tok := range sent.Tokens {
			if tok != "" {
				set[tok] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func matchesAny(tokens []string, want map[string]struct{}) bool {
	for _, tok := range tokens {
		if _, ok := want[tok]; ok {
			return true
		}
	}
	return false
}

func copySentence(s corpus.Sentence) corpus.Sentence {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	out.Tokens = append([]string(nil), s.Tokens...)
	return out
}
