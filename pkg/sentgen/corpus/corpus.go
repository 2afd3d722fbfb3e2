package corpus

import "context"

// Store is the interface for persisting and querying corpus sentences
type Store interface {
	Close() error

	// AddSentence stores a sentence, keyed by (source, text).
	AddSentence(ctx context.Context, s Sentence) error

	// SentencesByTokens returns sentences containing at least one of the
	// given tokens, in insertion order. limit <= 0 means no limit.
	SentencesByTokens(ctx context.Context, tokens []string, limit int) ([]Sentence, error)

	// AllSentences returns sentences in insertion order. limit <= 0 means
	// no limit.
	AllSentences(ctx context.Context, limit int) ([]Sentence, error)

	// Vocabulary returns the distinct tokens seen across the corpus,
	// alphabetically. limit <= 0 means no limit.
	Vocabulary(ctx context.Context, limit int) ([]string, error)
}

// Sentence is one corpus entry: the raw sentence text plus the metadata
// the importer attached to it.
type Sentence struct {
	ID     int64
	Text   string
	Source string
	Tags   []string
	Tokens []string
}
