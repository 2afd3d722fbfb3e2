package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
)

func TestAddAndQuery(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	sentences := []corpus.Sentence{
		{Text: "the cat sat", Source: "pets", Tokens: []string{"cat", "sat"}},
		{Text: "dogs bark loudly", Source: "pets", Tokens: []string{"dogs", "bark", "loudly"}},
		{Text: "fish swim", Source: "aquarium", Tokens: []string{"fish", "swim"}},
	}
	for _, s := range sentences {
		if err := st.AddSentence(ctx, s); err != nil {
			t.Fatalf("AddSentence: %v", err)
		}
	}

	got, err := st.SentencesByTokens(ctx, []string{"cat", "fish"}, 0)
	if err != nil {
		t.Fatalf("SentencesByTokens: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Insertion order preserved
	if got[0].Text != "the cat sat" || got[1].Text != "fish swim" {
		t.Errorf("unexpected order: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestAddSentenceUpsert(t *testing.T) {
	ctx := context.Background()
	st := New()

	s := corpus.Sentence{Text: "the cat sat", Source: "pets", Tokens: []string{"cat"}}
	if err := st.AddSentence(ctx, s); err != nil {
		t.Fatal(err)
	}
	s.Tokens = []string{"cat", "sat"}
	if err := st.AddSentence(ctx, s); err != nil {
		t.Fatal(err)
	}

	all, err := st.AllSentences(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("duplicate (source, text) should upsert, got %d sentences", len(all))
	}
	if len(all[0].Tokens) != 2 {
		t.Errorf("tokens not replaced on upsert: %v", all[0].Tokens)
	}
}

func TestAllSentencesLimit(t *testing.T) {
	ctx := context.Background()
	st := New()
	for _, text := range []string{"one", "two", "three"} {
		if err := st.AddSentence(ctx, corpus.Sentence{Text: text}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := st.AllSentences(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Text != "one" || got[1].Text != "two" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestVocabulary(t *testing.T) {
	ctx := context.Background()
	st := New()
	st.AddSentence(ctx, corpus.Sentence{Text: "a", Tokens: []string{"zebra", "apple"}})
	st.AddSentence(ctx, corpus.Sentence{Text: "b", Tokens: []string{"apple", "mango"}})

	vocab, err := st.Vocabulary(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"apple", "mango", "zebra"}
	if len(vocab) != len(want) {
		t.Fatalf("vocab = %v, want %v", vocab, want)
	}
	for i := range want {
		if vocab[i] != want[i] {
			t.Errorf("vocab[%d] = %q, want %q", i, vocab[i], want[i])
		}
	}
}

func TestEmptyTokenQuery(t *testing.T) {
	ctx := context.Background()
	st := New()
	st.AddSentence(ctx, corpus.Sentence{Text: "something", Tokens: []string{"something"}})

	got, err := st.SentencesByTokens(ctx, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("no tokens should match nothing, got %v", got)
	}
}
