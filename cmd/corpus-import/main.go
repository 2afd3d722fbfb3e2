package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
	"github.com/cognicore/sentgen/pkg/sentgen/corpus/sqlite"
	"github.com/cognicore/sentgen/pkg/sentgen/text"
)

// importDoc is one record of a JSONL import file
type importDoc struct {
	Text   string   `json:"text"`
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

func main() {
	dbPath := flag.String("db", "corpus.db", "corpus database path")
	source := flag.String("source", "", "source label attached to imported sentences (defaults to the file name)")
	tags := flag.String("tags", "", "comma-separated tags attached to imported sentences")
	stopwordsPath := flag.String("stopwords", "", "YAML stopword list used when indexing tokens")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: corpus-import [flags] file.txt [file.html file.jsonl ...]")
	}

	var stops []string
	if *stopwordsPath != "" {
		wl, err := config.LoadWordList(*stopwordsPath)
		if err != nil {
			log.Fatalf("load stopwords: %v", err)
		}
		stops = wl.Terms
	}
	tokenizer := text.NewTokenizer(stops)

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open corpus %s: %v", *dbPath, err)
	}
	defer st.Close()

	var tagList []string
	for _, t := range strings.Split(*tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tagList = append(tagList, t)
		}
	}

	total := 0
	for _, file := range files {
		label := *source
		if label == "" {
			label = filepath.Base(file)
		}

		n, err := importFile(ctx, st, tokenizer, file, label, tagList)
		if err != nil {
			log.Fatalf("import %s: %v", file, err)
		}
		log.Printf("imported %d sentences from %s", n, file)
		total += n
	}
	log.Printf("done: %d sentences into %s", total, *dbPath)
}

func importFile(ctx context.Context, st corpus.Store, tokenizer *text.Tokenizer, path, source string, tags []string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var sentences []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		sentences = sentencesFromJSONL(path, string(data))
	case ".html", ".htm":
		sentences = text.SplitSentences(stripHTML(string(data)))
	default:
		sentences = text.SplitSentences(string(data))
	}

	added := 0
	for _, s := range sentences {
		tokens := tokenizer.Tokenize(s)
		if len(tokens) == 0 {
			continue
		}
		err := st.AddSentence(ctx, corpus.Sentence{
			Text:   s,
			Source: source,
			Tags:   tags,
			Tokens: tokens,
		})
		if err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func sentencesFromJSONL(path, data string) []string {
	var sentences []string
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var doc importDoc
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		sentences = append(sentences, text.SplitSentences(doc.Text)...)
	}
	return sentences
}

// stripHTML extracts the text content of an HTML fragment
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
