package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sentgen/pkg/sentgen/corpus"
)

// sqliteStore implements the corpus.Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite corpus database with WAL mode enabled, creating
// the schema if needed.
func Open(ctx context.Context, path string) (corpus.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sentences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	UNIQUE(source, text)
);

CREATE TABLE IF NOT EXISTS sentence_tokens (
	sentence_id INTEGER NOT NULL,
	token TEXT NOT NULL,
	UNIQUE(sentence_id, token),
	FOREIGN KEY(sentence_id) REFERENCES sentences(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS sentence_tags (
	sentence_id INTEGER NOT NULL,
	tag TEXT NOT NULL,
	UNIQUE(sentence_id, tag),
	FOREIGN KEY(sentence_id) REFERENCES sentences(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_sentence_tokens_token ON sentence_tokens(token);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// AddSentence inserts or updates a sentence, keyed by (source, text)
func (s *sqliteStore) AddSentence(ctx context.Context, sent corpus.Sentence) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO sentences (text, source)
VALUES (?, ?)
ON CONFLICT(source, text) DO UPDATE SET text=excluded.text
RETURNING id;
`

	var id int64
	if err := tx.QueryRowContext(ctx, stmt, sent.Text, sent.Source).Scan(&id); err != nil {
		return err
	}

	if err := replaceJoined(ctx, tx, "sentence_tokens", "token", id, uniqueStrings(sent.Tokens)); err != nil {
		return err
	}
	if err := replaceJoined(ctx, tx, "sentence_tags", "tag", id, uniqueStrings(sent.Tags)); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceJoined(ctx context.Context, tx *sql.Tx, table, column string, id int64, values []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE sentence_id=?`, id); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+table+` (sentence_id, `+column+`) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, id, v); err != nil {
			return err
		}
	}
	return nil
}

// SentencesByTokens returns sentences matching any of the tokens, in
// insertion order
func (s *sqliteStore) SentencesByTokens(ctx context.Context, tokens []string, limit int) ([]corpus.Sentence, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(tokens))
	placeholders = placeholders[:len(placeholders)-1]

	query := `
SELECT DISTINCT s.id, s.text, s.source
FROM sentences s
JOIN sentence_tokens st ON st.sentence_id = s.id
WHERE st.token IN (` + placeholders + `)
ORDER BY s.id`
	args := make([]interface{}, len(tokens))
	for i, tok := range tokens {
		args[i] = tok
	}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.querySentences(ctx, query, args...)
}

// AllSentences returns sentences in insertion order
func (s *sqliteStore) AllSentences(ctx context.Context, limit int) ([]corpus.Sentence, error) {
	query := `SELECT id, text, source FROM sentences ORDER BY id`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.querySentences(ctx, query, args...)
}

func (s *sqliteStore) querySentences(ctx context.Context, query string, args ...interface{}) ([]corpus.Sentence, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sentences []corpus.Sentence
	for rows.Next() {
		var sent corpus.Sentence
		if err := rows.Scan(&sent.ID, &sent.Text, &sent.Source); err != nil {
			return nil, err
		}
		sentences = append(sentences, sent)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sentences {
		if err := s.loadJoined(ctx, &sentences[i]); err != nil {
			return nil, err
		}
	}
	return sentences, nil
}

func (s *sqliteStore) loadJoined(ctx context.Context, sent *corpus.Sentence) error {
	var err error
	sent.Tokens, err = s.queryStrings(ctx,
		`SELECT token FROM sentence_tokens WHERE sentence_id=? ORDER BY token`, sent.ID)
	if err != nil {
		return err
	}
	sent.Tags, err = s.queryStrings(ctx,
		`SELECT tag FROM sentence_tags WHERE sentence_id=? ORDER BY tag`, sent.ID)
	return err
}

// Vocabulary returns the distinct tokens across the corpus, alphabetically
func (s *sqliteStore) Vocabulary(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT DISTINCT token FROM sentence_tokens ORDER BY token`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryStrings(ctx, query, args...)
}

func (s *sqliteStore) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func uniqueStrings(in []string) []string {
	set := make(map[string]struct{}, len(in))
	var out []string
	for _, val := range in {
		if val == "" {
			continue
		}
		if _, ok := set[val]; ok {
			continue
		}
		set[val] = struct{}{}
		out = append(out, val)
	}
	return out
}
