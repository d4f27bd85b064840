package bareun

import (
	"context"
	"log/slog"
	"strings"
)

// Tokenizer splits phrases into hint-classified segments.
type Tokenizer struct {
	conn   *Conn
	lang   *LanguageClient
	logger *slog.Logger
}

func NewTokenizer(ctx context.Context, apiKey, host string, port int, opts ...Option) (*Tokenizer, error) {
	conn, err := Dial(ctx, apiKey, host, port, opts...)
	if err != nil {
		return nil, err
	}
	return NewTokenizerWithConn(conn), nil
}

func NewTokenizerWithConn(conn *Conn) *Tokenizer {
	return &Tokenizer{conn: conn, lang: NewLanguageClient(conn), logger: conn.logger}
}

func (t *Tokenizer) Close() error { return t.conn.Close() }

// Tokenize segments phrase. An empty phrase returns an empty result without a call.
func (t *Tokenizer) Tokenize(ctx context.Context, phrase string, autoSplit bool) (*Tokenized, error) {
	if phrase == "" {
		t.logger.WarnContext(ctx, "no sentences")
		return NewTokenized("", nil), nil
	}
	res, err := t.lang.Tokenize(ctx, phrase, autoSplit)
	if err != nil {
		return nil, err
	}
	return NewTokenized(phrase, res), nil
}

// TokenizeList joins phrases with newlines and segments them without auto split.
func (t *Tokenizer) TokenizeList(ctx context.Context, phrases []string) (*Tokenized, error) {
	if len(phrases) == 0 {
		t.logger.WarnContext(ctx, "no sentences")
		return NewTokenized("", nil), nil
	}
	return t.Tokenize(ctx, strings.Join(phrases, "\n"), false)
}

func (t *Tokenizer) Seg(ctx context.Context, phrase string, flatten, join, detail bool) (Forms, error) {
	tok, err := t.Tokenize(ctx, phrase, false)
	if err != nil {
		return Forms{}, err
	}
	return tok.Seg(flatten, join, detail), nil
}

func (t *Tokenizer) Segments(ctx context.Context, phrase string) ([]string, error) {
	tok, err := t.Tokenize(ctx, phrase, false)
	if err != nil {
		return nil, err
	}
	return tok.Segments(), nil
}

func (t *Tokenizer) Nouns(ctx context.Context, phrase string) ([]string, error) {
	tok, err := t.Tokenize(ctx, phrase, false)
	if err != nil {
		return nil, err
	}
	return tok.Nouns(), nil
}

func (t *Tokenizer) Verbs(ctx context.Context, phrase string) ([]string, error) {
	tok, err := t.Tokenize(ctx, phrase, false)
	if err != nil {
		return nil, err
	}
	return tok.Verbs(), nil
}
