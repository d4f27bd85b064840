package bareun

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// Tagger is the morphological analyzer client.
//
//	tagger, err := bareun.NewTagger(ctx, apiKey, "", 0, "")
//	if err != nil { ... }
//	defer tagger.Close()
//	nouns, err := tagger.Nouns(ctx, "나비 허리에 새파란 초생달이 시리다.")
//	// [나비 허리 초생달]
type Tagger struct {
	conn   *Conn
	lang   *LanguageClient
	dicts  *CustomDictClient
	logger *slog.Logger

	mu          sync.Mutex
	domain      string
	customDicts map[string]*CustomDict
}

// NewTagger dials host:port and returns a Tagger analyzing with the given
// custom dictionary domain (empty for none).
func NewTagger(ctx context.Context, apiKey, host string, port int, domain string, opts ...Option) (*Tagger, error) {
	conn, err := Dial(ctx, apiKey, host, port, opts...)
	if err != nil {
		return nil, err
	}
	return NewTaggerWithConn(conn, domain), nil
}

// NewTaggerWithConn builds a Tagger on an existing connection. Close closes conn.
func NewTaggerWithConn(conn *Conn, domain string) *Tagger {
	return &Tagger{
		conn:        conn,
		lang:        NewLanguageClient(conn),
		dicts:       NewCustomDictClient(conn),
		logger:      conn.logger,
		domain:      strings.TrimSpace(domain),
		customDicts: map[string]*CustomDict{},
	}
}

func (t *Tagger) SetDomain(domain string) {
	t.mu.Lock()
	t.domain = strings.TrimSpace(domain)
	t.mu.Unlock()
}

func (t *Tagger) Domain() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.domain
}

// CustomDict returns the cached dictionary for domain, creating it on first use.
// The dictionary shares the tagger's connection.
func (t *Tagger) CustomDict(domain string) (*CustomDict, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d, ok := t.customDicts[domain]; ok {
		return d, nil
	}
	d, err := NewCustomDict(domain, t.dicts)
	if err != nil {
		return nil, err
	}
	t.customDicts[domain] = d
	return d, nil
}

// DictClient exposes server-side dictionary management on the tagger's connection.
func (t *Tagger) DictClient() *CustomDictClient { return t.dicts }

func (t *Tagger) Close() error { return t.conn.Close() }

// Tag analyzes phrase. An empty phrase returns an empty result without a call.
func (t *Tagger) Tag(ctx context.Context, phrase string, opts AnalyzeOptions) (*Tagged, error) {
	if phrase == "" {
		t.logger.WarnContext(ctx, "no sentences")
		return NewTagged("", nil), nil
	}
	res, err := t.lang.AnalyzeSyntax(ctx, phrase, t.Domain(), opts)
	if err != nil {
		return nil, err
	}
	return NewTagged(phrase, res), nil
}

// Tags joins phrases with newlines and analyzes them in one call.
func (t *Tagger) Tags(ctx context.Context, phrases []string, opts AnalyzeOptions) (*Tagged, error) {
	if len(phrases) == 0 {
		t.logger.WarnContext(ctx, "no sentences")
		return NewTagged("", nil), nil
	}
	return t.Tag(ctx, strings.Join(phrases, "\n"), opts)
}

// TagList analyzes each phrase as exactly one sentence; AutoSplit is ignored.
func (t *Tagger) TagList(ctx context.Context, phrases []string, opts AnalyzeOptions) (*Tagged, error) {
	if len(phrases) == 0 {
		t.logger.WarnContext(ctx, "no sentences")
		return NewTagged("", nil), nil
	}
	res, err := t.lang.AnalyzeSyntaxList(ctx, phrases, t.Domain(), opts)
	if err != nil {
		return nil, err
	}
	return NewTagged(strings.Join(phrases, "\n"), &bareunpb.AnalyzeSyntaxResponse{
		Sentences: res.Sentences,
		Language:  res.Language,
	}), nil
}

// Pos tags phrase with default options and renders it; see Tagged.Pos.
func (t *Tagger) Pos(ctx context.Context, phrase string, flatten, join, detail bool) (Forms, error) {
	tagged, err := t.Tag(ctx, phrase, DefaultAnalyzeOptions())
	if err != nil {
		return Forms{}, err
	}
	return tagged.Pos(flatten, join, detail), nil
}

func (t *Tagger) Morphs(ctx context.Context, phrase string) ([]string, error) {
	tagged, err := t.Tag(ctx, phrase, DefaultAnalyzeOptions())
	if err != nil {
		return nil, err
	}
	return tagged.Morphs(), nil
}

func (t *Tagger) Nouns(ctx context.Context, phrase string) ([]string, error) {
	tagged, err := t.Tag(ctx, phrase, DefaultAnalyzeOptions())
	if err != nil {
		return nil, err
	}
	return tagged.Nouns(), nil
}

func (t *Tagger) Verbs(ctx context.Context, phrase string) ([]string, error) {
	tagged, err := t.Tag(ctx, phrase, DefaultAnalyzeOptions())
	if err != nil {
		return nil, err
	}
	return tagged.Verbs(), nil
}
