package bareun

import (
	"context"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// LanguageClient issues raw analysis and tokenization calls.
type LanguageClient struct {
	conn *Conn
	stub bareunpb.LanguageServiceClient
}

func NewLanguageClient(conn *Conn) *LanguageClient {
	return &LanguageClient{conn: conn, stub: bareunpb.NewLanguageServiceClient(conn.cc)}
}

// AnalyzeOptions are the per-call analyzer switches.
type AnalyzeOptions struct {
	// AutoSplit lets the server split sentences on its own.
	AutoSplit    bool
	AutoSpacing  bool
	AutoJointing bool
}

// DefaultAnalyzeOptions enables spacing correction only.
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{AutoSpacing: true}
}

// AnalyzeSyntax tags content. Multiple sentences may be separated by newlines.
func (c *LanguageClient) AnalyzeSyntax(ctx context.Context, content, domain string, opts AnalyzeOptions) (*bareunpb.AnalyzeSyntaxResponse, error) {
	req := &bareunpb.AnalyzeSyntaxRequest{
		Document:          &bareunpb.Document{Content: content, Language: language},
		EncodingType:      bareunpb.EncodingType_UTF32,
		AutoSplitSentence: opts.AutoSplit,
		CustomDomain:      domain,
		AutoSpacing:       opts.AutoSpacing,
		AutoJointing:      opts.AutoJointing,
	}
	res, err := c.stub.AnalyzeSyntax(ctx, req)
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res, nil
}

// AnalyzeSyntaxList tags each entry as exactly one sentence.
func (c *LanguageClient) AnalyzeSyntaxList(ctx context.Context, sentences []string, domain string, opts AnalyzeOptions) (*bareunpb.AnalyzeSyntaxListResponse, error) {
	req := &bareunpb.AnalyzeSyntaxListRequest{
		Sentences:    sentences,
		Language:     language,
		EncodingType: bareunpb.EncodingType_UTF32,
		CustomDomain: domain,
		AutoSpacing:  opts.AutoSpacing,
		AutoJointing: opts.AutoJointing,
	}
	res, err := c.stub.AnalyzeSyntaxList(ctx, req)
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res, nil
}

func (c *LanguageClient) Tokenize(ctx context.Context, content string, autoSplit bool) (*bareunpb.TokenizeResponse, error) {
	req := &bareunpb.TokenizeRequest{
		Document:          &bareunpb.Document{Content: content, Language: language},
		EncodingType:      bareunpb.EncodingType_UTF32,
		AutoSplitSentence: autoSplit,
	}
	res, err := c.stub.Tokenize(ctx, req)
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res, nil
}
