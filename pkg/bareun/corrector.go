package bareun

import (
	"context"
	"fmt"
	"io"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// Corrector is the spelling and grammar correction client.
type Corrector struct {
	conn *Conn
	rev  *RevisionClient
}

func NewCorrector(ctx context.Context, apiKey, host string, port int, opts ...Option) (*Corrector, error) {
	conn, err := Dial(ctx, apiKey, host, port, opts...)
	if err != nil {
		return nil, err
	}
	return NewCorrectorWithConn(conn), nil
}

func NewCorrectorWithConn(conn *Conn) *Corrector {
	return &Corrector{conn: conn, rev: NewRevisionClient(conn)}
}

func (c *Corrector) Close() error { return c.conn.Close() }

// CorrectError corrects content using the named custom dictionaries. cfg may be nil.
func (c *Corrector) CorrectError(ctx context.Context, content string, customDictNames []string, cfg *bareunpb.RevisionConfig) (*bareunpb.CorrectErrorResponse, error) {
	req := &bareunpb.CorrectErrorRequest{
		Document:        &bareunpb.Document{Content: content, Language: language},
		EncodingType:    bareunpb.EncodingType_UTF32,
		CustomDictNames: customDictNames,
		Config:          cfg,
	}
	return c.rev.CorrectError(ctx, req)
}

// PrintResults writes a human-readable report of a correction.
func (c *Corrector) PrintResults(w io.Writer, res *bareunpb.CorrectErrorResponse) error {
	if res == nil {
		return invalidArgument("no correction to print")
	}
	p := &errWriter{w: w}
	p.printf("원문: %s\n", res.Origin)
	p.printf("교정: %s\n", res.Revised)

	p.printf("\n=== 교정된 문장들 ===\n")
	for _, sent := range res.RevisedSentences {
		if sent == nil {
			continue
		}
		p.printf(" 원문: %s\n", sent.Origin)
		p.printf("교정문: %s\n", sent.Revised)
	}

	for _, block := range res.RevisedBlocks {
		if block == nil {
			continue
		}
		if o := block.Origin; o != nil {
			p.printf("원문:%s offset:%d, length:%d\n", o.Content, o.BeginOffset, o.Length)
		}
		p.printf("대표 교정: %s\n", block.Revised)
		for _, rev := range block.Revisions {
			if rev == nil {
				continue
			}
			help := ""
			if h, ok := res.Helps[rev.HelpID]; ok && h != nil {
				help = h.Comment
			}
			p.printf(" 교정: %s, 카테고리:%s, 도움말 %s\n", rev.Revised, rev.Category, help)
		}
	}

	for _, r := range res.WhitespaceCleanupRanges {
		if r == nil {
			continue
		}
		p.printf("공백제거: offset:%d length:%d position: %s\n", r.Offset, r.Length, r.Position)
	}
	if p.err != nil {
		return &Error{Kind: KindTransportError, Err: p.err}
	}
	return nil
}

// AsJSONString renders a correction as indented JSON.
func (c *Corrector) AsJSONString(res *bareunpb.CorrectErrorResponse) (string, error) {
	return toJSONString(res)
}

func (c *Corrector) PrintAsJSON(w io.Writer, res *bareunpb.CorrectErrorResponse) error {
	return printJSON(w, res)
}

// errWriter keeps the first write error so report code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
