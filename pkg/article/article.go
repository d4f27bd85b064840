// Package article fetches web pages and extracts their readable Korean text
// as sentences ready for analysis.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-shiori/go-readability"
	"golang.org/x/text/unicode/norm"
)

// MaxBodySize bounds the HTML read from a single page.
const MaxBodySize = 10 * 1024 * 1024

// ErrTooLarge is returned when a page exceeds MaxBodySize.
var ErrTooLarge = errors.New("article: response body exceeds size limit")

// DefaultHTTPClient is used when Fetch is given a nil client.
var DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Some news sites reject requests without browser-like headers.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
}

// Article is the readable part of a web page.
type Article struct {
	URL      string
	Title    string
	Byline   string
	SiteName string
	// Text is the NFC-normalized plain text of the article body.
	Text string
}

// Sentences splits the article text with SplitSentences.
func (a *Article) Sentences() []string {
	return SplitSentences(a.Text)
}

// Fetch downloads rawURL and returns the body. Non-200 responses and bodies
// larger than MaxBodySize are errors.
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		client = DefaultHTTPClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}
	if resp.ContentLength > MaxBodySize {
		return nil, fmt.Errorf("fetch %s: content length %d: %w", rawURL, resp.ContentLength, ErrTooLarge)
	}

	// One extra byte tells a body of exactly MaxBodySize from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, ErrTooLarge)
	}
	return body, nil
}

// Extract runs readability over html after removing ruby annotations.
func Extract(html []byte, pageURL string) (*Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	doc, err := readability.FromReader(bytes.NewReader(SanitizeRuby(html)), parsed)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}
	return &Article{
		URL:      pageURL,
		Title:    strings.TrimSpace(doc.Title),
		Byline:   strings.TrimSpace(doc.Byline),
		SiteName: strings.TrimSpace(doc.SiteName),
		Text:     norm.NFC.String(doc.TextContent),
	}, nil
}

// Load fetches and extracts a page.
func Load(ctx context.Context, client *http.Client, rawURL string) (*Article, error) {
	body, err := Fetch(ctx, client, rawURL)
	if err != nil {
		return nil, err
	}
	return Extract(body, rawURL)
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes <rt> and <rp> elements. Korean pages use ruby to gloss
// hanja with their reading, which readability would otherwise inline next to
// the base text ("漢字한자").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。':
		return true
	}
	return false
}

// SplitSentences breaks text after a terminator (. ! ? 。) that is followed by
// whitespace or the end of text, and at every newline. Sentences are trimmed
// and blank ones dropped.
func SplitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	emit := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			emit()
			continue
		}
		cur.WriteRune(r)
		if isTerminator(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			emit()
		}
	}
	emit()
	return out
}
