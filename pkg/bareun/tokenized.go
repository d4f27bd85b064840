package bareun

import (
	"io"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// Segment hints reported by the tokenizer.
const (
	HintNoun         = "N"
	HintPredicate    = "V"
	HintAdverb       = "A"
	HintPrenoun      = "M"
	HintPostposition = "J"
	HintInterjection = "I"
	HintEnding       = "E"
	HintSymbol       = "S"
)

// Tokenized is the segmentation of a phrase.
type Tokenized struct {
	phrase string
	r      *bareunpb.TokenizeResponse
}

func NewTokenized(phrase string, r *bareunpb.TokenizeResponse) *Tokenized {
	if r == nil {
		r = &bareunpb.TokenizeResponse{}
	}
	return &Tokenized{phrase: phrase, r: r}
}

func (t *Tokenized) Phrase() string { return t.phrase }

func (t *Tokenized) Msg() *bareunpb.TokenizeResponse { return t.r }

func (t *Tokenized) Sentences() []*bareunpb.SegmentSentence { return t.r.GetSentences() }

func formatSegment(s *bareunpb.Segment, join, detail bool) string {
	content := s.GetText().GetContent()
	switch {
	case join:
		return content + "/" + s.GetHint()
	case detail:
		return content + "," + s.GetHint()
	default:
		return content
	}
}

// Seg renders every segment. join gives "content/hint", detail alone gives
// "content,hint", otherwise just the content.
func (t *Tokenized) Seg(flatten, join, detail bool) Forms {
	if flatten {
		out := []string{}
		for _, s := range t.segments() {
			out = append(out, formatSegment(s, join, detail))
		}
		return Forms{Flat: out}
	}
	nested := [][][]string{}
	for _, sent := range t.r.GetSentences() {
		tokens := [][]string{}
		for _, tok := range sent.GetTokens() {
			forms := []string{}
			for _, s := range tok.GetSegments() {
				forms = append(forms, formatSegment(s, join, detail))
			}
			tokens = append(tokens, forms)
		}
		nested = append(nested, tokens)
	}
	return Forms{Nested: nested}
}

func (t *Tokenized) segments() []*bareunpb.Segment {
	var out []*bareunpb.Segment
	for _, sent := range t.r.GetSentences() {
		for _, tok := range sent.GetTokens() {
			out = append(out, tok.GetSegments()...)
		}
	}
	return out
}

// byHint skips segments without text.
func (t *Tokenized) byHint(hint string) []string {
	out := []string{}
	for _, s := range t.segments() {
		if s.GetText() == nil {
			continue
		}
		if hint == "" || s.GetHint() == hint {
			out = append(out, s.GetText().GetContent())
		}
	}
	return out
}

// Segments returns the content of every segment.
func (t *Tokenized) Segments() []string { return t.byHint("") }

// Nouns returns substantives (hint N).
func (t *Tokenized) Nouns() []string { return t.byHint(HintNoun) }

func (t *Tokenized) Substantives() []string { return t.byHint(HintNoun) }

// Verbs returns predicates (hint V), verbs and adjectives alike.
func (t *Tokenized) Verbs() []string { return t.byHint(HintPredicate) }

func (t *Tokenized) Predicates() []string { return t.byHint(HintPredicate) }

func (t *Tokenized) Adverbs() []string { return t.byHint(HintAdverb) }

func (t *Tokenized) Prenouns() []string { return t.byHint(HintPrenoun) }

func (t *Tokenized) Postpositions() []string { return t.byHint(HintPostposition) }

func (t *Tokenized) Interjections() []string { return t.byHint(HintInterjection) }

func (t *Tokenized) Endings() []string { return t.byHint(HintEnding) }

func (t *Tokenized) Symbols() []string { return t.byHint(HintSymbol) }

func (t *Tokenized) AsJSONString() (string, error) { return toJSONString(t.r) }

func (t *Tokenized) PrintAsJSON(w io.Writer) error { return printJSON(w, t.r) }
