package bareun

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// Forms is the result of Pos or Seg. Exactly one of Flat and Nested is set,
// depending on the flatten argument. Nested is indexed sentence, token, unit.
type Forms struct {
	Flat   []string
	Nested [][][]string
}

// Flatten returns every form in order regardless of how the result was built.
func (f Forms) Flatten() []string {
	if f.Nested == nil {
		return f.Flat
	}
	var out []string
	for _, sent := range f.Nested {
		for _, tok := range sent {
			out = append(out, tok...)
		}
	}
	return out
}

// Tagged is the morphological analysis of a phrase.
type Tagged struct {
	phrase string
	r      *bareunpb.AnalyzeSyntaxResponse
}

// NewTagged wraps a raw analysis response. A nil response is treated as empty.
func NewTagged(phrase string, r *bareunpb.AnalyzeSyntaxResponse) *Tagged {
	if r == nil {
		r = &bareunpb.AnalyzeSyntaxResponse{}
	}
	return &Tagged{phrase: phrase, r: r}
}

func (t *Tagged) Phrase() string { return t.phrase }

// Msg returns the raw response.
func (t *Tagged) Msg() *bareunpb.AnalyzeSyntaxResponse { return t.r }

func (t *Tagged) Sentences() []*bareunpb.Sentence { return t.r.GetSentences() }

func (t *Tagged) morphemes() []*bareunpb.Morpheme {
	var out []*bareunpb.Morpheme
	for _, s := range t.r.GetSentences() {
		for _, tok := range s.GetTokens() {
			out = append(out, tok.GetMorphemes()...)
		}
	}
	return out
}

func formatMorpheme(m *bareunpb.Morpheme, join, detail bool) string {
	text := m.GetText().GetContent()
	tag := m.GetTag().String()
	switch {
	case join && detail:
		s := text + "/" + tag
		if p := m.GetProbability(); p > 0 {
			s += fmt.Sprintf(":%.3f", p)
		}
		if oov := m.GetOutOfVocab(); oov != bareunpb.OutOfVocab_IN_WORD_EMBEDDING {
			s += "#" + oov.String()
		}
		return s
	case join:
		return text + "/" + tag
	case detail:
		p := strconv.FormatFloat(float64(m.GetProbability()), 'f', -1, 32)
		return text + "\t" + tag + "\t" + m.GetOutOfVocab().String() + "\t" + p
	default:
		return text + "\t" + tag
	}
}

// Pos renders every morpheme as text and tag.
//
//   - join=false: "text\tTAG", with detail "text\tTAG\tOOV\tprobability"
//   - join=true: "text/TAG", with detail ":0.xxx" when probability > 0 and
//     "#OOV" when the morpheme is not IN_WORD_EMBEDDING
func (t *Tagged) Pos(flatten, join, detail bool) Forms {
	if flatten {
		out := []string{}
		for _, m := range t.morphemes() {
			out = append(out, formatMorpheme(m, join, detail))
		}
		return Forms{Flat: out}
	}
	nested := [][][]string{}
	for _, s := range t.r.GetSentences() {
		sent := [][]string{}
		for _, tok := range s.GetTokens() {
			forms := []string{}
			for _, m := range tok.GetMorphemes() {
				forms = append(forms, formatMorpheme(m, join, detail))
			}
			sent = append(sent, forms)
		}
		nested = append(nested, sent)
	}
	return Forms{Nested: nested}
}

// Morphs returns the surface of every morpheme.
func (t *Tagged) Morphs() []string {
	return t.filter(func(bareunpb.Tag) bool { return true })
}

// Nouns returns proper, common, pronoun and bound nouns.
func (t *Tagged) Nouns() []string {
	return t.filter(func(tag bareunpb.Tag) bool {
		switch tag {
		case bareunpb.Tag_NNP, bareunpb.Tag_NNG, bareunpb.Tag_NP, bareunpb.Tag_NNB:
			return true
		}
		return false
	})
}

// Verbs returns VV morphemes only.
func (t *Tagged) Verbs() []string {
	return t.filter(func(tag bareunpb.Tag) bool { return tag == bareunpb.Tag_VV })
}

func (t *Tagged) filter(keep func(bareunpb.Tag) bool) []string {
	out := []string{}
	for _, m := range t.morphemes() {
		if keep(m.GetTag()) {
			out = append(out, m.GetText().GetContent())
		}
	}
	return out
}

// AsJSON returns the response as a generic JSON tree.
func (t *Tagged) AsJSON() (map[string]any, error) {
	return toJSONMap(t.r)
}

func (t *Tagged) AsJSONString() (string, error) {
	return toJSONString(t.r)
}

func (t *Tagged) PrintAsJSON(w io.Writer) error {
	return printJSON(w, t.r)
}

func toJSONString(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &Error{Kind: KindSerializationError, Err: err}
	}
	return string(b), nil
}

func toJSONMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Kind: KindSerializationError, Err: err}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &Error{Kind: KindSerializationError, Err: err}
	}
	return out, nil
}

func printJSON(w io.Writer, v any) error {
	s, err := toJSONString(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, s); err != nil {
		return &Error{Kind: KindTransportError, Err: err}
	}
	return nil
}
