package bareunpb

// Document is the text submitted for analysis.
type Document struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}

func (d *Document) GetContent() string {
	if d == nil {
		return ""
	}
	return d.Content
}

// TextSpan is a piece of the input with its offset in EncodingType units.
type TextSpan struct {
	Content     string `json:"content"`
	BeginOffset int32  `json:"begin_offset"`
	Length      int32  `json:"length"`
}

func (s *TextSpan) GetContent() string {
	if s == nil {
		return ""
	}
	return s.Content
}

// Morpheme is the smallest tagged unit produced by the analyzer.
type Morpheme struct {
	Text        *TextSpan  `json:"text"`
	Tag         Tag        `json:"tag"`
	Probability float32    `json:"probability"`
	OutOfVocab  OutOfVocab `json:"out_of_vocab"`
}

func (m *Morpheme) GetText() *TextSpan {
	if m == nil {
		return nil
	}
	return m.Text
}

func (m *Morpheme) GetTag() Tag {
	if m == nil {
		return Tag_UNK
	}
	return m.Tag
}

func (m *Morpheme) GetProbability() float32 {
	if m == nil {
		return 0
	}
	return m.Probability
}

func (m *Morpheme) GetOutOfVocab() OutOfVocab {
	if m == nil {
		return OutOfVocab_IN_WORD_EMBEDDING
	}
	return m.OutOfVocab
}

// Token is a space-delimited word (eojeol) with its morphemes.
type Token struct {
	Text      *TextSpan   `json:"text"`
	Morphemes []*Morpheme `json:"morphemes"`
	Lemma     string      `json:"lemma,omitempty"`
	Tagged    string      `json:"tagged,omitempty"`
}

func (t *Token) GetMorphemes() []*Morpheme {
	if t == nil {
		return nil
	}
	return t.Morphemes
}

// Sentence is one analyzed sentence.
type Sentence struct {
	Text    *TextSpan `json:"text"`
	Tokens  []*Token  `json:"tokens"`
	Refined string    `json:"refined,omitempty"`
}

func (s *Sentence) GetTokens() []*Token {
	if s == nil {
		return nil
	}
	return s.Tokens
}

type AnalyzeSyntaxRequest struct {
	Document          *Document    `json:"document"`
	EncodingType      EncodingType `json:"encoding_type"`
	AutoSplitSentence bool         `json:"auto_split_sentence"`
	CustomDomain      string       `json:"custom_domain,omitempty"`
	AutoSpacing       bool         `json:"auto_spacing"`
	AutoJointing      bool         `json:"auto_jointing"`
}

func (r *AnalyzeSyntaxRequest) GetDocument() *Document {
	if r == nil {
		return nil
	}
	return r.Document
}

type AnalyzeSyntaxResponse struct {
	Sentences []*Sentence `json:"sentences"`
	Language  string      `json:"language"`
}

func (r *AnalyzeSyntaxResponse) GetSentences() []*Sentence {
	if r == nil {
		return nil
	}
	return r.Sentences
}

// AnalyzeSyntaxListRequest analyzes each entry of Sentences as exactly one sentence.
type AnalyzeSyntaxListRequest struct {
	Sentences    []string     `json:"sentences"`
	Language     string       `json:"language"`
	EncodingType EncodingType `json:"encoding_type"`
	CustomDomain string       `json:"custom_domain,omitempty"`
	AutoSpacing  bool         `json:"auto_spacing"`
	AutoJointing bool         `json:"auto_jointing"`
}

type AnalyzeSyntaxListResponse struct {
	Sentences []*Sentence `json:"sentences"`
	Language  string      `json:"language"`
}

type TokenizeRequest struct {
	Document          *Document    `json:"document"`
	EncodingType      EncodingType `json:"encoding_type"`
	AutoSplitSentence bool         `json:"auto_split_sentence"`
}

func (r *TokenizeRequest) GetDocument() *Document {
	if r == nil {
		return nil
	}
	return r.Document
}

// Segment is a coarse lexical unit classified by a single-letter hint.
type Segment struct {
	Text *TextSpan `json:"text"`
	Hint string    `json:"hint"`
}

func (s *Segment) GetText() *TextSpan {
	if s == nil {
		return nil
	}
	return s.Text
}

func (s *Segment) GetHint() string {
	if s == nil {
		return ""
	}
	return s.Hint
}

type SegmentToken struct {
	Text     *TextSpan  `json:"text"`
	Segments []*Segment `json:"segments"`
	Tagged   string     `json:"tagged,omitempty"`
}

func (t *SegmentToken) GetSegments() []*Segment {
	if t == nil {
		return nil
	}
	return t.Segments
}

type SegmentSentence struct {
	Text   *TextSpan       `json:"text"`
	Tokens []*SegmentToken `json:"tokens"`
}

func (s *SegmentSentence) GetTokens() []*SegmentToken {
	if s == nil {
		return nil
	}
	return s.Tokens
}

type TokenizeResponse struct {
	Sentences []*SegmentSentence `json:"sentences"`
	Language  string             `json:"language"`
}

func (r *TokenizeResponse) GetSentences() []*SegmentSentence {
	if r == nil {
		return nil
	}
	return r.Sentences
}
