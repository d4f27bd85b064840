package bareunpb

// RevisionConfig tunes the spelling corrector.
type RevisionConfig struct {
	DisableSplitSentence    bool `json:"disable_split_sentence,omitempty"`
	DisableCaretSpacing     bool `json:"disable_caret_spacing,omitempty"`
	DisableVxSpacing        bool `json:"disable_vx_spacing,omitempty"`
	EnableSentenceCheck     bool `json:"enable_sentence_check,omitempty"`
	EnableCleanupWhitespace bool `json:"enable_cleanup_whitespace,omitempty"`
}

type CorrectErrorRequest struct {
	Document     *Document    `json:"document"`
	EncodingType EncodingType `json:"encoding_type"`
	// Deprecated: use CustomDictNames.
	CustomDomain    string          `json:"custom_domain,omitempty"`
	CustomDictNames []string        `json:"custom_dict_names,omitempty"`
	Config          *RevisionConfig `json:"config,omitempty"`
}

func (r *CorrectErrorRequest) GetDocument() *Document {
	if r == nil {
		return nil
	}
	return r.Document
}

type RevisedSentence struct {
	Origin  string `json:"origin"`
	Revised string `json:"revised"`
}

// Revision is one candidate correction of a block.
type Revision struct {
	Revised  string `json:"revised"`
	Category string `json:"category"`
	HelpID   string `json:"help_id"`
}

type RevisedBlock struct {
	Origin    *TextSpan   `json:"origin"`
	Revised   string      `json:"revised"`
	Revisions []*Revision `json:"revisions"`
}

// CorrectionHelp explains a category of correction.
type CorrectionHelp struct {
	ID       string   `json:"id"`
	Comment  string   `json:"comment"`
	Examples []string `json:"examples,omitempty"`
}

type CleanupRange struct {
	Offset   int32  `json:"offset"`
	Length   int32  `json:"length"`
	Position string `json:"position"`
}

type CorrectErrorResponse struct {
	Origin                  string                     `json:"origin"`
	Revised                 string                     `json:"revised"`
	RevisedSentences        []*RevisedSentence         `json:"revised_sentences"`
	RevisedBlocks           []*RevisedBlock            `json:"revised_blocks"`
	Helps                   map[string]*CorrectionHelp `json:"helps"`
	WhitespaceCleanupRanges []*CleanupRange            `json:"whitespace_cleanup_ranges"`
}
