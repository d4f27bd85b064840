package db

import "time"

// Morpheme is a distinct (surface, tag) pair seen in the corpus.
type Morpheme struct {
	ID   int64
	Text string
	Tag  string
	// OOV is the analyzer's vocabulary status name, e.g. "OUT_OF_VOCAB".
	OOV string
}

// Source is a provenance record for analyzed text.
type Source struct {
	ID         int64
	SourceType string
	Title      string
	Author     string
	Website    string
	URL        string
	Meta       string
	Domain     string
	AddedAt    time.Time
}

// SourceMorpheme is a morpheme together with its statistics in one source.
type SourceMorpheme struct {
	Morpheme
	OccurrenceCount int
	Context         string
	FirstSeenAt     time.Time
}

// Candidate is a morpheme proposed for a custom dictionary.
type Candidate struct {
	Text        string
	Tag         string
	Occurrences int
	Sources     int
}
