package dictionary

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/gembleman/bareun-go/pkg/db"
)

// Suggestion is a corpus morpheme proposed for one of the pack's word lists.
type Suggestion struct {
	Word        string
	List        string
	Occurrences int
	Sources     int
}

// listForTag maps analyzer tags to the pack list their out-of-vocab surfaces belong in.
var listForTag = map[string]string{
	"NNP": "np",
	"NNG": "cp",
}

// Suggester proposes dictionary entries for morphemes the analyzer did not know.
type Suggester struct {
	conn *sql.DB
	// MinCount is the minimum number of corpus occurrences for a suggestion.
	MinCount int
}

func NewSuggester(conn *sql.DB, minCount int) *Suggester {
	if minCount < 1 {
		minCount = 1
	}
	return &Suggester{conn: conn, MinCount: minCount}
}

// Suggest returns candidates not already present in known, most frequent first.
// known may be nil.
func (s *Suggester) Suggest(known *Pack) ([]Suggestion, error) {
	tags := make([]string, 0, len(listForTag))
	for tag := range listForTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	cands, err := db.OOVCandidates(s.conn, tags, s.MinCount)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	var existing map[string]WordSet
	if known != nil {
		existing = known.Sets()
	}
	var out []Suggestion
	for _, c := range cands {
		list := listForTag[c.Tag]
		if existing != nil && existing[list].Has(c.Text) {
			continue
		}
		out = append(out, Suggestion{Word: c.Text, List: list, Occurrences: c.Occurrences, Sources: c.Sources})
	}
	return out, nil
}

// Apply adds the suggestions to the pack and reports how many were new.
func Apply(p *Pack, suggestions []Suggestion) (int, error) {
	sets := p.Sets()
	added := 0
	for _, sg := range suggestions {
		set, ok := sets[sg.List]
		if !ok {
			return added, fmt.Errorf("unknown word list %q", sg.List)
		}
		if set.Has(sg.Word) {
			continue
		}
		set.Add(sg.Word)
		added++
	}
	for name, set := range sets {
		if err := p.SetList(name, set); err != nil {
			return added, err
		}
	}
	return added, nil
}
