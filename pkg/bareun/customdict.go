package bareun

import (
	"context"
	"strings"
	"sync"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
	"github.com/gembleman/bareun-go/pkg/dictionary"
)

// WordSet is a set of dictionary entries.
type WordSet = dictionary.WordSet

// SetKind names one of the five word sets of a custom dictionary.
type SetKind int

const (
	SetNP      SetKind = iota // proper nouns
	SetCP                     // compound nouns
	SetCPCaret                // compound nouns with ^ split marks
	SetVV                     // verbs
	SetVA                     // adjectives
)

// SetKinds lists every kind in wire order.
var SetKinds = []SetKind{SetNP, SetCP, SetCPCaret, SetVV, SetVA}

var setKindNames = [...]string{"np", "cp", "cp_caret", "vv", "va"}

// String returns the short name also used by dictionary packs.
func (k SetKind) String() string {
	if k < 0 || int(k) >= len(setKindNames) {
		return "unknown"
	}
	return setKindNames[k]
}

// ParseSetKind accepts the names returned by String.
func ParseSetKind(name string) (SetKind, bool) {
	for i, n := range setKindNames {
		if n == name {
			return SetKind(i), true
		}
	}
	return 0, false
}

// suffix is appended to the domain to name the wire DictSet.
func (k SetKind) suffix() string {
	return strings.ReplaceAll(k.String(), "_", "-") + "-set"
}

// CustomDict accumulates the word sets of one domain and syncs them with the server.
// All methods are safe for concurrent use.
type CustomDict struct {
	domain string
	client *CustomDictClient

	mu   sync.Mutex
	sets map[SetKind]WordSet
}

// NewCustomDict creates an empty dictionary for domain. client may be nil for
// local-only use; remote operations then fail with InvalidArgument.
func NewCustomDict(domain string, client *CustomDictClient) (*CustomDict, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, &Error{Kind: KindInvalidCustomDictName, Message: domain}
	}
	return &CustomDict{domain: domain, client: client, sets: emptySets()}, nil
}

func emptySets() map[SetKind]WordSet {
	sets := make(map[SetKind]WordSet, len(SetKinds))
	for _, k := range SetKinds {
		sets[k] = WordSet{}
	}
	return sets
}

func (d *CustomDict) Domain() string { return d.domain }

// ReadSetFromFile replaces one set with the content of a word list file.
func (d *CustomDict) ReadSetFromFile(kind SetKind, path string) error {
	set, err := dictionary.ReadWordList(path)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.sets[kind] = set
	d.mu.Unlock()
	return nil
}

// CopySet replaces one set with the given words.
func (d *CustomDict) CopySet(kind SetKind, words ...string) {
	set := dictionary.NewWordSet(words...)
	d.mu.Lock()
	d.sets[kind] = set
	d.mu.Unlock()
}

// Set returns a sorted copy of one set.
func (d *CustomDict) Set(kind SetKind) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sets[kind].Sorted()
}

// LoadPack replaces all five sets with a dictionary pack's lists.
func (d *CustomDict) LoadPack(p *dictionary.Pack) {
	packSets := p.Sets()
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, k := range SetKinds {
		d.sets[k] = packSets[k.String()]
	}
}

// Pack exports the current sets.
func (d *CustomDict) Pack() *dictionary.Pack {
	p := &dictionary.Pack{Domain: d.domain}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, k := range SetKinds {
		// Names come from setKindNames, which SetList always accepts.
		_ = p.SetList(k.String(), d.sets[k])
	}
	return p
}

func (d *CustomDict) snapshot() map[SetKind]WordSet {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[SetKind]WordSet, len(d.sets))
	for k, s := range d.sets {
		out[k] = s.Clone()
	}
	return out
}

func (d *CustomDict) requireClient(op string) error {
	if d.client == nil {
		return invalidArgument("custom dictionary %q has no connection for %s", d.domain, op)
	}
	return nil
}

// Update replaces all five server-side sets with the local ones.
func (d *CustomDict) Update(ctx context.Context) (bool, error) {
	if err := d.requireClient("update"); err != nil {
		return false, err
	}
	return d.client.Update(ctx, d.domain, d.snapshot())
}

// Get fetches the server copy without touching local state.
func (d *CustomDict) Get(ctx context.Context) (*bareunpb.CustomDictionary, error) {
	if err := d.requireClient("get"); err != nil {
		return nil, err
	}
	return d.client.Get(ctx, d.domain)
}

// Load replaces the local sets with the server copy.
func (d *CustomDict) Load(ctx context.Context) error {
	dict, err := d.Get(ctx)
	if err != nil {
		return err
	}
	sets := map[SetKind]WordSet{
		SetNP:      setFromDictSet(dict.GetNpSet()),
		SetCP:      setFromDictSet(dict.GetCpSet()),
		SetCPCaret: setFromDictSet(dict.GetCpCaretSet()),
		SetVV:      setFromDictSet(dict.GetVvSet()),
		SetVA:      setFromDictSet(dict.GetVaSet()),
	}
	d.mu.Lock()
	d.sets = sets
	d.mu.Unlock()
	return nil
}

// Clear deletes the domain on the server and then empties the local sets,
// returning the deleted domain names. The local sets are kept when the
// server call fails.
func (d *CustomDict) Clear(ctx context.Context) ([]string, error) {
	if err := d.requireClient("clear"); err != nil {
		return nil, err
	}
	removed, err := d.client.Remove(ctx, []string{d.domain})
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.sets = emptySets()
	d.mu.Unlock()
	return removed, nil
}
