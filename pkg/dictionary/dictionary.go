// Package dictionary reads and writes custom dictionary word lists and packs,
// and proposes new entries from the analyzed corpus.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordSet is a set of dictionary entries.
type WordSet map[string]struct{}

func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts the NFC form of the trimmed word. Blank words are ignored.
func (s WordSet) Add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	s[norm.NFC.String(word)] = struct{}{}
}

func (s WordSet) Has(word string) bool {
	_, ok := s[norm.NFC.String(strings.TrimSpace(word))]
	return ok
}

func (s WordSet) Len() int { return len(s) }

// Sorted returns the entries in byte order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

func (s WordSet) Clone() WordSet {
	out := make(WordSet, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// ParseWordList reads one entry per line. Lines starting with '#' are comments,
// surrounding whitespace is trimmed and blank lines are skipped.
func ParseWordList(r io.Reader) (WordSet, error) {
	set := WordSet{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimPrefix(sc.Text(), "\ufeff")
		if strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return set, nil
}

// ReadWordList loads a word list file.
func ReadWordList(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := ParseWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// WriteWordList writes the set sorted, one entry per line.
func WriteWordList(w io.Writer, set WordSet) error {
	bw := bufio.NewWriter(w)
	for _, word := range set.Sorted() {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
