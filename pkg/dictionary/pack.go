package dictionary

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack bundles all five word lists of one custom dictionary domain in a YAML file.
type Pack struct {
	Domain  string   `yaml:"domain"`
	NP      []string `yaml:"np,omitempty"`
	CP      []string `yaml:"cp,omitempty"`
	CPCaret []string `yaml:"cp_caret,omitempty"`
	VV      []string `yaml:"vv,omitempty"`
	VA      []string `yaml:"va,omitempty"`
}

// Sets returns the pack lists as word sets keyed by their YAML names.
func (p *Pack) Sets() map[string]WordSet {
	return map[string]WordSet{
		"np":       NewWordSet(p.NP...),
		"cp":       NewWordSet(p.CP...),
		"cp_caret": NewWordSet(p.CPCaret...),
		"vv":       NewWordSet(p.VV...),
		"va":       NewWordSet(p.VA...),
	}
}

// SetList stores a word set under its YAML name.
func (p *Pack) SetList(name string, set WordSet) error {
	words := set.Sorted()
	switch name {
	case "np":
		p.NP = words
	case "cp":
		p.CP = words
	case "cp_caret":
		p.CPCaret = words
	case "vv":
		p.VV = words
	case "va":
		p.VA = words
	default:
		return fmt.Errorf("unknown word list %q", name)
	}
	return nil
}

func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pack
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse pack %s: %w", path, err)
	}
	if strings.TrimSpace(p.Domain) == "" {
		return nil, fmt.Errorf("pack %s: domain must be non-empty", path)
	}
	return &p, nil
}

func SavePack(path string, p *Pack) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode pack: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
