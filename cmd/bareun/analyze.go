package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// runTag handles tag, morphs, nouns and verbs.
func (a *app) runTag(ctx context.Context, name string, args []string) error {
	fs := newFlagSet(a, name, "[text...]")
	domain := fs.String("domain", a.cfg.Analyze.Domain, "custom dictionary domain")
	split := fs.Bool("split", false, "let the server split sentences")
	asJSON := fs.Bool("json", false, "print the raw analysis as JSON")
	detail := fs.Bool("detail", false, "include probability and out-of-vocabulary status")
	list := fs.Bool("lines", false, "analyze every input line as exactly one sentence")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := a.inputText(fs.Args())
	if err != nil {
		return err
	}

	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	tagger := bareun.NewTaggerWithConn(conn, *domain)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()
	var tagged *bareun.Tagged
	if *list {
		tagged, err = tagger.TagList(ctx, nonBlankLines(text), a.analyzeOptions(false))
	} else {
		tagged, err = tagger.Tag(ctx, text, a.analyzeOptions(*split))
	}
	if err != nil {
		return err
	}

	if *asJSON {
		return tagged.PrintAsJSON(a.stdout)
	}
	switch name {
	case "morphs":
		return a.printLines(tagged.Morphs())
	case "nouns":
		return a.printLines(tagged.Nouns())
	case "verbs":
		return a.printLines(tagged.Verbs())
	}
	return a.printNested(tagged.Pos(false, true, *detail).Nested)
}

func (a *app) runTokenize(ctx context.Context, args []string) error {
	fs := newFlagSet(a, "tokenize", "[text...]")
	split := fs.Bool("split", false, "let the server split sentences")
	asJSON := fs.Bool("json", false, "print the raw segmentation as JSON")
	hints := fs.Bool("hints", true, "append the segment hint (N, V, J, ...)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := a.inputText(fs.Args())
	if err != nil {
		return err
	}

	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := a.callCtx(ctx)
	defer cancel()
	tok, err := bareun.NewTokenizerWithConn(conn).Tokenize(ctx, text, *split)
	if err != nil {
		return err
	}
	if *asJSON {
		return tok.PrintAsJSON(a.stdout)
	}
	return a.printNested(tok.Seg(false, *hints, false).Nested)
}

func (a *app) runCorrect(ctx context.Context, args []string) error {
	fs := newFlagSet(a, "correct", "[text...]")
	dicts := fs.String("dicts", a.cfg.Analyze.Domain, "comma-separated custom dictionary names")
	asJSON := fs.Bool("json", false, "print the raw correction as JSON")
	noSplit := fs.Bool("no-split", false, "treat the input as a single sentence")
	sentenceCheck := fs.Bool("sentence-check", false, "enable whole-sentence checks")
	cleanup := fs.Bool("cleanup-whitespace", false, "report redundant whitespace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := a.inputText(fs.Args())
	if err != nil {
		return err
	}

	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	corrector := bareun.NewCorrectorWithConn(conn)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()
	res, err := corrector.CorrectError(ctx, text, splitList(*dicts), &bareunpb.RevisionConfig{
		DisableSplitSentence:    *noSplit,
		EnableSentenceCheck:     *sentenceCheck,
		EnableCleanupWhitespace: *cleanup,
	})
	if err != nil {
		return err
	}
	if *asJSON {
		return corrector.PrintAsJSON(a.stdout, res)
	}
	return corrector.PrintResults(a.stdout, res)
}

// printNested writes one line per sentence: tokens separated by spaces,
// units within a token joined with "+".
func (a *app) printNested(sentences [][][]string) error {
	for _, sent := range sentences {
		tokens := make([]string, len(sent))
		for i, tok := range sent {
			tokens[i] = strings.Join(tok, "+")
		}
		if _, err := fmt.Fprintln(a.stdout, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printLines(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(a.stdout, l); err != nil {
			return err
		}
	}
	return nil
}

func nonBlankLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
