package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gembleman/bareun-go/pkg/article"
	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/db"
	"github.com/gembleman/bareun-go/pkg/dictionary"
	"github.com/gembleman/bareun-go/pkg/ingest"
)

// runIngest fetches an article (or reads a local text file), analyzes it
// sentence by sentence and stores the content morphemes. Rerunning the same
// source resumes after the last stored sentence.
func (a *app) runIngest(ctx context.Context, args []string) error {
	fs := newFlagSet(a, "ingest", "")
	urlFlag := fs.String("url", "", "article URL to fetch")
	fileFlag := fs.String("file", "", "local UTF-8 text file instead of -url")
	dbPath := fs.String("db", a.cfg.Store.Path, "SQLite corpus store")
	domain := fs.String("domain", a.cfg.Analyze.Domain, "custom dictionary domain")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*urlFlag == "") == (*fileFlag == "") {
		fmt.Fprintln(a.stderr, "ingest: exactly one of -url or -file is required")
		fs.Usage()
		return errUsage
	}

	var art *article.Article
	sourceType := "website_article"
	if *urlFlag != "" {
		a.log.Info("fetching article", "url", *urlFlag)
		loaded, err := article.Load(ctx, nil, *urlFlag)
		if err != nil {
			return err
		}
		art = loaded
	} else {
		data, err := os.ReadFile(*fileFlag)
		if err != nil {
			return err
		}
		art = &article.Article{URL: "file://" + *fileFlag, Title: *fileFlag, Text: string(data)}
		sourceType = "text_file"
	}
	sentences := art.Sentences()
	a.log.Info("extracted article", "title", art.Title, "sentences", len(sentences))

	conn, err := db.Open(*dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	sourceID, err := db.CreateOrGetSource(conn, sourceType, art.Title, art.Byline, art.SiteName, art.URL, "")
	if err != nil {
		return fmt.Errorf("persist source: %w", err)
	}
	if err := db.SetSourceDomain(conn, sourceID, *domain); err != nil {
		return fmt.Errorf("persist source domain: %w", err)
	}

	rc, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	ig := ingest.NewIngester(conn, bareun.NewTaggerWithConn(rc, *domain))
	ig.Options = a.analyzeOptions(false)
	ig.Workers = a.cfg.Ingest.Workers
	ig.BatchSize = a.cfg.Ingest.BatchSize
	ig.Logger = a.log
	ig.OnProgress = func(current, total int) {
		a.log.Debug("ingest progress", "source", sourceID, "current", current, "total", total)
	}

	count, err := ig.Ingest(ctx, sourceID, sentences)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	fmt.Fprintf(a.stdout, "source %d: stored %d morpheme occurrences from %d sentences\n", sourceID, count, len(sentences))
	return nil
}

// runSuggest lists out-of-vocabulary nouns seen often in the corpus and, with
// -apply, merges them into a dictionary pack.
func (a *app) runSuggest(args []string) error {
	fs := newFlagSet(a, "suggest", "")
	dbPath := fs.String("db", a.cfg.Store.Path, "SQLite corpus store")
	packPath := fs.String("pack", "", "dictionary pack to compare against and update")
	domain := fs.String("domain", a.cfg.Analyze.Domain, "domain for a new pack")
	minCount := fs.Int("min", a.cfg.Ingest.MinCount, "minimum occurrences")
	apply := fs.Bool("apply", false, "add the suggestions to -pack")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *apply && *packPath == "" {
		fmt.Fprintln(a.stderr, "suggest: -apply needs -pack")
		return errUsage
	}

	var pack *dictionary.Pack
	if *packPath != "" {
		p, err := dictionary.LoadPack(*packPath)
		switch {
		case err == nil:
			pack = p
		case errors.Is(err, os.ErrNotExist) && *apply:
			if *domain == "" {
				return fmt.Errorf("pack %s does not exist; -domain is needed to create it", *packPath)
			}
			pack = &dictionary.Pack{Domain: *domain}
		default:
			return err
		}
	}

	conn, err := db.Open(*dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	suggestions, err := dictionary.NewSuggester(conn, *minCount).Suggest(pack)
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintf(a.stdout, "%s\t%s\t%d\t%d\n", s.Word, s.List, s.Occurrences, s.Sources)
	}

	if *apply {
		added, err := dictionary.Apply(pack, suggestions)
		if err != nil {
			return err
		}
		if err := dictionary.SavePack(*packPath, pack); err != nil {
			return err
		}
		a.log.Info("updated dictionary pack", "path", *packPath, "added", added)
	}
	return nil
}
