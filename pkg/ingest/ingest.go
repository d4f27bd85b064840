// Package ingest tags corpus sentences through a Bareun server and stores the
// content morphemes per source.
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/bareunpb"
	"github.com/gembleman/bareun-go/pkg/db"
)

// Analyzer tags a phrase. *bareun.Tagger satisfies it.
type Analyzer interface {
	Tag(ctx context.Context, phrase string, opts bareun.AnalyzeOptions) (*bareun.Tagged, error)
}

// WorkerPoolInterface abstracts the worker pool so tests can inject failing implementations.
type WorkerPoolInterface interface {
	Start(ctx context.Context)
	Submit(Job) error
	// SubmitCtx attempts to enqueue a job but returns promptly if ctx is canceled.
	SubmitCtx(ctx context.Context, job Job) error
	Close()
}

// Ingester tags sentences concurrently and persists their content morphemes.
type Ingester struct {
	DB       *sql.DB
	Analyzer Analyzer
	// Options are passed to every analysis call. AutoSplit is forced off so one
	// input sentence stays one stored sentence.
	Options   bareun.AnalyzeOptions
	BatchSize int
	Workers   int
	Logger    *slog.Logger
	// OnProgress is called with the number of sentences handed to the writer.
	OnProgress func(current, total int)

	// PoolFactory allows tests to inject custom worker pool implementations.
	PoolFactory func(workers, queue int) WorkerPoolInterface
}

func NewIngester(conn *sql.DB, analyzer Analyzer) *Ingester {
	return &Ingester{
		DB:        conn,
		Analyzer:  analyzer,
		Options:   bareun.DefaultAnalyzeOptions(),
		BatchSize: 50,
		Workers:   4,
		Logger:    slog.Default(),
	}
}

// ContentTag reports whether morphemes with tag are worth storing: nouns,
// verbs, adjectives, general adverbs, determiners, interjections, roots and
// foreign or hanja words. The analyzer's guess tags NA, NF and NV are not
// content.
func ContentTag(tag bareunpb.Tag) bool {
	switch tag {
	case bareunpb.Tag_NNG, bareunpb.Tag_NNP, bareunpb.Tag_NNB, bareunpb.Tag_NP, bareunpb.Tag_NR,
		bareunpb.Tag_MMA, bareunpb.Tag_MMD, bareunpb.Tag_MMN,
		bareunpb.Tag_VV, bareunpb.Tag_VA, bareunpb.Tag_MAG, bareunpb.Tag_IC,
		bareunpb.Tag_XR, bareunpb.Tag_SL, bareunpb.Tag_SH:
		return true
	}
	return false
}

type morphemeCount struct {
	Text  string
	Tag   string
	OOV   string
	Count int
}

type analyzedSentence struct {
	Index     int
	Text      string
	Morphemes []morphemeCount
	Err       error
}

// Ingest tags sentences and stores their morphemes for sourceID, resuming
// after the last checkpointed sentence. It returns the number of morpheme
// occurrences stored. The first analysis or write error stops the run.
func (ig *Ingester) Ingest(ctx context.Context, sourceID int64, sentences []string) (int, error) {
	if ig.Analyzer == nil {
		return 0, errors.New("ingest: no analyzer configured")
	}
	logger := ig.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lastProcessed, err := db.GetSourceProgress(ig.DB, sourceID)
	if err != nil {
		logger.Warn("failed to read progress, starting from the beginning", "source_id", sourceID, "error", err)
		lastProcessed = -1
	}
	if lastProcessed >= 0 {
		logger.Info("resuming ingest", "source_id", sourceID, "skipping", lastProcessed+1)
	}

	total := len(sentences)
	startIdx := lastProcessed + 1
	if startIdx >= total {
		return 0, nil
	}

	workers := max(ig.Workers, 1)
	var wp WorkerPoolInterface
	if ig.PoolFactory != nil {
		wp = ig.PoolFactory(workers, workers*2)
	} else {
		wp = NewWorkerPool(workers, workers*2)
	}
	resultCh := make(chan analyzedSentence, workers*2)
	resultChClosed := false
	doneCh := make(chan error, 1)

	var stored int64
	bw := NewBatchWriter(ig.DB, ig.BatchSize, 100*time.Millisecond)

	defer func() {
		wp.Close()
		if !resultChClosed {
			close(resultCh)
		}
		_ = bw.Close()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp.Start(ctx)

	persist := func(item analyzedSentence) error {
		return bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			for _, m := range item.Morphemes {
				id, err := db.CreateOrGetMorpheme(tx, m.Text, m.Tag, m.OOV)
				if err != nil {
					return fmt.Errorf("persist morpheme %s/%s: %w", m.Text, m.Tag, err)
				}
				if err := db.LinkMorphemeToSource(tx, id, sourceID, item.Text, m.Count); err != nil {
					return fmt.Errorf("link morpheme %d: %w", id, err)
				}
				atomic.AddInt64(&stored, int64(m.Count))
			}
			if err := db.UpdateSourceProgress(tx, sourceID, item.Index); err != nil {
				return fmt.Errorf("save progress: %w", err)
			}
			return nil
		})
	}

	// Consumer: results arrive out of order; write them in sentence order so the
	// checkpoint never skips an unwritten sentence.
	go func() {
		defer close(doneCh)
		pending := make(map[int]analyzedSentence)
		next := startIdx

		drain := func() error {
			for {
				item, ok := pending[next]
				if !ok {
					return nil
				}
				delete(pending, next)
				if err := persist(item); err != nil {
					return err
				}
				if ig.OnProgress != nil && (next+1)%max(ig.BatchSize, 1) == 0 {
					ig.OnProgress(next+1, total)
				}
				next++
			}
		}

		for {
			select {
			case <-ctx.Done():
				doneCh <- ctx.Err()
				return
			case res, ok := <-resultCh:
				if !ok {
					if err := drain(); err != nil {
						doneCh <- err
						return
					}
					if ig.OnProgress != nil {
						ig.OnProgress(total, total)
					}
					doneCh <- nil
					return
				}
				if res.Err != nil {
					cancel()
					doneCh <- res.Err
					return
				}
				pending[res.Index] = res
				if err := drain(); err != nil {
					cancel()
					doneCh <- err
					return
				}
			}
		}
	}()

Loop:
	for i := startIdx; i < total; i++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		idx, text := i, sentences[i]
		job := func(ctx context.Context) error {
			res := ig.analyze(ctx, idx, text)
			select {
			case resultCh <- res:
			case <-ctx.Done():
			}
			return res.Err
		}

		if err := wp.SubmitCtx(ctx, job); err != nil {
			if errors.Is(err, ctx.Err()) || errors.Is(err, ErrPoolClosed) {
				break Loop
			}
			return 0, fmt.Errorf("submit sentence %d: %w", idx, err)
		}
	}

	// All workers are gone after Close, so nothing can send on resultCh anymore.
	wp.Close()
	close(resultCh)
	resultChClosed = true

	runErr := <-doneCh
	if err := bw.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr == nil {
		runErr = ctx.Err()
	}
	return int(atomic.LoadInt64(&stored)), runErr
}

// analyze tags one sentence and counts its content morphemes in first-seen order.
func (ig *Ingester) analyze(ctx context.Context, index int, text string) analyzedSentence {
	out := analyzedSentence{Index: index, Text: text}
	if strings.TrimSpace(text) == "" {
		return out
	}

	opts := ig.Options
	opts.AutoSplit = false
	tagged, err := ig.Analyzer.Tag(ctx, text, opts)
	if err != nil {
		out.Err = fmt.Errorf("analyze sentence %d: %w", index, err)
		return out
	}

	seen := make(map[[2]string]int)
	for _, sent := range tagged.Sentences() {
		for _, tok := range sent.GetTokens() {
			for _, m := range tok.GetMorphemes() {
				if !ContentTag(m.GetTag()) {
					continue
				}
				key := [2]string{m.GetText().GetContent(), m.GetTag().String()}
				if i, ok := seen[key]; ok {
					out.Morphemes[i].Count++
					// An out-of-vocabulary verdict anywhere in the sentence wins.
					if oov := m.GetOutOfVocab(); oov != bareunpb.OutOfVocab_IN_WORD_EMBEDDING {
						out.Morphemes[i].OOV = oov.String()
					}
					continue
				}
				seen[key] = len(out.Morphemes)
				out.Morphemes = append(out.Morphemes, morphemeCount{
					Text:  key[0],
					Tag:   key[1],
					OOV:   m.GetOutOfVocab().String(),
					Count: 1,
				})
			}
		}
	}
	return out
}
