package ingest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gembleman/bareun-go/pkg/db"
)

func insertMorpheme(text, tag string) WriteFunc {
	return func(ctx context.Context, tx *sql.Tx) error {
		_, err := db.CreateOrGetMorpheme(tx, text, tag, "")
		return err
	}
}

func countMorphemes(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM morphemes").Scan(&n); err != nil {
		t.Fatalf("count morphemes: %v", err)
	}
	return n
}

func closeWithin(t *testing.T, bw *BatchWriter, d time.Duration) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- bw.Close() }()
	select {
	case err := <-done:
		return err
	case <-time.After(d):
		t.Fatal("batch writer did not close in time")
		return nil
	}
}

func TestBatchWriterCommitsMorphemes(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	bw := NewBatchWriter(conn, 2, 0)
	for _, m := range [][2]string{{"사과", "NNG"}, {"먹", "VV"}, {"바른", "NNP"}} {
		if err := bw.Submit(insertMorpheme(m[0], m[1])); err != nil {
			t.Fatalf("submit %s: %v", m[0], err)
		}
	}
	if err := closeWithin(t, bw, time.Second); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if got := countMorphemes(t, conn); got != 3 {
		t.Fatalf("expected 3 morphemes, got %d", got)
	}
}

func TestBatchWriterRollsBackFailedBatch(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	bw := NewBatchWriter(conn, 2, 0)
	var reported atomic.Int32
	bw.OnError = func(error) { reported.Add(1) }

	_ = bw.Submit(insertMorpheme("하늘", "NNG"))
	_ = bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
		return errors.New("link failed")
	})

	if err := bw.Close(); err == nil || !strings.Contains(err.Error(), "link failed") {
		t.Fatalf("expected the write error from Close, got %v", err)
	}
	if reported.Load() != 1 {
		t.Errorf("expected one OnError call, got %d", reported.Load())
	}
	if got := countMorphemes(t, conn); got != 0 {
		t.Fatalf("expected the whole batch rolled back, got %d rows", got)
	}
}

func TestBatchWriterSizeAndInterval(t *testing.T) {
	t.Run("size", func(t *testing.T) {
		bw := NewBatchWriter(nil, 5, 0)
		var calls atomic.Int32
		for i := 0; i < 12; i++ {
			if err := bw.Submit(func(context.Context, *sql.Tx) error {
				calls.Add(1)
				return nil
			}); err != nil {
				t.Fatalf("submit failed: %v", err)
			}
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
		if calls.Load() != 12 {
			t.Fatalf("expected 12 writes, got %d", calls.Load())
		}
	})

	t.Run("interval", func(t *testing.T) {
		bw := NewBatchWriter(nil, 10, 20*time.Millisecond)
		defer bw.Close()
		flushed := make(chan struct{})
		_ = bw.Submit(func(context.Context, *sql.Tx) error {
			close(flushed)
			return nil
		})
		select {
		case <-flushed:
		case <-time.After(time.Second):
			t.Fatal("partial batch was not flushed by the ticker")
		}
	})
}

func TestBatchWriterDropsBatchAfterCancel(t *testing.T) {
	bw := NewBatchWriter(nil, 1, 0)
	defer bw.Close()
	dropped := make(chan error, 1)
	bw.OnError = func(e error) {
		select {
		case dropped <- e:
		default:
		}
	}

	// Hold the committer on the first batch and fill the queue behind it.
	release := make(chan struct{})
	_ = bw.Submit(func(context.Context, *sql.Tx) error {
		<-release
		return nil
	})
	_ = bw.Submit(func(context.Context, *sql.Tx) error { return nil })

	bw.cancel()
	_ = bw.Submit(func(context.Context, *sql.Tx) error { return nil })
	close(release)

	select {
	case e := <-dropped:
		if !strings.Contains(e.Error(), "dropping batch") {
			t.Fatalf("unexpected error: %v", e)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected the late batch to be reported as dropped")
	}
}

func TestBatchWriterClosed(t *testing.T) {
	bw := NewBatchWriter(nil, 1, 0)
	if err := bw.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := bw.Close(); !errors.Is(err, ErrBatchWriterClosed) {
		t.Errorf("expected ErrBatchWriterClosed on second close, got %v", err)
	}
	if err := bw.Submit(insertMorpheme("끝", "NNG")); !errors.Is(err, ErrBatchWriterClosed) {
		t.Errorf("expected ErrBatchWriterClosed after close, got %v", err)
	}
}
