package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/bareun/bareuntest"
	"github.com/gembleman/bareun-go/pkg/db"
	"github.com/gembleman/bareun-go/pkg/dictionary"
)

// runCLI runs the command in-process. With a non-nil srv the global flags
// point it at the fake server.
func runCLI(t *testing.T, srv *bareuntest.Server, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("BAREUN_CONFIG", "")
	global := []string{"-log-level", "error"}
	if srv != nil {
		global = append(global, "-api-key", "koba-CLI", "-host", srv.Host, "-port", strconv.Itoa(srv.Port))
	}
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append(global, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCLI_Usage(t *testing.T) {
	if _, stderr, err := runCLI(t, nil, ""); !errors.Is(err, errUsage) || !strings.Contains(stderr, "commands:") {
		t.Fatalf("expected usage error, got %v\n%s", err, stderr)
	}
	if _, stderr, err := runCLI(t, nil, "", "frobnicate"); !errors.Is(err, errUsage) || !strings.Contains(stderr, `unknown command "frobnicate"`) {
		t.Fatalf("expected unknown command error, got %v\n%s", err, stderr)
	}
}

func TestCLI_MissingAPIKey(t *testing.T) {
	t.Setenv("BAREUN_API_KEY", "")
	_, _, err := runCLI(t, nil, "", "tag", "안녕")
	if !errors.Is(err, bareun.ErrMissingAPIKey) {
		t.Fatalf("expected missing api key error, got %v", err)
	}
}

func TestCLI_Tag(t *testing.T) {
	srv := bareuntest.New(t)

	out, _, err := runCLI(t, srv, "", "tag", "서울", "날씨", "42")
	if err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if out != "서울/NNG 날씨/NNG 42/SN\n" {
		t.Errorf("unexpected tag output %q", out)
	}
	if keys := srv.APIKeys(); len(keys) == 0 || keys[0] != "koba-CLI" {
		t.Errorf("expected api key to be sent, got %v", keys)
	}

	out, _, err = runCLI(t, srv, "서울 42\nGo 언어\n", "nouns")
	if err != nil {
		t.Fatalf("nouns failed: %v", err)
	}
	if out != "서울\n언어\n" {
		t.Errorf("unexpected nouns output %q", out)
	}

	out, _, err = runCLI(t, srv, "첫째 줄\n\n둘째 줄\n", "tag", "-lines")
	if err != nil {
		t.Fatalf("tag -lines failed: %v", err)
	}
	if out != "첫째/NNG 줄/NNG\n둘째/NNG 줄/NNG\n" {
		t.Errorf("unexpected tag -lines output %q", out)
	}
	if srv.Calls("AnalyzeSyntaxList") != 1 {
		t.Errorf("expected one list call, got %d", srv.Calls("AnalyzeSyntaxList"))
	}

	out, _, err = runCLI(t, srv, "", "tag", "-json", "서울")
	if err != nil {
		t.Fatalf("tag -json failed: %v", err)
	}
	if !strings.Contains(out, `"NNG"`) || !strings.Contains(out, `"ko_KR"`) {
		t.Errorf("unexpected json output %s", out)
	}
}

func TestCLI_TokenizeAndCorrect(t *testing.T) {
	srv := bareuntest.New(t)

	out, _, err := runCLI(t, srv, "", "tokenize", "책", "2권")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if out != "책/N 2권/S\n" {
		t.Errorf("unexpected tokenize output %q", out)
	}

	out, _, err = runCLI(t, srv, "", "correct", "-dicts", "news, game", "안녕 하세요")
	if err != nil {
		t.Fatalf("correct failed: %v", err)
	}
	if !strings.Contains(out, "교정: 안녕 하세요\n") {
		t.Errorf("unexpected correct output %q", out)
	}
	req := srv.LastCorrectRequest()
	if !reflect.DeepEqual(req.CustomDictNames, []string{"news", "game"}) {
		t.Errorf("unexpected dict names %q", req.CustomDictNames)
	}
}

func TestCLI_Dict(t *testing.T) {
	srv := bareuntest.New(t)
	dir := t.TempDir()

	npFile := writeFile(t, dir, "np.txt", "# 가수\n뉴진스\n\n에스파\n")
	out, _, err := runCLI(t, srv, "", "dict", "update", "-domain", "game", "-np", npFile)
	if err != nil {
		t.Fatalf("dict update failed: %v", err)
	}
	if out != "updated game\n" {
		t.Errorf("unexpected update output %q", out)
	}
	if got := len(srv.Dictionary("game").GetNpSet().GetItems()); got != 2 {
		t.Errorf("expected 2 proper nouns on the server, got %d", got)
	}

	out, _, err = runCLI(t, srv, "", "tag", "-domain", "game", "뉴진스", "노래")
	if err != nil {
		t.Fatalf("tag with domain failed: %v", err)
	}
	if out != "뉴진스/NNP 노래/NNG\n" {
		t.Errorf("custom dictionary not applied: %q", out)
	}

	packFile := writeFile(t, dir, "music.yaml", "domain: music\nnp:\n  - 뉴진스\nvv:\n  - 노래하\n")
	if _, _, err := runCLI(t, srv, "", "dict", "update", "-pack", packFile); err != nil {
		t.Fatalf("dict update -pack failed: %v", err)
	}

	out, _, err = runCLI(t, srv, "", "dict", "list")
	if err != nil {
		t.Fatalf("dict list failed: %v", err)
	}
	if !strings.Contains(out, "game\t2\t0\t0\t0\t0\n") || !strings.Contains(out, "music\t1\t0\t0\t1\t0\n") {
		t.Errorf("unexpected list output %q", out)
	}

	out, _, err = runCLI(t, srv, "", "dict", "get", "game", "music")
	if err != nil {
		t.Fatalf("dict get failed: %v", err)
	}
	if !strings.Contains(out, "game\tnp\t2\t뉴진스,에스파\n") || !strings.Contains(out, "music\tvv\t1\t노래하\n") {
		t.Errorf("unexpected get output %q", out)
	}

	packDir := filepath.Join(dir, "packs")
	if _, _, err := runCLI(t, srv, "", "dict", "get", "-o", packDir, "game"); err != nil {
		t.Fatalf("dict get -o failed: %v", err)
	}
	pack, err := dictionary.LoadPack(filepath.Join(packDir, "game.yaml"))
	if err != nil {
		t.Fatalf("saved pack unreadable: %v", err)
	}
	if !reflect.DeepEqual(pack.NP, []string{"뉴진스", "에스파"}) {
		t.Errorf("unexpected saved pack %+v", pack)
	}

	if _, _, err := runCLI(t, srv, "", "dict", "get", "nothing"); !errors.Is(err, bareun.ErrGrpc) {
		t.Errorf("expected grpc error for missing domain, got %v", err)
	}

	out, _, err = runCLI(t, srv, "", "dict", "conflict", "game", "music")
	if err != nil {
		t.Fatalf("dict conflict failed: %v", err)
	}
	if out != "뉴진스\tgame,music\n" {
		t.Errorf("unexpected conflict output %q", out)
	}

	out, _, err = runCLI(t, srv, "", "dict", "remove", "game", "zzz")
	if err != nil {
		t.Fatalf("dict remove failed: %v", err)
	}
	if out != "game\nzzz\n" {
		t.Errorf("unexpected remove output %q", out)
	}
	out, _, err = runCLI(t, srv, "", "dict", "remove", "-all")
	if err != nil {
		t.Fatalf("dict remove -all failed: %v", err)
	}
	if out != "music\n" {
		t.Errorf("unexpected remove -all output %q", out)
	}

	if _, _, err := runCLI(t, srv, "", "dict"); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error for bare dict, got %v", err)
	}
}

func TestCLI_IngestFileAndResume(t *testing.T) {
	srv := bareuntest.New(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "corpus.db")
	textFile := writeFile(t, dir, "article.txt", "서울 날씨 맑음. Go 언어 42\n")

	out, _, err := runCLI(t, srv, "", "ingest", "-file", textFile, "-db", dbPath)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	// SN is not a content tag, so 42 is skipped.
	if !strings.Contains(out, "stored 5 morpheme occurrences from 2 sentences") {
		t.Errorf("unexpected ingest output %q", out)
	}
	if srv.Calls("AnalyzeSyntax") != 2 {
		t.Errorf("expected one call per sentence, got %d", srv.Calls("AnalyzeSyntax"))
	}

	out, _, err = runCLI(t, srv, "", "ingest", "-file", textFile, "-db", dbPath)
	if err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}
	if !strings.Contains(out, "stored 0 morpheme occurrences") {
		t.Errorf("expected resumed run to store nothing, got %q", out)
	}

	conn, err := db.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	var sources int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM sources`).Scan(&sources); err != nil {
		t.Fatal(err)
	}
	if sources != 1 {
		t.Errorf("expected one source row, got %d", sources)
	}

	if _, _, err := runCLI(t, srv, "", "ingest", "-db", dbPath); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error without input, got %v", err)
	}
}

func TestCLI_Suggest(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "corpus.db")

	conn, err := db.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	sourceID, err := db.CreateOrGetSource(conn, "article", "t", "", "", "http://seed", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []struct {
		text, tag, oov string
		n              int
	}{
		{"바른", "NNP", "OUT_OF_VOCAB", 3},
		{"형태소", "NNG", "OUT_OF_VOCAB", 1},
		{"서울", "NNP", "IN_WORD_EMBEDDING", 9},
	} {
		id, err := db.CreateOrGetMorpheme(conn, m.text, m.tag, m.oov)
		if err != nil {
			t.Fatal(err)
		}
		if err := db.LinkMorphemeToSource(conn, id, sourceID, m.text+" 문장", m.n); err != nil {
			t.Fatal(err)
		}
	}
	conn.Close()

	packPath := filepath.Join(dir, "corpus.yaml")
	out, _, err := runCLI(t, nil, "", "suggest", "-db", dbPath, "-min", "2", "-pack", packPath, "-domain", "corpus", "-apply")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if out != "바른\tnp\t3\t1\n" {
		t.Errorf("unexpected suggest output %q", out)
	}
	pack, err := dictionary.LoadPack(packPath)
	if err != nil {
		t.Fatalf("pack not written: %v", err)
	}
	if pack.Domain != "corpus" || !reflect.DeepEqual(pack.NP, []string{"바른"}) {
		t.Errorf("unexpected pack %+v", pack)
	}

	// Known words are not suggested again.
	out, _, err = runCLI(t, nil, "", "suggest", "-db", dbPath, "-min", "2", "-pack", packPath)
	if err != nil {
		t.Fatalf("second suggest failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected no suggestions, got %q", out)
	}

	if _, _, err := runCLI(t, nil, "", "suggest", "-db", dbPath, "-apply"); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error for -apply without -pack, got %v", err)
	}
}

func TestCLI_MetricsEndpoint(t *testing.T) {
	srv := bareuntest.New(t)
	t.Setenv("BAREUN_METRICS_ADDR", "127.0.0.1:0")
	t.Setenv("LOG_LEVEL", "info")

	var stdout, stderr bytes.Buffer
	t.Setenv("BAREUN_CONFIG", "")
	err := run(context.Background(),
		[]string{"-api-key", "koba-CLI", "-host", srv.Host, "-port", strconv.Itoa(srv.Port), "morphs", "서울"},
		strings.NewReader(""), &stdout, &stderr)
	if err != nil {
		t.Fatalf("morphs failed: %v", err)
	}
	if stdout.String() != "서울\n" {
		t.Errorf("unexpected morphs output %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "serving metrics") {
		t.Errorf("expected metrics server log, got %q", stderr.String())
	}
}
