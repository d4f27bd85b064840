// Command bareun talks to a Bareun analysis server: it tags and tokenizes
// text, corrects spelling, manages custom dictionaries and builds a local
// corpus of analyzed articles.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gembleman/bareun-go/pkg/bareun"
	"github.com/gembleman/bareun-go/pkg/config"
	"github.com/gembleman/bareun-go/pkg/logging"
)

const usage = `usage: bareun [global flags] <command> [flags] [args]

commands:
  tag       morphological analysis (pos per token)
  morphs    morpheme surfaces, one per line
  nouns     nouns, one per line
  verbs     verbs, one per line
  tokenize  segment text without tagging
  correct   spelling and spacing correction
  dict      custom dictionaries (list, get, update, remove, conflict)
  ingest    analyze an article into the corpus store
  suggest   propose dictionary entries from the corpus store

Text arguments are joined with spaces; with none, text is read from stdin.
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "bareun: %v\n", err)
		}
		os.Exit(1)
	}
}

// app carries what every command needs.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	metrics *bareun.Metrics
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bareun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fmt.Fprintln(stderr, "\nglobal flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to YAML config (default $BAREUN_CONFIG or ./bareun.yaml)")
	apiKey := fs.String("api-key", "", "API key (overrides config and $BAREUN_API_KEY)")
	host := fs.String("host", "", "server host (overrides config)")
	port := fs.Int("port", 0, "server port (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("BAREUN_CONFIG")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if *apiKey != "" {
		cfg.Server.APIKey = *apiKey
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	a := &app{
		cfg:    cfg,
		log:    logging.Setup(stderr, cfg.Log),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	if cfg.Metrics.Addr != "" {
		stop, err := a.serveMetrics(cfg.Metrics.Addr)
		if err != nil {
			return err
		}
		defer stop()
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "tag", "morphs", "nouns", "verbs":
		return a.runTag(ctx, cmd, cmdArgs)
	case "tokenize":
		return a.runTokenize(ctx, cmdArgs)
	case "correct":
		return a.runCorrect(ctx, cmdArgs)
	case "dict":
		return a.runDict(ctx, cmdArgs)
	case "ingest":
		return a.runIngest(ctx, cmdArgs)
	case "suggest":
		return a.runSuggest(cmdArgs)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return errUsage
	}
}

// serveMetrics exposes client metrics on addr until the returned func is called.
func (a *app) serveMetrics(addr string) (func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = bareun.NewMetrics(reg)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "error", err)
		}
	}()
	a.log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// dial connects with the configured endpoint. The caller closes the Conn.
func (a *app) dial(ctx context.Context) (*bareun.Conn, error) {
	opts := []bareun.Option{
		bareun.WithLogger(a.log),
		bareun.WithConnectTimeout(a.cfg.Server.ConnectTimeout),
	}
	if a.metrics != nil {
		opts = append(opts, bareun.WithMetrics(a.metrics))
	}
	return bareun.Dial(ctx, a.cfg.Server.APIKey, a.cfg.Server.Host, a.cfg.Server.Port, opts...)
}

// callCtx bounds one command's remote calls by the configured request timeout.
func (a *app) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Server.RequestTimeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Server.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) analyzeOptions(split bool) bareun.AnalyzeOptions {
	return bareun.AnalyzeOptions{
		AutoSplit:    split || a.cfg.Analyze.AutoSplit,
		AutoSpacing:  !a.cfg.Analyze.NoSpacing,
		AutoJointing: a.cfg.Analyze.AutoJointing,
	}
}

// inputText joins args, or reads stdin when there are none.
func (a *app) inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newFlagSet(a *app, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: bareun %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}
