package bareun

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// DefaultHost is the hosted Bareun endpoint. Hosts with this prefix use TLS.
	DefaultHost = "api.bareun.ai"
	// DefaultTLSPort and DefaultPlainPort apply when no port is given.
	DefaultTLSPort   = 443
	DefaultPlainPort = 5656

	// MaxMessageSize bounds both directions of every call.
	MaxMessageSize = 100 * 1024 * 1024

	// DefaultConnectTimeout bounds the eager connect in Dial.
	DefaultConnectTimeout = 10 * time.Second

	apiKeyHeader = "api-key"
	language     = "ko_KR"
)

//go:embed certs/ca-bundle.pem
var caBundle []byte

var rootPool = sync.OnceValues(func() (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caBundle) {
		return nil, errors.New("embedded CA bundle has no certificates")
	}
	return pool, nil
})

// Endpoint is a resolved connection descriptor.
type Endpoint struct {
	APIKey string
	Host   string
	Port   int
	TLS    bool
}

// Resolve applies the defaulting rules to user input. A port <= 0 means "use the default".
func Resolve(apiKey, host string, port int) (Endpoint, error) {
	if apiKey == "" {
		return Endpoint{}, &Error{Kind: KindMissingAPIKey}
	}
	if !validHeaderValue(apiKey) {
		return Endpoint{}, &Error{Kind: KindInvalidMetadataValue}
	}
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultHost
	}
	ep := Endpoint{
		APIKey: apiKey,
		Host:   host,
		TLS:    strings.HasPrefix(strings.ToLower(host), DefaultHost),
	}
	switch {
	case port > 0:
		ep.Port = port
	case ep.TLS:
		ep.Port = DefaultTLSPort
	default:
		ep.Port = DefaultPlainPort
	}
	return ep, nil
}

// Target is the gRPC dial target.
func (e Endpoint) Target() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) URI() string {
	scheme := "http"
	if e.TLS {
		scheme = "https"
	}
	return scheme + "://" + e.Target()
}

func (e Endpoint) mapper() statusMapper {
	return statusMapper{host: e.Host, port: e.Port, apiKey: e.APIKey}
}

func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] > 0x7e {
			return false
		}
	}
	return true
}

// apiKeyCredentials attaches the api-key header to every call.
type apiKeyCredentials string

func (k apiKeyCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{apiKeyHeader: string(k)}, nil
}

// RequireTransportSecurity is false so the same credentials work on a plaintext local server.
func (apiKeyCredentials) RequireTransportSecurity() bool { return false }

type options struct {
	logger         *slog.Logger
	connectTimeout time.Duration
	dialOpts       []grpc.DialOption
	metrics        *Metrics
}

// Option configures Dial and the clients built on it.
type Option func(*options)

// WithLogger sets the logger for connection events. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConnectTimeout bounds how long Dial waits for the channel to become
// ready. Zero waits as long as the context allows.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) { o.connectTimeout = d }
}

// WithDialOptions appends raw gRPC dial options after the SDK's own.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) { o.dialOpts = append(o.dialOpts, opts...) }
}

// WithMetrics records every unary call in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(opts []Option) options {
	o := options{connectTimeout: DefaultConnectTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Conn is an established channel to a Bareun server. It is safe for concurrent use.
type Conn struct {
	cc       *grpc.ClientConn
	endpoint Endpoint
	logger   *slog.Logger
}

// Dial resolves the endpoint and connects eagerly, failing with ConnectionFailed
// if the channel does not become ready within the connect timeout.
func Dial(ctx context.Context, apiKey, host string, port int, opts ...Option) (*Conn, error) {
	ep, err := Resolve(apiKey, host, port)
	if err != nil {
		return nil, err
	}
	return DialEndpoint(ctx, ep, opts...)
}

// DialEndpoint is Dial for an already resolved endpoint. TLS endpoints trust
// only the bundled Bareun CA.
func DialEndpoint(ctx context.Context, ep Endpoint, opts ...Option) (*Conn, error) {
	o := buildOptions(opts)
	fail := func(cause error) error {
		return &Error{Kind: KindConnectionFailed, Host: ep.Host, Port: ep.Port, Err: cause}
	}

	creds := insecure.NewCredentials()
	if ep.TLS {
		pool, err := rootPool()
		if err != nil {
			return nil, &Error{Kind: KindTransportError, Err: err}
		}
		creds = credentials.NewTLS(&tls.Config{
			RootCAs:    pool,
			ServerName: ep.Host,
			MinVersion: tls.VersionTLS12,
		})
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithPerRPCCredentials(apiKeyCredentials(ep.APIKey)),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(MaxMessageSize),
			grpc.MaxCallSendMsgSize(MaxMessageSize),
		),
	}
	if o.metrics != nil {
		dialOpts = append(dialOpts, grpc.WithChainUnaryInterceptor(o.metrics.UnaryClientInterceptor()))
	}
	dialOpts = append(dialOpts, o.dialOpts...)

	cc, err := grpc.NewClient(ep.Target(), dialOpts...)
	if err != nil {
		return nil, fail(err)
	}
	if err := waitReady(ctx, cc, o.connectTimeout); err != nil {
		_ = cc.Close()
		return nil, fail(err)
	}
	o.logger.Debug("connected to bareun server", "target", ep.Target(), "tls", ep.TLS)
	return &Conn{cc: cc, endpoint: ep, logger: o.logger}, nil
}

func waitReady(ctx context.Context, cc *grpc.ClientConn, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cc.Connect()
	for {
		state := cc.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return fmt.Errorf("channel entered %s", state)
		}
		if !cc.WaitForStateChange(ctx, state) {
			return fmt.Errorf("waiting in state %s: %w", state, ctx.Err())
		}
	}
}

// Endpoint returns the resolved address and api key the connection uses.
func (c *Conn) Endpoint() Endpoint { return c.endpoint }

// ClientConn exposes the underlying channel for callers that bring their own stubs.
func (c *Conn) ClientConn() grpc.ClientConnInterface { return c.cc }

// Close tears down the channel. Clients built on c stop working.
func (c *Conn) Close() error {
	if err := c.cc.Close(); err != nil {
		return &Error{Kind: KindTransportError, Err: err}
	}
	return nil
}

func (c *Conn) mapErr(err error) error {
	return c.endpoint.mapper().mapStatus(err)
}
