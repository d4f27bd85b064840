// Package bareuntest runs an in-process Bareun server for tests.
//
// The server implements the language, revision and custom dictionary services
// with a deterministic whitespace analyzer, counts calls per method, records
// the api-key header and lets tests inject responses and errors.
package bareuntest

import (
	"context"
	"fmt"
	"maps"
	"net"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// Server is a fake Bareun server listening on a loopback port.
type Server struct {
	Host string
	Port int

	grpc *grpc.Server
	lis  net.Listener

	mu          sync.Mutex
	calls       map[string]int
	apiKeys     []string
	contentType string
	requiredKey string
	errs        map[string]error
	analyze     func(*bareunpb.AnalyzeSyntaxRequest) (*bareunpb.AnalyzeSyntaxResponse, error)
	correct     func(*bareunpb.CorrectErrorRequest) (*bareunpb.CorrectErrorResponse, error)
	dicts       map[string]*bareunpb.CustomDictionary
	lastAnalyze *bareunpb.AnalyzeSyntaxRequest
	lastCorrect *bareunpb.CorrectErrorRequest
}

// Start listens on 127.0.0.1:0 and serves until Close.
func Start() (*Server, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	s := &Server{
		calls: map[string]int{},
		errs:  map[string]error{},
		dicts: map[string]*bareunpb.CustomDictionary{},
		lis:   lis,
	}
	addr := lis.Addr().(*net.TCPAddr)
	s.Host = addr.IP.String()
	s.Port = addr.Port

	s.grpc = grpc.NewServer(
		grpc.ForceServerCodec(bareunpb.Codec{}),
		grpc.ChainUnaryInterceptor(s.intercept),
	)
	bareunpb.RegisterLanguageServiceServer(s.grpc, s)
	bareunpb.RegisterRevisionServiceServer(s.grpc, s)
	bareunpb.RegisterCustomDictionaryServiceServer(s.grpc, s)
	go func() {
		_ = s.grpc.Serve(lis)
	}()
	return s, nil
}

// New starts a server and stops it when the test ends.
func New(tb testing.TB) *Server {
	tb.Helper()
	s, err := Start()
	if err != nil {
		tb.Fatalf("start fake bareun server: %v", err)
	}
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) Close() {
	s.grpc.Stop()
	_ = s.lis.Close()
}

// Addr is host:port of the listener.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RequireAPIKey makes every call with a different api-key fail with PermissionDenied.
func (s *Server) RequireAPIKey(key string) {
	s.mu.Lock()
	s.requiredKey = key
	s.mu.Unlock()
}

// FailWith makes calls to method (e.g. "AnalyzeSyntax") return err. A nil err clears it.
func (s *Server) FailWith(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.errs, method)
		return
	}
	s.errs[method] = err
}

// HandleAnalyze replaces the built-in analyzer.
func (s *Server) HandleAnalyze(fn func(*bareunpb.AnalyzeSyntaxRequest) (*bareunpb.AnalyzeSyntaxResponse, error)) {
	s.mu.Lock()
	s.analyze = fn
	s.mu.Unlock()
}

// HandleCorrect replaces the built-in echo corrector.
func (s *Server) HandleCorrect(fn func(*bareunpb.CorrectErrorRequest) (*bareunpb.CorrectErrorResponse, error)) {
	s.mu.Lock()
	s.correct = fn
	s.mu.Unlock()
}

// Calls returns how many times method was invoked, including failed calls.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls sums Calls over every method.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// APIKeys returns the api-key header of every call in order.
func (s *Server) APIKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.apiKeys)
}

// LastContentType is the content-type header of the latest call.
func (s *Server) LastContentType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contentType
}

func (s *Server) LastAnalyzeRequest() *bareunpb.AnalyzeSyntaxRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAnalyze
}

func (s *Server) LastCorrectRequest() *bareunpb.CorrectErrorRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCorrect
}

// Dictionary returns the stored dictionary of a domain, or nil.
func (s *Server) Dictionary(domain string) *bareunpb.CustomDictionary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dicts[domain]
}

// PutDictionary stores a dictionary as if a client had uploaded it.
func (s *Server) PutDictionary(d *bareunpb.CustomDictionary) {
	s.mu.Lock()
	s.dicts[d.DomainName] = d
	s.mu.Unlock()
}

func (s *Server) intercept(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	method := info.FullMethod[strings.LastIndex(info.FullMethod, "/")+1:]
	var key, contentType string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("api-key"); len(v) > 0 {
			key = v[0]
		}
		if v := md.Get("content-type"); len(v) > 0 {
			contentType = v[0]
		}
	}

	s.mu.Lock()
	s.calls[method]++
	s.apiKeys = append(s.apiKeys, key)
	s.contentType = contentType
	required := s.requiredKey
	injected := s.errs[method]
	s.mu.Unlock()

	if required != "" && key != required {
		return nil, status.Error(codes.PermissionDenied, "invalid api key")
	}
	if injected != nil {
		return nil, injected
	}
	return handler(ctx, req)
}

func (s *Server) AnalyzeSyntax(_ context.Context, req *bareunpb.AnalyzeSyntaxRequest) (*bareunpb.AnalyzeSyntaxResponse, error) {
	s.mu.Lock()
	s.lastAnalyze = req
	fn := s.analyze
	s.mu.Unlock()
	if fn != nil {
		return fn(req)
	}
	return s.analyzeLines(splitLines(req.GetDocument().GetContent()), req.CustomDomain), nil
}

func (s *Server) AnalyzeSyntaxList(_ context.Context, req *bareunpb.AnalyzeSyntaxListRequest) (*bareunpb.AnalyzeSyntaxListResponse, error) {
	res := s.analyzeLines(req.Sentences, req.CustomDomain)
	return &bareunpb.AnalyzeSyntaxListResponse{Sentences: res.Sentences, Language: res.Language}, nil
}

func (s *Server) Tokenize(_ context.Context, req *bareunpb.TokenizeRequest) (*bareunpb.TokenizeResponse, error) {
	res := &bareunpb.TokenizeResponse{Language: "ko_KR"}
	offset := int32(0)
	for _, line := range splitLines(req.GetDocument().GetContent()) {
		sent := &bareunpb.SegmentSentence{Text: span(line, offset)}
		for _, word := range strings.Fields(line) {
			sent.Tokens = append(sent.Tokens, &bareunpb.SegmentToken{
				Text:     span(word, offset),
				Segments: []*bareunpb.Segment{{Text: span(word, offset), Hint: hintFor(word)}},
			})
		}
		res.Sentences = append(res.Sentences, sent)
		offset += int32(utf8.RuneCountInString(line)) + 1
	}
	return res, nil
}

func (s *Server) CorrectError(_ context.Context, req *bareunpb.CorrectErrorRequest) (*bareunpb.CorrectErrorResponse, error) {
	s.mu.Lock()
	s.lastCorrect = req
	fn := s.correct
	s.mu.Unlock()
	if fn != nil {
		return fn(req)
	}
	content := req.GetDocument().GetContent()
	res := &bareunpb.CorrectErrorResponse{Origin: content, Revised: content}
	for _, line := range splitLines(content) {
		res.RevisedSentences = append(res.RevisedSentences, &bareunpb.RevisedSentence{Origin: line, Revised: line})
	}
	return res, nil
}

func (s *Server) GetCustomDictionaryList(context.Context, *emptypb.Empty) (*bareunpb.GetCustomDictionaryListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &bareunpb.GetCustomDictionaryListResponse{}
	for _, name := range slices.Sorted(maps.Keys(s.dicts)) {
		d := s.dicts[name]
		res.DomainDicts = append(res.DomainDicts, &bareunpb.CustomDictionaryMeta{
			DomainName:      name,
			NpSetCount:      int32(len(d.GetNpSet().GetItems())),
			CpSetCount:      int32(len(d.GetCpSet().GetItems())),
			CpCaretSetCount: int32(len(d.GetCpCaretSet().GetItems())),
			VvSetCount:      int32(len(d.GetVvSet().GetItems())),
			VaSetCount:      int32(len(d.GetVaSet().GetItems())),
		})
	}
	return res, nil
}

func (s *Server) GetCustomDictionary(_ context.Context, req *bareunpb.GetCustomDictionaryRequest) (*bareunpb.GetCustomDictionaryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dicts[req.DomainName]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no custom dictionary %q", req.DomainName)
	}
	return &bareunpb.GetCustomDictionaryResponse{DomainName: req.DomainName, Dict: d}, nil
}

func (s *Server) UpdateCustomDictionary(_ context.Context, req *bareunpb.UpdateCustomDictionaryRequest) (*bareunpb.UpdateCustomDictionaryResponse, error) {
	if strings.TrimSpace(req.DomainName) == "" || req.Dict == nil {
		return nil, status.Error(codes.InvalidArgument, "domain name and dictionary are required")
	}
	s.mu.Lock()
	s.dicts[req.DomainName] = req.Dict
	s.mu.Unlock()
	return &bareunpb.UpdateCustomDictionaryResponse{UpdatedDomainName: req.DomainName}, nil
}

func (s *Server) RemoveCustomDictionaries(_ context.Context, req *bareunpb.RemoveCustomDictionariesRequest) (*bareunpb.RemoveCustomDictionariesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &bareunpb.RemoveCustomDictionariesResponse{DeletedDomainNames: map[string]bool{}}
	names := req.DomainNames
	if req.All {
		names = slices.Collect(maps.Keys(s.dicts))
	}
	for _, name := range names {
		_, ok := s.dicts[name]
		delete(s.dicts, name)
		res.DeletedDomainNames[name] = ok
	}
	return res, nil
}

func (s *Server) CheckConflict(_ context.Context, req *bareunpb.CheckConflictRequest) (*bareunpb.CheckConflictResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owners := map[string][]string{}
	for _, name := range req.DomainNames {
		d, ok := s.dicts[name]
		if !ok {
			continue
		}
		seen := map[string]bool{}
		for _, set := range []*bareunpb.DictSet{d.GetNpSet(), d.GetCpSet(), d.GetCpCaretSet(), d.GetVvSet(), d.GetVaSet()} {
			for w := range set.GetItems() {
				if !seen[w] {
					seen[w] = true
					owners[w] = append(owners[w], name)
				}
			}
		}
	}
	res := &bareunpb.CheckConflictResponse{}
	for _, w := range slices.Sorted(maps.Keys(owners)) {
		if len(owners[w]) > 1 {
			res.Conflicts = append(res.Conflicts, &bareunpb.DictConflict{Word: w, DomainNames: owners[w]})
		}
	}
	return res, nil
}

// analyzeLines treats each line as a sentence and each word as one morpheme.
// Words found in the domain's proper-noun set are tagged NNP/IN_CUSTOM_DICT.
func (s *Server) analyzeLines(lines []string, domain string) *bareunpb.AnalyzeSyntaxResponse {
	s.mu.Lock()
	var np map[string]int32
	if d, ok := s.dicts[domain]; ok {
		np = d.GetNpSet().GetItems()
	}
	s.mu.Unlock()

	res := &bareunpb.AnalyzeSyntaxResponse{Language: "ko_KR"}
	offset := int32(0)
	for _, line := range lines {
		sent := &bareunpb.Sentence{Text: span(line, offset)}
		for _, word := range strings.Fields(line) {
			m := &bareunpb.Morpheme{Text: span(word, offset), Tag: tagFor(word), Probability: 1}
			if _, ok := np[word]; ok {
				m.Tag = bareunpb.Tag_NNP
				m.OutOfVocab = bareunpb.OutOfVocab_IN_CUSTOM_DICT
			}
			sent.Tokens = append(sent.Tokens, &bareunpb.Token{
				Text:      span(word, offset),
				Morphemes: []*bareunpb.Morpheme{m},
				Tagged:    word + "/" + m.Tag.String(),
			})
		}
		res.Sentences = append(res.Sentences, sent)
		offset += int32(utf8.RuneCountInString(line)) + 1
	}
	return res
}

func splitLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func span(content string, offset int32) *bareunpb.TextSpan {
	return &bareunpb.TextSpan{Content: content, BeginOffset: offset, Length: int32(utf8.RuneCountInString(content))}
}

func tagFor(word string) bareunpb.Tag {
	r, _ := utf8.DecodeRuneInString(word)
	switch {
	case unicode.Is(unicode.Hangul, r):
		return bareunpb.Tag_NNG
	case unicode.IsDigit(r):
		return bareunpb.Tag_SN
	case unicode.IsLetter(r):
		return bareunpb.Tag_SL
	default:
		return bareunpb.Tag_SW
	}
}

func hintFor(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsLetter(r) {
		return "N"
	}
	return "S"
}
