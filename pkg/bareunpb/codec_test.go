package bareunpb

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/emptypb"
)

// rawFields decodes one level of b with protowire alone.
func rawFields(t *testing.T, b []byte) map[protowire.Number][]any {
	t.Helper()
	out := map[protowire.Number][]any{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		require.GreaterOrEqual(t, n, 0, "tag")
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			require.GreaterOrEqual(t, m, 0)
			out[num] = append(out[num], v)
			n = m
		case protowire.Fixed32Type:
			v, m := protowire.ConsumeFixed32(b)
			require.GreaterOrEqual(t, m, 0)
			out[num] = append(out[num], v)
			n = m
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			require.GreaterOrEqual(t, m, 0)
			out[num] = append(out[num], v)
			n = m
		default:
			t.Fatalf("unexpected wire type %d for field %d", typ, num)
		}
		b = b[n:]
	}
	return out
}

func TestCodecName(t *testing.T) {
	assert.Equal(t, "proto", Codec{}.Name())
}

func TestAnalyzeSyntaxRequestEncoding(t *testing.T) {
	req := &AnalyzeSyntaxRequest{
		Document:          &Document{Content: "아버지가 방에 들어가신다", Language: "ko_KR"},
		EncodingType:      EncodingType_UTF32,
		AutoSplitSentence: false,
		CustomDomain:      "music",
		AutoJointing:      true,
	}
	data, err := Codec{}.Marshal(req)
	require.NoError(t, err)

	top := rawFields(t, data)
	require.Len(t, top[1], 1)
	doc := rawFields(t, top[1][0].([]byte))
	assert.Equal(t, "아버지가 방에 들어가신다", string(doc[2][0].([]byte)))
	assert.Equal(t, "ko_KR", string(doc[4][0].([]byte)))
	assert.Equal(t, []any{uint64(3)}, top[2])
	assert.NotContains(t, top, protowire.Number(3), "false is not encoded")
	assert.Equal(t, "music", string(top[4][0].([]byte)))
	assert.NotContains(t, top, protowire.Number(5))
	assert.Equal(t, []any{uint64(1)}, top[6])
}

func TestMorphemeEncoding(t *testing.T) {
	m := &Morpheme{
		Text:        &TextSpan{Content: "오늘", BeginOffset: 4, Length: 2},
		Tag:         Tag_NNG,
		Probability: 0.5,
		OutOfVocab:  OutOfVocab_IN_CUSTOM_DICT,
	}
	data, err := Codec{}.Marshal(m)
	require.NoError(t, err)

	f := rawFields(t, data)
	assert.Equal(t, []any{uint64(Tag_NNG)}, f[2])
	assert.Equal(t, []any{math.Float32bits(0.5)}, f[3])
	assert.Equal(t, []any{uint64(OutOfVocab_IN_CUSTOM_DICT)}, f[5])
	span := rawFields(t, f[1][0].([]byte))
	assert.Equal(t, "오늘", string(span[1][0].([]byte)))
	assert.Equal(t, []any{uint64(4)}, span[2])
	assert.Equal(t, []any{uint64(2)}, span[3])
}

func TestAnalyzeSyntaxResponseRoundTrip(t *testing.T) {
	in := &AnalyzeSyntaxResponse{
		Language: "ko_KR",
		Sentences: []*Sentence{{
			Text: &TextSpan{Content: "바른 형태소", Length: 6},
			Tokens: []*Token{
				{
					Text:   &TextSpan{Content: "바른", Length: 2},
					Tagged: "바르/VA+ㄴ/ETM",
					Morphemes: []*Morpheme{
						{Text: &TextSpan{Content: "바르", Length: 2}, Tag: Tag_VA, Probability: 0.75},
						{Text: &TextSpan{Content: "ㄴ", BeginOffset: 1, Length: 1}, Tag: Tag_ETM, OutOfVocab: OutOfVocab_OUT_OF_VOCAB},
					},
				},
				{
					Text:      &TextSpan{Content: "형태소", BeginOffset: 3, Length: 3},
					Morphemes: []*Morpheme{{Text: &TextSpan{Content: "형태소", BeginOffset: 3, Length: 3}, Tag: Tag_NNG}},
				},
			},
		}},
	}
	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)

	out := new(AnalyzeSyntaxResponse)
	require.NoError(t, Codec{}.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestCorrectErrorResponseRoundTrip(t *testing.T) {
	in := &CorrectErrorResponse{
		Origin:  "어의가 없다",
		Revised: "어이가 없다",
		RevisedSentences: []*RevisedSentence{
			{Origin: "어의가 없다", Revised: "어이가 없다"},
		},
		RevisedBlocks: []*RevisedBlock{{
			Origin:    &TextSpan{Content: "어의가", Length: 3},
			Revised:   "어이가",
			Revisions: []*Revision{{Revised: "어이가", Category: "TYPO", HelpID: "h1"}},
		}},
		Helps: map[string]*CorrectionHelp{
			"h1": {ID: "h1", Comment: "뜻을 구별하세요", Examples: []string{"어이없다", ""}},
			"h2": {ID: "h2"},
		},
		WhitespaceCleanupRanges: []*CleanupRange{{Offset: 5, Length: 2, Position: "END"}},
	}
	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)

	out := new(CorrectErrorResponse)
	require.NoError(t, Codec{}.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestCustomDictionaryRoundTrip(t *testing.T) {
	in := &UpdateCustomDictionaryRequest{
		DomainName: "game",
		Dict: &CustomDictionary{
			DomainName: "game",
			NpSet:      &DictSet{Name: "game-np-set", Type: DictType_WORD_LIST, Items: map[string]int32{"발로란트": 1, "롤": 1}},
			CpSet:      &DictSet{Name: "game-cp-set", Type: DictType_WORD_LIST},
			VaSet:      &DictSet{Name: "game-va-set", Type: DictType_WORD_LIST_COMPOUND, Items: map[string]int32{"쩔": 1}},
		},
	}
	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	again, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, data, again, "map entries are written in a stable order")

	out := new(UpdateCustomDictionaryRequest)
	require.NoError(t, Codec{}.Unmarshal(data, out))
	assert.Equal(t, in, out)
	assert.Nil(t, out.Dict.CpCaretSet)

	removed := &RemoveCustomDictionariesResponse{DeletedDomainNames: map[string]bool{"game": true, "zzz": false}}
	data, err = Codec{}.Marshal(removed)
	require.NoError(t, err)
	back := new(RemoveCustomDictionariesResponse)
	require.NoError(t, Codec{}.Unmarshal(data, back))
	assert.Equal(t, removed, back)
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "바다")
	b = protowire.AppendTag(b, 9, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 42)
	b = protowire.AppendTag(b, 10, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	// An int32 field sent with another wire type is dropped.
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "x")

	var span TextSpan
	require.NoError(t, Codec{}.Unmarshal(b, &span))
	assert.Equal(t, "바다", span.Content)
	assert.Zero(t, span.BeginOffset)
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	data, err := Codec{}.Marshal(&TokenizeRequest{Document: &Document{Content: "책 두 권"}})
	require.NoError(t, err)

	err = Codec{}.Unmarshal(data[:len(data)-1], new(TokenizeRequest))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TokenizeRequest")
}

func TestCodecHandlesGeneratedMessages(t *testing.T) {
	data, err := Codec{}.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NoError(t, Codec{}.Unmarshal(nil, &emptypb.Empty{}))

	_, err = Codec{}.Marshal("plain string")
	assert.Error(t, err)
	assert.Error(t, Codec{}.Unmarshal(nil, new(int)))
}

// rawCodec hands the server the undecoded frame.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) { return *v.(*[]byte), nil }

func (rawCodec) Unmarshal(data []byte, v any) error {
	*v.(*[]byte) = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "raw" }

type capturedCall struct {
	method      string
	contentType []string
	frame       []byte
}

func TestStubsSpeakProtobuf(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	// SegmentSentence{tokens: [SegmentToken{segments: [Segment{text: "책", hint: "N"}]}]}
	var seg, tok, sent, reply []byte
	seg = protowire.AppendTag(seg, 1, protowire.BytesType)
	seg = protowire.AppendBytes(seg, protowire.AppendString(protowire.AppendTag(nil, 1, protowire.BytesType), "책"))
	seg = protowire.AppendTag(seg, 2, protowire.BytesType)
	seg = protowire.AppendString(seg, "N")
	tok = protowire.AppendTag(tok, 2, protowire.BytesType)
	tok = protowire.AppendBytes(tok, seg)
	sent = protowire.AppendTag(sent, 2, protowire.BytesType)
	sent = protowire.AppendBytes(sent, tok)
	reply = protowire.AppendTag(reply, 1, protowire.BytesType)
	reply = protowire.AppendBytes(reply, sent)

	calls := make(chan capturedCall, 1)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(rawCodec{}),
		grpc.UnknownServiceHandler(func(_ any, stream grpc.ServerStream) error {
			method, _ := grpc.MethodFromServerStream(stream)
			md, _ := metadata.FromIncomingContext(stream.Context())
			var frame []byte
			if err := stream.RecvMsg(&frame); err != nil {
				return err
			}
			calls <- capturedCall{method: method, contentType: md.Get("content-type"), frame: frame}
			return stream.SendMsg(&reply)
		}),
	)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	res, err := NewLanguageServiceClient(conn).Tokenize(context.Background(), &TokenizeRequest{
		Document:          &Document{Content: "책 두 권", Language: "ko_KR"},
		EncodingType:      EncodingType_UTF32,
		AutoSplitSentence: true,
	})
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, LanguageService_Tokenize_FullMethodName, call.method)
	assert.Equal(t, []string{"application/grpc+proto"}, call.contentType)

	top := rawFields(t, call.frame)
	doc := rawFields(t, top[1][0].([]byte))
	assert.Equal(t, "책 두 권", string(doc[2][0].([]byte)))
	assert.Equal(t, []any{uint64(3)}, top[2])
	assert.Equal(t, []any{uint64(1)}, top[3])

	require.Len(t, res.GetSentences(), 1)
	segs := res.GetSentences()[0].GetTokens()[0].GetSegments()
	require.Len(t, segs, 1)
	assert.Equal(t, "책", segs[0].GetText().GetContent())
	assert.Equal(t, "N", segs[0].GetHint())
}

func TestMorphemeJSONNames(t *testing.T) {
	m := &Morpheme{
		Text:       &TextSpan{Content: "오늘", Length: 2},
		Tag:        Tag_NNG,
		OutOfVocab: OutOfVocab_IN_CUSTOM_DICT,
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "NNG", raw["tag"])
	assert.Equal(t, "IN_CUSTOM_DICT", raw["out_of_vocab"])
}

func TestEnumAcceptsNumbers(t *testing.T) {
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(`41`), &tag))
	assert.Equal(t, Tag_VV, tag)

	var dt DictType
	require.NoError(t, json.Unmarshal([]byte(`"WORD_LIST"`), &dt))
	assert.Equal(t, DictType_WORD_LIST, dt)

	assert.Error(t, json.Unmarshal([]byte(`"NOPE"`), &tag))
}

func TestTagLookup(t *testing.T) {
	for _, name := range []string{"NNP", "NNG", "NP", "NNB", "VV", "SWK"} {
		tag, ok := ParseTag(name)
		require.True(t, ok, name)
		assert.Equal(t, name, tag.String())
	}
	assert.Equal(t, Tag(23), Tag_NNB)
	assert.Equal(t, Tag(26), Tag_NP)
	assert.Equal(t, "99", Tag(99).String())

	_, ok := ParseOutOfVocab("OUT_OF_VOCAB")
	assert.True(t, ok)
}

func TestNilGetters(t *testing.T) {
	var m *Morpheme
	assert.Nil(t, m.GetText())
	assert.Equal(t, Tag_UNK, m.GetTag())
	assert.Equal(t, OutOfVocab_IN_WORD_EMBEDDING, m.GetOutOfVocab())
	assert.Equal(t, "", m.GetText().GetContent())

	var d *CustomDictionary
	assert.Nil(t, d.GetNpSet().GetItems())

	var r *TokenizeResponse
	assert.Empty(t, r.GetSentences())
}
