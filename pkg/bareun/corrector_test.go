package bareun

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

func sampleCorrection() *bareunpb.CorrectErrorResponse {
	return &bareunpb.CorrectErrorResponse{
		Origin:  "외않되?",
		Revised: "왜 안 돼?",
		RevisedSentences: []*bareunpb.RevisedSentence{
			{Origin: "외않되?", Revised: "왜 안 돼?"},
		},
		RevisedBlocks: []*bareunpb.RevisedBlock{{
			Origin:  &bareunpb.TextSpan{Content: "외않되", BeginOffset: 0, Length: 3},
			Revised: "왜 안 돼",
			Revisions: []*bareunpb.Revision{
				{Revised: "왜 안 돼", Category: "TYPO", HelpID: "h1"},
				{Revised: "왜 안되", Category: "SPACING", HelpID: "missing"},
			},
		}},
		Helps: map[string]*bareunpb.CorrectionHelp{
			"h1": {ID: "h1", Comment: "맞춤법 오류"},
		},
		WhitespaceCleanupRanges: []*bareunpb.CleanupRange{
			{Offset: 3, Length: 2, Position: "MIDDLE"},
		},
	}
}

func TestCorrectorCorrectError(t *testing.T) {
	srv, conn := dialFake(t)
	c := NewCorrectorWithConn(conn)

	res, err := c.CorrectError(context.Background(), "첫 줄\n둘째 줄", []string{"news", "sports"},
		&bareunpb.RevisionConfig{EnableSentenceCheck: true})
	require.NoError(t, err)
	assert.Equal(t, "첫 줄\n둘째 줄", res.Revised)
	assert.Len(t, res.RevisedSentences, 2)

	req := srv.LastCorrectRequest()
	require.NotNil(t, req)
	assert.Equal(t, []string{"news", "sports"}, req.CustomDictNames)
	assert.Equal(t, bareunpb.EncodingType_UTF32, req.EncodingType)
	assert.True(t, req.Config.EnableSentenceCheck)

	srv.HandleCorrect(func(*bareunpb.CorrectErrorRequest) (*bareunpb.CorrectErrorResponse, error) {
		return sampleCorrection(), nil
	})
	res, err = c.CorrectError(context.Background(), "외않되?", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "왜 안 돼?", res.Revised)
	assert.Nil(t, srv.LastCorrectRequest().Config)
}

func TestCorrectorPrintResults(t *testing.T) {
	c := &Corrector{}
	var buf bytes.Buffer
	require.NoError(t, c.PrintResults(&buf, sampleCorrection()))

	want := "원문: 외않되?\n" +
		"교정: 왜 안 돼?\n" +
		"\n=== 교정된 문장들 ===\n" +
		" 원문: 외않되?\n" +
		"교정문: 왜 안 돼?\n" +
		"원문:외않되 offset:0, length:3\n" +
		"대표 교정: 왜 안 돼\n" +
		" 교정: 왜 안 돼, 카테고리:TYPO, 도움말 맞춤법 오류\n" +
		" 교정: 왜 안되, 카테고리:SPACING, 도움말 \n" +
		"공백제거: offset:3 length:2 position: MIDDLE\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCorrectorPrintErrors(t *testing.T) {
	c := &Corrector{}

	err := c.PrintResults(failingWriter{}, sampleCorrection())
	assert.ErrorIs(t, err, ErrTransport)

	err = c.PrintAsJSON(failingWriter{}, sampleCorrection())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCorrectorPrintResultsNil(t *testing.T) {
	c := &Corrector{}
	var buf bytes.Buffer
	err := c.PrintResults(&buf, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, buf.String())

	res := sampleCorrection()
	res.RevisedSentences = append(res.RevisedSentences, nil)
	res.RevisedBlocks = append(res.RevisedBlocks, nil)
	res.RevisedBlocks[0].Revisions = append(res.RevisedBlocks[0].Revisions, nil)
	res.WhitespaceCleanupRanges = append(res.WhitespaceCleanupRanges, nil)
	require.NoError(t, c.PrintResults(&buf, res))
	assert.Contains(t, buf.String(), "교정: 왜 안 돼?")
}

func TestCorrectorJSON(t *testing.T) {
	c := &Corrector{}
	s, err := c.AsJSONString(sampleCorrection())
	require.NoError(t, err)
	assert.Contains(t, s, `"revised": "왜 안 돼?"`)
	assert.Contains(t, s, `"help_id": "h1"`)

	var buf bytes.Buffer
	require.NoError(t, c.PrintAsJSON(&buf, sampleCorrection()))
	assert.Equal(t, s+"\n", buf.String())
}
