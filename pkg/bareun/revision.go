package bareun

import (
	"context"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

type RevisionClient struct {
	conn *Conn
	stub bareunpb.RevisionServiceClient
}

func NewRevisionClient(conn *Conn) *RevisionClient {
	return &RevisionClient{conn: conn, stub: bareunpb.NewRevisionServiceClient(conn.cc)}
}

// CorrectError sends a prepared request. Most callers want Corrector.CorrectError.
func (c *RevisionClient) CorrectError(ctx context.Context, req *bareunpb.CorrectErrorRequest) (*bareunpb.CorrectErrorResponse, error) {
	res, err := c.stub.CorrectError(ctx, req)
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res, nil
}
