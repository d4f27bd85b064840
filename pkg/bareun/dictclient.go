package bareun

import (
	"context"
	"maps"
	"slices"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
)

// CustomDictClient manages server-side custom dictionaries.
type CustomDictClient struct {
	conn *Conn
	stub bareunpb.CustomDictionaryServiceClient
}

func NewCustomDictClient(conn *Conn) *CustomDictClient {
	return &CustomDictClient{conn: conn, stub: bareunpb.NewCustomDictionaryServiceClient(conn.cc)}
}

// List returns metadata for every domain stored on the server.
func (c *CustomDictClient) List(ctx context.Context) ([]*bareunpb.CustomDictionaryMeta, error) {
	res, err := c.stub.GetCustomDictionaryList(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res.DomainDicts, nil
}

func (c *CustomDictClient) Get(ctx context.Context, domain string) (*bareunpb.CustomDictionary, error) {
	res, err := c.stub.GetCustomDictionary(ctx, &bareunpb.GetCustomDictionaryRequest{DomainName: domain})
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res.Dict, nil
}

// Update replaces all five sets of the domain. It reports whether the server
// acknowledged the same domain name.
func (c *CustomDictClient) Update(ctx context.Context, domain string, sets map[SetKind]WordSet) (bool, error) {
	dict := &bareunpb.CustomDictionary{
		DomainName: domain,
		NpSet:      buildDictSet(domain, SetNP, sets[SetNP]),
		CpSet:      buildDictSet(domain, SetCP, sets[SetCP]),
		CpCaretSet: buildDictSet(domain, SetCPCaret, sets[SetCPCaret]),
		VvSet:      buildDictSet(domain, SetVV, sets[SetVV]),
		VaSet:      buildDictSet(domain, SetVA, sets[SetVA]),
	}
	res, err := c.stub.UpdateCustomDictionary(ctx, &bareunpb.UpdateCustomDictionaryRequest{DomainName: domain, Dict: dict})
	if err != nil {
		return false, c.conn.mapErr(err)
	}
	return res.UpdatedDomainName == domain, nil
}

// Remove deletes the named domains and returns the names the server deleted.
func (c *CustomDictClient) Remove(ctx context.Context, domains []string) ([]string, error) {
	return c.remove(ctx, &bareunpb.RemoveCustomDictionariesRequest{DomainNames: domains})
}

func (c *CustomDictClient) RemoveAll(ctx context.Context) ([]string, error) {
	return c.remove(ctx, &bareunpb.RemoveCustomDictionariesRequest{All: true})
}

func (c *CustomDictClient) remove(ctx context.Context, req *bareunpb.RemoveCustomDictionariesRequest) ([]string, error) {
	res, err := c.stub.RemoveCustomDictionaries(ctx, req)
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return slices.Sorted(maps.Keys(res.DeletedDomainNames)), nil
}

// CheckConflict lists words registered in more than one of the given domains.
func (c *CustomDictClient) CheckConflict(ctx context.Context, domains []string) ([]*bareunpb.DictConflict, error) {
	res, err := c.stub.CheckConflict(ctx, &bareunpb.CheckConflictRequest{DomainNames: domains})
	if err != nil {
		return nil, c.conn.mapErr(err)
	}
	return res.Conflicts, nil
}

func buildDictSet(domain string, kind SetKind, words WordSet) *bareunpb.DictSet {
	items := make(map[string]int32, len(words))
	for w := range words {
		items[w] = 1
	}
	return &bareunpb.DictSet{
		Name:  domain + "-" + kind.suffix(),
		Type:  bareunpb.DictType_WORD_LIST,
		Items: items,
	}
}

func setFromDictSet(ds *bareunpb.DictSet) WordSet {
	items := ds.GetItems()
	out := make(WordSet, len(items))
	for w := range items {
		out[w] = struct{}{}
	}
	return out
}
