package bareun

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gembleman/bareun-go/pkg/bareunpb"
	"github.com/gembleman/bareun-go/pkg/dictionary"
)

func TestSetKindNames(t *testing.T) {
	want := map[SetKind][2]string{
		SetNP:      {"np", "np-set"},
		SetCP:      {"cp", "cp-set"},
		SetCPCaret: {"cp_caret", "cp-caret-set"},
		SetVV:      {"vv", "vv-set"},
		SetVA:      {"va", "va-set"},
	}
	for kind, names := range want {
		assert.Equal(t, names[0], kind.String())
		assert.Equal(t, names[1], kind.suffix())
		parsed, ok := ParseSetKind(names[0])
		assert.True(t, ok)
		assert.Equal(t, kind, parsed)
	}
	_, ok := ParseSetKind("nn")
	assert.False(t, ok)
	assert.Equal(t, "unknown", SetKind(9).String())
}

func TestNewCustomDictRejectsBlankDomain(t *testing.T) {
	for _, domain := range []string{"", "   "} {
		_, err := NewCustomDict(domain, nil)
		assert.ErrorIs(t, err, ErrInvalidCustomDictName)
	}
}

func TestCustomDictLocalSets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "np.txt")
	require.NoError(t, os.WriteFile(path, []byte("# 고유명사\n바른\n\n  코바  \n바른\n"), 0o644))

	d, err := NewCustomDict("tech", nil)
	require.NoError(t, err)
	require.NoError(t, d.ReadSetFromFile(SetNP, path))
	d.CopySet(SetVV, "구글링하", "", "검색하")

	assert.Equal(t, []string{"바른", "코바"}, d.Set(SetNP))
	assert.Equal(t, []string{"검색하", "구글링하"}, d.Set(SetVV))
	assert.Empty(t, d.Set(SetCP))

	assert.Error(t, d.ReadSetFromFile(SetCP, filepath.Join(dir, "missing.txt")))

	p := d.Pack()
	assert.Equal(t, "tech", p.Domain)
	assert.Equal(t, []string{"바른", "코바"}, p.NP)

	other, err := NewCustomDict("copy", nil)
	require.NoError(t, err)
	other.LoadPack(p)
	assert.Equal(t, d.Set(SetNP), other.Set(SetNP))
	assert.Equal(t, d.Set(SetVV), other.Set(SetVV))
}

func TestCustomDictRemoteOpsNeedClient(t *testing.T) {
	d, err := NewCustomDict("tech", nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = d.Update(ctx)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = d.Get(ctx)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, d.Load(ctx), ErrInvalidArgument)
	_, err = d.Clear(ctx)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCustomDictRoundTrip(t *testing.T) {
	srv, conn := dialFake(t)
	client := NewCustomDictClient(conn)
	ctx := context.Background()

	d, err := NewCustomDict("game", client)
	require.NoError(t, err)
	d.CopySet(SetNP, "리그오브레전드", "발로란트")
	d.CopySet(SetCPCaret, "자유^게시판")
	d.CopySet(SetVA, "갓겜스럽")

	ok, err := d.Update(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	stored := srv.Dictionary("game")
	require.NotNil(t, stored)
	assert.Equal(t, "game-np-set", stored.NpSet.Name)
	assert.Equal(t, "game-cp-caret-set", stored.CpCaretSet.Name)
	assert.Equal(t, bareunpb.DictType_WORD_LIST, stored.VaSet.Type)
	assert.Equal(t, map[string]int32{"리그오브레전드": 1, "발로란트": 1}, stored.NpSet.Items)
	assert.Empty(t, stored.CpSet.Items)

	fresh, err := NewCustomDict("game", client)
	require.NoError(t, err)
	require.NoError(t, fresh.Load(ctx))
	for _, k := range SetKinds {
		assert.Equal(t, d.Set(k), fresh.Set(k), k.String())
	}

	metas, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "game", metas[0].DomainName)
	assert.EqualValues(t, 2, metas[0].NpSetCount)

	removed, err := d.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"game"}, removed)
	assert.Empty(t, d.Set(SetNP))
	assert.Nil(t, srv.Dictionary("game"))

	_, err = fresh.Get(ctx)
	require.ErrorIs(t, err, ErrGrpc)
}

func TestCustomDictClearKeepsSetsOnFailure(t *testing.T) {
	srv, conn := dialFake(t)
	ctx := context.Background()

	d, err := NewCustomDict("game", NewCustomDictClient(conn))
	require.NoError(t, err)
	d.CopySet(SetNP, "발로란트")
	_, err = d.Update(ctx)
	require.NoError(t, err)

	srv.FailWith("RemoveCustomDictionaries", status.Error(codes.Unavailable, "down"))
	removed, err := d.Clear(ctx)
	require.ErrorIs(t, err, ErrServerUnavailable)
	assert.Nil(t, removed)
	assert.Equal(t, []string{"발로란트"}, d.Set(SetNP))
	assert.NotNil(t, srv.Dictionary("game"))

	// A retry after the failure still sends the words.
	srv.FailWith("RemoveCustomDictionaries", nil)
	_, err = d.Update(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"발로란트": 1}, srv.Dictionary("game").NpSet.Items)

	removed, err = d.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"game"}, removed)
	assert.Empty(t, d.Set(SetNP))
}

func TestCustomDictClientRemoveAndConflicts(t *testing.T) {
	srv, conn := dialFake(t)
	client := NewCustomDictClient(conn)
	ctx := context.Background()

	for domain, words := range map[string][]string{
		"a": {"사과", "배"},
		"b": {"배", "감"},
		"c": {"사과", "배"},
	} {
		ok, err := client.Update(ctx, domain, map[SetKind]WordSet{SetNP: dictionary.NewWordSet(words...)})
		require.NoError(t, err)
		require.True(t, ok)
	}

	conflicts, err := client.CheckConflict(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, "배", conflicts[0].Word)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, conflicts[0].DomainNames)
	assert.Equal(t, "사과", conflicts[1].Word)

	removed, err := client.Remove(ctx, []string{"b", "zzz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "zzz"}, removed, "names the server reported as not deleted are kept")

	removed, err = client.RemoveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, removed)
	assert.Nil(t, srv.Dictionary("a"))
}
