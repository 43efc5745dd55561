package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopia/polyname/internal/name"
	"github.com/polytopia/polyname/internal/off"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	e := Entry{
		Path: "/lib/cube.off", Label: "cube",
		Name: "cuboid[irr]",
		Rank: 3, HasRank: true,
		Facets: 6, HasFacets: true,
	}
	id, err := s.Put(ctx, e)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, e.Label, got.Label)
	assert.Equal(t, e.Name, got.Name)
	assert.Equal(t, 3, got.Rank)
	assert.Equal(t, 6, got.Facets)
}

func TestPutUpsertsByPath(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id1, err := s.Put(ctx, Entry{Path: "/lib/a.off", Label: "old"})
	require.NoError(t, err)
	id2, err := s.Put(ctx, Entry{Path: "/lib/a.off", Label: "new"})
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "re-indexing a path should keep its id")

	got, err := s.Get(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Label)
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	entries := []Entry{
		{Path: "/lib/cube.off", Label: "cube", Rank: 3, HasRank: true, Facets: 6, HasFacets: true},
		{Path: "/lib/oct.off", Label: "octahedron", Rank: 3, HasRank: true, Facets: 8, HasFacets: true},
		{Path: "/lib/tess.off", Label: "tesseract", Rank: 4, HasRank: true, Facets: 8, HasFacets: true},
		{Path: "/lib/odd.off", Label: "unnamed"},
	}
	for _, e := range entries {
		_, err := s.Put(ctx, e)
		require.NoError(t, err)
	}

	byRank, err := s.ByRank(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byRank, 2)
	assert.Equal(t, "cube", byRank[0].Label)
	assert.Equal(t, "octahedron", byRank[1].Label)

	byFacets, err := s.ByFacetCount(ctx, 8)
	require.NoError(t, err)
	require.Len(t, byFacets, 2)

	// Entries without a derivable rank never match a rank query.
	none, err := s.ByRank(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	dir := t.TempDir()

	cube := name.Name[name.Con64](&name.Cuboid[name.Con64]{Regular: name.Irregular[name.Con64]()})
	require.NoError(t, off.WriteName(filepath.Join(dir, "cube.off"), cube))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.off"), []byte("OFF\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	count, err := Scan[name.Con64](ctx, s, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	byRank, err := s.ByRank(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byRank, 1)
	assert.Equal(t, "cube", byRank[0].Label)
	assert.Equal(t, "cuboid[irr]", byRank[0].Name)

	// The headerless file is indexed by label alone.
	byNothing, err := s.ByFacetCount(ctx, 6)
	require.NoError(t, err)
	require.Len(t, byNothing, 1)
}
