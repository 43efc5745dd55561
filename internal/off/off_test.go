package off

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytopia/polyname/internal/name"
)

func pentagonPrism() name.Name[name.Con64] {
	return name.MakePrism(name.Name[name.Con64](&name.Polygon[name.Con64]{
		Regular: name.Irregular[name.Con64](),
		N:       5,
	}))
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentagonal_prism.off")
	want := pentagonPrism()

	require.NoError(t, WriteName(path, want))

	got, label, err := ReadName[name.Con64](path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, name.Equal(got, want))
	assert.Equal(t, "pentagonal prism", label)
}

func TestWritePreservesBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.off")
	body := "OFF\n8 6 12\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cube := name.Name[name.Con64](&name.Cuboid[name.Con64]{Regular: name.Irregular[name.Con64]()})
	require.NoError(t, WriteName(path, cube))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, EncodeHeader(cube)+"\n"+body, string(data))

	// Rewriting replaces the header instead of stacking a second one.
	square := name.MakeSquare[name.Con64]()
	require.NoError(t, WriteName(path, square))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, EncodeHeader(square)+"\n"+body, string(data))
}

func TestReadFallsBackToLabel(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"no header", "great_dodecahedron.off", "OFF\n12 12 30\n"},
		{"garbled name", "broken.off", "#/polyname con64 frustum(point)\nOFF\n"},
		{"wrong regime", "other-regime.off", "#/polyname abs cuboid\nOFF\n"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.file)
		require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

		n, label, err := ReadName[name.Con64](path)
		require.NoError(t, err, tt.name)
		assert.Nil(t, n, tt.name)
		assert.Equal(t, Label(path), label, tt.name)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := ReadName[name.Con64](filepath.Join(t.TempDir(), "absent.off"))
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "small stellated dodecahedron",
		Label("/lib/small_stellated-dodecahedron.off"))
}
