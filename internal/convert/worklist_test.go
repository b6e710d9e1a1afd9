package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkList_All(t *testing.T) {
	items := BuildWorkList([]string{"a.stl", "b.stl", "c.stl"}, nil)
	require.Len(t, items, 3)
	assert.Equal(t, "a.stl", items[0].SourcePath)
	assert.Equal(t, "c.stl", items[2].SourcePath)
}

func TestBuildWorkList_Selection(t *testing.T) {
	items := BuildWorkList([]string{"a.stl", "b.stl", "c.stl", "d.stl"}, []int{2, 0})
	require.Len(t, items, 2)
	assert.Equal(t, "c.stl", items[0].SourcePath)
	assert.Equal(t, "a.stl", items[1].SourcePath)
}

func TestBuildWorkList_SelectionIgnoresOutOfRange(t *testing.T) {
	items := BuildWorkList([]string{"a.stl", "b.stl"}, []int{-1, 1, 7, 1})
	require.Len(t, items, 1)
	assert.Equal(t, "b.stl", items[0].SourcePath)
}

func TestBuildWorkList_DedupesCaseInsensitive(t *testing.T) {
	items := BuildWorkList([]string{"Part.STL", "part.stl", "./part.stl", "other.stl"}, nil)
	require.Len(t, items, 2)
	assert.Equal(t, "Part.STL", items[0].SourcePath)
	assert.Equal(t, "other.stl", items[1].SourcePath)
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.stl", "a.STL", "notes.txt", "c.stl.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.stl"), 0755))

	paths, err := ExpandDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.STL"),
		filepath.Join(dir, "b.stl"),
	}, paths)
}

func TestExpandDir_Missing(t *testing.T) {
	_, err := ExpandDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestClosestMatch(t *testing.T) {
	candidates := []string{"/models/bracket.stl", "/models/gearbox.stl"}

	got, ok := ClosestMatch("braket.stl", candidates)
	require.True(t, ok)
	assert.Equal(t, "/models/bracket.stl", got)
}

func TestClosestMatch_NothingClose(t *testing.T) {
	_, ok := ClosestMatch("zzzzzz.stl", []string{"alpha.stl"})
	assert.False(t, ok)
}
