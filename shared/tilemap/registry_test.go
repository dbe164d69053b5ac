package tilemap

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid16(w, h int) TileSetSource {
	return func() (Grid, string, error) {
		return Grid{ImageWidth: w, ImageHeight: h, TileWidth: 16, TileHeight: 16}, "img.png", nil
	}
}

func TestRegistryLoadMemoises(t *testing.T) {
	reg := NewRegistry()

	calls := 0
	src := func() (Grid, string, error) {
		calls++
		return Grid{ImageWidth: 32, ImageHeight: 32, TileWidth: 16, TileHeight: 16}, "dungeon.png", nil
	}

	first, err := reg.Load("dungeon", 1, src)
	require.NoError(t, err)
	second, err := reg.Load("dungeon", 1, src)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "dungeon.png", first.Image)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryLoadError(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")

	_, err := reg.Load("broken", 1, func() (Grid, string, error) {
		return Grid{}, "", boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = reg.Load("zero", 1, func() (Grid, string, error) {
		return Grid{ImageWidth: 16, ImageHeight: 16}, "", nil
	})
	assert.ErrorIs(t, err, ErrTileSize)
	assert.Zero(t, reg.Len())
}

func TestRegistryFind(t *testing.T) {
	reg := NewRegistry()
	// Registered out of order on purpose.
	_, err := reg.Load("props", 5, grid16(32, 16)) // gids 5-6
	require.NoError(t, err)
	_, err = reg.Load("floor", 1, grid16(64, 16)) // gids 1-4
	require.NoError(t, err)
	_, err = reg.Load("walls", 10, grid16(16, 32)) // gids 10-11
	require.NoError(t, err)

	names := make([]string, 0, reg.Len())
	for _, ts := range reg.Sets() {
		names = append(names, ts.Name)
	}
	assert.Equal(t, []string{"floor", "props", "walls"}, names)

	cases := []struct {
		gid  uint32
		set  string
		rect image.Rectangle
		ok   bool
	}{
		{0, "", image.Rectangle{}, false},
		{1, "floor", image.Rect(0, 0, 16, 16), true},
		{4, "floor", image.Rect(48, 0, 64, 16), true},
		{6, "props", image.Rect(16, 0, 32, 16), true},
		{7, "", image.Rectangle{}, false}, // gap between props and walls
		{11, "walls", image.Rect(0, 16, 16, 32), true},
		{12, "", image.Rectangle{}, false},
	}
	for _, c := range cases {
		ts, rect, ok := reg.Find(c.gid)
		assert.Equal(t, c.ok, ok, "gid %d", c.gid)
		assert.Equal(t, c.rect, rect, "gid %d", c.gid)
		if c.ok {
			assert.Equal(t, c.set, ts.Name, "gid %d", c.gid)
		}

		r, ok := reg.Resolve(c.gid)
		assert.Equal(t, c.ok, ok)
		assert.Equal(t, c.rect, r)
	}
}

func TestRegistryAddReplacesAndReset(t *testing.T) {
	reg := NewRegistry()
	a, err := NewTileSet("a", 1, Grid{ImageWidth: 16, ImageHeight: 16, TileWidth: 16, TileHeight: 16})
	require.NoError(t, err)
	b, err := NewTileSet("a", 20, Grid{ImageWidth: 32, ImageHeight: 16, TileWidth: 16, TileHeight: 16})
	require.NoError(t, err)

	reg.Add(a)
	reg.Add(b)
	require.Equal(t, 1, reg.Len())
	got, ok := reg.Get("a")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, _, ok = reg.Find(1)
	assert.False(t, ok)

	reg.Reset()
	assert.Zero(t, reg.Len())
	_, err = reg.MustGet("a")
	assert.ErrorIs(t, err, ErrUnknownTileSet)
}
