package tilemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTiles(t *testing.T) {
	cases := []struct {
		name  string
		chunk Chunk
		want  []PlacedTile
	}{
		{
			name:  "all_empty",
			chunk: Chunk{Width: 3, Height: 2, Data: make([]uint32, 6)},
			want:  nil,
		},
		{
			name:  "single_tile",
			chunk: Chunk{Width: 2, Height: 2, Data: []uint32{0, 5, 0, 0}},
			want:  []PlacedTile{{X: 1, Y: 0, GID: 5}},
		},
		{
			name:  "offset_origin",
			chunk: Chunk{X: -16, Y: 32, Width: 2, Height: 2, Data: []uint32{0, 5, 0, 0}},
			want:  []PlacedTile{{X: -15, Y: 32, GID: 5}},
		},
		{
			name:  "row_major",
			chunk: Chunk{Width: 3, Height: 2, Data: []uint32{1, 0, 2, 3, 4, 0}},
			want: []PlacedTile{
				{X: 0, Y: 0, GID: 1},
				{X: 2, Y: 0, GID: 2},
				{X: 0, Y: 1, GID: 3},
				{X: 1, Y: 1, GID: 4},
			},
		},
		{
			name:  "flip_bits_split",
			chunk: Chunk{Width: 2, Height: 1, Data: []uint32{0x80000007, 0x60000002}},
			want: []PlacedTile{
				{X: 0, Y: 0, GID: 7, Flip: FlipHorizontal},
				{X: 1, Y: 0, GID: 2, Flip: FlipVertical | FlipDiagonal},
			},
		},
		{
			name:  "flags_without_id_are_empty",
			chunk: Chunk{Width: 1, Height: 1, Data: []uint32{0x80000000}},
			want:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := slices.Collect(c.chunk.Tiles())
			assert.Equal(t, c.want, got)
		})
	}
}

func TestChunkTilesRestartable(t *testing.T) {
	c := Chunk{X: 4, Y: 4, Width: 4, Height: 4, Data: []uint32{
		0, 1, 0, 2,
		3, 0, 0, 0,
		0, 0, 9, 0,
		7, 0, 0, 8,
	}}

	first := slices.Collect(c.Tiles())
	second := slices.Collect(c.Tiles())
	require.Len(t, first, 6)
	assert.Equal(t, first, second)
}

func TestChunkTilesStopsEarly(t *testing.T) {
	c := Chunk{Width: 3, Height: 1, Data: []uint32{1, 2, 3}}

	var seen []uint32
	for tile := range c.Tiles() {
		seen = append(seen, tile.GID)
		if tile.GID == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, seen)
}

func TestChunkTilesShortData(t *testing.T) {
	c := Chunk{Width: 3, Height: 3, Data: []uint32{1, 0, 2, 3}}

	got := slices.Collect(c.Tiles())
	assert.Len(t, got, 3)
}

func TestDecodeChunk(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tiles, err := DecodeChunk(Chunk{Width: 2, Height: 2, Data: []uint32{0, 5, 0, 0}})
		require.NoError(t, err)
		assert.Equal(t, []PlacedTile{{X: 1, Y: 0, GID: 5}}, tiles)
	})

	invalid := []struct {
		name  string
		chunk Chunk
	}{
		{"too_short", Chunk{Width: 2, Height: 2, Data: []uint32{1, 2, 3}}},
		{"too_long", Chunk{Width: 1, Height: 1, Data: []uint32{1, 2}}},
		{"negative", Chunk{Width: -1, Height: 1}},
	}
	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeChunk(c.chunk)
			assert.ErrorIs(t, err, ErrChunkSize)
		})
	}
}

func TestSplitJoinGID(t *testing.T) {
	gid, flip := SplitGID(0xE0000010)
	assert.Equal(t, uint32(0x10), gid)
	assert.Equal(t, FlipHorizontal|FlipVertical|FlipDiagonal, flip)
	assert.Equal(t, uint32(0xE0000010), JoinGID(gid, flip))

	gid, _ = SplitGID(0x10000003)
	assert.Equal(t, uint32(3), gid, "hex rotation bit is masked")
}

func TestFlipString(t *testing.T) {
	assert.Equal(t, "none", Flip(0).String())
	assert.Equal(t, "hd", (FlipHorizontal | FlipDiagonal).String())
	assert.Equal(t, "hvd", (FlipHorizontal | FlipVertical | FlipDiagonal).String())
}
