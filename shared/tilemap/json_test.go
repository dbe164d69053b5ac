package tilemap

import (
	"image"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomJSON = `{
  "width": 4, "height": 4, "tilewidth": 16, "tileheight": 16, "infinite": true,
  "properties": [{"name": "music", "type": "string", "value": "crypt"}],
  "tilesets": [
    {"firstgid": 1, "source": "dungeon.json"},
    {"firstgid": 9, "name": "props", "tilewidth": 16, "tileheight": 16, "margin": 0, "spacing": 0,
     "image": "props.png", "imagewidth": 32, "imageheight": 16, "tilecount": 2}
  ],
  "layers": [
    {"name": "floor", "type": "tilelayer", "visible": true, "opacity": 1,
     "chunks": [
       {"x": -2, "y": 0, "width": 2, "height": 2, "data": "[1,2,0,3]"},
       {"x": 0, "y": 0, "width": 2, "height": 2, "data": [0,5,0,0]}
     ]},
    {"name": "decor", "type": "group", "visible": false, "opacity": 0.5, "layers": [
      {"name": "props", "type": "tilelayer", "opacity": 1,
       "chunks": [{"x": 0, "y": 2, "width": 2, "height": 1, "data": [9, 99]}]}
    ]},
    {"name": "actors", "type": "objectgroup", "objects": [
      {"id": 1, "name": "spawn", "type": "", "x": 8, "y": 16, "width": 16, "height": 16},
      {"id": 2, "name": "", "class": "melee", "x": 40, "y": 40, "width": 0, "height": 0,
       "properties": [{"name": "radius", "type": "float", "value": 30}]}
    ]}
  ]
}`

const dungeonTileSetJSON = `{
  "name": "dungeon", "tilewidth": 16, "tileheight": 16, "margin": 0, "spacing": 0,
  "image": "../images/dungeon.png", "imagewidth": 64, "imageheight": 32, "tilecount": 8
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/room.json":    {Data: []byte(roomJSON)},
		"levels/dungeon.json": {Data: []byte(dungeonTileSetJSON)},
	}
}

func TestLoadMapJSON(t *testing.T) {
	m, err := LoadMap(testFS(), "levels/room.json")
	require.NoError(t, err)

	assert.True(t, m.Infinite)
	assert.Equal(t, "crypt", m.Properties.GetString("music"))

	require.Len(t, m.TileSets, 2)
	assert.Equal(t, TileSetRef{
		Name:      "dungeon",
		FirstGID:  1,
		Image:     "images/dungeon.png",
		Grid:      Grid{ImageWidth: 64, ImageHeight: 32, TileWidth: 16, TileHeight: 16},
		TileCount: 8,
	}, m.TileSets[0])
	assert.Equal(t, "levels/props.png", m.TileSets[1].Image)
	assert.Equal(t, uint32(9), m.TileSets[1].FirstGID)

	floor, ok := m.FindLayer("floor")
	require.True(t, ok)
	require.Len(t, floor.Chunks, 2)
	assert.Equal(t, []uint32{1, 2, 0, 3}, floor.Chunks[0].Data)

	spawn, ok := m.FindObject("spawn")
	require.True(t, ok)
	x, y := spawn.Center()
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 24.0, y)

	melee := m.ObjectsOfType("melee")
	require.Len(t, melee, 1)
	assert.Equal(t, 30.0, melee[0].Properties.GetFloat("radius"))

	assert.Equal(t, image.Rect(-2, 0, 2, 3), m.TileBounds())
	assert.Equal(t, image.Rect(-32, 0, 32, 48), m.PixelBounds())
}

func TestTileLayersInheritGroupState(t *testing.T) {
	m, err := LoadMap(testFS(), "levels/room.json")
	require.NoError(t, err)

	layers := m.TileLayers()
	require.Len(t, layers, 2)
	assert.Equal(t, "floor", layers[0].Name)
	assert.True(t, layers[0].Visible)

	assert.Equal(t, "props", layers[1].Name)
	assert.False(t, layers[1].Visible)
	assert.Equal(t, 0.5, layers[1].Opacity)

	props, ok := m.FindLayer("props")
	require.True(t, ok)
	assert.True(t, props.Visible, "group state is not written back")
}

func TestBuildLayerWithRegistry(t *testing.T) {
	m, err := LoadMap(testFS(), "levels/room.json")
	require.NoError(t, err)

	reg := NewRegistry()
	require.NoError(t, LoadTileSets(m, reg))
	require.Equal(t, 2, reg.Len())

	layers := m.TileLayers()

	floor, err := BuildLayer[image.Rectangle](layers[0], reg)
	require.NoError(t, err)
	assert.Zero(t, floor.Missing)
	require.Len(t, floor.Tiles, 4)
	assert.Equal(t, PlacedTile{X: -2, Y: 0, GID: 1}, floor.Tiles[0].PlacedTile)
	assert.Equal(t, image.Rect(0, 0, 16, 16), floor.Tiles[0].Texture)
	assert.Equal(t, PlacedTile{X: 1, Y: 0, GID: 5}, floor.Tiles[3].PlacedTile)
	assert.Equal(t, image.Rect(0, 16, 16, 32), floor.Tiles[3].Texture)

	props, err := BuildLayer[image.Rectangle](layers[1], reg)
	require.NoError(t, err)
	assert.Equal(t, 1, props.Missing, "gid 99 is not owned by any set")
	require.Len(t, props.Tiles, 1)
	assert.Equal(t, image.Rect(0, 0, 16, 16), props.Tiles[0].Texture)
}

func TestBuildLayerRejectsMalformedChunk(t *testing.T) {
	l := &Layer{Name: "bad", Kind: TileLayer, Chunks: []Chunk{{Width: 2, Height: 2, Data: []uint32{1}}}}
	res := ResolverFunc[int](func(gid uint32) (int, bool) { return int(gid), true })

	_, err := BuildLayer[int](l, res)
	assert.ErrorIs(t, err, ErrChunkSize)
}

func TestPlacedTilesKeepsUnresolvedIDs(t *testing.T) {
	l := &Layer{Name: "walls", Kind: TileLayer, Chunks: []Chunk{
		{X: 0, Y: 0, Width: 2, Height: 1, Data: []uint32{99, 0}},
		{X: 2, Y: 0, Width: 1, Height: 1, Data: []uint32{JoinGID(3, FlipVertical)}},
	}}
	none := ResolverFunc[int](func(uint32) (int, bool) { return 0, false })

	res, err := BuildLayer[int](l, none)
	require.NoError(t, err)
	assert.Empty(t, res.Tiles)
	assert.Equal(t, 2, res.Missing)

	placed, err := l.PlacedTiles()
	require.NoError(t, err)
	assert.Equal(t, []PlacedTile{
		{X: 0, Y: 0, GID: 99},
		{X: 2, Y: 0, GID: 3, Flip: FlipVertical},
	}, placed)

	l.Chunks = append(l.Chunks, Chunk{Width: 2, Height: 2, Data: []uint32{1}})
	_, err = l.PlacedTiles()
	assert.ErrorIs(t, err, ErrChunkSize)
}

func TestParseJSONFiniteLayer(t *testing.T) {
	m, err := ParseJSON(strings.NewReader(`{
	  "width": 2, "height": 2, "tilewidth": 8, "tileheight": 8,
	  "layers": [{"name": "ground", "type": "tilelayer", "width": 2, "height": 2, "data": [0, 0, 4, 0]}]
	}`))
	require.NoError(t, err)

	layer, ok := m.FindLayer("ground")
	require.True(t, ok)
	assert.True(t, layer.Visible)
	assert.Equal(t, 1.0, layer.Opacity)

	tiles, err := DecodeChunk(layer.Chunks[0])
	require.NoError(t, err)
	assert.Equal(t, []PlacedTile{{X: 0, Y: 1, GID: 4}}, tiles)
}

func TestLoadMapErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":      {Data: []byte("nope")},
		"tsx.json":   {Data: []byte(`{"tilesets": [{"firstgid": 1, "source": "set.tsx"}]}`)},
		"layer.json": {Data: []byte(`{"layers": [{"name": "x", "type": "hexlayer"}]}`)},
	}

	_, err := LoadMap(fsys, "a.txt")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadMap(fsys, "tsx.json")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadMap(fsys, "layer.json")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadMap(fsys, "missing.json")
	assert.Error(t, err)
}
