package tilemap

import (
	"fmt"
	"image"
	"os"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTMX(t *testing.T) {
	ts := &tiled.Tileset{
		Name:       "dungeon",
		FirstGID:   1,
		TileWidth:  16,
		TileHeight: 16,
		TileCount:  8,
		Image:      &tiled.Image{Source: "dungeon.png", Width: 64, Height: 32},
	}
	tm := &tiled.Map{
		Width:      2,
		Height:     2,
		TileWidth:  16,
		TileHeight: 16,
		Tilesets:   []*tiled.Tileset{ts},
		Layers: []*tiled.Layer{{
			Name:    "walls",
			Visible: true,
			Opacity: 1,
			Properties: tiled.Properties{
				{Name: "collision", Type: "bool", Value: "true"},
			},
			Tiles: []*tiled.LayerTile{
				{ID: 3, Tileset: ts},
				{Nil: true},
				{Nil: true},
				{ID: 1, Tileset: ts, HorizontalFlip: true},
			},
		}},
		ObjectGroups: []*tiled.ObjectGroup{{
			Name: "actors",
			Objects: []*tiled.Object{
				{ID: 1, Name: "spawn", X: 8, Y: 8, Width: 16, Height: 16},
			},
		}},
	}

	m, err := FromTMX(tm)
	require.NoError(t, err)

	require.Len(t, m.TileSets, 1)
	assert.Equal(t, uint32(1), m.TileSets[0].FirstGID)
	assert.Equal(t, Grid{ImageWidth: 64, ImageHeight: 32, TileWidth: 16, TileHeight: 16}, m.TileSets[0].Grid)

	layers := m.TileLayers()
	require.Len(t, layers, 1)
	assert.True(t, layers[0].Properties.GetBool("collision"))
	require.Len(t, layers[0].Chunks, 1)
	assert.Equal(t, []uint32{4, 0, 0, JoinGID(2, FlipHorizontal)}, layers[0].Chunks[0].Data)

	spawn, ok := m.FindObject("spawn")
	require.True(t, ok)
	x, y := spawn.Center()
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 16.0, y)
}

func TestFromTMXRejectsShortLayer(t *testing.T) {
	tm := &tiled.Map{
		Width:  2,
		Height: 2,
		Layers: []*tiled.Layer{{Name: "broken", Tiles: make([]*tiled.LayerTile, 3)}},
	}
	_, err := FromTMX(tm)
	assert.ErrorIs(t, err, ErrChunkSize)
}

const hallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 %s
 <tileset firstgid="1" name="dungeon" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="dungeon.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="floor" width="3" height="2">
  <data encoding="csv">
1,2,0,
0,3,1
</data>
 </layer>
 <group id="2" name="upper" visible="0">
  <layer id="3" name="walls" width="3" height="2">
   <properties>
    <property name="collision" type="bool" value="true"/>
   </properties>
   <data encoding="csv">
4,0,4,
0,0,0
</data>
  </layer>
  <objectgroup id="4" name="actors" offsetx="2">
   <object id="1" name="spawn" x="16" y="0" width="16" height="16"/>
   <object id="2" type="melee" x="32" y="16" width="8" height="8"/>
  </objectgroup>
 </group>
</map>
`

func TestLoadMapTMX(t *testing.T) {
	tests := []struct {
		name  string
		props string
		want  Properties
	}{
		{"no map properties", "", Properties{}},
		{"map properties", `<properties><property name="title" value="Hall"/></properties>`, Properties{"title": "Hall"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"levels/hall.tmx": {Data: []byte(fmt.Sprintf(hallTMX, tt.props))},
			}
			m, err := LoadMap(fsys, "levels/hall.tmx")
			require.NoError(t, err)

			assert.Equal(t, tt.want, m.Properties)
			require.Len(t, m.TileSets, 1)
			assert.Equal(t, "levels/dungeon.png", m.TileSets[0].Image)

			reg := NewRegistry()
			require.NoError(t, LoadTileSets(m, reg))

			layers := m.TileLayers()
			require.Len(t, layers, 2)
			counts := map[string]int{}
			for _, l := range layers {
				res, err := BuildLayer[image.Rectangle](l, reg)
				require.NoError(t, err)
				assert.Zero(t, res.Missing)
				counts[l.Name] = len(res.Tiles)
			}
			assert.Equal(t, map[string]int{"floor": 4, "walls": 2}, counts)

			walls, ok := m.FindLayer("walls")
			require.True(t, ok)
			assert.True(t, walls.Properties.GetBool("collision"))
			assert.False(t, layers[1].Visible, "hidden group hides its layers")

			spawn, ok := m.FindObject("spawn")
			require.True(t, ok)
			x, y := spawn.Center()
			assert.Equal(t, 26.0, x)
			assert.Equal(t, 8.0, y)
			assert.Len(t, m.ObjectsOfType("melee"), 1)
		})
	}
}

func TestLoadMapCrypt(t *testing.T) {
	m, err := LoadMap(os.DirFS("../../assets"), "levels/crypt.tmx")
	require.NoError(t, err)

	require.Len(t, m.TileSets, 1)
	assert.Equal(t, "levels/dungeon.png", m.TileSets[0].Image)

	reg := NewRegistry()
	require.NoError(t, LoadTileSets(m, reg))

	counts := map[string]int{}
	for _, l := range m.TileLayers() {
		res, err := BuildLayer[image.Rectangle](l, reg)
		require.NoError(t, err)
		assert.Zero(t, res.Missing)
		counts[l.Name] = len(res.Tiles)
	}
	assert.Equal(t, 112, counts["floor"])
	assert.Equal(t, 48, counts["walls"])

	_, ok := m.FindObject("spawn")
	assert.True(t, ok)
}
