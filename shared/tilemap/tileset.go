package tilemap

import (
	"fmt"
	"image"
)

// Grid describes how a tile set image is cut into tiles.
type Grid struct {
	ImageWidth, ImageHeight int
	TileWidth, TileHeight   int
	Margin                  int
	Spacing                 int
}

// Slice enumerates the tile regions of g left to right, top to bottom,
// starting at (Margin, Margin). Only whole tiles are returned.
func Slice(g Grid) ([]image.Rectangle, error) {
	if g.TileWidth <= 0 || g.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrTileSize, g.TileWidth, g.TileHeight)
	}
	if g.Margin < 0 || g.Spacing < 0 {
		return nil, fmt.Errorf("%w: margin %d spacing %d", ErrTileSize, g.Margin, g.Spacing)
	}

	var regions []image.Rectangle
	for y := g.Margin; y+g.TileHeight <= g.ImageHeight; y += g.TileHeight + g.Spacing {
		for x := g.Margin; x+g.TileWidth <= g.ImageWidth; x += g.TileWidth + g.Spacing {
			regions = append(regions, image.Rect(x, y, x+g.TileWidth, y+g.TileHeight))
		}
	}
	return regions, nil
}

// TileSet is a sliced tile set image. A region's index in Regions is its
// local id; global ids start at FirstGID.
type TileSet struct {
	Name       string
	FirstGID   uint32
	TileWidth  int
	TileHeight int
	// Image is the path of the source image, relative to the map's file system.
	Image   string
	Regions []image.Rectangle
}

// NewTileSet slices g and records firstGID for later lookups.
func NewTileSet(name string, firstGID uint32, g Grid) (*TileSet, error) {
	regions, err := Slice(g)
	if err != nil {
		return nil, fmt.Errorf("tile set %q: %w", name, err)
	}
	return &TileSet{
		Name:       name,
		FirstGID:   firstGID,
		TileWidth:  g.TileWidth,
		TileHeight: g.TileHeight,
		Regions:    regions,
	}, nil
}

// Len returns the number of slices.
func (ts *TileSet) Len() int {
	return len(ts.Regions)
}

// LastGID returns the highest global id owned by the set, or FirstGID-1
// when the set is empty.
func (ts *TileSet) LastGID() uint32 {
	return ts.FirstGID + uint32(len(ts.Regions)) - 1
}

// Contains reports whether gid maps to one of the set's slices.
func (ts *TileSet) Contains(gid uint32) bool {
	_, ok := ts.local(gid)
	return ok
}

// Lookup returns the region for a global id. It reports false for ids below
// FirstGID or past the last slice.
func (ts *TileSet) Lookup(gid uint32) (image.Rectangle, bool) {
	local, ok := ts.local(gid)
	if !ok {
		return image.Rectangle{}, false
	}
	return ts.Regions[local], true
}

func (ts *TileSet) local(gid uint32) (int, bool) {
	if gid < ts.FirstGID {
		return 0, false
	}
	local := uint64(gid - ts.FirstGID)
	if local >= uint64(len(ts.Regions)) {
		return 0, false
	}
	return int(local), true
}
