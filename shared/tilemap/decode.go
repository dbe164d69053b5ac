package tilemap

import (
	"fmt"
	"iter"
)

// Validate reports whether the chunk's data matches its dimensions.
func (c Chunk) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrChunkSize, c.Width, c.Height)
	}
	if len(c.Data) != c.Width*c.Height {
		return fmt.Errorf("%w: %dx%d chunk at (%d,%d) has %d cells",
			ErrChunkSize, c.Width, c.Height, c.X, c.Y, len(c.Data))
	}
	return nil
}

// Tiles yields the chunk's non-empty cells in row-major order (y outer,
// x inner). The sequence can be ranged over any number of times.
//
// Tiles assumes a well-formed chunk; on short data it stops at the end of
// Data instead of reading out of range. Use DecodeChunk to fail fast.
func (c Chunk) Tiles() iter.Seq[PlacedTile] {
	return func(yield func(PlacedTile) bool) {
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				i := x + y*c.Width
				if i >= len(c.Data) {
					return
				}
				gid, flip := SplitGID(c.Data[i])
				if gid == 0 {
					continue
				}
				if !yield(PlacedTile{X: c.X + x, Y: c.Y + y, GID: gid, Flip: flip}) {
					return
				}
			}
		}
	}
}

// DecodeChunk validates the chunk and collects its placed tiles.
func DecodeChunk(c Chunk) ([]PlacedTile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var tiles []PlacedTile
	for t := range c.Tiles() {
		tiles = append(tiles, t)
	}
	return tiles, nil
}
