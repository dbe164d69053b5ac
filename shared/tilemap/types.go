// Package tilemap decodes Tiled tile layers into placed tiles and slices
// tile set images into texture regions. It has no dependencies on
// ebitengine or donburi so it can be shared by the game and the tools.
package tilemap

import "errors"

var (
	ErrChunkSize       = errors.New("tilemap: chunk data length does not match width x height")
	ErrTileSize        = errors.New("tilemap: invalid tile grid")
	ErrEncoding        = errors.New("tilemap: unsupported layer encoding")
	ErrCompression     = errors.New("tilemap: unsupported layer compression")
	ErrFormat          = errors.New("tilemap: unsupported map format")
	ErrUnknownTileSet  = errors.New("tilemap: unknown tile set")
	ErrUnresolvedTiles = errors.New("tilemap: layer references unregistered tile ids")
)

// Flip holds the orientation bits Tiled stores in the high bits of a gid.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota
	FlipVertical
	FlipDiagonal
)

func (f Flip) String() string {
	if f == 0 {
		return "none"
	}
	var b []byte
	if f&FlipHorizontal != 0 {
		b = append(b, 'h')
	}
	if f&FlipVertical != 0 {
		b = append(b, 'v')
	}
	if f&FlipDiagonal != 0 {
		b = append(b, 'd')
	}
	return string(b)
}

const (
	flagHorizontal uint32 = 0x80000000
	flagVertical   uint32 = 0x40000000
	flagDiagonal   uint32 = 0x20000000
	flagHex120     uint32 = 0x10000000

	gidMask = ^(flagHorizontal | flagVertical | flagDiagonal | flagHex120)
)

// SplitGID separates a raw cell value into its global tile id and flip bits.
func SplitGID(raw uint32) (uint32, Flip) {
	var f Flip
	if raw&flagHorizontal != 0 {
		f |= FlipHorizontal
	}
	if raw&flagVertical != 0 {
		f |= FlipVertical
	}
	if raw&flagDiagonal != 0 {
		f |= FlipDiagonal
	}
	return raw & gidMask, f
}

// JoinGID is the inverse of SplitGID.
func JoinGID(gid uint32, f Flip) uint32 {
	raw := gid & gidMask
	if f&FlipHorizontal != 0 {
		raw |= flagHorizontal
	}
	if f&FlipVertical != 0 {
		raw |= flagVertical
	}
	if f&FlipDiagonal != 0 {
		raw |= flagDiagonal
	}
	return raw
}

// Chunk is a rectangular block of a tile layer. Data is row-major and holds
// Width*Height raw cell values; 0 marks an empty cell.
type Chunk struct {
	X, Y          int
	Width, Height int
	Data          []uint32
}

// PlacedTile is a non-empty cell in absolute tile coordinates.
type PlacedTile struct {
	X, Y int
	GID  uint32
	Flip Flip
}
