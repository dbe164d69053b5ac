package tilemap

import (
	"fmt"
)

// Resolver maps a global tile id to a texture. Implementations report false
// for ids they do not own.
type Resolver[T any] interface {
	Resolve(gid uint32) (T, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc[T any] func(gid uint32) (T, bool)

func (f ResolverFunc[T]) Resolve(gid uint32) (T, bool) {
	return f(gid)
}

// Tile is a placed tile with its resolved texture.
type Tile[T any] struct {
	PlacedTile
	Texture T
}

// LayerResult is the outcome of building a tile layer.
type LayerResult[T any] struct {
	Tiles []Tile[T]
	// Missing counts placed tiles whose id the resolver did not own. They
	// are left out of Tiles.
	Missing int
}

// BuildLayer decodes every chunk of a tile layer and resolves each placed
// tile through res. Malformed chunks fail the whole layer.
func BuildLayer[T any](l *Layer, res Resolver[T]) (LayerResult[T], error) {
	var out LayerResult[T]
	for _, c := range l.Chunks {
		if err := c.Validate(); err != nil {
			return LayerResult[T]{}, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		for t := range c.Tiles() {
			tex, ok := res.Resolve(t.GID)
			if !ok {
				out.Missing++
				continue
			}
			out.Tiles = append(out.Tiles, Tile[T]{PlacedTile: t, Texture: tex})
		}
	}
	return out, nil
}

// PlacedTiles decodes every chunk of the layer without resolving textures,
// so ids no tile set owns are kept.
func (l *Layer) PlacedTiles() ([]PlacedTile, error) {
	var out []PlacedTile
	for _, c := range l.Chunks {
		tiles, err := DecodeChunk(c)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		out = append(out, tiles...)
	}
	return out, nil
}
