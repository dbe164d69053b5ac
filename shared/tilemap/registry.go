package tilemap

import (
	"fmt"
	"image"
	"sort"

	"github.com/rs/zerolog/log"
)

// TileSetSource builds the grid for a tile set the first time its name is
// loaded. It returns the grid and the path of the source image.
type TileSetSource func() (Grid, string, error)

// Registry memoises sliced tile sets by name. A registry belongs to a single
// level load and is not safe for concurrent use.
type Registry struct {
	byName map[string]*TileSet
	sets   []*TileSet // ascending FirstGID
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*TileSet)}
}

// Load returns the tile set registered under name, building and registering
// it from src when the name is new.
func (r *Registry) Load(name string, firstGID uint32, src TileSetSource) (*TileSet, error) {
	if ts, ok := r.byName[name]; ok {
		return ts, nil
	}

	g, img, err := src()
	if err != nil {
		return nil, fmt.Errorf("load tile set %q: %w", name, err)
	}
	ts, err := NewTileSet(name, firstGID, g)
	if err != nil {
		return nil, err
	}
	ts.Image = img
	r.Add(ts)

	log.Debug().
		Str("name", ts.Name).
		Uint32("firstgid", ts.FirstGID).
		Int("textures", ts.Len()).
		Msg("Loaded tile set")
	return ts, nil
}

// Add registers ts, replacing any set with the same name.
func (r *Registry) Add(ts *TileSet) {
	if old, ok := r.byName[ts.Name]; ok {
		for i, s := range r.sets {
			if s == old {
				r.sets = append(r.sets[:i], r.sets[i+1:]...)
				break
			}
		}
	}
	r.byName[ts.Name] = ts

	i := sort.Search(len(r.sets), func(i int) bool {
		return r.sets[i].FirstGID > ts.FirstGID
	})
	r.sets = append(r.sets, nil)
	copy(r.sets[i+1:], r.sets[i:])
	r.sets[i] = ts
}

// Get returns the tile set registered under name.
func (r *Registry) Get(name string) (*TileSet, bool) {
	ts, ok := r.byName[name]
	return ts, ok
}

// MustGet is like Get but returns ErrUnknownTileSet for unregistered names.
func (r *Registry) MustGet(name string) (*TileSet, error) {
	ts, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTileSet, name)
	}
	return ts, nil
}

// Sets returns the registered tile sets by ascending FirstGID.
func (r *Registry) Sets() []*TileSet {
	return append([]*TileSet(nil), r.sets...)
}

// Len returns the number of registered tile sets.
func (r *Registry) Len() int {
	return len(r.sets)
}

// Find returns the tile set owning gid and the gid's region. The owner is
// the set with the greatest FirstGID not above gid.
func (r *Registry) Find(gid uint32) (*TileSet, image.Rectangle, bool) {
	i := sort.Search(len(r.sets), func(i int) bool {
		return r.sets[i].FirstGID > gid
	})
	if i == 0 {
		return nil, image.Rectangle{}, false
	}
	ts := r.sets[i-1]
	rect, ok := ts.Lookup(gid)
	if !ok {
		return nil, image.Rectangle{}, false
	}
	return ts, rect, true
}

// Resolve implements Resolver[image.Rectangle].
func (r *Registry) Resolve(gid uint32) (image.Rectangle, bool) {
	_, rect, ok := r.Find(gid)
	return rect, ok
}

// Reset drops every registered set, typically when a level is unloaded.
func (r *Registry) Reset() {
	clear(r.byName)
	r.sets = r.sets[:0]
}
