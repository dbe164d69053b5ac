package assets

import (
	"github.com/automoto/tilecrawl/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas resolves global tile ids to sub-images of the tile set images
// registered for one level. It implements tilemap.Resolver.
type Atlas struct {
	reg    *tilemap.Registry
	images map[string]*ebiten.Image
	cache  map[uint32]*ebiten.Image
}

func NewAtlas(reg *tilemap.Registry) *Atlas {
	return &Atlas{
		reg:    reg,
		images: make(map[string]*ebiten.Image),
		cache:  make(map[uint32]*ebiten.Image),
	}
}

// AddImage attaches the source image of the named tile set.
func (a *Atlas) AddImage(name string, img *ebiten.Image) {
	a.images[name] = img
}

func (a *Atlas) Registry() *tilemap.Registry {
	return a.reg
}

// Resolve returns the tile image for gid. It reports false for ids owned by
// no tile set, ids past the end of their set, and sets whose image failed
// to load.
func (a *Atlas) Resolve(gid uint32) (*ebiten.Image, bool) {
	if img, ok := a.cache[gid]; ok {
		return img, true
	}
	ts, rect, ok := a.reg.Find(gid)
	if !ok {
		return nil, false
	}
	src, ok := a.images[ts.Name]
	if !ok {
		return nil, false
	}
	img := src.SubImage(rect).(*ebiten.Image)
	a.cache[gid] = img
	return img, true
}

func (a *Atlas) Dispose() {
	for _, img := range a.images {
		img.Deallocate()
	}
	clear(a.images)
	clear(a.cache)
	a.reg.Reset()
}
