package tilemap

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

// FromTMX converts a map loaded by go-tiled into a Map. Each tile layer
// becomes one chunk at the origin covering the whole map. go-tiled keeps
// each layer kind in its own list, so within a map or group the order is
// tile layers, image layers, object groups, then nested groups.
func FromTMX(tm *tiled.Map) (*Map, error) {
	m := &Map{
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		Properties: Properties{},
	}
	if tm.Properties != nil {
		m.Properties = fromTMXProperties(*tm.Properties)
	}

	for _, ts := range tm.Tilesets {
		ref := TileSetRef{
			Name:      ts.Name,
			FirstGID:  ts.FirstGID,
			TileCount: ts.TileCount,
			Grid: Grid{
				TileWidth:  ts.TileWidth,
				TileHeight: ts.TileHeight,
				Margin:     ts.Margin,
				Spacing:    ts.Spacing,
			},
		}
		if ts.Image != nil {
			// Embedded sets only learn their directory once a tile uses them.
			imgPath := ts.GetFileFullPath(ts.Image.Source)
			if ts.Source == "" {
				imgPath = tm.GetFileFullPath(ts.Image.Source)
			}
			ref.Image = filepath.ToSlash(imgPath)
			ref.Grid.ImageWidth = ts.Image.Width
			ref.Grid.ImageHeight = ts.Image.Height
		}
		m.TileSets = append(m.TileSets, ref)
	}

	layers, err := fromTMXLayers(tm, tmxLayers{
		tiles:   tm.Layers,
		images:  tm.ImageLayers,
		objects: tm.ObjectGroups,
		groups:  tm.Groups,
	})
	if err != nil {
		return nil, err
	}
	m.Layers = layers
	return m, nil
}

// tmxLayers holds the layer lists shared by a map and a group.
type tmxLayers struct {
	tiles   []*tiled.Layer
	images  []*tiled.ImageLayer
	objects []*tiled.ObjectGroup
	groups  []*tiled.Group
}

func fromTMXLayers(tm *tiled.Map, src tmxLayers) ([]*Layer, error) {
	var out []*Layer

	for _, tl := range src.tiles {
		l, err := fromTMXTileLayer(tm, tl)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	for _, il := range src.images {
		l := &Layer{
			Name:       il.Name,
			Kind:       ImageLayer,
			Visible:    il.Visible,
			Opacity:    float64(il.Opacity),
			OffsetX:    float64(il.OffsetX),
			OffsetY:    float64(il.OffsetY),
			Properties: fromTMXProperties(il.Properties),
		}
		if il.Image != nil {
			l.Image = il.Image.Source
		}
		out = append(out, l)
	}

	for _, og := range src.objects {
		l := &Layer{
			Name:       og.Name,
			Kind:       ObjectLayer,
			Visible:    og.Visible,
			Opacity:    float64(og.Opacity),
			OffsetX:    float64(og.OffsetX),
			OffsetY:    float64(og.OffsetY),
			Properties: fromTMXProperties(og.Properties),
		}
		for _, o := range og.Objects {
			typ := o.Class
			if typ == "" {
				typ = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			l.Objects = append(l.Objects, Object{
				ID:         int(o.ID),
				Name:       o.Name,
				Type:       typ,
				X:          o.X + l.OffsetX,
				Y:          o.Y + l.OffsetY,
				Width:      o.Width,
				Height:     o.Height,
				Properties: fromTMXProperties(o.Properties),
			})
		}
		out = append(out, l)
	}

	for _, g := range src.groups {
		children, err := fromTMXLayers(tm, tmxLayers{
			tiles:   g.Layers,
			images:  g.ImageLayers,
			objects: g.ObjectGroups,
			groups:  g.Groups,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, &Layer{
			Name:       g.Name,
			Kind:       GroupLayer,
			Visible:    g.Visible,
			Opacity:    float64(g.Opacity),
			OffsetX:    float64(g.OffsetX),
			OffsetY:    float64(g.OffsetY),
			Properties: fromTMXProperties(g.Properties),
			Layers:     children,
		})
	}
	return out, nil
}

func fromTMXTileLayer(tm *tiled.Map, tl *tiled.Layer) (*Layer, error) {
	if len(tl.Tiles) != tm.Width*tm.Height {
		return nil, fmt.Errorf("%w: layer %q has %d tiles for a %dx%d map",
			ErrChunkSize, tl.Name, len(tl.Tiles), tm.Width, tm.Height)
	}
	data := make([]uint32, len(tl.Tiles))
	for i, t := range tl.Tiles {
		if t == nil || t.IsNil() || t.Tileset == nil {
			continue
		}
		var flip Flip
		if t.HorizontalFlip {
			flip |= FlipHorizontal
		}
		if t.VerticalFlip {
			flip |= FlipVertical
		}
		if t.DiagonalFlip {
			flip |= FlipDiagonal
		}
		data[i] = JoinGID(t.Tileset.FirstGID+t.ID, flip)
	}
	return &Layer{
		Name:       tl.Name,
		Kind:       TileLayer,
		Visible:    tl.Visible,
		Opacity:    float64(tl.Opacity),
		OffsetX:    float64(tl.OffsetX),
		OffsetY:    float64(tl.OffsetY),
		Properties: fromTMXProperties(tl.Properties),
		Chunks:     []Chunk{{Width: tm.Width, Height: tm.Height, Data: data}},
	}, nil
}

func fromTMXProperties(props tiled.Properties) Properties {
	p := make(Properties, len(props))
	for _, prop := range props {
		p[prop.Name] = prop.Value
	}
	return p
}

func loadTMX(fsys fs.FS, name string) (*Map, error) {
	tm, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}
	m, err := FromTMX(tm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}
