package tilemap

import (
	"image"
	"strconv"
)

type LayerKind int

const (
	TileLayer LayerKind = iota
	ObjectLayer
	ImageLayer
	GroupLayer
)

func (k LayerKind) String() string {
	switch k {
	case TileLayer:
		return "tilelayer"
	case ObjectLayer:
		return "objectgroup"
	case ImageLayer:
		return "imagelayer"
	case GroupLayer:
		return "group"
	}
	return "unknown"
}

// Map is a loaded tile map, independent of the file format it came from.
type Map struct {
	Width, Height         int // in tiles; meaningless for infinite maps
	TileWidth, TileHeight int
	Infinite              bool
	Layers                []*Layer
	TileSets              []TileSetRef
	Properties            Properties
}

// TileSetRef is a tile set as referenced by a map.
type TileSetRef struct {
	Name     string
	FirstGID uint32
	// Image is the source image path, already joined with the directory of
	// the file that declared it.
	Image     string
	Grid      Grid
	TileCount int
}

// Layer is a tile, object, image or group layer. Only the fields matching
// Kind are populated.
type Layer struct {
	Name             string
	Kind             LayerKind
	Visible          bool
	Opacity          float64
	OffsetX, OffsetY float64
	Properties       Properties

	Chunks  []Chunk  // TileLayer
	Objects []Object // ObjectLayer
	Image   string   // ImageLayer, relative to the map file
	Layers  []*Layer // GroupLayer
}

// Object is a map object from an object layer.
type Object struct {
	ID            int
	Name          string
	Type          string
	X, Y          float64
	Width, Height float64
	Properties    Properties
}

// Center returns the centre point of the object's bounds.
func (o Object) Center() (float64, float64) {
	return o.X + o.Width/2, o.Y + o.Height/2
}

// Properties holds custom Tiled properties. Values decoded from TMX are
// strings; the getters convert them.
type Properties map[string]any

func (p Properties) GetString(name string) string {
	switch v := p[name].(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func (p Properties) GetBool(name string) bool {
	switch v := p[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func (p Properties) GetFloat(name string) float64 {
	switch v := p[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func (p Properties) GetInt(name string) int {
	return int(p.GetFloat(name))
}

// TileLayers returns every tile layer in draw order, descending into groups.
// Layers inside an invisible group are reported invisible.
func (m *Map) TileLayers() []*Layer {
	var out []*Layer
	var walk func(layers []*Layer, visible bool, opacity float64)
	walk = func(layers []*Layer, visible bool, opacity float64) {
		for _, l := range layers {
			switch l.Kind {
			case TileLayer:
				if visible && opacity == 1 {
					out = append(out, l)
					continue
				}
				cp := *l
				cp.Visible = l.Visible && visible
				cp.Opacity = l.Opacity * opacity
				out = append(out, &cp)
			case GroupLayer:
				walk(l.Layers, visible && l.Visible, opacity*l.Opacity)
			}
		}
	}
	walk(m.Layers, true, 1)
	return out
}

// FindLayer returns the first layer named name, searching groups.
func (m *Map) FindLayer(name string) (*Layer, bool) {
	return findLayer(m.Layers, name)
}

func findLayer(layers []*Layer, name string) (*Layer, bool) {
	for _, l := range layers {
		if l.Name == name {
			return l, true
		}
		if l.Kind == GroupLayer {
			if found, ok := findLayer(l.Layers, name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Objects returns every object of every object layer, searching groups.
func (m *Map) Objects() []Object {
	var out []Object
	var walk func(layers []*Layer)
	walk = func(layers []*Layer) {
		for _, l := range layers {
			switch l.Kind {
			case ObjectLayer:
				out = append(out, l.Objects...)
			case GroupLayer:
				walk(l.Layers)
			}
		}
	}
	walk(m.Layers)
	return out
}

// FindObject returns the first object named name in any object layer.
func (m *Map) FindObject(name string) (Object, bool) {
	for _, o := range m.Objects() {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// ObjectsOfType returns the objects whose Type (Tiled "class") is typ.
func (m *Map) ObjectsOfType(typ string) []Object {
	var out []Object
	for _, o := range m.Objects() {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

// TileBounds returns the covered area in tile coordinates. For finite maps
// it is the map size; for infinite maps it is the union of all chunks.
func (m *Map) TileBounds() image.Rectangle {
	if !m.Infinite {
		return image.Rect(0, 0, m.Width, m.Height)
	}
	var r image.Rectangle
	for _, l := range m.TileLayers() {
		for _, c := range l.Chunks {
			r = r.Union(image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height))
		}
	}
	return r
}

// PixelBounds returns TileBounds scaled by the map's tile size.
func (m *Map) PixelBounds() image.Rectangle {
	b := m.TileBounds()
	return image.Rect(
		b.Min.X*m.TileWidth, b.Min.Y*m.TileHeight,
		b.Max.X*m.TileWidth, b.Max.Y*m.TileHeight,
	)
}
