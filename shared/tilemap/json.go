package tilemap

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

type jsonProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type jsonChunk struct {
	X      int             `json:"x"`
	Y      int             `json:"y"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Data   json.RawMessage `json:"data"`
}

type jsonObject struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Class      string         `json:"class"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Properties []jsonProperty `json:"properties"`
}

type jsonLayer struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Visible     *bool           `json:"visible"`
	Opacity     *float64        `json:"opacity"`
	OffsetX     float64         `json:"offsetx"`
	OffsetY     float64         `json:"offsety"`
	X           int             `json:"x"`
	Y           int             `json:"y"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Encoding    string          `json:"encoding"`
	Compression string          `json:"compression"`
	Data        json.RawMessage `json:"data"`
	Chunks      []jsonChunk     `json:"chunks"`
	Objects     []jsonObject    `json:"objects"`
	Layers      []jsonLayer     `json:"layers"`
	Image       string          `json:"image"`
	Properties  []jsonProperty  `json:"properties"`
}

type jsonTileSet struct {
	FirstGID    uint32 `json:"firstgid"`
	Source      string `json:"source"`
	Name        string `json:"name"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	Margin      int    `json:"margin"`
	Spacing     int    `json:"spacing"`
	TileCount   int    `json:"tilecount"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
}

type jsonMap struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	TileWidth  int            `json:"tilewidth"`
	TileHeight int            `json:"tileheight"`
	Infinite   bool           `json:"infinite"`
	Layers     []jsonLayer    `json:"layers"`
	TileSets   []jsonTileSet  `json:"tilesets"`
	Properties []jsonProperty `json:"properties"`
}

// ParseJSON decodes a Tiled JSON map. External tile sets are not resolved;
// their refs carry only FirstGID and Image is left empty. Use LoadMap to
// resolve them from a file system.
func ParseJSON(r io.Reader) (*Map, error) {
	m, _, err := parseJSON(r, "")
	return m, err
}

func parseJSON(r io.Reader, dir string) (*Map, []jsonTileSet, error) {
	var jm jsonMap
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, nil, fmt.Errorf("decode map: %w", err)
	}

	m := &Map{
		Width:      jm.Width,
		Height:     jm.Height,
		TileWidth:  jm.TileWidth,
		TileHeight: jm.TileHeight,
		Infinite:   jm.Infinite,
		Properties: toProperties(jm.Properties),
	}

	for _, jl := range jm.Layers {
		l, err := convertLayer(jl, jm)
		if err != nil {
			return nil, nil, err
		}
		m.Layers = append(m.Layers, l)
	}

	for _, jt := range jm.TileSets {
		if jt.Source != "" {
			m.TileSets = append(m.TileSets, TileSetRef{FirstGID: jt.FirstGID})
			continue
		}
		m.TileSets = append(m.TileSets, tileSetRef(jt, dir))
	}
	return m, jm.TileSets, nil
}

func convertLayer(jl jsonLayer, jm jsonMap) (*Layer, error) {
	l := &Layer{
		Name:       jl.Name,
		Visible:    jl.Visible == nil || *jl.Visible,
		Opacity:    1,
		OffsetX:    jl.OffsetX,
		OffsetY:    jl.OffsetY,
		Properties: toProperties(jl.Properties),
	}
	if jl.Opacity != nil {
		l.Opacity = *jl.Opacity
	}

	switch jl.Type {
	case "tilelayer":
		l.Kind = TileLayer
		if len(jl.Chunks) > 0 {
			for _, jc := range jl.Chunks {
				data, err := DecodeData(jc.Data, jl.Encoding, jl.Compression)
				if err != nil {
					return nil, fmt.Errorf("layer %q chunk (%d,%d): %w", jl.Name, jc.X, jc.Y, err)
				}
				l.Chunks = append(l.Chunks, Chunk{X: jc.X, Y: jc.Y, Width: jc.Width, Height: jc.Height, Data: data})
			}
			break
		}
		data, err := DecodeData(jl.Data, jl.Encoding, jl.Compression)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", jl.Name, err)
		}
		w, h := jl.Width, jl.Height
		if w == 0 && h == 0 {
			w, h = jm.Width, jm.Height
		}
		l.Chunks = []Chunk{{X: jl.X, Y: jl.Y, Width: w, Height: h, Data: data}}
	case "objectgroup":
		l.Kind = ObjectLayer
		for _, jo := range jl.Objects {
			typ := jo.Class
			if typ == "" {
				typ = jo.Type
			}
			l.Objects = append(l.Objects, Object{
				ID:         jo.ID,
				Name:       jo.Name,
				Type:       typ,
				X:          jo.X + jl.OffsetX,
				Y:          jo.Y + jl.OffsetY,
				Width:      jo.Width,
				Height:     jo.Height,
				Properties: toProperties(jo.Properties),
			})
		}
	case "imagelayer":
		l.Kind = ImageLayer
		l.Image = jl.Image
	case "group":
		l.Kind = GroupLayer
		for _, child := range jl.Layers {
			cl, err := convertLayer(child, jm)
			if err != nil {
				return nil, err
			}
			l.Layers = append(l.Layers, cl)
		}
	default:
		return nil, fmt.Errorf("%w: layer %q has type %q", ErrFormat, jl.Name, jl.Type)
	}
	return l, nil
}

// ParseTileSetJSON decodes a Tiled JSON tile set file. dir is joined with the
// image path. FirstGID is left at zero: it belongs to the referencing map.
func ParseTileSetJSON(r io.Reader, dir string) (TileSetRef, error) {
	var jt jsonTileSet
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return TileSetRef{}, fmt.Errorf("decode tile set: %w", err)
	}
	return tileSetRef(jt, dir), nil
}

func tileSetRef(jt jsonTileSet, dir string) TileSetRef {
	img := jt.Image
	if img != "" && dir != "" {
		img = path.Join(dir, img)
	}
	return TileSetRef{
		Name:     jt.Name,
		FirstGID: jt.FirstGID,
		Image:    img,
		Grid: Grid{
			ImageWidth:  jt.ImageWidth,
			ImageHeight: jt.ImageHeight,
			TileWidth:   jt.TileWidth,
			TileHeight:  jt.TileHeight,
			Margin:      jt.Margin,
			Spacing:     jt.Spacing,
		},
		TileCount: jt.TileCount,
	}
}

func toProperties(jp []jsonProperty) Properties {
	if len(jp) == 0 {
		return Properties{}
	}
	p := make(Properties, len(jp))
	for _, prop := range jp {
		p[prop.Name] = prop.Value
	}
	return p
}

func loadJSON(fsys fs.FS, name string) (*Map, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := path.Dir(name)
	m, refs, err := parseJSON(f, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	for i, jt := range refs {
		if jt.Source == "" {
			continue
		}
		src := path.Join(dir, jt.Source)
		switch strings.ToLower(path.Ext(src)) {
		case ".json", ".tsj":
		default:
			return nil, fmt.Errorf("%w: external tile set %s", ErrFormat, src)
		}
		ref, err := loadTileSetJSON(fsys, src)
		if err != nil {
			return nil, err
		}
		ref.FirstGID = jt.FirstGID
		m.TileSets[i] = ref
	}
	return m, nil
}

func loadTileSetJSON(fsys fs.FS, name string) (TileSetRef, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return TileSetRef{}, err
	}
	defer f.Close()

	ref, err := ParseTileSetJSON(f, path.Dir(name))
	if err != nil {
		return TileSetRef{}, fmt.Errorf("%s: %w", name, err)
	}
	return ref, nil
}
