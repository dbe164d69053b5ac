package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/automoto/tilecrawl/shared/tilemap"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

func loadMap(fsys fs.FS, name string) (*tilemap.Map, *tilemap.Registry, error) {
	m, err := tilemap.LoadMap(fsys, name)
	if err != nil {
		return nil, nil, err
	}
	reg := tilemap.NewRegistry()
	if err := tilemap.LoadTileSets(m, reg); err != nil {
		return nil, nil, err
	}
	return m, reg, nil
}

func runLayers(w io.Writer, fsys fs.FS, name string, strict bool) error {
	m, reg, err := loadMap(fsys, name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tVISIBLE\tCHUNKS\tTILES\tMISSING")

	var unresolved []error
	for _, l := range m.TileLayers() {
		res, err := tilemap.BuildLayer[image.Rectangle](l, reg)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\n", l.Name, l.Visible, len(l.Chunks), len(res.Tiles), res.Missing)
		if res.Missing > 0 {
			unresolved = append(unresolved, fmt.Errorf("%w: layer %q has %d", tilemap.ErrUnresolvedTiles, l.Name, res.Missing))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if strict {
		return errors.Join(unresolved...)
	}
	return nil
}

func runTileSets(w io.Writer, fsys fs.FS, name string) error {
	_, reg, err := loadMap(fsys, name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TILESET\tFIRSTGID\tLASTGID\tSLICES\tTILE\tIMAGE")
	for _, ts := range reg.Sets() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%dx%d\t%s\n",
			ts.Name, ts.FirstGID, ts.LastGID(), ts.Len(), ts.TileWidth, ts.TileHeight, ts.Image)
	}
	return tw.Flush()
}

// runLookup accepts raw cell values too; flip bits are reported separately.
func runLookup(w io.Writer, fsys fs.FS, name string, raw uint32) error {
	_, reg, err := loadMap(fsys, name)
	if err != nil {
		return err
	}

	gid, flip := tilemap.SplitGID(raw)
	ts, rect, ok := reg.Find(gid)
	if !ok {
		return fmt.Errorf("%w: gid %d", tilemap.ErrUnknownTileSet, gid)
	}
	fmt.Fprintf(w, "gid %d: tile set %q local %d region %v", gid, ts.Name, gid-ts.FirstGID, rect)
	if flip != 0 {
		fmt.Fprintf(w, " flip %s", flip)
	}
	fmt.Fprintln(w)
	return nil
}

// runRender composes the visible tile layers into one PNG. scale enlarges
// the result with nearest-neighbour sampling.
// renderFile writes the rendered map to out. Nothing is written when the
// render fails.
func renderFile(out string, fsys fs.FS, name string, scale int) error {
	var buf bytes.Buffer
	if err := runRender(&buf, fsys, name, scale); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

func runRender(w io.Writer, fsys fs.FS, name string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	m, reg, err := loadMap(fsys, name)
	if err != nil {
		return err
	}

	images := make(map[string]image.Image)
	for _, ts := range reg.Sets() {
		img, err := decodeImage(fsys, ts.Image)
		if err != nil {
			log.Warn().Err(err).Str("tileset", ts.Name).Msg("Failed to load tile set image")
			continue
		}
		images[ts.Name] = img
	}
	resolver := tilemap.ResolverFunc[image.Image](func(gid uint32) (image.Image, bool) {
		ts, rect, ok := reg.Find(gid)
		if !ok {
			return nil, false
		}
		src, ok := images[ts.Name]
		if !ok {
			return nil, false
		}
		return subImage(src, rect), true
	})

	bounds := m.PixelBounds()
	if bounds.Empty() {
		return fmt.Errorf("%w: map has no area", tilemap.ErrFormat)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for _, l := range m.TileLayers() {
		if !l.Visible || l.Opacity <= 0 {
			continue
		}
		res, err := tilemap.BuildLayer[image.Image](l, resolver)
		if err != nil {
			return err
		}
		mask := image.NewUniform(opacityColor(l.Opacity))
		for _, t := range res.Tiles {
			src := flipped(t.Texture, t.Flip)
			sb := src.Bounds()
			x := t.X*m.TileWidth + int(l.OffsetX) - bounds.Min.X
			y := t.Y*m.TileHeight + m.TileHeight - sb.Dy() + int(l.OffsetY) - bounds.Min.Y
			dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
			draw.DrawMask(canvas, dr, src, sb.Min, mask, image.Point{}, draw.Over)
		}
		log.Debug().
			Str("layer", l.Name).
			Int("tiles", len(res.Tiles)).
			Msg("Rendered layer")
	}

	var out image.Image = canvas
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, canvas.Bounds().Dx()*scale, canvas.Bounds().Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
		out = scaled
	}
	return png.Encode(w, out)
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r.Add(img.Bounds().Min))
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min.Add(img.Bounds().Min), draw.Src)
	return dst
}
