package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"

	_ "image/png"

	"github.com/automoto/tilecrawl/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
	math2 "github.com/yohamta/donburi/features/math"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Object types and properties read from the maps.
const (
	ObjectSpawn    = "spawn"
	ObjectMelee    = "melee"
	ObjectTeleport = "teleport"

	PropCollision = "collision"
	PropTarget    = "target"
	PropLevel     = "level"
)

var ErrNoTeleportTarget = errors.New("teleport has neither target nor level")

type Level struct {
	Name       string
	Map        *tilemap.Map
	Atlas      *Atlas
	Background *ebiten.Image
	// Origin is the map pixel position of the level's top-left corner.
	// Infinite maps may have chunks at negative coordinates; every level
	// position (tiles, spawns, teleports) is relative to Origin.
	Origin      math2.Vec2
	Width       int
	Height      int
	TileWidth   int
	TileHeight  int
	SolidTiles  []SolidTile // Tiles from layers flagged "collision"
	Spawn       math2.Vec2
	HasSpawn    bool
	MeleeSpawns []math2.Vec2
	Teleports   []Teleport
	// Missing counts placed tiles whose id no tile set could resolve.
	Missing int
}

// SolidTile represents a solid collision tile
type SolidTile struct {
	X, Y, Width, Height float64
}

// Teleport is a trigger zone. Target is the destination inside the same
// level; when Level is set the destination is that level's spawn instead.
type Teleport struct {
	X, Y, Width, Height float64
	Target              math2.Vec2
	Level               string
}

// toLevel converts a map pixel position to level coordinates.
func (l *Level) toLevel(x, y float64) math2.Vec2 {
	return math2.Vec2{X: x - l.Origin.X, Y: y - l.Origin.Y}
}

// Dispose releases the level images and clears its tile set registry.
func (l *Level) Dispose() {
	if l.Background != nil {
		l.Background.Deallocate()
	}
	if l.Atlas != nil {
		l.Atlas.Dispose()
	}
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader loads levels from the embedded levels directory.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

func (l *LevelLoader) MustLoadLevel(levelPath string) *Level {
	level, err := l.Load(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// Load parses a Tiled map (JSON or TMX), slices its tile sets into a fresh
// atlas and renders the visible layers into the level background.
func (l *LevelLoader) Load(levelPath string) (*Level, error) {
	m, err := tilemap.LoadMap(l.fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	reg := tilemap.NewRegistry()
	if err := tilemap.LoadTileSets(m, reg); err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	atlas := NewAtlas(reg)
	for _, ts := range reg.Sets() {
		img, err := loadImage(l.fsys, ts.Image)
		if err != nil {
			log.Warn().Err(err).Str("tileset", ts.Name).Msg("Failed to load tile set image")
			continue
		}
		atlas.AddImage(ts.Name, img)
	}

	bounds := m.PixelBounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("load level %s: %w: map has no area", levelPath, tilemap.ErrFormat)
	}

	level := &Level{
		Name:       levelPath,
		Map:        m,
		Atlas:      atlas,
		Background: ebiten.NewImage(bounds.Dx(), bounds.Dy()),
		Origin:     math2.Vec2{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)},
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
	}

	// Image layers first (backgrounds)
	for _, layer := range m.Layers {
		if layer.Kind != tilemap.ImageLayer || !layer.Visible || layer.Opacity <= 0 || layer.Image == "" {
			continue
		}
		l.drawImageLayer(level, path.Join(path.Dir(levelPath), layer.Image), layer)
	}

	for _, layer := range m.TileLayers() {
		res, err := tilemap.BuildLayer[*ebiten.Image](layer, atlas)
		if err != nil {
			return nil, fmt.Errorf("load level %s: layer %q: %w", levelPath, layer.Name, err)
		}
		level.Missing += res.Missing

		if layer.Properties.GetBool(PropCollision) {
			placed, err := layer.PlacedTiles()
			if err != nil {
				return nil, fmt.Errorf("load level %s: %w", levelPath, err)
			}
			level.SolidTiles = append(level.SolidTiles, solidTiles(level, layer, placed)...)
		}

		if layer.Visible && layer.Opacity > 0 {
			drawTiles(level, layer, res.Tiles)
		}

		log.Debug().
			Str("layer", layer.Name).
			Int("tiles", len(res.Tiles)).
			Int("missing", res.Missing).
			Msg("Loaded layer")
	}

	if err := collectObjects(level, m); err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	return level, nil
}

// solidTiles returns a wall for every placed tile of a collision layer,
// whether or not its tile set image could be loaded.
func solidTiles(level *Level, layer *tilemap.Layer, placed []tilemap.PlacedTile) []SolidTile {
	out := make([]SolidTile, 0, len(placed))
	for _, t := range placed {
		p := level.toLevel(float64(t.X*level.TileWidth)+layer.OffsetX, float64(t.Y*level.TileHeight)+layer.OffsetY)
		out = append(out, SolidTile{
			X:      p.X,
			Y:      p.Y,
			Width:  float64(level.TileWidth),
			Height: float64(level.TileHeight),
		})
	}
	return out
}

func (l *LevelLoader) drawImageLayer(level *Level, imgPath string, layer *tilemap.Layer) {
	img, err := loadImage(l.fsys, imgPath)
	if err != nil {
		log.Warn().Err(err).Str("layer", layer.Name).Msg("Failed to load image layer")
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(layer.OffsetX-level.Origin.X, layer.OffsetY-level.Origin.Y)
	op.ColorScale.ScaleAlpha(float32(layer.Opacity))
	level.Background.DrawImage(img, op)
	img.Deallocate()
}

var tileOp = &ebiten.DrawImageOptions{}

func drawTiles(level *Level, layer *tilemap.Layer, tiles []tilemap.Tile[*ebiten.Image]) {
	for _, t := range tiles {
		tw, th := t.Texture.Bounds().Dx(), t.Texture.Bounds().Dy()

		tileOp.GeoM.Reset()
		tileOp.ColorScale.Reset()
		applyFlip(&tileOp.GeoM, t.Flip, float64(tw), float64(th))

		// Tiles taller than the grid are anchored at the bottom of their cell.
		x := float64(t.X*level.TileWidth) + layer.OffsetX - level.Origin.X
		y := float64(t.Y*level.TileHeight+level.TileHeight-th) + layer.OffsetY - level.Origin.Y
		tileOp.GeoM.Translate(x, y)
		tileOp.ColorScale.ScaleAlpha(float32(layer.Opacity))
		level.Background.DrawImage(t.Texture, tileOp)
	}
}

// applyFlip mirrors a w x h tile in place. The diagonal flip is applied
// first, as Tiled does.
func applyFlip(g *ebiten.GeoM, f tilemap.Flip, w, h float64) {
	if f == 0 {
		return
	}
	g.Translate(-w/2, -h/2)
	if f&tilemap.FlipDiagonal != 0 {
		g.Rotate(math.Pi / 2)
		g.Scale(-1, 1)
	}
	if f&tilemap.FlipHorizontal != 0 {
		g.Scale(-1, 1)
	}
	if f&tilemap.FlipVertical != 0 {
		g.Scale(1, -1)
	}
	g.Translate(w/2, h/2)
}

func collectObjects(level *Level, m *tilemap.Map) error {
	if spawn, ok := m.FindObject(ObjectSpawn); ok {
		level.Spawn = level.toLevel(spawn.Center())
		level.HasSpawn = true
	} else {
		level.Spawn = math2.Vec2{X: float64(level.Width) / 2, Y: float64(level.Height) / 2}
	}

	for _, o := range m.ObjectsOfType(ObjectMelee) {
		level.MeleeSpawns = append(level.MeleeSpawns, level.toLevel(o.Center()))
	}

	for _, o := range m.ObjectsOfType(ObjectTeleport) {
		pos := level.toLevel(o.X, o.Y)
		tp := Teleport{
			X:      pos.X,
			Y:      pos.Y,
			Width:  o.Width,
			Height: o.Height,
			Level:  o.Properties.GetString(PropLevel),
		}
		if tp.Level != "" {
			tp.Level = path.Join(path.Dir(level.Name), tp.Level)
		} else {
			name := o.Properties.GetString(PropTarget)
			target, ok := m.FindObject(name)
			if name == "" || !ok {
				return fmt.Errorf("%w: object %d", ErrNoTeleportTarget, o.ID)
			}
			tp.Target = level.toLevel(target.Center())
		}
		level.Teleports = append(level.Teleports, tp)
	}
	return nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
