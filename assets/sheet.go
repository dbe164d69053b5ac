package assets

import (
	"fmt"

	"github.com/automoto/tilecrawl/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActorSheet is the sprite sheet shared by the player and the enemies.
const ActorSheet = "images/actors.png"

// SpriteSheet is a sprite image sliced into equal frames, row-major.
type SpriteSheet struct {
	Image   *ebiten.Image
	Columns int
	frames  []*ebiten.Image
}

// Frame returns the frame at row, col.
func (s *SpriteSheet) Frame(row, col int) (*ebiten.Image, bool) {
	if col < 0 || col >= s.Columns || row < 0 {
		return nil, false
	}
	i := row*s.Columns + col
	if i >= len(s.frames) {
		return nil, false
	}
	return s.frames[i], true
}

func (s *SpriteSheet) Len() int {
	return len(s.frames)
}

type SheetLoader struct {
	cache map[string]*SpriteSheet
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{cache: make(map[string]*SpriteSheet)}
}

// Load slices the embedded image at path into frameWidth x frameHeight
// frames with the same slicer used for tile sets.
func (l *SheetLoader) Load(path string, frameWidth, frameHeight int) (*SpriteSheet, error) {
	key := fmt.Sprintf("%s@%dx%d", path, frameWidth, frameHeight)
	if s, ok := l.cache[key]; ok {
		return s, nil
	}

	img, err := loadImage(imageFS, path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	regions, err := tilemap.Slice(tilemap.Grid{
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		TileWidth:   frameWidth,
		TileHeight:  frameHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("slice %s: %w", path, err)
	}

	s := &SpriteSheet{
		Image:   img,
		Columns: b.Dx() / frameWidth,
		frames:  make([]*ebiten.Image, len(regions)),
	}
	for i, r := range regions {
		s.frames[i] = img.SubImage(r.Add(b.Min)).(*ebiten.Image)
	}
	l.cache[key] = s
	return s, nil
}

func (l *SheetLoader) MustLoad(path string, frameWidth, frameHeight int) *SpriteSheet {
	s, err := l.Load(path, frameWidth, frameHeight)
	if err != nil {
		panic(err)
	}
	return s
}

var sheetLoader = NewSheetLoader()

// GetSheet returns the cached sheet for path sliced at the given frame size.
func GetSheet(path string, frameWidth, frameHeight int) *SpriteSheet {
	return sheetLoader.MustLoad(path, frameWidth, frameHeight)
}
