package tilemap

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadMap reads a Tiled map from fsys. The format is chosen by extension:
// .json and .tmj for Tiled JSON, .tmx for TMX.
func LoadMap(fsys fs.FS, name string) (*Map, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".tmj":
		return loadJSON(fsys, name)
	case ".tmx":
		return loadTMX(fsys, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrFormat, name)
}

// LoadTileSets slices every tile set referenced by m into reg. Sets already
// registered under the same name are reused.
func LoadTileSets(m *Map, reg *Registry) error {
	for _, ref := range m.TileSets {
		if ref.Name == "" {
			return fmt.Errorf("%w: unnamed tile set at firstgid %d", ErrFormat, ref.FirstGID)
		}
		_, err := reg.Load(ref.Name, ref.FirstGID, func() (Grid, string, error) {
			return ref.Grid, ref.Image, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
