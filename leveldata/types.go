// Package leveldata parses TMX level files into pure tile data. It has no
// dependency on ebitengine, donburi or the engine package — callers translate
// the rects into whatever collision structure they use. It takes an fs.FS so
// callers can pass os.DirFS or embed.FS.
package leveldata

// LevelData holds everything parsed from one TMX level.
type LevelData struct {
	Name       string
	SolidRects []SolidRect
	Goal       *ObjectRect // nil when the map defines no goal region
	Spawn      *ObjectRect // nil when the map defines no spawn point
	MapWidth   int         // pixels
	MapHeight  int         // pixels
	TileWidth  int
	TileHeight int
}

// SolidRect is one solid collision tile.
type SolidRect struct {
	X, Y, W, H int
}

// ObjectRect is a placed object (goal region, spawn marker).
type ObjectRect struct {
	X, Y, W, H int
}
