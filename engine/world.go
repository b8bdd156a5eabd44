package engine

import "math/rand"

// TileKind tags a tile for rendering. Physics treats every tile the same.
type TileKind string

const TileBrick TileKind = "brick"

// Tile is one static collision rect plus its render tag.
type Tile struct {
	Kind TileKind
	Rect Rect
}

// LevelSpec describes procedural level generation. All values are pixels.
type LevelSpec struct {
	Width, Height int
	TileSize      int

	// Elevated platform placement: PlatformCount single tiles, x sampled
	// uniformly in [PlatformMargin, Width-PlatformMargin], y from the band set.
	PlatformCount  int
	PlatformMargin int
	PlatformBands  []int

	Goal        Rect
	QueryMargin int
}

// StaticWorld holds the immutable tile set for one level, its goal region and
// the spatial index over the tiles. Build once, query every tick.
type StaticWorld struct {
	tiles  []Tile
	grid   *SpatialIndex
	goal   Rect
	width  int
	height int
	margin int
}

// NewWorld returns an empty world ready for AddTile calls. cellSize is the
// grid cell edge and should equal the tile size.
func NewWorld(width, height, cellSize, queryMargin int, goal Rect) *StaticWorld {
	return &StaticWorld{
		grid:   NewSpatialIndex(cellSize),
		goal:   goal,
		width:  width,
		height: height,
		margin: queryMargin,
	}
}

// AddTile appends a tile to the arena and indexes it. Build phase only; the
// world is immutable once a session starts stepping against it.
func (w *StaticWorld) AddTile(kind TileKind, r Rect) RectID {
	if r.W <= 0 || r.H <= 0 {
		panic("engine: tile must have positive dimensions")
	}
	id := RectID(len(w.tiles))
	w.tiles = append(w.tiles, Tile{Kind: kind, Rect: r})
	w.grid.Insert(id, r)
	return id
}

// BuildWorld generates a level: one contiguous ground row along the bottom
// plus pseudo-random elevated platforms. Placement is fully determined by rng,
// so a seeded source reproduces the level exactly.
func BuildWorld(spec LevelSpec, rng *rand.Rand) *StaticWorld {
	w := NewWorld(spec.Width, spec.Height, spec.TileSize, spec.QueryMargin, spec.Goal)

	groundY := spec.Height - spec.TileSize
	for x := 0; x < spec.Width; x += spec.TileSize {
		w.AddTile(TileBrick, Rect{X: x, Y: groundY, W: spec.TileSize, H: spec.TileSize})
	}

	for i := 0; i < spec.PlatformCount; i++ {
		x := spec.PlatformMargin + rng.Intn(spec.Width-2*spec.PlatformMargin+1)
		y := spec.PlatformBands[rng.Intn(len(spec.PlatformBands))]
		w.AddTile(TileBrick, Rect{X: x, Y: y, W: spec.TileSize, H: spec.TileSize})
	}

	return w
}

// Colliders returns handles of tiles near r. The query rect is inflated by the
// configured margin, a deliberate over-approximation: callers must re-test
// candidates with Rect.Intersects before resolving against them.
func (w *StaticWorld) Colliders(r Rect) []RectID {
	return w.grid.Query(r.Inflate(w.margin, w.margin))
}

// RectOf resolves a handle returned by Colliders.
func (w *StaticWorld) RectOf(id RectID) Rect { return w.tiles[id].Rect }

// Tiles exposes the arena in insertion order for rendering.
func (w *StaticWorld) Tiles() []Tile { return w.tiles }

func (w *StaticWorld) Goal() Rect  { return w.goal }
func (w *StaticWorld) Width() int  { return w.width }
func (w *StaticWorld) Height() int { return w.height }
