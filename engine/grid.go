package engine

type cellKey struct {
	X, Y int
}

// SpatialIndex is a uniform grid mapping tile-sized cells to the rectangles
// that overlap them. It is populated once at world-build time and read-only
// afterwards; queries cost O(tiles near the query rect) instead of O(all
// tiles).
type SpatialIndex struct {
	cellSize int
	buckets  map[cellKey][]RectID
}

func NewSpatialIndex(cellSize int) *SpatialIndex {
	if cellSize <= 0 {
		panic("engine: spatial index cell size must be positive")
	}
	return &SpatialIndex{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]RectID),
	}
}

// cellRange returns the inclusive range of cells r overlaps. Floor division
// keeps the mapping correct at negative coordinates, which the shipped levels
// never produce but the grid should not silently corrupt.
func (s *SpatialIndex) cellRange(r Rect) (x0, x1, y0, y1 int) {
	x0 = floorDiv(r.X, s.cellSize)
	x1 = floorDiv(r.Right()-1, s.cellSize)
	y0 = floorDiv(r.Y, s.cellSize)
	y1 = floorDiv(r.Bottom()-1, s.cellSize)
	return
}

// Insert appends id to the bucket of every cell r overlaps. A wide platform
// therefore shows up in each cell it spans.
func (s *SpatialIndex) Insert(id RectID, r Rect) {
	x0, x1, y0, y1 := s.cellRange(r)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			key := cellKey{x, y}
			s.buckets[key] = append(s.buckets[key], id)
		}
	}
}

// Query unions the buckets of every cell r overlaps, deduplicated by handle.
// The result order is unspecified. A degenerate (zero-area) query returns nil:
// without the guard a mid-cell rect with W or H of zero would still cover one
// cell and leak its occupants.
func (s *SpatialIndex) Query(r Rect) []RectID {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	x0, x1, y0, y1 := s.cellRange(r)
	var out []RectID
	var seen map[RectID]struct{}
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			bucket := s.buckets[cellKey{x, y}]
			if len(bucket) == 0 {
				continue
			}
			if seen == nil {
				seen = make(map[RectID]struct{}, len(bucket))
			}
			for _, id := range bucket {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
