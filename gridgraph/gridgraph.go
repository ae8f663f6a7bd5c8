// Package gridgraph treats a rectangular pixel raster as a grid of cells
// and provides deterministic 4-neighbor iteration over it.
//
// This is a pixel-domain descendant of a more general land/water grid
// analyzer: where that one classified cells by a LandThreshold and found
// connected components, PixelGrid exists purely to give the segmentation
// builder's n-link construction a single, well-tested source of truth for
// "what are p's neighbors and in what order", since the order in which
// the builder adds its boundary (n-link) edges depends on it.
package gridgraph

import "errors"

// Sentinel errors for PixelGrid construction.
var (
	// ErrEmptyGrid indicates the input raster has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: raster must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// PixelGrid wraps the dimensions of a rectangular raster and answers
// bounds and 4-neighbor queries against them. It holds no pixel data of
// its own; callers index their own raster by the (row, col) pairs it
// yields.
type PixelGrid struct {
	Height, Width int
}

// NewPixelGrid validates that rows is non-empty and rectangular and
// returns a PixelGrid describing its dimensions. It is generic over the
// raster's element type so it can validate a [][]voxel.Pixel directly,
// without the caller converting to []any first.
func NewPixelGrid[T any](rows [][]T) (*PixelGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	return &PixelGrid{Height: len(rows), Width: width}, nil
}

// InBounds reports whether (i, j) lies within the raster.
func (g *PixelGrid) InBounds(i, j int) bool {
	return i >= 0 && i < g.Height && j >= 0 && j < g.Width
}

// Neighbors4 returns the in-bounds 4-neighbors of (i, j) in left, right,
// up, down order — exactly the order the segmentation builder's n-link
// construction requires, since the returned order determines which
// directed edges get added first and therefore the BFS tie-break in the
// max-flow solver.
func (g *PixelGrid) Neighbors4(i, j int) [][2]int {
	candidates := [4][2]int{
		{i, j - 1}, // left
		{i, j + 1}, // right
		{i - 1, j}, // up
		{i + 1, j}, // down
	}

	neighbors := make([][2]int, 0, 4)
	for _, c := range candidates {
		if g.InBounds(c[0], c[1]) {
			neighbors = append(neighbors, c)
		}
	}

	return neighbors
}
