// Package board reconstructs the words formed by a sparse placement of
// lettered tiles on a square grid and reports connectivity so a board can
// be judged solved. It is pure: nothing here touches the network or any
// room state.
package board

// Tile is a lettered tile placed on a grid cell. Position encodes row and
// column as a single index: row*size + col.
type Tile struct {
	ID       string `json:"id"`
	Letter   string `json:"letter"`
	Position int    `json:"position"`
}

// Coordinates splits a cell index into row and column for a given grid size.
func Coordinates(position, size int) (row, col int) {
	return position / size, position % size
}

// CellIndex is the inverse of Coordinates.
func CellIndex(row, col, size int) int {
	return row*size + col
}

// InBounds reports whether the cell lies on a size x size grid.
func InBounds(row, col, size int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

// buildGrid indexes tiles by cell for O(1) occupancy checks.
func buildGrid(tiles []Tile) map[int]Tile {
	grid := make(map[int]Tile, len(tiles))
	for _, t := range tiles {
		grid[t.Position] = t
	}
	return grid
}
