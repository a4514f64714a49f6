package board

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// WordTile ties a letter of an extracted word back to the tile it came from.
type WordTile struct {
	TileID   string `json:"tileId"`
	Position int    `json:"position"`
	Letter   string `json:"letter"`
}

// ExtractedWord is one maximal run of two or more contiguous tiles, anchored
// at its first cell.
type ExtractedWord struct {
	Word          string     `json:"word"`
	Tiles         []WordTile `json:"tiles"`
	Direction     Direction  `json:"direction"`
	StartPosition int        `json:"startPosition"`
}

// ExtractWords scans every row left to right and every column top to bottom,
// emitting each contiguous run of length >= 2 as a word. A lone occupied cell
// contributes to no word.
func ExtractWords(tiles []Tile, size int) []ExtractedWord {
	if len(tiles) == 0 {
		return nil
	}

	grid := buildGrid(tiles)
	var words []ExtractedWord

	flush := func(run []Tile, dir Direction) {
		if len(run) < 2 {
			return
		}
		w := ExtractedWord{
			Direction:     dir,
			StartPosition: run[0].Position,
			Tiles:         make([]WordTile, 0, len(run)),
		}
		for _, t := range run {
			w.Word += t.Letter
			w.Tiles = append(w.Tiles, WordTile{TileID: t.ID, Position: t.Position, Letter: t.Letter})
		}
		words = append(words, w)
	}

	for row := 0; row < size; row++ {
		var run []Tile
		for col := 0; col < size; col++ {
			if t, ok := grid[CellIndex(row, col, size)]; ok {
				run = append(run, t)
				continue
			}
			flush(run, Horizontal)
			run = nil
		}
		flush(run, Horizontal)
	}

	for col := 0; col < size; col++ {
		var run []Tile
		for row := 0; row < size; row++ {
			if t, ok := grid[CellIndex(row, col, size)]; ok {
				run = append(run, t)
				continue
			}
			flush(run, Vertical)
			run = nil
		}
		flush(run, Vertical)
	}

	return words
}

// Connected reports whether a single flood fill over 4-adjacent occupied
// cells reaches every tile. Empty and single-tile boards are connected.
func Connected(tiles []Tile, size int) bool {
	if len(tiles) <= 1 {
		return true
	}

	grid := buildGrid(tiles)
	visited := make(map[int]bool, len(tiles))
	queue := []int{tiles[0].Position}
	visited[tiles[0].Position] = true

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		row, col := Coordinates(pos, size)
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := row+d[0], col+d[1]
			if !InBounds(nr, nc, size) {
				continue
			}
			next := CellIndex(nr, nc, size)
			if _, occupied := grid[next]; occupied && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(tiles)
}

// IsolatedTiles returns the tiles covered by no extracted word in either
// direction. This is independent of Connected: a tile can be adjacent to
// another isolated tile yet still form no word.
func IsolatedTiles(tiles []Tile, size int) []Tile {
	inWords := make(map[string]bool)
	for _, w := range ExtractWords(tiles, size) {
		for _, wt := range w.Tiles {
			inWords[wt.TileID] = true
		}
	}

	var isolated []Tile
	for _, t := range tiles {
		if !inWords[t.ID] {
			isolated = append(isolated, t)
		}
	}
	return isolated
}
