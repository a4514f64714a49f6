package game

import "fmt"

// Tile is a lettered tile owned by a player. Immutable once drawn; only its
// location (hand, board cell) changes.
type Tile struct {
	ID     string `json:"id"`
	Letter string `json:"letter"`
}

// tileIDGenerator hands out ids unique for the lifetime of a room: a
// monotonically increasing counter scoped by a per-room salt. Retired ids
// (dump) are never reissued because the counter only moves forward.
type tileIDGenerator struct {
	salt    string
	counter int
}

func (g *tileIDGenerator) next(prefix string) string {
	g.counter++
	return fmt.Sprintf("%s-%s-%d", prefix, g.salt, g.counter)
}
