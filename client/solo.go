package client

import (
	"fmt"

	"github.com/adamsulemanji/bananas/board"
	"github.com/adamsulemanji/bananas/game"
	"github.com/adamsulemanji/bananas/session"
)

const (
	// InitialHandSize is the opening solo draw.
	InitialHandSize = 21
	// RefillAmount is drawn automatically when the hand empties with tiles
	// still in the bag, and traded for one tile on a dump.
	RefillAmount = 3
)

// SoloGame is a complete single-player game: a private bag, a hand and a
// board, with the same word rules as multiplayer. Snapshots round-trip
// through the session package.
type SoloGame struct {
	bag        *game.Bag
	hand       []game.Tile
	boardTiles []board.Tile
	counter    int
	gridSize   int
}

// NewSoloGame deals the opening hand from a fresh bag.
func NewSoloGame(gridSize int) *SoloGame {
	g := &SoloGame{
		bag:      game.NewBag(),
		counter:  1,
		gridSize: gridSize,
	}
	g.Draw(InitialHandSize)
	return g
}

func (g *SoloGame) Hand() []game.Tile { return g.hand }

func (g *SoloGame) Board() []board.Tile { return g.boardTiles }

func (g *SoloGame) Remaining() int { return g.bag.Remaining() }

// Draw moves up to n tiles from the bag into the hand.
func (g *SoloGame) Draw(n int) []game.Tile {
	letters := g.bag.Draw(n)
	drawn := make([]game.Tile, 0, len(letters))
	for _, letter := range letters {
		drawn = append(drawn, game.Tile{ID: g.nextTileID(), Letter: letter})
	}
	g.hand = append(g.hand, drawn...)
	return drawn
}

// TradeIn returns one hand tile to the bag and draws up to RefillAmount
// replacements (fewer if the bag runs dry).
func (g *SoloGame) TradeIn(tileID string) ([]game.Tile, error) {
	idx := -1
	for i, t := range g.hand {
		if t.ID == tileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, game.ErrTileNotFound
	}

	traded := g.hand[idx]
	g.hand = append(g.hand[:idx], g.hand[idx+1:]...)
	g.bag.Return(traded.Letter)

	return g.Draw(RefillAmount), nil
}

// PlaceTile moves a hand tile onto a free cell. Emptying the hand with
// tiles left in the bag triggers an automatic refill draw.
func (g *SoloGame) PlaceTile(tileID string, position int) error {
	row, col := board.Coordinates(position, g.gridSize)
	if !board.InBounds(row, col, g.gridSize) {
		return fmt.Errorf("position %d outside %dx%d grid", position, g.gridSize, g.gridSize)
	}
	for _, bt := range g.boardTiles {
		if bt.Position == position {
			return fmt.Errorf("cell %d is occupied", position)
		}
	}

	idx := -1
	for i, t := range g.hand {
		if t.ID == tileID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return game.ErrTileNotFound
	}

	tile := g.hand[idx]
	g.hand = append(g.hand[:idx], g.hand[idx+1:]...)
	g.boardTiles = append(g.boardTiles, board.Tile{ID: tile.ID, Letter: tile.Letter, Position: position})

	if len(g.hand) == 0 && g.bag.Remaining() > 0 {
		g.Draw(RefillAmount)
	}
	return nil
}

// PickUpTile moves a placed tile back into the hand.
func (g *SoloGame) PickUpTile(tileID string) error {
	for i, bt := range g.boardTiles {
		if bt.ID == tileID {
			g.boardTiles = append(g.boardTiles[:i], g.boardTiles[i+1:]...)
			g.hand = append(g.hand, game.Tile{ID: bt.ID, Letter: bt.Letter})
			return nil
		}
	}
	return game.ErrTileNotFound
}

// ReturnToBag discards a hand tile back into the bag without replacement.
func (g *SoloGame) ReturnToBag(tileID string) error {
	for i, t := range g.hand {
		if t.ID == tileID {
			g.hand = append(g.hand[:i], g.hand[i+1:]...)
			g.bag.Return(t.Letter)
			return nil
		}
	}
	return game.ErrTileNotFound
}

// Validate judges the current board against the dictionary.
func (g *SoloGame) Validate(dict board.WordChecker) board.Validation {
	return board.Validate(g.boardTiles, g.gridSize, dict)
}

// Snapshot captures the game for persistence.
func (g *SoloGame) Snapshot() session.State {
	bag := g.bag.Counts()
	letterBag := make([]session.LetterCount, 0, len(bag))
	for _, letter := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		if count, ok := bag[string(letter)]; ok {
			letterBag = append(letterBag, session.LetterCount{Letter: string(letter), Count: count})
		}
	}
	return session.State{
		Version:     session.StateVersion,
		Tiles:       append([]board.Tile(nil), g.boardTiles...),
		PlayerHand:  append([]game.Tile(nil), g.hand...),
		LetterBag:   letterBag,
		TileCounter: g.counter,
	}
}

// RestoreSoloGame rebuilds a game from a snapshot.
func RestoreSoloGame(s session.State, gridSize int) *SoloGame {
	counts := make(map[string]int, len(s.LetterBag))
	for _, lc := range s.LetterBag {
		counts[lc.Letter] = lc.Count
	}
	counter := s.TileCounter
	if counter < 1 {
		counter = 1
	}
	return &SoloGame{
		bag:        game.NewBagFromCounts(counts),
		hand:       append([]game.Tile(nil), s.PlayerHand...),
		boardTiles: append([]board.Tile(nil), s.Tiles...),
		counter:    counter,
		gridSize:   gridSize,
	}
}

func (g *SoloGame) nextTileID() string {
	id := fmt.Sprintf("hand-%d", g.counter)
	g.counter++
	return id
}
