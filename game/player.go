package game

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/adamsulemanji/bananas/board"
)

// Conn is the transport a player talks through. The concrete implementation
// wraps a websocket; tests substitute a mock.
type Conn interface {
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
	Close(reason string)
}

// Player is one seat in a room. tiles holds every tile the player owns;
// a tile is "in hand" iff its id does not appear among boardTiles. All
// fields except the outbox are owned by the room goroutine.
type Player struct {
	id      string
	name    string
	isHost  bool
	isReady bool

	tiles      []Tile
	boardTiles []board.Tile

	conn      Conn
	limiter   *rate.Limiter
	outbox    chan []byte
	closeOnce sync.Once
	room      *Room
}

func NewPlayer(id, name string, conn Conn) *Player {
	return &Player{
		id:      id,
		name:    name,
		conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		outbox:  make(chan []byte, 256),
	}
}

func (p *Player) ID() string { return p.id }

func (p *Player) Name() string { return p.name }

// HandTiles is the owned tiles not currently placed on the board.
func (p *Player) HandTiles() []Tile {
	onBoard := make(map[string]bool, len(p.boardTiles))
	for _, bt := range p.boardTiles {
		onBoard[bt.ID] = true
	}

	hand := make([]Tile, 0, len(p.tiles))
	for _, t := range p.tiles {
		if !onBoard[t.ID] {
			hand = append(hand, t)
		}
	}
	return hand
}

func (p *Player) HandSize() int { return len(p.HandTiles()) }

func (p *Player) BoardSize() int { return len(p.boardTiles) }

func (p *Player) handTile(id string) (Tile, bool) {
	for _, t := range p.HandTiles() {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

func (p *Player) removeTile(id string) {
	for i, t := range p.tiles {
		if t.ID == id {
			p.tiles = append(p.tiles[:i], p.tiles[i+1:]...)
			return
		}
	}
}

func (p *Player) summary() PlayerSummary {
	return PlayerSummary{
		ID:        p.id,
		Name:      p.name,
		IsHost:    p.isHost,
		IsReady:   p.isReady,
		HandSize:  p.HandSize(),
		BoardSize: p.BoardSize(),
	}
}

// send queues data for the write pump. A client too slow to drain its
// buffer loses packets rather than stalling the room goroutine; the next
// roomUpdate resynchronizes it.
func (p *Player) send(data []byte) {
	select {
	case p.outbox <- data:
	default:
	}
}

// close stops the write pump after the queued packets flush. Idempotent;
// called only from the room goroutine.
func (p *Player) close() {
	p.closeOnce.Do(func() {
		close(p.outbox)
	})
}
