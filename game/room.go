package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type GameState string

const (
	StateWaiting  GameState = "waiting"
	StatePlaying  GameState = "playing"
	StateFinished GameState = "finished"
)

// Config is the room policy knobs. Defaults match the standard game; a
// MinPlayers of 1 permits solo practice rooms.
type Config struct {
	MinPlayers int
	MaxPlayers int
}

func DefaultConfig() Config {
	return Config{MinPlayers: 2, MaxPlayers: 8}
}

// tilesPerPlayer is the opening deal size for a given table size.
func tilesPerPlayer(playerCount int) int {
	switch {
	case playerCount <= 4:
		return 21
	case playerCount <= 6:
		return 15
	default:
		return 11
	}
}

// RoomJoinRequest carries a player into a room's goroutine; the room answers
// on errChan (nil on success).
type RoomJoinRequest struct {
	player  *Player
	errChan chan error
}

func NewRoomJoinRequest(player *Player) RoomJoinRequest {
	return RoomJoinRequest{player: player, errChan: make(chan error, 1)}
}

type packetEnvelope struct {
	packet ClientPacket
	from   *Player
}

// RoomRemover is the slice of the lobby a room needs: telling it the room
// emptied out and should be dropped from the registry.
type RoomRemover interface {
	RemoveRoom(pin string)
}

// Room owns one game: its players, state and letter bag. All mutation
// happens on the Run goroutine, which drains the inbox one event at a time;
// that single serialization point is what keeps the bag accounting and the
// player list consistent under concurrent client traffic.
type Room struct {
	id        string
	pin       string
	hostID    string
	state     GameState
	players   []*Player
	bag       *Bag
	createdAt time.Time
	tileIDs   tileIDGenerator

	cfg   Config
	lobby RoomRemover
	log   zerolog.Logger

	inbox        chan packetEnvelope
	joinRequests chan RoomJoinRequest
	removals     chan *Player
}

func NewRoom(pin string, host *Player, cfg Config, lobby RoomRemover, logger zerolog.Logger) *Room {
	id := uuid.NewString()
	r := &Room{
		id:        id,
		pin:       pin,
		hostID:    host.id,
		state:     StateWaiting,
		players:   make([]*Player, 0, cfg.MaxPlayers),
		createdAt: time.Now(),
		tileIDs:   tileIDGenerator{salt: id[:8]},
		cfg:       cfg,
		lobby:     lobby,
		log:       logger.With().Str("room", id).Str("pin", pin).Logger(),

		inbox:        make(chan packetEnvelope, 1024),
		joinRequests: make(chan RoomJoinRequest, 16),
		removals:     make(chan *Player, 16),
	}
	host.isHost = true
	host.room = r
	r.players = append(r.players, host)
	return r
}

func (r *Room) ID() string { return r.id }

func (r *Room) Pin() string { return r.pin }

// RequestJoin hands a join request to the room goroutine.
func (r *Room) RequestJoin(req RoomJoinRequest) {
	r.joinRequests <- req
}

// Run is the room actor. It processes one event to completion before the
// next and exits once the last player is gone, unregistering the room.
func (r *Room) Run() {
	r.broadcastRoomUpdate()

	for {
		select {
		case env := <-r.inbox:
			r.dispatch(env)
		case req := <-r.joinRequests:
			r.handleJoinRequest(req)
		case p := <-r.removals:
			r.handleLeave(p)
			if len(r.players) == 0 {
				r.lobby.RemoveRoom(r.pin)
				r.log.Info().Msg("room closed")
				return
			}
		}
	}
}

func (r *Room) dispatch(env packetEnvelope) {
	if r.findPlayer(env.from.id) == nil {
		return
	}

	switch env.packet.Type {
	case PacketToggleReady:
		r.handleToggleReady(env.from)
	case PacketStartGame:
		r.handleStartGame(env.from)
	case PacketPeel:
		r.handlePeel(env.from)
	case PacketDump:
		r.handleDump(env)
	case PacketUpdateBoard:
		r.handleUpdateBoard(env)
	case PacketUpdateHandSize:
		r.handleUpdateHandSize(env)
	case PacketUpdateTileLocations:
		r.handleUpdateTileLocations(env)
	case PacketGetPlayerDetails:
		r.handleGetPlayerDetails(env)
	case PacketKickPlayer:
		r.handleKickPlayer(env)
	default:
		r.log.Debug().Str("type", env.packet.Type).Msg("unknown packet type")
	}
}

func (r *Room) findPlayer(id string) *Player {
	for _, p := range r.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (r *Room) findPlayerByName(name string) *Player {
	for _, p := range r.players {
		if p.name == name {
			return p
		}
	}
	return nil
}

// --- broadcast plumbing ---

func (r *Room) send(p *Player, packetType string, data any) {
	p.send(marshalServerPacket(packetType, data))
}

func (r *Room) broadcast(packetType string, data any) {
	raw := marshalServerPacket(packetType, data)
	for _, p := range r.players {
		p.send(raw)
	}
}

func (r *Room) broadcastExcept(except *Player, packetType string, data any) {
	raw := marshalServerPacket(packetType, data)
	for _, p := range r.players {
		if p.id != except.id {
			p.send(raw)
		}
	}
}

// summaries recomputes every player's hand and board size fresh from tile
// ownership. Cached counts are never trusted here; this is what keeps
// every client's sidebar correct under out-of-order delivery.
func (r *Room) summaries() []PlayerSummary {
	out := make([]PlayerSummary, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p.summary())
	}
	return out
}

func (r *Room) playerStates() []PlayerState {
	out := make([]PlayerState, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, PlayerState{
			PlayerSummary: p.summary(),
			Tiles:         p.HandTiles(),
			BoardTiles:    p.boardTiles,
		})
	}
	return out
}

func (r *Room) snapshot() RoomSnapshot {
	return RoomSnapshot{
		ID:        r.id,
		Pin:       r.pin,
		Host:      r.hostID,
		GameState: r.state,
		Players:   r.summaries(),
		Remaining: r.remaining(),
		CreatedAt: r.createdAt.Format(time.RFC3339),
	}
}

func (r *Room) remaining() int {
	if r.bag == nil {
		return 0
	}
	return r.bag.Remaining()
}

func (r *Room) broadcastRoomUpdate() {
	r.broadcast(PacketRoomUpdate, r.snapshot())
}
