package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

type createRoomRequest struct {
	player *Player
	resp   chan *Room
}

type lobbyJoinRequest struct {
	pin string
	req RoomJoinRequest
}

// Lobby owns the registry of live rooms, keyed by pin. The registry has no
// ambient global: construct one per server (or per test) and run its actor.
// All registry access happens on the Run goroutine.
type Lobby struct {
	cfg   Config
	log   zerolog.Logger
	rooms map[string]*Room

	createReqs     chan createRoomRequest
	joinReqs       chan lobbyJoinRequest
	removeRoomChan chan string
}

func NewLobby(cfg Config, logger zerolog.Logger) *Lobby {
	return &Lobby{
		cfg:            cfg,
		log:            logger,
		rooms:          make(map[string]*Room),
		createReqs:     make(chan createRoomRequest, 32),
		joinReqs:       make(chan lobbyJoinRequest, 256),
		removeRoomChan: make(chan string, 32),
	}
}

// Run is the lobby actor. started is closed once the loop is receiving.
func (l *Lobby) Run(started chan struct{}) {
	close(started)

	for {
		select {
		case req := <-l.createReqs:
			l.handleCreate(req)
		case jreq := <-l.joinReqs:
			l.handleJoin(jreq)
		case pin := <-l.removeRoomChan:
			delete(l.rooms, pin)
			l.log.Debug().Str("pin", pin).Msg("room removed")
		}
	}
}

// CreateRoom registers a new room with the caller as host and starts its
// actor. The caller acknowledges the host and then starts the pumps.
func (l *Lobby) CreateRoom(ctx context.Context, host *Player) (*Room, error) {
	req := createRoomRequest{player: host, resp: make(chan *Room, 1)}
	select {
	case l.createReqs <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case room := <-req.resp:
		return room, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Join forwards the player to the room behind pin. The room itself decides
// full/in-progress; the lobby only answers ErrRoomNotFound.
func (l *Lobby) Join(ctx context.Context, pin string, player *Player) error {
	jreq := lobbyJoinRequest{pin: pin, req: NewRoomJoinRequest(player)}
	select {
	case l.joinReqs <- jreq:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-jreq.req.errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RemoveRoom drops a room from the registry. Called by room goroutines when
// their last player leaves; the freed pin may be reused by a later room.
func (l *Lobby) RemoveRoom(pin string) {
	l.removeRoomChan <- pin
}

func (l *Lobby) handleCreate(req createRoomRequest) {
	pin := l.generatePin()
	room := NewRoom(pin, req.player, l.cfg, l, l.log)
	l.rooms[pin] = room
	go room.Run()

	l.log.Info().Str("pin", pin).Str("host", req.player.name).Msg("room created")
	req.resp <- room
}

func (l *Lobby) handleJoin(jreq lobbyJoinRequest) {
	room, ok := l.rooms[jreq.pin]
	if !ok {
		jreq.req.errChan <- ErrRoomNotFound
		return
	}
	room.RequestJoin(jreq.req)
}

// generatePin picks a 4-digit code not held by any live room. Only runs on
// the lobby goroutine, so the collision check is race-free.
func (l *Lobby) generatePin() string {
	for {
		pin := fmt.Sprintf("%04d", 1000+rand.Intn(9000))
		if _, taken := l.rooms[pin]; !taken {
			return pin
		}
	}
}
