package game

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayer_SendDropsWhenOutboxFull(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p0", "alice", stubConn{})

	// A stalled client loses packets instead of blocking the sender.
	for i := 0; i < cap(p.outbox)+10; i++ {
		p.send([]byte("x"))
	}
	assert.Len(t, p.outbox, cap(p.outbox))
}

func TestPlayer_CloseIdempotent(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p0", "alice", stubConn{})

	p.close()
	assert.NotPanics(t, p.close)
}

func TestReadPump(t *testing.T) {
	t.Parallel()

	conn := &MockConn{}
	conn.On("Read").Return([]byte(`{"type":"toggleReady"}`), nil).Once()
	conn.On("Read").Return([]byte(`garbage`), nil).Once()
	conn.On("Read").Return([]byte(`{"data":{}}`), nil).Once()
	conn.On("Read").Return([]byte(nil), errors.New("connection closed")).Once()

	p := NewPlayer("p0", "alice", conn)
	room := NewRoom("1234", p, DefaultConfig(), &MockLobby{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		p.ReadPump()
		close(done)
	}()

	// Only the well-formed typed packet reaches the room; untyped and
	// undecodable frames are skipped.
	select {
	case env := <-room.inbox:
		assert.Equal(t, PacketToggleReady, env.packet.Type)
		assert.Equal(t, p, env.from)
	case <-time.After(2 * time.Second):
		t.Fatal("no packet forwarded to room")
	}

	select {
	case removed := <-room.removals:
		assert.Equal(t, p, removed)
	case <-time.After(2 * time.Second):
		t.Fatal("read error did not release the seat")
	}

	<-done
	assert.Empty(t, room.inbox)
	conn.AssertExpectations(t)
}

func TestWritePump(t *testing.T) {
	t.Parallel()

	conn := &MockConn{}
	conn.On("Write", []byte("hello")).Return(nil).Once()
	conn.On("Close", "").Return().Once()

	p := NewPlayer("p0", "alice", conn)
	p.send([]byte("hello"))
	p.close()

	done := make(chan struct{})
	go func() {
		p.WritePump()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("write pump did not drain and exit")
	}
	conn.AssertExpectations(t)
}

func TestWritePump_ExitsOnWriteError(t *testing.T) {
	t.Parallel()

	conn := &MockConn{}
	conn.On("Write", mock.Anything).Return(errors.New("broken pipe")).Once()
	conn.On("Close", "").Return().Once()

	p := NewPlayer("p0", "alice", conn)
	p.send([]byte("hello"))
	p.send([]byte("never written"))

	done := make(chan struct{})
	go func() {
		p.WritePump()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("write pump did not exit on error")
	}
	conn.AssertExpectations(t)
}

func TestHandTiles_RemoveTile(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p0", "alice", stubConn{})
	p.tiles = []Tile{{ID: "a", Letter: "A"}, {ID: "b", Letter: "B"}}

	tile, ok := p.handTile("a")
	require.True(t, ok)
	assert.Equal(t, "A", tile.Letter)

	p.removeTile("a")
	assert.Len(t, p.tiles, 1)
	_, ok = p.handTile("a")
	assert.False(t, ok)

	// Removing an unknown id is a no-op.
	p.removeTile("a")
	assert.Len(t, p.tiles, 1)
}
