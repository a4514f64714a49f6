package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Conn ---

type MockConn struct {
	mock.Mock
}

func (m *MockConn) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockConn) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockConn) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockConn) Close(reason string) {
	m.Called(reason)
}

// --- RoomRemover ---

type MockLobby struct {
	mock.Mock
}

func (m *MockLobby) RemoveRoom(pin string) {
	m.Called(pin)
}

// stubConn is a no-op transport for tests that inspect the outbox instead
// of the wire.
type stubConn struct{}

func (stubConn) Write([]byte) error    { return nil }
func (stubConn) Read() ([]byte, error) { return nil, errors.New("closed") }
func (stubConn) Ping() error           { return nil }
func (stubConn) Close(string)          {}

type rxPacket struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// drainPackets empties a player's outbox into decoded packets.
func drainPackets(t *testing.T, p *Player) []rxPacket {
	t.Helper()
	var packets []rxPacket
	for {
		select {
		case raw, ok := <-p.outbox:
			if !ok {
				return packets
			}
			var pkt rxPacket
			require.NoError(t, json.Unmarshal(raw, &pkt))
			packets = append(packets, pkt)
		default:
			return packets
		}
	}
}

// lastPacket returns the most recent packet of the given type, failing the
// test if none arrived.
func lastPacket(t *testing.T, p *Player, packetType string) rxPacket {
	t.Helper()
	var found *rxPacket
	for _, pkt := range drainPackets(t, p) {
		if pkt.Type == packetType {
			pkt := pkt
			found = &pkt
		}
	}
	require.NotNilf(t, found, "no %s packet received", packetType)
	return *found
}

func decodeData[T any](t *testing.T, pkt rxPacket) T {
	t.Helper()
	var data T
	require.NoError(t, json.Unmarshal(pkt.Data, &data))
	return data
}

func packetTypes(packets []rxPacket) []string {
	types := make([]string, 0, len(packets))
	for _, pkt := range packets {
		types = append(types, pkt.Type)
	}
	return types
}
