package game

import (
	"encoding/json"
	"time"
)

const pingInterval = 30 * time.Second

// ReadPump pulls packets off the wire and feeds them to the room goroutine.
// It exits on the first read error, which doubles as the disconnect signal:
// the room releases the seat, reassigns the host if needed, and deletes the
// room when it empties.
func (p *Player) ReadPump() {
	room := p.room
	defer func() {
		room.removals <- p
	}()

	for {
		data, err := p.conn.Read()
		if err != nil {
			return
		}
		if !p.limiter.Allow() {
			continue
		}

		var packet ClientPacket
		if err := json.Unmarshal(data, &packet); err != nil || packet.Type == "" {
			continue
		}

		room.inbox <- packetEnvelope{packet: packet, from: p}
	}
}

// WritePump drains the outbox onto the wire, interleaving pings. It exits
// when the room closes the outbox (after flushing what was queued) or on
// the first write failure, then tears the connection down.
func (p *Player) WritePump() {
	pinger := time.NewTicker(pingInterval)
	defer pinger.Stop()
	defer p.conn.Close("")

	for {
		select {
		case data, ok := <-p.outbox:
			if !ok {
				return
			}
			if err := p.conn.Write(data); err != nil {
				return
			}
		case <-pinger.C:
			if err := p.conn.Ping(); err != nil {
				return
			}
		}
	}
}
