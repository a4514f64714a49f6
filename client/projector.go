// Package client mirrors room state on the player's side of the wire. The
// projector applies server broadcasts to a local copy of the hand and board;
// the solo engine runs a full single-player game locally.
package client

import (
	"github.com/adamsulemanji/bananas/board"
	"github.com/adamsulemanji/bananas/game"
)

// OtherPlayer is the summary-level view kept for everyone except the local
// player. The server's broadcast counts are the source of truth here; only
// the local player's own tiles are tracked as full arrays.
type OtherPlayer struct {
	ID         string
	Name       string
	IsHost     bool
	IsReady    bool
	HandSize   int
	BoardSize  int
	BoardTiles []board.Tile
}

// Projector maintains one client's local mirror of a multiplayer game. It
// tolerates broadcasts arriving in any order relative to local optimistic
// changes: incoming tiles merge by id union, never by blind replacement, so
// a tile the player is mid-drag on is never dropped.
type Projector struct {
	playerName string

	hand       []game.Tile
	boardTiles []board.Tile
	remaining  int
	state      game.GameState

	others map[string]OtherPlayer
}

func NewProjector(playerName string) *Projector {
	return &Projector{
		playerName: playerName,
		state:      game.StateWaiting,
		others:     make(map[string]OtherPlayer),
	}
}

func (pr *Projector) Hand() []game.Tile { return pr.hand }

func (pr *Projector) Board() []board.Tile { return pr.boardTiles }

func (pr *Projector) Remaining() int { return pr.remaining }

func (pr *Projector) State() game.GameState { return pr.state }

// Others returns the summary views of every other player.
func (pr *Projector) Others() []OtherPlayer {
	out := make([]OtherPlayer, 0, len(pr.others))
	for _, o := range pr.others {
		out = append(out, o)
	}
	return out
}

// ApplyGameStart seeds the local hand from the opening deal.
func (pr *Projector) ApplyGameStart(data game.GameStartData) {
	pr.state = game.StatePlaying
	pr.remaining = data.Remaining
	for _, p := range data.Players {
		if p.Name == pr.playerName {
			pr.hand = append([]game.Tile(nil), p.Tiles...)
			pr.boardTiles = nil
			continue
		}
		pr.upsertOther(p.PlayerSummary, nil)
	}
}

// ApplyPeelCalled merges the peel deal into the local hand. Tiles the
// client already holds (in hand or placed locally) keep their local state;
// only genuinely new ids are added.
func (pr *Projector) ApplyPeelCalled(data game.PeelCalledData) {
	pr.remaining = data.Remaining
	for _, p := range data.Players {
		if p.Name != pr.playerName {
			pr.upsertOther(p.PlayerSummary, p.BoardTiles)
			continue
		}

		known := make(map[string]bool, len(pr.hand)+len(pr.boardTiles))
		for _, t := range pr.hand {
			known[t.ID] = true
		}
		for _, bt := range pr.boardTiles {
			known[bt.ID] = true
		}
		for _, t := range p.Tiles {
			if !known[t.ID] {
				pr.hand = append(pr.hand, t)
			}
		}
	}
}

// ApplyDumpResult swaps the traded tile for its replacements.
func (pr *Projector) ApplyDumpResult(tradedTileID string, result game.DumpResult) {
	if !result.Success {
		return
	}
	pr.removeFromHand(tradedTileID)
	pr.hand = append(pr.hand, result.NewTiles...)
}

// ApplyRoomUpdate refreshes the room phase, bag count and every other
// player's authoritative summary. The local player's own tile arrays are
// deliberately left alone; self state is optimistic.
func (pr *Projector) ApplyRoomUpdate(snapshot game.RoomSnapshot) {
	pr.state = snapshot.GameState
	pr.remaining = snapshot.Remaining

	seen := make(map[string]bool, len(snapshot.Players))
	for _, p := range snapshot.Players {
		if p.Name == pr.playerName {
			continue
		}
		seen[p.ID] = true
		pr.upsertOther(p, nil)
	}
	for id := range pr.others {
		if !seen[id] {
			delete(pr.others, id)
		}
	}
}

// ApplyPlayerBoardUpdate records another player's board layout and counts.
func (pr *Projector) ApplyPlayerBoardUpdate(data game.PlayerBoardUpdateData) {
	o := pr.others[data.PlayerID]
	o.ID = data.PlayerID
	o.Name = data.PlayerName
	o.BoardTiles = data.BoardTiles
	o.HandSize = data.HandSize
	o.BoardSize = data.BoardSize
	pr.others[data.PlayerID] = o
}

// ApplyPlayerHandUpdate records another player's reported hand count.
func (pr *Projector) ApplyPlayerHandUpdate(data game.PlayerHandUpdateData) {
	if data.PlayerName == pr.playerName {
		return
	}
	o := pr.others[data.PlayerID]
	o.ID = data.PlayerID
	o.Name = data.PlayerName
	o.HandSize = data.HandSize
	pr.others[data.PlayerID] = o
}

// ApplyGameWon marks the game finished.
func (pr *Projector) ApplyGameWon(game.GameWonData) {
	pr.state = game.StateFinished
}

// PlaceTile optimistically moves a hand tile onto a free board cell.
func (pr *Projector) PlaceTile(tileID string, position int) bool {
	for _, bt := range pr.boardTiles {
		if bt.Position == position {
			return false
		}
	}
	for i, t := range pr.hand {
		if t.ID == tileID {
			pr.hand = append(pr.hand[:i], pr.hand[i+1:]...)
			pr.boardTiles = append(pr.boardTiles, board.Tile{ID: t.ID, Letter: t.Letter, Position: position})
			return true
		}
	}
	return false
}

// PickUpTile moves a placed tile back into the hand.
func (pr *Projector) PickUpTile(tileID string) bool {
	for i, bt := range pr.boardTiles {
		if bt.ID == tileID {
			pr.boardTiles = append(pr.boardTiles[:i], pr.boardTiles[i+1:]...)
			pr.hand = append(pr.hand, game.Tile{ID: bt.ID, Letter: bt.Letter})
			return true
		}
	}
	return false
}

func (pr *Projector) upsertOther(summary game.PlayerSummary, boardTiles []board.Tile) {
	o := pr.others[summary.ID]
	o.ID = summary.ID
	o.Name = summary.Name
	o.IsHost = summary.IsHost
	o.IsReady = summary.IsReady
	o.HandSize = summary.HandSize
	o.BoardSize = summary.BoardSize
	if boardTiles != nil {
		o.BoardTiles = boardTiles
	}
	pr.others[summary.ID] = o
}

func (pr *Projector) removeFromHand(tileID string) {
	for i, t := range pr.hand {
		if t.ID == tileID {
			pr.hand = append(pr.hand[:i], pr.hand[i+1:]...)
			return
		}
	}
}
