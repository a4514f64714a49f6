// Package session persists solo game snapshots: a versioned text format and
// a small sqlite-backed store. Persistence here is best effort; a corrupt or
// missing snapshot always falls back to a fresh game rather than an error.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adamsulemanji/bananas/board"
	"github.com/adamsulemanji/bananas/game"
)

// StateVersion is written into every snapshot. Decoding an unknown version
// warns and proceeds; the fields we know about are still recovered.
const StateVersion = "1.0"

// LetterCount is one row of a serialized letter bag.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// State is the serializable shape of an in-progress solo game.
type State struct {
	Version     string        `json:"version"`
	Tiles       []board.Tile  `json:"tiles"`
	PlayerHand  []game.Tile   `json:"playerHand"`
	LetterBag   []LetterCount `json:"letterBag"`
	TileCounter int           `json:"tileCounter"`
	Timestamp   string        `json:"timestamp"`
}

// FreshState is the state of a game that has not started.
func FreshState() State {
	return State{
		Version:     StateVersion,
		TileCounter: 1,
	}
}

// Encode serializes a state, stamping version and time.
func Encode(s State) (string, error) {
	s.Version = StateVersion
	s.Timestamp = time.Now().Format(time.RFC3339)
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode restores a snapshot. Empty input means "initialize fresh", not an
// error; so does undecodable input. A version mismatch only warns.
func Decode(data string) State {
	if data == "" {
		return FreshState()
	}

	var s State
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		log.Warn().Err(err).Msg("corrupt game snapshot, starting fresh")
		return FreshState()
	}
	if s.Version != StateVersion {
		log.Warn().
			Str("expected", StateVersion).
			Str("got", s.Version).
			Msg("game snapshot version mismatch")
	}
	if s.TileCounter < 1 {
		s.TileCounter = 1
	}
	return s
}

var ErrNotFound = errors.New("session not found")

// Session is one saved solo game.
type Session struct {
	GameID    string
	Pin       string
	CreatedAt time.Time
	LastSaved time.Time
	State     string // encoded State
	Completed bool
}
