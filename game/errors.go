package game

import "errors"

var (
	ErrRoomNotFound     = errors.New("room-not-found")
	ErrRoomFull         = errors.New("room-full")
	ErrGameInProgress   = errors.New("game-in-progress")
	ErrGameNotStarted   = errors.New("game-not-started")
	ErrNotHost          = errors.New("not-host")
	ErrPlayersNotReady  = errors.New("players-not-ready")
	ErrNotEnoughPlayers = errors.New("not-enough-players")
	ErrPlayerNotFound   = errors.New("player-not-found")
	ErrTileNotFound     = errors.New("tile-not-found")
	ErrStillHasTiles    = errors.New("still-has-tiles")
	ErrBagTooSmall      = errors.New("insufficient-bag-supply")
	ErrCannotKickSelf   = errors.New("cannot-kick-self")
)
