package game

import (
	"encoding/json"
	"fmt"

	"github.com/adamsulemanji/bananas/board"
)

// Client packet types. Room creation and joining happen at the websocket
// upgrade endpoints; everything else arrives as a tagged packet.
const (
	PacketToggleReady         = "toggleReady"
	PacketStartGame           = "startGame"
	PacketPeel                = "peel"
	PacketDump                = "dump"
	PacketUpdateBoard         = "updateBoard"
	PacketUpdateHandSize      = "updateHandSize"
	PacketUpdateTileLocations = "updateTileLocations"
	PacketGetPlayerDetails    = "getPlayerDetails"
	PacketKickPlayer          = "kickPlayer"
)

// Server packet types.
const (
	PacketCreateRoomResult       = "createRoomResult"
	PacketJoinRoomResult         = "joinRoomResult"
	PacketStartGameResult        = "startGameResult"
	PacketPeelResult             = "peelResult"
	PacketDumpResult             = "dumpResult"
	PacketGetPlayerDetailsResult = "getPlayerDetailsResult"
	PacketKickPlayerResult       = "kickPlayerResult"
	PacketRoomUpdate             = "roomUpdate"
	PacketGameStart              = "gameStart"
	PacketPeelCalled             = "peelCalled"
	PacketGameWon                = "gameWon"
	PacketPlayerDumped           = "playerDumped"
	PacketPlayerBoardUpdate      = "playerBoardUpdate"
	PacketPlayerHandUpdate       = "playerHandUpdate"
	PacketPlayerKicked           = "playerKicked"
	PacketKicked                 = "kicked"
	PacketPlayerLeft             = "playerLeft"
)

// ClientPacket is the tagged envelope for every client-to-server event.
// Data is decoded against the schema for Type before any handler runs.
type ClientPacket struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ServerPacket is the envelope for acknowledgements and room broadcasts.
type ServerPacket struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

func marshalServerPacket(packetType string, data any) []byte {
	raw, err := json.Marshal(ServerPacket{Type: packetType, Data: data})
	if err != nil {
		// Every payload type below is marshalable; this is a programming error.
		panic(fmt.Sprintf("marshal %s packet: %v", packetType, err))
	}
	return raw
}

// --- client payloads ---

type DumpRequest struct {
	TileID string `json:"tileId"`
}

type UpdateBoardRequest struct {
	BoardTiles []board.Tile `json:"boardTiles"`
}

type UpdateHandSizeRequest struct {
	HandSize int `json:"handSize"`
}

type UpdateTileLocationsRequest struct {
	TilesMovedToBoard []string `json:"tilesMovedToBoard,omitempty"`
	TilesMovedToHand  []string `json:"tilesMovedToHand,omitempty"`
}

type GetPlayerDetailsRequest struct {
	PlayerName string `json:"playerName"`
}

type KickPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

// --- server payloads ---

// Ack is the generic acknowledgement shape: handlers reject a bad request
// with an error message instead of disturbing room state.
type Ack struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type CreateRoomResult struct {
	Success bool   `json:"success"`
	Pin     string `json:"pin,omitempty"`
	GameID  string `json:"gameId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type JoinRoomResult struct {
	Success bool   `json:"success"`
	GameID  string `json:"gameId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type PeelResult struct {
	Success bool   `json:"success"`
	Won     bool   `json:"won"`
	Error   string `json:"error,omitempty"`
}

type DumpResult struct {
	Success  bool   `json:"success"`
	NewTiles []Tile `json:"newTiles,omitempty"`
	Error    string `json:"error,omitempty"`
}

type PlayerDetails struct {
	Success     bool         `json:"success"`
	PlayerName  string       `json:"playerName,omitempty"`
	TilesInHand []string     `json:"tilesInHand,omitempty"`
	BoardTiles  []board.Tile `json:"boardTiles,omitempty"`
	HandSize    int          `json:"handSize"`
	BoardSize   int          `json:"boardSize"`
	Error       string       `json:"error,omitempty"`
}

// PlayerSummary is the per-player view carried by roomUpdate. HandSize and
// BoardSize are recomputed from tile ownership on every broadcast, never
// echoed from a cached field.
type PlayerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsHost    bool   `json:"isHost"`
	IsReady   bool   `json:"isReady"`
	HandSize  int    `json:"handSize"`
	BoardSize int    `json:"boardSize"`
}

// PlayerState additionally carries the tiles themselves; it is only sent
// inside gameStart and peelCalled, where clients need the actual letters.
type PlayerState struct {
	PlayerSummary
	Tiles      []Tile       `json:"tiles"`
	BoardTiles []board.Tile `json:"boardTiles"`
}

type RoomSnapshot struct {
	ID        string          `json:"id"`
	Pin       string          `json:"pin"`
	Host      string          `json:"host"`
	GameState GameState       `json:"gameState"`
	Players   []PlayerSummary `json:"players"`
	Remaining int             `json:"remainingTiles"`
	CreatedAt string          `json:"createdAt"`
}

type GameStartData struct {
	Players   []PlayerState `json:"players"`
	Remaining int           `json:"remainingTiles"`
}

type PeelCalledData struct {
	CallerName  string        `json:"callerName"`
	Players     []PlayerState `json:"players"`
	Remaining   int           `json:"remainingTiles"`
	IsLastRound bool          `json:"isLastRound"`
}

type GameWonData struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
}

type PlayerDumpedData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Remaining  int    `json:"remainingTiles"`
}

type PlayerBoardUpdateData struct {
	PlayerID   string       `json:"playerId"`
	PlayerName string       `json:"playerName"`
	BoardTiles []board.Tile `json:"boardTiles"`
	HandSize   int          `json:"handSize"`
	BoardSize  int          `json:"boardSize"`
}

type PlayerHandUpdateData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	HandSize   int    `json:"handSize"`
}

type PlayerKickedData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type KickedData struct {
	Reason string `json:"reason"`
}

type PlayerLeftData struct {
	PlayerID   string       `json:"playerId"`
	PlayerName string       `json:"playerName"`
	Room       RoomSnapshot `json:"room"`
}
