package game

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

const maxPlayerNameLength = 20

// Handler upgrades HTTP requests to websocket seats. Request shape is
// validated before the upgrade so malformed requests get a plain HTTP
// error instead of a doomed socket.
type Handler struct {
	lobby    *Lobby
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewHandler(lobby *Lobby, logger zerolog.Logger) *Handler {
	return &Handler{
		lobby: lobby,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true }, // origin enforced by middleware
		},
		log: logger,
	}
}

func playerName(ctx *gin.Context) (string, bool) {
	name := strings.TrimSpace(ctx.Query("name"))
	if name == "" || len(name) > maxPlayerNameLength {
		return "", false
	}
	return name, true
}

// CreateRoomHandler handles GET /ws/create?name=<playerName>. On success the
// first packet on the socket is a createRoomResult carrying the pin.
func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	name, ok := playerName(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid player name"})
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	player := NewPlayer(uuid.NewString(), name, NewWebsocketConn(conn))
	room, err := h.lobby.CreateRoom(ctx.Request.Context(), player)
	if err != nil {
		player.conn.Close("unknown error")
		return
	}

	// Pumps are not running yet, so this direct write cannot race them.
	player.conn.Write(marshalServerPacket(PacketCreateRoomResult, CreateRoomResult{
		Success: true,
		Pin:     room.Pin(),
		GameID:  room.ID(),
	}))

	go player.ReadPump()
	go player.WritePump()
}

// JoinRoomHandler handles GET /ws/join?pin=<pin>&name=<playerName>.
func (h *Handler) JoinRoomHandler(ctx *gin.Context) {
	name, ok := playerName(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid player name"})
		return
	}
	pin := ctx.Query("pin")
	if !pinPattern.MatchString(pin) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "pin must be 4 digits"})
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	player := NewPlayer(uuid.NewString(), name, NewWebsocketConn(conn))
	if err := h.lobby.Join(ctx.Request.Context(), pin, player); err != nil {
		player.conn.Write(marshalServerPacket(PacketJoinRoomResult, JoinRoomResult{
			Error: err.Error(),
		}))
		player.conn.Close(err.Error())
		return
	}

	player.conn.Write(marshalServerPacket(PacketJoinRoomResult, JoinRoomResult{
		Success: true,
		GameID:  player.room.ID(),
	}))

	go player.ReadPump()
	go player.WritePump()
}
