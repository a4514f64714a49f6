package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Handler exposes saved solo games over HTTP.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type sessionView struct {
	GameID    string `json:"gameId"`
	Pin       string `json:"pin"`
	CreatedAt string `json:"createdAt"`
	LastSaved string `json:"lastSaved"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

func toView(s Session) sessionView {
	return sessionView{
		GameID:    s.GameID,
		Pin:       s.Pin,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		LastSaved: s.LastSaved.Format(time.RFC3339),
		State:     s.State,
		Completed: s.Completed,
	}
}

type saveRequest struct {
	GameID    string `json:"gameId"`
	Pin       string `json:"pin"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

// SaveHandler handles POST /sessions. A missing gameId starts a new saved
// game; the snapshot text is normalized through Decode/Encode so corrupt
// input is replaced with a fresh state instead of rejected.
func (h *Handler) SaveHandler(ctx *gin.Context) {
	var req saveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.GameID == "" {
		req.GameID = uuid.NewString()
	}

	state, err := Encode(Decode(req.State))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode state"})
		return
	}

	sess := Session{
		GameID:    req.GameID,
		Pin:       req.Pin,
		State:     state,
		Completed: req.Completed,
	}
	if err := h.store.Save(sess); err != nil {
		log.Error().Err(err).Str("game", req.GameID).Msg("session save failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not save session"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "gameId": req.GameID})
}

// GetHandler handles GET /sessions/:id.
func (h *Handler) GetHandler(ctx *gin.Context) {
	sess, err := h.store.Get(ctx.Param("id"))
	if errors.Is(err, ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}
	ctx.JSON(http.StatusOK, toView(sess))
}

// RecentHandler handles GET /sessions?limit=<n>.
func (h *Handler) RecentHandler(ctx *gin.Context) {
	limit := 5
	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 50 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be 1-50"})
			return
		}
		limit = n
	}

	sessions, err := h.store.Recent(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sessions"})
		return
	}

	views := make([]sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, toView(s))
	}
	ctx.JSON(http.StatusOK, views)
}

// DeleteHandler handles DELETE /sessions/:id.
func (h *Handler) DeleteHandler(ctx *gin.Context) {
	if err := h.store.Delete(ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete session"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
