package words

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the dictionary over HTTP for word checks and hint
// suggestions.
type Handler struct {
	dict *Dictionary
}

func NewHandler(dict *Dictionary) *Handler {
	return &Handler{dict: dict}
}

// CheckHandler handles GET /dictionary/check?word=<word>. While the word
// list is still loading it answers 503 with ready=false so clients can
// tell "not ready" from "invalid".
func (h *Handler) CheckHandler(ctx *gin.Context) {
	word := ctx.Query("word")
	if word == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing word"})
		return
	}

	valid, err := h.dict.Check(word)
	if errors.Is(err, ErrNotReady) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ready": true, "word": word, "valid": valid})
}

// SuggestHandler handles GET /dictionary/suggest?prefix=<prefix>&limit=<n>.
func (h *Handler) SuggestHandler(ctx *gin.Context) {
	prefix := ctx.Query("prefix")
	if prefix == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing prefix"})
		return
	}
	if !h.dict.Ready() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}

	limit := 10
	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be 1-100"})
			return
		}
		limit = n
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ready": true,
		"words": h.dict.WordsStartingWith(prefix, limit),
	})
}
