package game

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lobby := newTestLobby(t)
	handler := NewHandler(lobby, zerolog.Nop())

	r := gin.New()
	r.GET("/ws/create", handler.CreateRoomHandler)
	r.GET("/ws/join", handler.JoinRoomHandler)
	return r
}

func TestCreateRoomHandler_RejectsBadName(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	testCases := []struct {
		desc string
		url  string
	}{
		{desc: "missing name", url: "/ws/create"},
		{desc: "blank name", url: "/ws/create?name=%20%20"},
		{desc: "name too long", url: "/ws/create?name=" + strings.Repeat("a", maxPlayerNameLength+1)},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid player name")
		})
	}
}

func TestJoinRoomHandler_RejectsBadRequest(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	testCases := []struct {
		desc     string
		url      string
		expected string
	}{
		{desc: "missing name", url: "/ws/join?pin=1234", expected: "invalid player name"},
		{desc: "missing pin", url: "/ws/join?name=alice", expected: "pin must be 4 digits"},
		{desc: "short pin", url: "/ws/join?name=alice&pin=123", expected: "pin must be 4 digits"},
		{desc: "alpha pin", url: "/ws/join?name=alice&pin=abcd", expected: "pin must be 4 digits"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.expected)
		})
	}
}

// A well-formed request that is not a websocket handshake passes validation
// but fails the upgrade; no room is created.
func TestCreateRoomHandler_RequiresUpgrade(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws/create?name=alice", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayerName(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/ws/create?name=%20alice%20", nil)

	name, ok := playerName(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
}
