package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newTestStore(t)
	handler := NewHandler(store)

	r := gin.New()
	r.POST("/sessions", handler.SaveHandler)
	r.GET("/sessions", handler.RecentHandler)
	r.GET("/sessions/:id", handler.GetHandler)
	r.DELETE("/sessions/:id", handler.DeleteHandler)
	return r, store
}

func doJSON(t *testing.T, router *gin.Engine, method, url, body string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

func TestSaveHandler_NewGame(t *testing.T) {
	t.Parallel()
	router, store := newSessionRouter(t)

	code, body := doJSON(t, router, http.MethodPost, "/sessions", `{"pin":"1234","state":""}`)
	require.Equal(t, http.StatusOK, code)
	gameID, _ := body["gameId"].(string)
	require.NotEmpty(t, gameID)

	sess, err := store.Get(gameID)
	require.NoError(t, err)

	// An empty snapshot is normalized to a fresh versioned state.
	decoded := Decode(sess.State)
	assert.Equal(t, StateVersion, decoded.Version)
	assert.Equal(t, 1, decoded.TileCounter)
}

func TestSaveHandler_CorruptStateNormalized(t *testing.T) {
	t.Parallel()
	router, store := newSessionRouter(t)

	code, body := doJSON(t, router, http.MethodPost, "/sessions",
		`{"gameId":"g1","pin":"1234","state":"{broken"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "g1", body["gameId"])

	sess, err := store.Get("g1")
	require.NoError(t, err)
	assert.Equal(t, 1, Decode(sess.State).TileCounter)
}

func TestSaveHandler_BadBody(t *testing.T) {
	t.Parallel()
	router, _ := newSessionRouter(t)

	code, _ := doJSON(t, router, http.MethodPost, "/sessions", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetHandler(t *testing.T) {
	t.Parallel()
	router, store := newSessionRouter(t)
	require.NoError(t, store.Save(Session{GameID: "g1", Pin: "1234", State: "s"}))

	code, body := doJSON(t, router, http.MethodGet, "/sessions/g1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "g1", body["gameId"])
	assert.Equal(t, "1234", body["pin"])

	code, _ = doJSON(t, router, http.MethodGet, "/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRecentHandler(t *testing.T) {
	t.Parallel()
	router, store := newSessionRouter(t)
	require.NoError(t, store.Save(Session{GameID: "g1", Pin: "1111", State: "s"}))
	require.NoError(t, store.Save(Session{GameID: "g2", Pin: "2222", State: "s"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions?limit=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var views []sessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 1)

	code, _ := doJSON(t, router, http.MethodGet, "/sessions?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteHandler(t *testing.T) {
	t.Parallel()
	router, store := newSessionRouter(t)
	require.NoError(t, store.Save(Session{GameID: "g1", Pin: "1111", State: "s"}))

	code, _ := doJSON(t, router, http.MethodDelete, "/sessions/g1", "")
	assert.Equal(t, http.StatusOK, code)

	_, err := store.Get("g1")
	assert.ErrorIs(t, err, ErrNotFound)
}
