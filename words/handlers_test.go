package words

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictRouter(t *testing.T, dict *Dictionary) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(dict)
	r := gin.New()
	r.GET("/dictionary/check", handler.CheckHandler)
	r.GET("/dictionary/suggest", handler.SuggestHandler)
	return r
}

func doGet(t *testing.T, router *gin.Engine, url string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestCheckHandler(t *testing.T) {
	t.Parallel()
	router := newDictRouter(t, loadedDict(t, "cat\ndog\n"))

	code, body := doGet(t, router, "/dictionary/check?word=cat")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, true, body["ready"])

	code, body = doGet(t, router, "/dictionary/check?word=xyz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["valid"])

	code, _ = doGet(t, router, "/dictionary/check")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCheckHandler_NotReady(t *testing.T) {
	t.Parallel()
	router := newDictRouter(t, New())

	code, body := doGet(t, router, "/dictionary/check?word=cat")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["ready"])
}

func TestSuggestHandler(t *testing.T) {
	t.Parallel()
	router := newDictRouter(t, loadedDict(t, "cat\ncab\ndog\n"))

	code, body := doGet(t, router, "/dictionary/suggest?prefix=ca")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"CAB", "CAT"}, body["words"])

	code, body = doGet(t, router, "/dictionary/suggest?prefix=ca&limit=1")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"CAB"}, body["words"])
}

func TestSuggestHandler_Validation(t *testing.T) {
	t.Parallel()
	router := newDictRouter(t, loadedDict(t, "cat\n"))

	code, _ := doGet(t, router, "/dictionary/suggest")
	assert.Equal(t, http.StatusBadRequest, code)

	for _, limit := range []string{"0", "101", "abc"} {
		code, _ := doGet(t, router, "/dictionary/suggest?prefix=ca&limit="+limit)
		assert.Equal(t, http.StatusBadRequest, code)
	}

	notReady := newDictRouter(t, New())
	code, _ = doGet(t, notReady, "/dictionary/suggest?prefix=ca")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
