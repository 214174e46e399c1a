package websocket_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"educonnect/fixtures"
	"educonnect/store"
	ws "educonnect/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultFrame struct {
	Type   string `json:"type"`
	Count  int    `json:"count"`
	Search string `json:"search"`
}

func dialTestSocket(t *testing.T, debounce time.Duration) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	st.SeedPosts(fixtures.Posts())

	manager := ws.NewManager(st, debounce)
	go manager.Start()

	router := gin.New()
	router.GET("/ws/feed", func(c *gin.Context) {
		manager.Serve(c.Writer, c.Request, "test-user")
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/feed"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveSearchDebouncesKeystrokes(t *testing.T) {
	conn := dialTestSocket(t, 80*time.Millisecond)

	// three keystrokes inside the quiescence window
	for _, q := range []string{"r", "re", "rea"} {
		require.NoError(t, conn.WriteJSON(map[string]string{"type": "search", "query": q}))
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame resultFrame
	require.NoError(t, conn.ReadJSON(&frame))

	// exactly one query ran, with the final value
	assert.Equal(t, "results", frame.Type)
	assert.Equal(t, "rea", frame.Search)
	assert.Greater(t, frame.Count, 0)

	// no superseded result follows
	conn.SetReadDeadline(time.Now().Add(250 * time.Millisecond))
	assert.Error(t, conn.ReadJSON(&frame))
}

func TestLiveSearchFiltersAndSorts(t *testing.T) {
	conn := dialTestSocket(t, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{
		"type": "search", "query": "", "filter": "course", "sort": "popular",
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame resultFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, 1, frame.Count)
}

func TestDisconnectDuringDebounce(t *testing.T) {
	conn := dialTestSocket(t, 100*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "search", "query": "rea"}))

	// close before the quiescence window elapses; the pending search fires
	// against a gone client and its result is discarded
	require.NoError(t, conn.Close())
	time.Sleep(300 * time.Millisecond)
}

func TestNonSearchFramesAreIgnored(t *testing.T) {
	conn := dialTestSocket(t, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var frame resultFrame
	assert.Error(t, conn.ReadJSON(&frame))
}
