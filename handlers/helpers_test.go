package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"educonnect/config"
	"educonnect/database"
	"educonnect/fixtures"
	"educonnect/handlers"
	"educonnect/routes"
	"educonnect/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:        "0",
		GinMode:     "test",
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:3000"},
		RateLimit:   10000,
		Debounce:    50 * time.Millisecond,
	}
}

// newTestRouter wires a fresh in-memory registry, a seeded collection store
// and the full route table.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, database.Connect(""))
	t.Cleanup(database.Disconnect)

	st := store.New()
	st.SeedPosts(fixtures.Posts())

	api := handlers.New(st, testConfig())
	return routes.SetupRouter(api, testConfig()), st
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers a user and returns the session token.
func signup(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/signup", "", map[string]string{
		"email":    email,
		"password": "secret123",
		"name":     "Test User",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func postIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	posts, _ := decode(t, w)["posts"].([]interface{})
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		m, ok := p.(map[string]interface{})
		require.True(t, ok)
		out = append(out, m["id"].(string))
	}
	return out
}
