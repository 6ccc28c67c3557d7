package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func serve(r http.Handler, method, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.168.1.1:1234"
	if mutate != nil {
		mutate(req)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestDatabaseMiddleware(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	var got *gorm.DB
	r := newTestEngine(DatabaseMiddleware(db))
	r.GET("/test", func(c *gin.Context) {
		got = GetDB(c)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, db, got)
}

func TestGetDB_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetDB(c))
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	r := newTestEngine(CORSMiddleware([]string{"*"}))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/test", func(req *http.Request) {
		req.Header.Set("Origin", "http://frontend.test")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newTestEngine(CORSMiddleware(nil))
	r.DELETE("/doctor/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/doctor/1", func(req *http.Request) {
		req.Header.Set("Origin", "http://frontend.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSMiddleware_RestrictedOrigins(t *testing.T) {
	r := newTestEngine(CORSMiddleware([]string{"http://allowed.test"}))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := serve(r, http.MethodGet, "/test", func(req *http.Request) {
		req.Header.Set("Origin", "http://allowed.test")
	})
	assert.Equal(t, http.StatusOK, allowed.Code)
	assert.Equal(t, "http://allowed.test", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := serve(r, http.MethodGet, "/test", func(req *http.Request) {
		req.Header.Set("Origin", "http://evil.test")
	})
	assert.Equal(t, http.StatusForbidden, denied.Code)
}
