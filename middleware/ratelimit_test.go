package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedEngine(cfg RateLimitConfig) *gin.Engine {
	r := newTestEngine(RateLimiter(cfg))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return r
}

func TestRateLimiter_WithoutRedis(t *testing.T) {
	r := rateLimitedEngine(RateLimitConfig{Limit: 5, Window: 15 * time.Minute})

	// Without Redis, all requests should be allowed
	for i := 0; i < 10; i++ {
		w := serve(r, http.MethodGet, "/test", nil)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimiter_DefaultConfig(t *testing.T) {
	r := rateLimitedEngine(RateLimitConfig{})

	w := serve(r, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	key := rateLimitKey("192.168.1.1", "/test")
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := rateLimitedEngine(RateLimitConfig{Client: db, Limit: 2, Window: time.Minute})
	w := serve(r, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_Exceeded(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	key := rateLimitKey("192.168.1.1", "/test")
	mock.ExpectIncr(key).SetVal(3)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := rateLimitedEngine(RateLimitConfig{Client: db, Limit: 2, Window: time.Minute})
	w := serve(r, http.MethodGet, "/test", nil)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests. Please try again later.", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RedisErrorAllows(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	key := rateLimitKey("192.168.1.1", "/test")
	mock.ExpectIncr(key).SetErr(errors.New("redis connection error"))

	r := rateLimitedEngine(RateLimitConfig{Client: db, Limit: 2, Window: time.Minute})
	w := serve(r, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetRateLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectDel(rateLimitKey("192.168.1.1", "/test")).SetVal(1)

	require.NoError(t, ResetRateLimit(context.Background(), db, "192.168.1.1", "/test"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetRateLimit_NoRedis(t *testing.T) {
	err := ResetRateLimit(context.Background(), nil, "192.168.1.1", "/test")
	assert.Error(t, err)
}
