package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/macro-service/backend/internal/testdb"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.POST("/save-meal", rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	router := limitedRouter(NewWriteRateLimiter(client, 1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save-meal", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Error"))
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitEnforced(t *testing.T) {
	tr := testdb.SetupTestRedis(t)
	router := limitedRouter(NewWriteRateLimiter(tr.Client, 2))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/save-meal", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, send().Code)

	blocked := send()
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "rate limit of 2 requests")
}

func TestGetRemainingRequests(t *testing.T) {
	tr := testdb.SetupTestRedis(t)
	rl := NewWriteRateLimiter(tr.Client, 5)
	ctx := context.Background()

	remaining, reset, err := rl.GetRemainingRequests(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
	assert.True(t, reset.After(time.Now()))

	allowed, left, _, err := rl.IsAllowed(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 4, left)

	remaining, _, err = rl.GetRemainingRequests(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}
