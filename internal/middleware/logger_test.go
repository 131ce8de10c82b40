package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerAssignsID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	var seen string
	router.GET("/meals", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.JSON(http.StatusOK, []string{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meals", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/meals", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/meals", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
