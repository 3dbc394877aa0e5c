package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsWithinLimit(t *testing.T) {
	lim := New(3, time.Minute)

	require.True(t, lim.Allow("10.0.0.1"))
	require.True(t, lim.Allow("10.0.0.1"))
	require.True(t, lim.Allow("10.0.0.1"))
	require.False(t, lim.Allow("10.0.0.1"))

	// Other keys keep their own budget
	require.True(t, lim.Allow("10.0.0.2"))
}

func TestLimiterResetClearsKey(t *testing.T) {
	lim := New(1, time.Minute)

	require.True(t, lim.Allow("10.0.0.1"))
	require.False(t, lim.Allow("10.0.0.1"))

	lim.Reset("10.0.0.1")
	require.True(t, lim.Allow("10.0.0.1"))
}

func TestMiddlewareRejectsWhenExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim))
	r.POST("/login", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Muitas tentativas. Tente novamente mais tarde.", body["message"])
}
