package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/gosign/internal/api/middleware"
	"github.com/jonesrussell/gosign/internal/config/server"
	"github.com/jonesrussell/gosign/internal/logger"
)

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

func (f *fakeTimeProvider) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestRouter(sm *middleware.SecurityMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sm.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func get(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIKeyDisabled(t *testing.T) {
	cfg := &server.Config{Address: ":8080", SecurityEnabled: false}
	sm := middleware.NewSecurityMiddleware(cfg, logger.NewNoOp())
	router := newTestRouter(sm)

	w := get(router, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	cfg := &server.Config{Address: ":8080", SecurityEnabled: true, APIKey: "id:secret"}
	sm := middleware.NewSecurityMiddleware(cfg, logger.NewNoOp())
	router := newTestRouter(sm)

	assert.Equal(t, http.StatusUnauthorized, get(router, nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		get(router, map[string]string{"X-API-Key": "wrong"}).Code)
	assert.Equal(t, http.StatusOK,
		get(router, map[string]string{"X-API-Key": "id:secret"}).Code)
}

func TestThrottleLimit(t *testing.T) {
	cfg := &server.Config{Address: ":8080", SecurityEnabled: false}
	sm := middleware.NewSecurityMiddleware(cfg, logger.NewNoOp())

	clock := &fakeTimeProvider{now: time.Now()}
	sm.SetTimeProvider(clock)
	sm.SetMaxRequests(2)
	sm.SetThrottleWindow(time.Second)

	router := newTestRouter(sm)

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, nil).Code)

	// A fresh window resets the budget.
	clock.Advance(2 * time.Second)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)
}

func TestSecurityHeaders(t *testing.T) {
	cfg := &server.Config{Address: ":8080", SecurityEnabled: false}
	sm := middleware.NewSecurityMiddleware(cfg, logger.NewNoOp())
	router := newTestRouter(sm)

	w := get(router, nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
